// Package enumspec turns raw enum declarations into validated EnumSpecs.
//
// It is independent of where a declaration came from: the Go source analyzer
// and the YAML loader both produce RawDecls whose variants carry Attributes
// with Literal values exactly as written.
//
// Steps:
//  1. ParseAttributes extracts the canonical "string" and the "alias" strings
//     of a variant, rejecting values that are not string literals.
//  2. Build checks the shape of the declaration for the requested Mode and
//     assembles the EnumSpec consumed by code generation.
//
// All problems of a declaration are reported together as *Error values joined
// with errors.Join; use errors.Is with the Err* sentinels to test for a kind.
package enumspec
