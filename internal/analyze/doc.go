// Package analyze provides package loading and enum discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to find the enum-shaped declarations of the loaded packages.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: a named type, its Shape and its raw declaration
//   - TypeGraph: every named type of the loaded packages
//
// Two shapes are recognized. A const enum is a named integer or string type
// together with the package-level constants of that type. A sum enum is a
// sealed interface (one with an unexported method) together with the named
// types of the same package implementing it.
//
// Directives attached to constants and variant types become attributes:
//
//	const (
//		//enum:string="Fire"
//		//enum:alias="Flame"
//		Fire Type = iota
//	)
package analyze
