// Package gen provides deterministic Go code generation for string enum
// codecs.
//
// Generation approach uses text/template + go/format; every resolved enum
// becomes one <type>_stringenum.go file in its package.
//
// Codegen patterns:
//   - Labeled codec table built with stringenum.MustLabeled
//   - Custom codec wrapping String and a parse func
//   - String and Parse<T> for labeled enums
//   - Holder struct for sealed interfaces, which cannot carry methods
//   - Text, JSON and YAML adapters delegating to the runtime package
package gen
