package plan

import (
	"stringenum-generator/internal/analyze"
	"stringenum-generator/internal/diagnostic"
	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/mapping"
	"stringenum-generator/stringenum"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Enums lists the declarations that resolved cleanly, in request order.
	Enums []ResolvedEnum
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Request asks for a codec for one enum type.
type Request struct {
	// Type is the enum's type name.
	Type string
	// Package is an import path or a pattern loaded on its own. Empty means
	// the packages given on the command line.
	Package string
	Options enumspec.Options
	Tier    stringenum.Tier
	// ParseFunc names the custom-mode parse func. Empty means Parse<Type>.
	ParseFunc string
	// Labels replace the directives of the listed variants.
	Labels mapping.Labels
	// Origin says where the request came from, for diagnostics.
	Origin string
	// File is the YAML file the labels were read from, if any.
	File string
}

// ResolvedEnum is an enum ready for code generation.
type ResolvedEnum struct {
	Spec    *enumspec.EnumSpec
	Shape   analyze.Shape
	Package *analyze.PackageInfo
	Tier    stringenum.Tier
	// ParseFunc is set in custom mode only.
	ParseFunc string
	// OutputDir is where the generated file goes.
	OutputDir string
	Origin    string
}

// ID returns the type the enum was resolved from.
func (e *ResolvedEnum) ID() analyze.TypeID {
	return analyze.TypeID{PkgPath: e.Package.Path, Name: e.Spec.Name}
}

// IsSum reports whether the enum is a sealed interface.
func (e *ResolvedEnum) IsSum() bool {
	return e.Shape == analyze.ShapeSum
}
