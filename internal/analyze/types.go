package analyze

import (
	"go/types"
	"slices"

	"stringenum-generator/internal/diagnostic"
	"stringenum-generator/internal/enumspec"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "stringenum-generator/examples/pokemon"
	Name    string // e.g., "Type"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Shape tells how an enum is expressed in Go.
type Shape int

const (
	ShapeOther Shape = iota // not enum-shaped
	ShapeConst              // named basic type plus typed constants
	ShapeSum                // sealed interface plus implementing types
)

// TypeInfo describes a named type of a loaded package.
type TypeInfo struct {
	ID    TypeID
	Shape Shape
	// Decl is the raw declaration handed to enumspec.Build.
	Decl *enumspec.RawDecl
	// GoType is the named type itself.
	GoType types.Type
	// HasString is set when the type has a hand-written String() string
	// method usable as a method expression.
	HasString bool
	// ParseFuncs lists package-level funcs of shape func(string) (T, error).
	ParseFuncs []string
}

// HasParseFunc reports whether name is one of the type's parse funcs.
func (t *TypeInfo) HasParseFunc(name string) bool {
	return slices.Contains(t.ParseFuncs, name)
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package, in declaration order
	// Idents is every package-level identifier outside generated files, used
	// to detect clashes with generated names.
	Idents []string
	// GoPackage is the type-checked package.
	GoPackage *types.Package
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Order lists package paths in load order.
	Order []string
	// Patterns maps each pattern loaded on its own to the packages it matched.
	Patterns map[string][]string
	// Diagnostics collects warnings about directives and skipped constants.
	Diagnostics diagnostic.Diagnostics
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
		Patterns: make(map[string][]string),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Find returns every loaded type called name, in package load order.
func (g *TypeGraph) Find(name string) []*TypeInfo {
	var out []*TypeInfo

	for _, path := range g.Order {
		if t := g.Types[TypeID{PkgPath: path, Name: name}]; t != nil {
			out = append(out, t)
		}
	}

	return out
}

// Lookup returns the types called name in the packages matched by pkg, which
// is either an import path or a pattern loaded on its own. An empty pkg
// searches every package.
func (g *TypeGraph) Lookup(pkg, name string) []*TypeInfo {
	if pkg == "" {
		return g.Find(name)
	}

	paths, ok := g.Patterns[pkg]
	if !ok {
		paths = []string{pkg}
	}

	var out []*TypeInfo

	for _, path := range paths {
		if t := g.Types[TypeID{PkgPath: path, Name: name}]; t != nil {
			out = append(out, t)
		}
	}

	return out
}

// TypeNames returns the names of every loaded type, for suggestions.
func (g *TypeGraph) TypeNames() []string {
	var names []string

	for _, path := range g.Order {
		for _, id := range g.Packages[path].Types {
			if !slices.Contains(names, id.Name) {
				names = append(names, id.Name)
			}
		}
	}

	return names
}
