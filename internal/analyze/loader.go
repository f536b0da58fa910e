package analyze

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"stringenum-generator/internal/diagnostic"
	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/match"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// GeneratedHeader is the first line of every file written by the generator.
const GeneratedHeader = "// Code generated by stringenum-generator. DO NOT EDIT."

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string

	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/pokemon").
//
// Files previously written by the generator are hidden from the type
// checker, so a stale generated file never decides what the enum looks like.
// Type errors are tolerated and recorded as info diagnostics, since code
// calling generated methods does not type check while those are hidden.
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	overlay, err := a.generatedOverlay(patterns)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.Dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				a.graph.Diagnostics.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticInfo,
					Code:     "type_error",
					Message:  e.Msg,
					Pos:      e.Pos,
				})

				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	paths := make([]string, 0, len(pkgs))

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		paths = append(paths, pkg.PkgPath)
	}

	if len(patterns) == 1 {
		a.graph.Patterns[patterns[0]] = paths
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// generatedOverlay replaces every file starting with GeneratedHeader by an
// empty file of the same package.
func (a *Analyzer) generatedOverlay(patterns []string) (map[string][]byte, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	overlay := make(map[string][]byte)

	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			content, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", file, err)
			}

			if bytes.HasPrefix(content, []byte(GeneratedHeader)) {
				overlay[file] = []byte(GeneratedHeader + "\n\npackage " + pkg.Name + "\n")
			}
		}
	}

	return overlay, nil
}

// typeSpec remembers where a named type was declared.
type typeSpec struct {
	info *TypeInfo
	docs []*ast.CommentGroup
	pos  token.Pos
}

// processPackage extracts enum declarations from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return fmt.Errorf("no type information")
	}

	pkgInfo := &PackageInfo{
		Path:      pkg.PkgPath,
		Name:      pkg.Name,
		Idents:    pkg.Types.Scope().Names(),
		GoPackage: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	files := slices.Clone(pkg.Syntax)
	slices.SortFunc(files, func(x, y *ast.File) int {
		return strings.Compare(pkg.Fset.File(x.Pos()).Name(), pkg.Fset.File(y.Pos()).Name())
	})

	specs := a.collectTypes(pkg, files, pkgInfo)
	a.collectConstants(pkg, files)
	a.collectSumVariants(pkg, specs)
	a.collectMethods(pkg, specs)

	if _, seen := a.graph.Packages[pkg.PkgPath]; !seen {
		a.graph.Order = append(a.graph.Order, pkg.PkgPath)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// collectTypes records every named type of the package in declaration order
// and decides its shape.
func (a *Analyzer) collectTypes(pkg *packages.Package, files []*ast.File, pkgInfo *PackageInfo) []typeSpec {
	var specs []typeSpec

	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok || obj == nil {
					continue
				}

				id := TypeID{PkgPath: pkg.PkgPath, Name: obj.Name()}
				info := &TypeInfo{
					ID:     id,
					GoType: obj.Type(),
					Decl: &enumspec.RawDecl{
						Name: obj.Name(),
						Pos:  pkg.Fset.Position(ts.Name.Pos()).String(),
					},
				}

				info.Shape, info.Decl.KindDetail = shapeOf(obj)
				if info.Shape != ShapeOther {
					info.Decl.Kind = enumspec.DeclEnum
					info.Decl.KindDetail = ""
				}

				a.graph.Types[id] = info
				pkgInfo.Types = append(pkgInfo.Types, id)

				specs = append(specs, typeSpec{
					info: info,
					docs: []*ast.CommentGroup{docOf(gd, ts.Doc), ts.Comment},
					pos:  ts.Name.Pos(),
				})
			}
		}
	}

	return specs
}

// shapeOf classifies a named type. For ShapeOther the detail says what the
// type is instead.
func shapeOf(obj *types.TypeName) (Shape, string) {
	if obj.IsAlias() {
		return ShapeOther, "type alias"
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return ShapeOther, obj.Type().String()
	}

	if named.TypeParams().Len() > 0 {
		return ShapeOther, "generic type"
	}

	switch u := named.Underlying().(type) {
	case *types.Basic:
		if match.IsIntegerType(u) || match.IsStringType(u) {
			return ShapeConst, ""
		}

		return ShapeOther, u.Name()
	case *types.Interface:
		if sealed(u) {
			return ShapeSum, ""
		}

		return ShapeOther, "interface without unexported methods"
	case *types.Struct:
		return ShapeOther, "struct"
	case *types.Signature:
		return ShapeOther, "func"
	case *types.Map:
		return ShapeOther, "map"
	case *types.Slice:
		return ShapeOther, "slice"
	case *types.Array:
		return ShapeOther, "array"
	case *types.Pointer:
		return ShapeOther, "pointer"
	case *types.Chan:
		return ShapeOther, "chan"
	default:
		return ShapeOther, u.String()
	}
}

// sealed reports whether iface has an unexported method, which keeps other
// packages from adding variants.
func sealed(iface *types.Interface) bool {
	for i := range iface.NumMethods() {
		if !iface.Method(i).Exported() {
			return true
		}
	}

	return false
}

// docOf returns the doc comment of a spec, falling back to the declaration's
// doc for unparenthesized declarations.
func docOf(gd *ast.GenDecl, specDoc *ast.CommentGroup) *ast.CommentGroup {
	if specDoc != nil {
		return specDoc
	}

	if gd.Lparen == token.NoPos {
		return gd.Doc
	}

	return nil
}

// collectConstants attaches package-level constants to their const enum.
func (a *Analyzer) collectConstants(pkg *packages.Package, files []*ast.File) {
	// seen maps enum and constant value to the variant that declared it.
	seen := make(map[TypeID]map[string]string)

	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs := spec.(*ast.ValueSpec)
				groups := []*ast.CommentGroup{docOf(gd, vs.Doc), vs.Comment}

				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}

					c, ok := pkg.TypesInfo.Defs[name].(*types.Const)
					if !ok || c == nil {
						continue
					}

					owner := a.constEnum(pkg, c.Type())
					if owner == nil {
						continue
					}

					pos := pkg.Fset.Position(name.Pos()).String()
					attrs := parseDirectives(pkg.Fset, groups...)
					a.checkDirectiveNames(owner.ID.Name, name.Name, attrs)

					values := seen[owner.ID]
					if values == nil {
						values = make(map[string]string)
						seen[owner.ID] = values
					}

					key := c.Val().ExactString()
					if first, dup := values[key]; dup {
						severity := diagnostic.DiagnosticInfo
						if len(attrs) > 0 {
							severity = diagnostic.DiagnosticWarning
						}

						a.graph.Diagnostics.Add(diagnostic.Diagnostic{
							Severity: severity,
							Code:     diagnostic.CodeDuplicateValue,
							Message:  fmt.Sprintf("skipped: same value as %s (%s), so it is not a separate variant", first, key),
							Enum:     owner.ID.Name,
							Variant:  name.Name,
							Pos:      pos,
						})

						continue
					}

					values[key] = name.Name
					owner.Decl.Variants = append(owner.Decl.Variants, enumspec.RawVariant{
						Name:  name.Name,
						Attrs: attrs,
						Pos:   pos,
					})
				}
			}
		}
	}
}

// constEnum returns the const enum of pkg whose type is t.
func (a *Analyzer) constEnum(pkg *packages.Package, t types.Type) *TypeInfo {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() != pkg.Types {
		return nil
	}

	info := a.graph.Types[TypeID{PkgPath: pkg.PkgPath, Name: named.Obj().Name()}]
	if info == nil || info.Shape != ShapeConst {
		return nil
	}

	return info
}

// collectSumVariants attaches implementing types to every sealed interface.
func (a *Analyzer) collectSumVariants(pkg *packages.Package, specs []typeSpec) {
	qualifier := types.RelativeTo(pkg.Types)

	for _, sum := range specs {
		if sum.info.Shape != ShapeSum {
			continue
		}

		iface := sum.info.GoType.Underlying().(*types.Interface)

		for _, cand := range specs {
			named, ok := cand.info.GoType.(*types.Named)
			if !ok || cand.info == sum.info || types.IsInterface(named) {
				continue
			}

			// Holders embedding the interface implement it by promotion.
			if !types.Implements(named, iface) || embeds(named, sum.info.GoType) {
				continue
			}

			attrs := parseDirectives(pkg.Fset, cand.docs...)
			a.checkDirectiveNames(sum.info.ID.Name, cand.info.ID.Name, attrs)

			sum.info.Decl.Variants = append(sum.info.Decl.Variants, enumspec.RawVariant{
				Name:   cand.info.ID.Name,
				Fields: fieldsOf(named, qualifier),
				Attrs:  attrs,
				Pos:    pkg.Fset.Position(cand.pos).String(),
			})
		}
	}
}

// embeds reports whether named is a struct with an embedded field of type t.
func embeds(named *types.Named, t types.Type) bool {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for i := range st.NumFields() {
		if f := st.Field(i); f.Embedded() && types.Identical(f.Type(), t) {
			return true
		}
	}

	return false
}

// fieldsOf describes the associated data of a sum variant. Empty structs
// carry none.
func fieldsOf(named *types.Named, qualifier types.Qualifier) []string {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return []string{types.TypeString(named.Underlying(), qualifier)}
	}

	fields := make([]string, 0, st.NumFields())
	for i := range st.NumFields() {
		f := st.Field(i)
		typ := types.TypeString(f.Type(), qualifier)

		if f.Embedded() {
			fields = append(fields, typ)
		} else {
			fields = append(fields, f.Name()+" "+typ)
		}
	}

	return fields
}

// collectMethods records the custom-mode prerequisites of every enum.
func (a *Analyzer) collectMethods(pkg *packages.Package, specs []typeSpec) {
	scope := pkg.Types.Scope()
	str := types.Typ[types.String]
	errType := types.Universe.Lookup("error").Type()

	for _, spec := range specs {
		info := spec.info
		if info.Shape == ShapeOther {
			continue
		}

		mset := types.NewMethodSet(info.GoType)
		if sel := mset.Lookup(pkg.Types, "String"); sel != nil {
			res := match.ScoreSignature(sel.Obj().Type(), nil, []types.Type{str})
			info.HasString = res.Compatibility == match.TypeIdentical
		}

		for _, name := range scope.Names() {
			fn, ok := scope.Lookup(name).(*types.Func)
			if !ok {
				continue
			}

			res := match.ScoreSignature(fn.Type(), []types.Type{str}, []types.Type{info.GoType, errType})
			if res.Compatibility == match.TypeIdentical {
				info.ParseFuncs = append(info.ParseFuncs, name)
			}
		}
	}
}

// checkDirectiveNames warns about directives whose name is close to a known
// one.
func (a *Analyzer) checkDirectiveNames(enum, variant string, attrs []enumspec.Attribute) {
	for _, attr := range attrs {
		if slices.Contains(enumspec.KnownAttributes, attr.Name) {
			continue
		}

		d := diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     diagnostic.CodeUnknownDirective,
			Message:  fmt.Sprintf("unknown directive %s%s is ignored", DirectivePrefix, attr.Name),
			Enum:     enum,
			Variant:  variant,
			Pos:      attr.Pos,
		}

		if s, ok := match.Suggest(attr.Name, enumspec.KnownAttributes); ok {
			d.Suggestions = []string{DirectivePrefix + s}
		}

		a.graph.Diagnostics.Add(d)
	}
}
