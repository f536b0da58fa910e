package plan

import (
	"errors"
	"fmt"
	"go/types"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"stringenum-generator/internal/analyze"
	"stringenum-generator/internal/diagnostic"
	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/mapping"
	"stringenum-generator/internal/match"
)

// adapterMethods are generated for every enum.
var adapterMethods = []string{
	"MarshalText", "UnmarshalText",
	"MarshalJSON", "UnmarshalJSON",
	"MarshalYAML", "UnmarshalYAML",
}

// ResolutionConfig configures the resolution process.
type ResolutionConfig struct {
	// Packages are the import paths searched by requests without a package.
	// Empty means every loaded package.
	Packages []string
	// Output overrides the output directory of every enum.
	Output string
}

// Resolver resolves generation requests against a type graph.
type Resolver struct {
	graph    *analyze.TypeGraph
	requests []Request
	config   ResolutionConfig
}

// NewResolver creates a new resolver.
func NewResolver(graph *analyze.TypeGraph, requests []Request, config ResolutionConfig) *Resolver {
	return &Resolver{
		graph:    graph,
		requests: requests,
		config:   config,
	}
}

// Resolve executes the resolution pipeline and returns a plan.
//
// An error in one declaration aborts that declaration only: the plan still
// holds every enum that resolved, and the returned error lists the failures.
// A type requested twice is resolved by the first request.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.graph == nil {
		return nil, errors.New("type graph is required")
	}

	plan := &Plan{}
	first := make(map[analyze.TypeID]string)

	for i := range r.requests {
		req := &r.requests[i]

		infos := r.lookup(req)
		if len(infos) == 0 {
			r.reportUnknownType(req, &plan.Diagnostics)
			continue
		}

		for _, info := range infos {
			if origin, dup := first[info.ID]; dup {
				plan.Diagnostics.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticInfo,
					Code:     diagnostic.CodeDuplicateRequest,
					Message:  fmt.Sprintf("%s ignored, already requested by %s", req.Origin, origin),
					Enum:     info.ID.Name,
					Pos:      info.Decl.Pos,
				})

				continue
			}

			first[info.ID] = req.Origin

			if resolved := r.resolveEnum(req, info, &plan.Diagnostics); resolved != nil {
				plan.Enums = append(plan.Enums, *resolved)
			}
		}
	}

	if plan.Diagnostics.HasErrors() {
		return plan, fmt.Errorf("resolution failed: %w", plan.Diagnostics.Error())
	}

	return plan, nil
}

// lookup finds the declarations a request names.
func (r *Resolver) lookup(req *Request) []*analyze.TypeInfo {
	if req.Package != "" || len(r.config.Packages) == 0 {
		return r.graph.Lookup(req.Package, req.Type)
	}

	var out []*analyze.TypeInfo

	for _, path := range r.config.Packages {
		if t := r.graph.GetType(analyze.TypeID{PkgPath: path, Name: req.Type}); t != nil {
			out = append(out, t)
		}
	}

	return out
}

// maxTypeSuggestions caps the names offered for an unknown type.
const maxTypeSuggestions = 3

func (r *Resolver) reportUnknownType(req *Request, diags *diagnostic.Diagnostics) {
	where := "the loaded packages"
	if req.Package != "" {
		where = req.Package
	}

	d := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeUnknownType,
		Message:  fmt.Sprintf("type %s not found in %s (requested by %s)", req.Type, where, req.Origin),
		Enum:     req.Type,
	}

	if names := match.SuggestAll(req.Type, r.graph.TypeNames(), maxTypeSuggestions); len(names) > 0 {
		d.Suggestions = names
	}

	diags.Add(d)
}

// resolveEnum validates one declaration. It returns nil when the declaration
// cannot be generated; the reasons are added to diags.
func (r *Resolver) resolveEnum(req *Request, info *analyze.TypeInfo, diags *diagnostic.Diagnostics) *ResolvedEnum {
	log := Logger().With(zap.Stringer("type", info.ID), zap.String("origin", req.Origin))
	pkg := r.graph.Packages[info.ID.PkgPath]

	decl, ok := r.applyLabels(req, info.Decl, diags)
	if !ok {
		return nil
	}

	spec, err := enumspec.Build(decl, req.Options)
	if err != nil {
		for _, e := range enumspec.Errors(err) {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     e.Kind.String(),
				Message:  e.Message(),
				Enum:     e.Enum,
				Variant:  e.Variant,
				Pos:      e.Pos,
			})
		}

		log.Debug("declaration rejected", zap.Error(err))

		return nil
	}

	for _, c := range spec.Shadowed {
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     diagnostic.CodeShadowedString,
			Message:  fmt.Sprintf("%q is already matched by %s, so it never parses to this variant", c.Value, c.First),
			Enum:     spec.Name,
			Variant:  c.Shadowed,
			Pos:      spec.Pos,
		})
	}

	resolved := &ResolvedEnum{
		Spec:      spec,
		Shape:     info.Shape,
		Package:   pkg,
		Tier:      req.Tier,
		OutputDir: r.config.Output,
		Origin:    req.Origin,
	}

	if resolved.OutputDir == "" && pkg != nil {
		resolved.OutputDir = pkg.Dir
	}

	ok = true

	if spec.Mode == enumspec.ModeCustom {
		resolved.ParseFunc = req.ParseFunc
		if resolved.ParseFunc == "" {
			resolved.ParseFunc = mapping.DefaultParseFunc(spec.Name)
		}

		ok = checkCustom(info, pkg, resolved, diags)
	}

	if !checkNames(info, pkg, spec, diags) {
		ok = false
	}

	if !ok {
		return nil
	}

	log.Debug("enum resolved",
		zap.Stringer("shape", info.Shape),
		zap.Stringer("mode", spec.Mode),
		zap.Int("variants", len(spec.Variants)))

	return resolved
}

// applyLabels returns decl with the attributes of every labeled variant
// replaced. Labels naming no variant are errors.
func (r *Resolver) applyLabels(
	req *Request,
	decl *enumspec.RawDecl,
	diags *diagnostic.Diagnostics,
) (*enumspec.RawDecl, bool) {
	// Build reports non-enums; their variants are meaningless.
	if len(req.Labels) == 0 || decl.Kind != enumspec.DeclEnum {
		return decl, true
	}

	out := *decl
	out.Variants = slices.Clone(decl.Variants)
	ok := true

	for _, name := range req.Labels.Variants() {
		if _, found := decl.Variant(name); found {
			continue
		}

		label, _ := req.Labels.Get(name)
		d := diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeUnknownVariant,
			Message:  fmt.Sprintf("labels name %s, which is not a variant", name),
			Enum:     decl.Name,
			Variant:  name,
			Pos:      labelPos(req.File, *label),
		}

		if s, ok := match.Suggest(name, decl.VariantNames()); ok {
			d.Suggestions = []string{s}
		}

		diags.Add(d)

		ok = false
	}

	for i := range out.Variants {
		label, found := req.Labels.Get(out.Variants[i].Name)

		// Invalid labels are reported by mapping.Validate.
		if found && label.Invalid == "" {
			out.Variants[i].Attrs = label.Attrs
		}
	}

	return &out, ok
}

func labelPos(file string, label mapping.Label) string {
	if label.Line == 0 {
		return file
	}

	pos := strconv.Itoa(label.Line) + ":" + strconv.Itoa(label.Column)
	if file == "" {
		return pos
	}

	return file + ":" + pos
}

// checkCustom reports missing custom-mode prerequisites.
func checkCustom(
	info *analyze.TypeInfo,
	pkg *analyze.PackageInfo,
	resolved *ResolvedEnum,
	diags *diagnostic.Diagnostics,
) bool {
	ok := true
	name := info.ID.Name

	if !info.HasString {
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeMissingString,
			Message:  fmt.Sprintf("custom mode needs a method func (%s) String() string", name),
			Enum:     name,
			Pos:      info.Decl.Pos,
		})

		ok = false
	}

	parse := resolved.ParseFunc
	if info.HasParseFunc(parse) {
		return ok
	}

	d := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeMissingParseFunc,
		Message:  fmt.Sprintf("custom mode needs func %s(string) (%s, error)", parse, name),
		Enum:     name,
		Pos:      info.Decl.Pos,
	}

	if fn, isFunc := lookupFunc(pkg, parse); isFunc {
		res := match.ScoreSignature(fn.Type(),
			[]types.Type{types.Typ[types.String]},
			[]types.Type{info.GoType, types.Universe.Lookup("error").Type()})

		d.Code = diagnostic.CodeBadParseFunc
		d.Message = fmt.Sprintf("%s must be func(string) (%s, error): %s", parse, name, res.Reason)
	} else if s, found := match.Suggest(parse, info.ParseFuncs); found {
		d.Suggestions = []string{s}
	}

	diags.Add(d)

	return false
}

func lookupFunc(pkg *analyze.PackageInfo, name string) (*types.Func, bool) {
	if pkg == nil || pkg.GoPackage == nil {
		return nil, false
	}

	fn, ok := pkg.GoPackage.Scope().Lookup(name).(*types.Func)

	return fn, ok
}

// checkNames reports hand-written declarations that generated code would
// redeclare.
func checkNames(
	info *analyze.TypeInfo,
	pkg *analyze.PackageInfo,
	spec *enumspec.EnumSpec,
	diags *diagnostic.Diagnostics,
) bool {
	if pkg == nil {
		return true
	}

	name := spec.Name
	decls := []string{"_" + name + "Codec"}

	if spec.Mode == enumspec.ModeLabeled {
		decls = append(decls, "Parse"+name)
	}

	if info.Shape == analyze.ShapeSum {
		decls = append(decls, name+"Value")
	}

	var clashes []string

	for _, d := range decls {
		if slices.Contains(pkg.Idents, d) {
			clashes = append(clashes, d)
		}
	}

	// Const enums get their methods directly; sum enums get them on the
	// generated holder.
	if info.Shape == analyze.ShapeConst {
		methods := adapterMethods
		if spec.Mode == enumspec.ModeLabeled {
			methods = append([]string{"String"}, methods...)
		}

		mset := types.NewMethodSet(types.NewPointer(info.GoType))
		for _, m := range methods {
			if mset.Lookup(pkg.GoPackage, m) != nil {
				clashes = append(clashes, name+"."+m)
			}
		}
	}

	for _, c := range clashes {
		d := diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeConflictingMethod,
			Message:  c + " is already declared and would be generated again",
			Enum:     name,
			Pos:      info.Decl.Pos,
		}

		if c == name+".String" {
			d.Suggestions = []string{"mode: custom"}
		}

		diags.Add(d)
	}

	return len(clashes) == 0
}
