package plan

import (
	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/mapping"
)

// Declarations returns a declaration file requesting the enums of p with
// the settings they resolved to. Labeled enums carry every variant's
// strings as labels, so the file no longer depends on source directives.
func (p *Plan) Declarations(output string) *mapping.File {
	f := &mapping.File{
		Version: mapping.SchemaVersion,
		Output:  output,
		Enums:   make([]mapping.EnumEntry, 0, len(p.Enums)),
	}

	for i := range p.Enums {
		f.Enums = append(f.Enums, entry(&p.Enums[i]))
	}

	return f
}

func entry(e *ResolvedEnum) mapping.EnumEntry {
	out := mapping.EnumEntry{
		Type:           e.Spec.Name,
		Package:        e.Package.Path,
		Mode:           e.Spec.Mode,
		Case:           e.Spec.Case,
		Tier:           e.Tier,
		AllowShadowing: len(e.Spec.Shadowed) > 0,
	}

	if e.ParseFunc != mapping.DefaultParseFunc(e.Spec.Name) {
		out.ParseFunc = e.ParseFunc
	}

	if e.Spec.Mode != enumspec.ModeLabeled {
		return out
	}

	for _, v := range e.Spec.Variants {
		label := mapping.Label{
			Variant: v.Name,
			Attrs:   []enumspec.Attribute{{Name: enumspec.AttrString, Value: stringLit(v.Canonical)}},
		}

		for _, alias := range v.Aliases {
			label.Attrs = append(label.Attrs, enumspec.Attribute{Name: enumspec.AttrAlias, Value: stringLit(alias)})
		}

		out.Labels = append(out.Labels, label)
	}

	return out
}

func stringLit(s string) *enumspec.Literal {
	return &enumspec.Literal{Kind: enumspec.LiteralString, Text: s}
}
