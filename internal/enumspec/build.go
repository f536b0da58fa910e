package enumspec

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"stringenum-generator/stringenum"
)

// Build parses the attributes of every variant of decl and validates the
// declaration for opts.Mode.
//
// Labeled mode requires at least one variant, unit variants only and a
// canonical string on every variant. Custom mode only requires at least one
// variant. In labeled mode a string claimed by two variants is an error
// unless opts.AllowShadowing is set, in which case it is recorded in
// EnumSpec.Shadowed.
func Build(decl *RawDecl, opts Options) (*EnumSpec, error) {
	if decl.Kind != DeclEnum {
		return nil, &Error{Kind: KindNotAnEnum, Enum: decl.Name, Pos: decl.Pos, Detail: decl.KindDetail}
	}

	if len(decl.Variants) == 0 {
		return nil, &Error{Kind: KindEmptyEnum, Enum: decl.Name, Pos: decl.Pos}
	}

	spec := &EnumSpec{
		Name:     decl.Name,
		Mode:     opts.Mode,
		Case:     opts.Case,
		Pos:      decl.Pos,
		Variants: make([]VariantSpec, 0, len(decl.Variants)),
	}

	var errs []error

	for i := range decl.Variants {
		v := &decl.Variants[i]

		attrs, err := ParseAttributes(decl, v)
		if err != nil {
			errs = append(errs, err)
		}

		vs := VariantSpec{
			Name:         v.Name,
			Canonical:    attrs.Canonical,
			HasCanonical: attrs.HasCanonical,
			Aliases:      attrs.Aliases,
			Unit:         len(v.Fields) == 0,
		}

		if opts.Mode == ModeLabeled {
			if !vs.Unit {
				errs = append(errs, &Error{
					Kind:    KindNonUnitVariant,
					Enum:    decl.Name,
					Variant: v.Name,
					Pos:     decl.Pos,
					Detail:  fmt.Sprintf("fields: %v", v.Fields),
				})
			}

			if !vs.HasCanonical && !malformedString(err) {
				errs = append(errs, &Error{
					Kind:    KindMissingCanonicalString,
					Enum:    decl.Name,
					Variant: v.Name,
					Pos:     decl.Pos,
				})
			}
		}

		spec.Variants = append(spec.Variants, vs)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if opts.Mode == ModeLabeled {
		collisions := FindCollisions(spec.Variants, opts.Case)
		if !opts.AllowShadowing {
			for _, c := range collisions {
				errs = append(errs, &Error{
					Kind:    KindDuplicateString,
					Enum:    decl.Name,
					Variant: c.Shadowed,
					Pos:     decl.Pos,
					Detail:  fmt.Sprintf("%q is already matched by %s", c.Value, c.First),
				})
			}

			if len(errs) > 0 {
				return nil, errors.Join(errs...)
			}
		}

		spec.Shadowed = collisions
	}

	return spec, nil
}

// malformedString reports whether err already covers a bad "string"
// attribute, in which case a missing canonical string is not reported twice.
func malformedString(err error) bool {
	for _, e := range Errors(err) {
		if e.Kind == KindMalformedAttribute && e.Attribute == AttrString {
			return true
		}
	}

	return false
}

// FindCollisions returns every canonical or alias string that an earlier
// variant already claims, walking variants in declaration order and each
// variant's canonical string before its aliases. Under CaseInsensitive the
// comparison is done on folded strings. A variant repeating its own string is
// not a collision.
func FindCollisions(variants []VariantSpec, policy stringenum.CaseSensitivity) []Collision {
	owner := make(map[string]string)

	var out []Collision

	claim := func(s, variant string) {
		key := s
		if policy == stringenum.CaseInsensitive {
			key = cases.Fold().String(s)
		}

		first, taken := owner[key]
		if !taken {
			owner[key] = variant
			return
		}

		if first != variant {
			out = append(out, Collision{Value: s, First: first, Shadowed: variant})
		}
	}

	for _, v := range variants {
		if v.HasCanonical {
			claim(v.Canonical, v.Name)
		}

		for _, alias := range v.Aliases {
			claim(alias, v.Name)
		}
	}

	return out
}
