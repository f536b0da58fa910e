package enumspec

import (
	"errors"
	"fmt"
)

// Recognized attribute names.
const (
	AttrString = "string"
	AttrAlias  = "alias"
)

// KnownAttributes lists the attribute names ParseAttributes understands.
var KnownAttributes = []string{AttrString, AttrAlias}

// ParseAttributes extracts the canonical string and aliases of variant v of
// decl. Attributes with other names are ignored. Every malformed attribute is
// reported; the returned VariantAttrs holds whatever was well-formed.
func ParseAttributes(decl *RawDecl, v *RawVariant) (VariantAttrs, error) {
	var (
		out  VariantAttrs
		errs []error
	)

	for _, attr := range v.Attrs {
		if attr.Name != AttrString && attr.Name != AttrAlias {
			continue
		}

		s, err := stringValue(decl, v, attr)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		switch attr.Name {
		case AttrString:
			if out.HasCanonical {
				errs = append(errs, &Error{
					Kind:      KindMalformedAttribute,
					Enum:      decl.Name,
					Variant:   v.Name,
					Attribute: attr.Name,
					Pos:       decl.Pos,
					Detail:    "declared more than once",
				})

				continue
			}

			out.Canonical = s
			out.HasCanonical = true
		case AttrAlias:
			out.Aliases = append(out.Aliases, s)
		}
	}

	return out, errors.Join(errs...)
}

func stringValue(decl *RawDecl, v *RawVariant, attr Attribute) (string, error) {
	malformed := func(detail string) error {
		return &Error{
			Kind:      KindMalformedAttribute,
			Enum:      decl.Name,
			Variant:   v.Name,
			Attribute: attr.Name,
			Pos:       decl.Pos,
			Detail:    detail,
		}
	}

	if attr.Value == nil {
		return "", malformed("no value")
	}

	if attr.Value.Kind != LiteralString {
		return "", malformed(fmt.Sprintf("got %s %s", attr.Value.Kind, attr.Value.Text))
	}

	return attr.Value.Text, nil
}
