package enumspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *Literal { return &Literal{Kind: LiteralString, Text: s} }

func TestParseAttributes(t *testing.T) {
	decl := &RawDecl{Name: "Type", Kind: DeclEnum, Pos: "types.go:10:6"}

	tests := []struct {
		name      string
		attrs     []Attribute
		want      VariantAttrs
		wantErrs  int
		errDetail string
	}{
		{
			name:  "canonical only",
			attrs: []Attribute{{Name: AttrString, Value: str("Fire")}},
			want:  VariantAttrs{Canonical: "Fire", HasCanonical: true},
		},
		{
			name: "canonical and aliases keep order",
			attrs: []Attribute{
				{Name: AttrAlias, Value: str("Flame")},
				{Name: AttrString, Value: str("Fire")},
				{Name: AttrAlias, Value: str("Blaze")},
			},
			want: VariantAttrs{Canonical: "Fire", HasCanonical: true, Aliases: []string{"Flame", "Blaze"}},
		},
		{
			name:  "empty canonical is allowed",
			attrs: []Attribute{{Name: AttrString, Value: str("")}},
			want:  VariantAttrs{Canonical: "", HasCanonical: true},
		},
		{
			name: "unknown attributes are ignored",
			attrs: []Attribute{
				{Name: "deprecated"},
				{Name: AttrString, Value: str("Fire")},
			},
			want: VariantAttrs{Canonical: "Fire", HasCanonical: true},
		},
		{
			name:      "integer value",
			attrs:     []Attribute{{Name: AttrString, Value: &Literal{Kind: LiteralInt, Text: "42"}}},
			wantErrs:  1,
			errDetail: "got integer literal 42",
		},
		{
			name:      "missing value",
			attrs:     []Attribute{{Name: AttrAlias}},
			wantErrs:  1,
			errDetail: "no value",
		},
		{
			name: "string declared twice",
			attrs: []Attribute{
				{Name: AttrString, Value: str("Fire")},
				{Name: AttrString, Value: str("Flame")},
			},
			want:      VariantAttrs{Canonical: "Fire", HasCanonical: true},
			wantErrs:  1,
			errDetail: "declared more than once",
		},
		{
			name: "every malformed attribute is reported",
			attrs: []Attribute{
				{Name: AttrString, Value: &Literal{Kind: LiteralIdent, Text: "fire"}},
				{Name: AttrAlias, Value: &Literal{Kind: LiteralBool, Text: "true"}},
				{Name: AttrAlias, Value: str("Flame")},
			},
			want:     VariantAttrs{Aliases: []string{"Flame"}},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &RawVariant{Name: "Fire", Attrs: tt.attrs}

			got, err := ParseAttributes(decl, v)
			if tt.wantErrs == 0 {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				errs := Errors(err)
				require.Len(t, errs, tt.wantErrs)

				for _, e := range errs {
					assert.Equal(t, KindMalformedAttribute, e.Kind)
					assert.Equal(t, "Type", e.Enum)
					assert.Equal(t, "Fire", e.Variant)
					assert.Equal(t, "types.go:10:6", e.Pos)
					assert.ErrorIs(t, e, ErrMalformedAttribute)
				}

				if tt.errDetail != "" {
					assert.Equal(t, tt.errDetail, errs[0].Detail)
				}
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttributes_Message(t *testing.T) {
	decl := &RawDecl{Name: "Type", Kind: DeclEnum, Pos: "types.go:10:6"}
	v := &RawVariant{
		Name:  "Grass",
		Attrs: []Attribute{{Name: AttrAlias, Value: &Literal{Kind: LiteralFloat, Text: "1.5"}}},
	}

	_, err := ParseAttributes(decl, v)
	require.Error(t, err)
	assert.Equal(t,
		`types.go:10:6: Type.Grass: "alias" attribute must be a string literal (got float literal 1.5)`,
		err.Error())
	assert.True(t, errors.Is(err, ErrMalformedAttribute))
}
