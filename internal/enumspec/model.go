package enumspec

import (
	"stringenum-generator/internal/common"
	"stringenum-generator/stringenum"
)

//go:generate go run stringenum-generator/cmd/stringenum-generator gen --type=Mode --case=insensitive

// Mode selects how string conversion is produced.
type Mode int

const (
	// ModeLabeled derives rendering and parsing from declared strings.
	//enum:string="labeled"
	ModeLabeled Mode = iota
	// ModeCustom wraps caller-supplied String and Parse functions.
	//enum:string="custom"
	ModeCustom
)

// LiteralKind classifies how a directive value was written.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralChar
	LiteralBool
	LiteralIdent
	LiteralOther
)

// String returns a human-readable kind name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "string literal"
	case LiteralInt:
		return "integer literal"
	case LiteralFloat:
		return "float literal"
	case LiteralChar:
		return "character literal"
	case LiteralBool:
		return "boolean"
	case LiteralIdent:
		return "identifier"
	case LiteralOther:
		return "expression"
	default:
		return common.UnknownStr
	}
}

// Literal is a directive value. For LiteralString, Text holds the unquoted
// string; otherwise it holds the source text.
type Literal struct {
	Kind LiteralKind
	Text string
}

// Attribute is one annotation attached to a variant.
type Attribute struct {
	Name  string
	Value *Literal // nil when the annotation carried no value
	Pos   string
}

// DeclKind tells whether a declaration has enum shape at all.
type DeclKind int

const (
	DeclOther DeclKind = iota
	DeclEnum
)

// RawVariant is a variant as found in the source, before validation.
type RawVariant struct {
	Name   string
	Fields []string // associated data; empty for unit variants
	Attrs  []Attribute
	Pos    string
}

// RawDecl is a declaration as found in the source, before validation.
type RawDecl struct {
	Name string
	Kind DeclKind
	// KindDetail describes what a DeclOther actually is, e.g. "struct".
	KindDetail string
	Pos        string
	Variants   []RawVariant
}

// Variant returns the variant with the given name.
func (d *RawDecl) Variant(name string) (*RawVariant, bool) {
	for i := range d.Variants {
		if d.Variants[i].Name == name {
			return &d.Variants[i], true
		}
	}

	return nil, false
}

// VariantNames returns the variant names in declaration order.
func (d *RawDecl) VariantNames() []string {
	names := make([]string, 0, len(d.Variants))
	for _, v := range d.Variants {
		names = append(names, v.Name)
	}

	return names
}

// VariantAttrs is the result of attribute parsing for one variant.
type VariantAttrs struct {
	Canonical    string
	HasCanonical bool
	Aliases      []string
}

// VariantSpec is a validated variant.
type VariantSpec struct {
	Name         string
	Canonical    string
	HasCanonical bool
	Aliases      []string
	Unit         bool
}

// Collision records a string claimed by more than one variant. Declaration
// order decides the winner: First keeps the string, Shadowed never sees it.
type Collision struct {
	Value    string
	First    string
	Shadowed string
}

// EnumSpec is the validated model handed to code generation.
type EnumSpec struct {
	Name     string
	Mode     Mode
	Case     stringenum.CaseSensitivity
	Pos      string
	Variants []VariantSpec
	// Shadowed lists collisions that were allowed by Options.AllowShadowing.
	Shadowed []Collision
}

// Options controls Build.
type Options struct {
	Mode           Mode
	Case           stringenum.CaseSensitivity
	AllowShadowing bool
}
