package stringenum

import "gopkg.in/yaml.v3"

// CaseSensitivity selects how Parse compares strings.
type CaseSensitivity int

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// Tier selects how much work a DecodeError message may do.
type Tier int

const (
	// TierFull formats "invalid {Enum}: {input}" with fmt.
	TierFull Tier = iota
	// TierRestricted builds the same message with plain concatenation.
	TierRestricted
	// TierNone always reports the fixed literal "invalid value".
	TierNone
)

var _CaseSensitivityCodec = MustLabeled("CaseSensitivity", []Variant[CaseSensitivity]{
	V(CaseSensitive, "sensitive"),
	V(CaseInsensitive, "insensitive", "ci"),
}, WithCase(CaseInsensitive))

var _TierCodec = MustLabeled("Tier", []Variant[Tier]{
	V(TierFull, "full", "std"),
	V(TierRestricted, "restricted", "alloc"),
	V(TierNone, "none", "core"),
}, WithCase(CaseInsensitive))

// String returns the canonical name of c.
func (c CaseSensitivity) String() string { return _CaseSensitivityCodec.Render(c) }

// ParseCaseSensitivity parses "sensitive" or "insensitive" (alias "ci").
func ParseCaseSensitivity(s string) (CaseSensitivity, error) {
	return _CaseSensitivityCodec.Parse(s)
}

// MarshalText implements encoding.TextMarshaler.
func (c CaseSensitivity) MarshalText() ([]byte, error) {
	return MarshalText[CaseSensitivity](_CaseSensitivityCodec, c)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CaseSensitivity) UnmarshalText(text []byte) error {
	return UnmarshalText[CaseSensitivity](_CaseSensitivityCodec, text, c)
}

// MarshalYAML implements yaml.Marshaler.
func (c CaseSensitivity) MarshalYAML() (any, error) {
	return MarshalYAML[CaseSensitivity](_CaseSensitivityCodec, c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CaseSensitivity) UnmarshalYAML(node *yaml.Node) error {
	return UnmarshalYAML[CaseSensitivity](_CaseSensitivityCodec, node, c)
}

// String returns the canonical name of t.
func (t Tier) String() string { return _TierCodec.Render(t) }

// ParseTier parses "full", "restricted" or "none". The names of the build
// profiles they correspond to ("std", "alloc", "core") are accepted as aliases.
func ParseTier(s string) (Tier, error) {
	return _TierCodec.Parse(s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return MarshalText[Tier](_TierCodec, t)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	return UnmarshalText[Tier](_TierCodec, text, t)
}

// MarshalYAML implements yaml.Marshaler.
func (t Tier) MarshalYAML() (any, error) {
	return MarshalYAML[Tier](_TierCodec, t)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tier) UnmarshalYAML(node *yaml.Node) error {
	return UnmarshalYAML[Tier](_TierCodec, node, t)
}
