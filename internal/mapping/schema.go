package mapping

import (
	"stringenum-generator/internal/enumspec"
	"stringenum-generator/stringenum"
)

// SchemaVersion is the only version this package reads.
const SchemaVersion = "1"

// File represents the root of a YAML declaration file.
type File struct {
	// Version of the schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Output is a directory all generated files are written to. Empty means
	// each enum's package directory.
	Output string `yaml:"output,omitempty"`

	// Enums lists the enums to generate.
	Enums []EnumEntry `yaml:"enums"`

	// Path is where the file was loaded from, if anywhere.
	Path string `yaml:"-"`
}

// EnumEntry declares one enum to generate.
type EnumEntry struct {
	// Type is the enum's type name.
	Type string `yaml:"type"`

	// Package is a package pattern. Empty means the packages given on the
	// command line.
	Package string `yaml:"package,omitempty"`

	Mode enumspec.Mode              `yaml:"mode,omitempty"`
	Case stringenum.CaseSensitivity `yaml:"case,omitempty"`
	Tier stringenum.Tier            `yaml:"tier,omitempty"`

	// AllowShadowing turns duplicate strings into warnings.
	AllowShadowing bool `yaml:"allow_shadowing,omitempty"`

	// ParseFunc names the custom-mode parse func. Defaults to Parse<Type>.
	ParseFunc string `yaml:"parse_func,omitempty"`

	// Labels replace the directives of the listed variants.
	Labels Labels `yaml:"labels,omitempty"`

	// Line is the entry's line in the file.
	Line int `yaml:"-"`
}

// Labels is an ordered list of per-variant attributes.
type Labels []Label

// Label holds the attributes declared for one variant.
type Label struct {
	Variant string
	Attrs   []enumspec.Attribute
	// Invalid is set when the entry had a shape that cannot hold attributes.
	Invalid string
	Line    int
	Column  int
}

// Variants returns the labeled variant names in file order.
func (l Labels) Variants() []string {
	names := make([]string, 0, len(l))
	for _, label := range l {
		names = append(names, label.Variant)
	}

	return names
}

// Get returns the label of variant.
func (l Labels) Get(variant string) (*Label, bool) {
	for i := range l {
		if l[i].Variant == variant {
			return &l[i], true
		}
	}

	return nil, false
}
