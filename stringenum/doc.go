// Package stringenum provides the runtime half of stringenum-generator:
// table-driven codecs that map enum values to strings and back, and the
// adapters that plug them into encoding, encoding/json and gopkg.in/yaml.v3.
//
// Generated code builds one codec per enum at package initialization and
// delegates every String, Parse and Marshal/Unmarshal method to it.
//
// Two codec flavors exist:
//   - Labeled: every variant declares one canonical string and zero or more
//     aliases. Rendering always produces the canonical string. Parsing tests
//     variants in declaration order, canonical string first, then aliases.
//   - Custom: the caller supplies the render and parse functions; the codec
//     only adapts them to the serialization adapters.
//
// # Case policy
//
// Under CaseInsensitive, both the input and every candidate string are
// compared after full Unicode case folding. Stored strings are never
// modified, so rendering still returns the canonical spelling.
//
// # Error tiers
//
// Parse failures return a *DecodeError whose message depends on the Tier
// chosen when the codec was built:
//
//	TierFull        "invalid Type: water"   (fmt formatting)
//	TierRestricted  "invalid Type: water"   (plain concatenation)
//	TierNone        "invalid value"         (fixed literal)
//
// # Wire shapes
//
// Decoders accept string tokens only. JSON null is a type mismatch like any
// other non-string value: UnmarshalJSON returns a *TypeMismatchError instead
// of leaving the destination untouched, which differs from the usual
// encoding/json convention. Use a pointer field (*T) to make a value
// optional; encoding/json sets a nil pointer for null without calling
// UnmarshalJSON. In YAML only !!str scalars are accepted.
//
// Encoders refuse values the codec cannot render: undeclared values of a
// labeled codec and nil sum values of any codec fail with a
// *UnknownVariantError.
//
// # Concurrency
//
// Codecs are immutable after construction and safe for concurrent use.
package stringenum
