package stringenum

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// These helpers back the Marshal/Unmarshal methods emitted by the generator.
// Serializers emit the rendered string; deserializers accept only string
// tokens and hand them to a Visitor.

// MarshalText renders v as text.
func MarshalText[T any](c Codec[T], v T) ([]byte, error) {
	s, err := render(c, v)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// UnmarshalText parses text into dst.
func UnmarshalText[T any](c Codec[T], text []byte, dst *T) error {
	v, err := NewVisitor(c).VisitString(string(text))
	if err != nil {
		return err
	}

	*dst = v

	return nil
}

// MarshalJSON renders v as a JSON string.
func MarshalJSON[T any](c Codec[T], v T) ([]byte, error) {
	s, err := render(c, v)
	if err != nil {
		return nil, err
	}

	return json.Marshal(s)
}

// UnmarshalJSON decodes a JSON string into dst. Any other JSON value,
// null included, is a type mismatch.
func UnmarshalJSON[T any](c Codec[T], data []byte, dst *T) error {
	vis := NewVisitor(c)

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return &TypeMismatchError{Got: jsonShape(data), Expecting: vis.Expecting()}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := vis.VisitString(s)
	if err != nil {
		return err
	}

	*dst = v

	return nil
}

// MarshalYAML renders v for gopkg.in/yaml.v3.
func MarshalYAML[T any](c Codec[T], v T) (any, error) {
	return render(c, v)
}

// UnmarshalYAML decodes a string scalar into dst. Scalars resolving to other
// tags (!!int, !!bool, ...) and collections are type mismatches.
func UnmarshalYAML[T any](c Codec[T], node *yaml.Node, dst *T) error {
	vis := NewVisitor(c)

	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return &TypeMismatchError{Got: yamlShape(node), Expecting: vis.Expecting()}
	}

	v, err := vis.VisitString(node.Value)
	if err != nil {
		return err
	}

	*dst = v

	return nil
}

// render refuses values a labeled codec does not declare, so undeclared
// integers never reach the wire. A nil sum value is refused for every codec
// since a custom render func would be called on a nil interface.
func render[T any](c Codec[T], v T) (string, error) {
	if any(v) == nil {
		return "", &UnknownVariantError{Enum: c.Name(), Value: describe(v)}
	}

	if l, ok := c.(interface{ Lookup(v T) (string, bool) }); ok {
		s, declared := l.Lookup(v)
		if !declared {
			return "", &UnknownVariantError{Enum: c.Name(), Value: describe(v)}
		}

		return s, nil
	}

	return c.Render(v), nil
}

func jsonShape(data []byte) string {
	if len(data) == 0 {
		return "empty input"
	}

	switch data[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return "number"
	}
}

func yamlShape(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "document"
	case yaml.ScalarNode:
		switch tag := node.ShortTag(); tag {
		case "!!int":
			return "integer"
		case "!!float":
			return "float"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		default:
			return strings.TrimPrefix(tag, "!!")
		}
	default:
		return "unknown node"
	}
}
