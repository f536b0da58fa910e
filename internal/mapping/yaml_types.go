package mapping

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"stringenum-generator/internal/enumspec"
)

// --- EnumEntry YAML methods ---

// UnmarshalYAML decodes an entry and remembers its line.
func (e *EnumEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain EnumEntry

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = EnumEntry(p)
	e.Line = node.Line

	return nil
}

// --- Labels YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Labels.
// Accepts a mapping from variant name to either:
//   - a scalar: the canonical string, `Water: Water`
//   - a mapping of attributes: `Fire: {string: Fire, alias: [Flame]}`
//
// Other shapes are kept with Invalid set so Validate can report them with
// the rest of the file's problems.
func (l *Labels) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: labels must be a mapping from variant to attributes", node.Line)
	}

	out := make(Labels, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		label := Label{Variant: key.Value, Line: key.Line, Column: key.Column}

		switch value.Kind {
		case yaml.ScalarNode:
			label.Attrs = []enumspec.Attribute{attribute(enumspec.AttrString, value)}
		case yaml.MappingNode:
			label.Attrs = attributes(value)
		default:
			label.Invalid = fmt.Sprintf("expected a string or a mapping of attributes, got %s", kindName(value))
		}

		out = append(out, label)
	}

	*l = out

	return nil
}

// attributes converts an attribute mapping. Sequences expand into one
// attribute per element, so `alias: [a, b]` yields two alias attributes.
func attributes(node *yaml.Node) []enumspec.Attribute {
	var attrs []enumspec.Attribute

	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i].Value, node.Content[i+1]

		if value.Kind == yaml.SequenceNode {
			for _, item := range value.Content {
				attrs = append(attrs, attribute(name, item))
			}

			continue
		}

		attrs = append(attrs, attribute(name, value))
	}

	return attrs
}

func attribute(name string, value *yaml.Node) enumspec.Attribute {
	return enumspec.Attribute{
		Name:  name,
		Value: literal(value),
		Pos:   strconv.Itoa(value.Line) + ":" + strconv.Itoa(value.Column),
	}
}

// literal maps a YAML node to a directive literal using its resolved tag.
// Null carries no value.
func literal(node *yaml.Node) *enumspec.Literal {
	if node.Kind != yaml.ScalarNode {
		return &enumspec.Literal{Kind: enumspec.LiteralOther, Text: kindName(node)}
	}

	switch node.ShortTag() {
	case "!!str":
		return &enumspec.Literal{Kind: enumspec.LiteralString, Text: node.Value}
	case "!!int":
		return &enumspec.Literal{Kind: enumspec.LiteralInt, Text: node.Value}
	case "!!float":
		return &enumspec.Literal{Kind: enumspec.LiteralFloat, Text: node.Value}
	case "!!bool":
		return &enumspec.Literal{Kind: enumspec.LiteralBool, Text: node.Value}
	case "!!null":
		return nil
	default:
		return &enumspec.Literal{Kind: enumspec.LiteralOther, Text: node.Value}
	}
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "node"
	}
}

// MarshalYAML implements custom YAML marshaling for Labels.
// Variants with only a canonical string use the scalar shorthand.
func (l Labels) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, label := range l {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: label.Variant}

		if len(label.Attrs) == 1 && label.Attrs[0].Name == enumspec.AttrString {
			node.Content = append(node.Content, key, scalar(label.Attrs[0].Value))
			continue
		}

		value := &yaml.Node{Kind: yaml.MappingNode}
		aliases := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

		for _, attr := range label.Attrs {
			if attr.Name == enumspec.AttrAlias {
				aliases.Content = append(aliases.Content, scalar(attr.Value))
				continue
			}

			value.Content = append(value.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Name},
				scalar(attr.Value))
		}

		if len(aliases.Content) > 0 {
			value.Content = append(value.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: enumspec.AttrAlias},
				aliases)
		}

		node.Content = append(node.Content, key, value)
	}

	return node, nil
}

func scalar(lit *enumspec.Literal) *yaml.Node {
	if lit == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	tag := "!!str"

	switch lit.Kind {
	case enumspec.LiteralInt:
		tag = "!!int"
	case enumspec.LiteralFloat:
		tag = "!!float"
	case enumspec.LiteralBool:
		tag = "!!bool"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: lit.Text}
}
