package analyze

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"stringenum-generator/internal/enumspec"
)

// DirectivePrefix starts every enum directive comment.
const DirectivePrefix = "//enum:"

// parseDirectives returns the enum directives found in groups, in source
// order. Nil groups are skipped.
func parseDirectives(fset *token.FileSet, groups ...*ast.CommentGroup) []enumspec.Attribute {
	var attrs []enumspec.Attribute

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
			if !ok {
				continue
			}

			name, value := splitDirective(rest)
			attrs = append(attrs, enumspec.Attribute{
				Name:  name,
				Value: value,
				Pos:   fset.Position(c.Slash).String(),
			})
		}
	}

	return attrs
}

// splitDirective splits `name=value`. A directive without "=" or with an
// empty value carries no value.
func splitDirective(s string) (string, *enumspec.Literal) {
	name, value, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if !found || value == "" {
		return name, nil
	}

	return name, classifyLiteral(value)
}

// classifyLiteral parses src as a Go expression and reports which kind of
// literal it is. String literals are unquoted.
func classifyLiteral(src string) *enumspec.Literal {
	other := &enumspec.Literal{Kind: enumspec.LiteralOther, Text: src}

	expr, err := parser.ParseExpr(src)
	if err != nil {
		return other
	}

	switch e := expr.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.STRING:
			s, err := strconv.Unquote(e.Value)
			if err != nil {
				return other
			}

			return &enumspec.Literal{Kind: enumspec.LiteralString, Text: s}
		case token.INT:
			return &enumspec.Literal{Kind: enumspec.LiteralInt, Text: e.Value}
		case token.FLOAT, token.IMAG:
			return &enumspec.Literal{Kind: enumspec.LiteralFloat, Text: e.Value}
		case token.CHAR:
			return &enumspec.Literal{Kind: enumspec.LiteralChar, Text: e.Value}
		}
	case *ast.Ident:
		if e.Name == "true" || e.Name == "false" {
			return &enumspec.Literal{Kind: enumspec.LiteralBool, Text: e.Name}
		}

		return &enumspec.Literal{Kind: enumspec.LiteralIdent, Text: e.Name}
	}

	return other
}
