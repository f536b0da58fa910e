package enumspec

import (
	"errors"
	"strings"

	"stringenum-generator/internal/common"
)

// Kind categorizes generation-time errors.
type Kind int

const (
	KindNotAnEnum Kind = iota + 1
	KindEmptyEnum
	KindNonUnitVariant
	KindMissingCanonicalString
	KindMalformedAttribute
	KindDuplicateString
)

// String returns the diagnostic code of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotAnEnum:
		return "not_an_enum"
	case KindEmptyEnum:
		return "empty_enum"
	case KindNonUnitVariant:
		return "non_unit_variant"
	case KindMissingCanonicalString:
		return "missing_canonical_string"
	case KindMalformedAttribute:
		return "malformed_attribute"
	case KindDuplicateString:
		return "duplicate_string"
	default:
		return common.UnknownStr
	}
}

// Sentinels for errors.Is.
var (
	ErrNotAnEnum              = errors.New("not an enum")
	ErrEmptyEnum              = errors.New("empty enum")
	ErrNonUnitVariant         = errors.New("non-unit variant")
	ErrMissingCanonicalString = errors.New("missing canonical string")
	ErrMalformedAttribute     = errors.New("malformed attribute")
	ErrDuplicateString        = errors.New("duplicate string")
)

// Error is a generation-time error. It aborts code generation for the
// declaration it belongs to.
type Error struct {
	Kind      Kind
	Enum      string
	Variant   string
	Attribute string
	// Pos is the declaration site of the enum.
	Pos    string
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder

	if e.Pos != "" {
		b.WriteString(e.Pos)
		b.WriteString(": ")
	}

	b.WriteString(e.Enum)

	if e.Variant != "" {
		b.WriteByte('.')
		b.WriteString(e.Variant)
	}

	b.WriteString(": ")
	b.WriteString(e.Message())

	return b.String()
}

// Message returns the error without its position and enum prefix.
func (e *Error) Message() string {
	var b strings.Builder

	switch e.Kind {
	case KindNotAnEnum:
		b.WriteString("input must be an enum")
	case KindEmptyEnum:
		b.WriteString("enum must have at least one variant")
	case KindNonUnitVariant:
		b.WriteString("all variants must be a unit variant")
	case KindMissingCanonicalString:
		b.WriteString(`all variants must have "string" attribute`)
	case KindMalformedAttribute:
		b.WriteString(`"` + e.Attribute + `" attribute must be a string literal`)
	case KindDuplicateString:
		b.WriteString("string already used by another variant")
	default:
		b.WriteString(e.Kind.String())
	}

	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteByte(')')
	}

	return b.String()
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNotAnEnum:
		return target == ErrNotAnEnum
	case KindEmptyEnum:
		return target == ErrEmptyEnum
	case KindNonUnitVariant:
		return target == ErrNonUnitVariant
	case KindMissingCanonicalString:
		return target == ErrMissingCanonicalString
	case KindMalformedAttribute:
		return target == ErrMalformedAttribute
	case KindDuplicateString:
		return target == ErrDuplicateString
	default:
		return false
	}
}

// Errors flattens err into the *Error values it contains, in order.
func Errors(err error) []*Error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*Error
		for _, e := range joined.Unwrap() {
			out = append(out, Errors(e)...)
		}

		return out
	}

	var e *Error
	if errors.As(err, &e) {
		return []*Error{e}
	}

	return nil
}
