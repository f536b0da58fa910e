package stringenum

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is matched by every *DecodeError and *InvalidValueError.
var ErrInvalidValue = errors.New("invalid value")

// ErrInvalidType is matched by every *TypeMismatchError.
var ErrInvalidType = errors.New("invalid type")

// DecodeError is returned by Labeled.Parse when no canonical string or alias
// matches the input.
type DecodeError struct {
	Enum  string
	Input string
	Tier  Tier
}

func (e *DecodeError) Error() string {
	switch e.Tier {
	case TierRestricted:
		return "invalid " + e.Enum + ": " + e.Input
	case TierNone:
		return "invalid value"
	default:
		return fmt.Sprintf("invalid %s: %s", e.Enum, e.Input)
	}
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidValue
}

// InvalidValueError is raised by a Visitor when a string token could not be
// parsed. Err holds whatever the codec's Parse returned.
type InvalidValueError struct {
	Value     string
	Expecting string
	Err       error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value: string %q, expected %s", e.Value, e.Expecting)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// TypeMismatchError is raised when the wire value is not a string.
// Got names the shape that was found ("number", "boolean", "null", ...).
type TypeMismatchError struct {
	Got       string
	Expecting string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, e.Expecting)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrInvalidType
}

// UnknownVariantError is returned by the serializer adapters for values that
// are not declared in a labeled codec.
type UnknownVariantError struct {
	Enum  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s: %s is not a declared variant", e.Enum, e.Value)
}
