package stringenum

// Visitor is the deserialization contract the adapters drive: it accepts a
// string token and describes what it expected for diagnostics.
type Visitor[T any] interface {
	VisitString(s string) (T, error)
	Expecting() string
}

type stringVisitor[T any] struct {
	codec Codec[T]
}

// NewVisitor returns a Visitor that parses string tokens with codec.
func NewVisitor[T any](codec Codec[T]) Visitor[T] {
	return stringVisitor[T]{codec: codec}
}

func (v stringVisitor[T]) VisitString(s string) (T, error) {
	out, err := v.codec.Parse(s)
	if err != nil {
		var zero T
		return zero, &InvalidValueError{Value: s, Expecting: v.Expecting(), Err: err}
	}

	return out, nil
}

func (v stringVisitor[T]) Expecting() string {
	return Expecting(v.codec.Name())
}

// Expecting returns the "expecting" description used in adapter errors.
func Expecting(enum string) string {
	return "a valid " + enum + " string value"
}
