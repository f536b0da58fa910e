package stringenum

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/text/cases"
)

// Codec converts enum values of type T to and from their string form.
type Codec[T any] interface {
	// Name is the enum's name as used in error messages.
	Name() string
	Render(v T) string
	Parse(s string) (T, error)
}

// Variant declares one enum value with its canonical string and aliases.
type Variant[T any] struct {
	Value     T
	Canonical string
	Aliases   []string
}

// V is shorthand for building a Variant.
func V[T any](value T, canonical string, aliases ...string) Variant[T] {
	return Variant[T]{Value: value, Canonical: canonical, Aliases: aliases}
}

type config struct {
	caseSensitivity CaseSensitivity
	tier            Tier
}

// Option configures a labeled codec.
type Option func(*config)

// WithCase selects the case policy used by Parse. The default is CaseSensitive.
func WithCase(c CaseSensitivity) Option {
	return func(cfg *config) {
		cfg.caseSensitivity = c
	}
}

// WithTier selects the error message tier. The default is TierFull.
func WithTier(t Tier) Option {
	return func(cfg *config) {
		cfg.tier = t
	}
}

// Labeled is a codec driven by declared canonical strings and aliases.
type Labeled[T comparable] struct {
	name   string
	fold   bool
	tier   Tier
	values []T
	render map[T]string
	// lookup maps every (folded) candidate string to the first variant that
	// declared it, filled in declaration order with canonical strings before
	// aliases.
	lookup map[string]T
}

// NewLabeled builds a labeled codec. Variants are matched in the order given.
// The same value may not be declared twice; the same string may, in which
// case the first declaration wins.
func NewLabeled[T comparable](name string, variants []Variant[T], opts ...Option) (*Labeled[T], error) {
	cfg := config{caseSensitivity: CaseSensitive, tier: TierFull}
	for _, opt := range opts {
		opt(&cfg)
	}

	if name == "" {
		return nil, errors.New("stringenum: enum name is empty")
	}

	if len(variants) == 0 {
		return nil, fmt.Errorf("stringenum: %s has no variants", name)
	}

	c := &Labeled[T]{
		name:   name,
		fold:   cfg.caseSensitivity == CaseInsensitive,
		tier:   cfg.tier,
		values: make([]T, 0, len(variants)),
		render: make(map[T]string, len(variants)),
		lookup: make(map[string]T, len(variants)),
	}

	for _, v := range variants {
		if _, dup := c.render[v.Value]; dup {
			return nil, fmt.Errorf("stringenum: %s declares %s more than once", name, describe(v.Value))
		}

		c.values = append(c.values, v.Value)
		c.render[v.Value] = v.Canonical

		c.add(v.Canonical, v.Value)

		for _, alias := range v.Aliases {
			c.add(alias, v.Value)
		}
	}

	return c, nil
}

// MustLabeled is like NewLabeled but panics on error. It is meant for
// package-level variables in generated code.
func MustLabeled[T comparable](name string, variants []Variant[T], opts ...Option) *Labeled[T] {
	c, err := NewLabeled(name, variants, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Labeled[T]) add(s string, v T) {
	key := c.key(s)
	if _, taken := c.lookup[key]; taken {
		return
	}

	c.lookup[key] = v
}

// key applies the case policy. A new Caser is built per call because casers
// carry state and must not be shared between goroutines.
func (c *Labeled[T]) key(s string) string {
	if !c.fold {
		return s
	}

	return cases.Fold().String(s)
}

// Name returns the enum name.
func (c *Labeled[T]) Name() string {
	return c.name
}

// Render returns the canonical string of v. Undeclared values render as
// "Name(value)".
func (c *Labeled[T]) Render(v T) string {
	if s, ok := c.render[v]; ok {
		return s
	}

	return c.name + "(" + describe(v) + ")"
}

// Lookup returns the canonical string of v and whether v is declared.
func (c *Labeled[T]) Lookup(v T) (string, bool) {
	s, ok := c.render[v]
	return s, ok
}

// Parse returns the variant whose canonical string or alias matches s.
func (c *Labeled[T]) Parse(s string) (T, error) {
	if v, ok := c.lookup[c.key(s)]; ok {
		return v, nil
	}

	var zero T

	return zero, &DecodeError{Enum: c.name, Input: s, Tier: c.tier}
}

// Values returns the declared values in declaration order.
func (c *Labeled[T]) Values() []T {
	return slices.Clone(c.values)
}

// IsValid reports whether v is a declared value.
func (c *Labeled[T]) IsValid(v T) bool {
	_, ok := c.render[v]
	return ok
}

// Custom is a codec built from caller-supplied render and parse functions.
type Custom[T any] struct {
	name   string
	render func(T) string
	parse  func(string) (T, error)
}

// NewCustom wraps render and parse. Both must be non-nil.
func NewCustom[T any](name string, render func(T) string, parse func(string) (T, error)) *Custom[T] {
	if render == nil || parse == nil {
		panic("stringenum: custom codec " + name + " needs both render and parse functions")
	}

	return &Custom[T]{name: name, render: render, parse: parse}
}

// Name returns the enum name.
func (c *Custom[T]) Name() string {
	return c.name
}

// Render calls the caller's render function.
func (c *Custom[T]) Render(v T) string {
	return c.render(v)
}

// Parse calls the caller's parse function and returns its error unchanged.
func (c *Custom[T]) Parse(s string) (T, error) {
	return c.parse(s)
}

// describe formats v without calling any String method on it, since generated
// String methods delegate back into the codec.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return strconv.Quote(rv.String())
	default:
		return rv.Type().String()
	}
}
