package stringenum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"stringenum-generator/stringenum"
)

func TestLabeled_RoundTrip(t *testing.T) {
	for _, v := range pokeTypeCodec.Values() {
		got, err := pokeTypeCodec.Parse(pokeTypeCodec.Render(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestLabeled_Render(t *testing.T) {
	assert.Equal(t, "Grass", grass.String())
	assert.Equal(t, "Fire", fire.String())
	assert.Equal(t, "Water", water.String())

	// Aliases are never produced.
	assert.Equal(t, "Fire", pokeTypeCodec.Render(fire))

	assert.Equal(t, "Type(42)", pokeType(42).String())
}

func TestLabeled_Values(t *testing.T) {
	assert.Equal(t, []pokeType{grass, fire, water}, pokeTypeCodec.Values())
	assert.True(t, pokeTypeCodec.IsValid(water))
	assert.False(t, pokeTypeCodec.IsValid(pokeType(7)))

	s, ok := pokeTypeCodec.Lookup(fire)
	assert.True(t, ok)
	assert.Equal(t, "Fire", s)
}

func TestLabeled_Alias(t *testing.T) {
	got, err := pokeTypeCodec.Parse("Flame")
	require.NoError(t, err)
	assert.Equal(t, fire, got)
}

func TestLabeled_CasePolicy(t *testing.T) {
	sensitive := stringenum.MustLabeled("Type", []stringenum.Variant[pokeType]{
		stringenum.V(grass, "Grass"),
		stringenum.V(fire, "Fire", "Flame"),
		stringenum.V(water, "Water"),
	})

	tests := []struct {
		input string
		want  pokeType
	}{
		{"grass", grass},
		{"FIRE", fire},
		{"wAtEr", water},
		{"fLaMe", fire},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := pokeTypeCodec.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, err = sensitive.Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, stringenum.ErrInvalidValue)
		})
	}

	got, err := sensitive.Parse("Water")
	require.NoError(t, err)
	assert.Equal(t, water, got)
}

func TestLabeled_CaseFoldingIsFullUnicode(t *testing.T) {
	type street int

	codec := stringenum.MustLabeled("Street", []stringenum.Variant[street]{
		stringenum.V(street(1), "Straße"),
	}, stringenum.WithCase(stringenum.CaseInsensitive))

	got, err := codec.Parse("STRASSE")
	require.NoError(t, err)
	assert.Equal(t, street(1), got)

	// The stored spelling is untouched.
	assert.Equal(t, "Straße", codec.Render(street(1)))
}

func TestLabeled_UnknownInput(t *testing.T) {
	variants := []stringenum.Variant[pokeType]{
		stringenum.V(grass, "Grass"),
		stringenum.V(fire, "Fire"),
	}

	tests := []struct {
		name string
		tier stringenum.Tier
		want string
	}{
		{"full", stringenum.TierFull, "invalid Type: __not_a_known_value__"},
		{"restricted", stringenum.TierRestricted, "invalid Type: __not_a_known_value__"},
		{"none", stringenum.TierNone, "invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := stringenum.MustLabeled("Type", variants, stringenum.WithTier(tt.tier))

			_, err := codec.Parse("__not_a_known_value__")
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, stringenum.ErrInvalidValue)

			var decodeErr *stringenum.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, "Type", decodeErr.Enum)
			assert.Equal(t, "__not_a_known_value__", decodeErr.Input)
			assert.Equal(t, tt.tier, decodeErr.Tier)
		})
	}
}

func TestLabeled_DeclarationOrderPrecedence(t *testing.T) {
	type letter int

	const (
		a letter = iota + 1
		b
	)

	t.Run("canonical before alias of a later variant", func(t *testing.T) {
		codec := stringenum.MustLabeled("Letter", []stringenum.Variant[letter]{
			stringenum.V(a, "x"),
			stringenum.V(b, "y", "x"),
		})

		got, err := codec.Parse("x")
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})

	t.Run("earlier variant wins even through an alias", func(t *testing.T) {
		codec := stringenum.MustLabeled("Letter", []stringenum.Variant[letter]{
			stringenum.V(a, "a", "b"),
			stringenum.V(b, "b"),
		})

		got, err := codec.Parse("b")
		require.NoError(t, err)
		assert.Equal(t, a, got)

		// Rendering is unaffected by the shadowing.
		assert.Equal(t, "b", codec.Render(b))
	})

	t.Run("folded collision under insensitive policy", func(t *testing.T) {
		codec := stringenum.MustLabeled("Letter", []stringenum.Variant[letter]{
			stringenum.V(a, "Up"),
			stringenum.V(b, "UP"),
		}, stringenum.WithCase(stringenum.CaseInsensitive))

		got, err := codec.Parse("UP")
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})
}

func TestNewLabeled_Errors(t *testing.T) {
	_, err := stringenum.NewLabeled("", []stringenum.Variant[pokeType]{stringenum.V(grass, "Grass")})
	require.Error(t, err)

	_, err = stringenum.NewLabeled[pokeType]("Type", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variants")

	_, err = stringenum.NewLabeled("Type", []stringenum.Variant[pokeType]{
		stringenum.V(grass, "Grass"),
		stringenum.V(grass, "Leaf"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares 0 more than once")

	assert.Panics(t, func() {
		stringenum.MustLabeled[pokeType]("Type", nil)
	})
}

func TestLabeled_InterfaceValues(t *testing.T) {
	type shape interface{}

	type circle struct{}

	type square struct{}

	codec := stringenum.MustLabeled("Shape", []stringenum.Variant[shape]{
		stringenum.V[shape](circle{}, "circle"),
		stringenum.V[shape](square{}, "square", "box"),
	})

	got, err := codec.Parse("box")
	require.NoError(t, err)
	assert.Equal(t, square{}, got)
	assert.Equal(t, "circle", codec.Render(circle{}))
	assert.Equal(t, "Shape(<nil>)", codec.Render(nil))
}

func TestPolicyParsers(t *testing.T) {
	c, err := stringenum.ParseCaseSensitivity("CI")
	require.NoError(t, err)
	assert.Equal(t, stringenum.CaseInsensitive, c)
	assert.Equal(t, "insensitive", c.String())

	tier, err := stringenum.ParseTier("alloc")
	require.NoError(t, err)
	assert.Equal(t, stringenum.TierRestricted, tier)
	assert.Equal(t, "restricted", tier.String())

	_, err = stringenum.ParseTier("nostd")
	assert.EqualError(t, err, "invalid Tier: nostd")
}

func TestPolicyEncoding(t *testing.T) {
	text, err := stringenum.TierNone.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "none", string(text))

	var c stringenum.CaseSensitivity
	require.NoError(t, c.UnmarshalText([]byte("Insensitive")))
	assert.Equal(t, stringenum.CaseInsensitive, c)

	var opts struct {
		Case stringenum.CaseSensitivity `yaml:"case"`
		Tier stringenum.Tier            `yaml:"tier"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("case: ci\ntier: core\n"), &opts))
	assert.Equal(t, stringenum.CaseInsensitive, opts.Case)
	assert.Equal(t, stringenum.TierNone, opts.Tier)

	out, err := yaml.Marshal(opts)
	require.NoError(t, err)
	assert.Equal(t, "case: insensitive\ntier: none\n", string(out))

	assert.ErrorIs(t, yaml.Unmarshal([]byte("tier: 3\n"), &opts), stringenum.ErrInvalidType)
}
