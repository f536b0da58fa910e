package stringenum_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringenum-generator/stringenum"
)

func TestCustom_RenderAndParse(t *testing.T) {
	assert.Equal(t, "Move", moveCodec.Name())
	assert.Equal(t, "F10", moveCodec.Render(forward(10)))
	assert.Equal(t, "S", moveCodec.Render(stay))

	got, err := moveCodec.Parse("F10")
	require.NoError(t, err)
	assert.Equal(t, forward(10), got)
}

func TestCustom_JSON(t *testing.T) {
	data, err := json.Marshal(forward(10))
	require.NoError(t, err)
	assert.JSONEq(t, `"F10"`, string(data))

	var moves []move
	require.NoError(t, json.Unmarshal([]byte(`["S","F2","S","L4"]`), &moves))
	assert.Equal(t, []move{stay, forward(2), stay, left(4)}, moves)

	data, err = json.Marshal(moves)
	require.NoError(t, err)
	assert.JSONEq(t, `["S","F2","S","L4"]`, string(data))
}

func TestCustom_ParseErrorBecomesInvalidValue(t *testing.T) {
	var m move

	err := json.Unmarshal([]byte(`"X1"`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, stringenum.ErrInvalidValue)
	assert.EqualError(t, err, `invalid value: string "X1", expected a valid Move string value`)

	var invalid *stringenum.InvalidValueError
	require.True(t, errors.As(err, &invalid))
	require.Error(t, invalid.Err)
	assert.Equal(t, "invalid move X1", invalid.Err.Error())
}

func TestCustom_RejectsNonStrings(t *testing.T) {
	var m move

	err := m.UnmarshalJSON([]byte(`12`))
	assert.ErrorIs(t, err, stringenum.ErrInvalidType)
}

func TestNewCustom_NilFuncs(t *testing.T) {
	assert.Panics(t, func() {
		stringenum.NewCustom[move]("Move", nil, parseMove)
	})
}

func TestCustom_NilInterfaceIsRefused(t *testing.T) {
	codec := stringenum.NewCustom[fmt.Stringer]("Shape", fmt.Stringer.String,
		func(string) (fmt.Stringer, error) { return nil, errors.New("no shapes") })

	var unknown *stringenum.UnknownVariantError

	_, err := stringenum.MarshalJSON[fmt.Stringer](codec, nil)
	require.ErrorAs(t, err, &unknown)
	assert.EqualError(t, err, "Shape: <nil> is not a declared variant")

	_, err = stringenum.MarshalText[fmt.Stringer](codec, nil)
	require.ErrorAs(t, err, &unknown)

	_, err = stringenum.MarshalYAML[fmt.Stringer](codec, nil)
	require.ErrorAs(t, err, &unknown)
}
