package stringenum_test

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"stringenum-generator/stringenum"
)

// pokeType mirrors what the generator emits for a labeled const enum.
type pokeType int

const (
	grass pokeType = iota
	fire
	water
)

var pokeTypeCodec = stringenum.MustLabeled("Type", []stringenum.Variant[pokeType]{
	stringenum.V(grass, "Grass"),
	stringenum.V(fire, "Fire", "Flame"),
	stringenum.V(water, "Water"),
}, stringenum.WithCase(stringenum.CaseInsensitive))

func (v pokeType) String() string { return pokeTypeCodec.Render(v) }

func (v pokeType) MarshalText() ([]byte, error) {
	return stringenum.MarshalText[pokeType](pokeTypeCodec, v)
}

func (v *pokeType) UnmarshalText(text []byte) error {
	return stringenum.UnmarshalText[pokeType](pokeTypeCodec, text, v)
}

func (v pokeType) MarshalJSON() ([]byte, error) {
	return stringenum.MarshalJSON[pokeType](pokeTypeCodec, v)
}

func (v *pokeType) UnmarshalJSON(data []byte) error {
	return stringenum.UnmarshalJSON[pokeType](pokeTypeCodec, data, v)
}

func (v pokeType) MarshalYAML() (any, error) {
	return stringenum.MarshalYAML[pokeType](pokeTypeCodec, v)
}

func (v *pokeType) UnmarshalYAML(node *yaml.Node) error {
	return stringenum.UnmarshalYAML[pokeType](pokeTypeCodec, node, v)
}

// move is a data-carrying enum with caller-supplied string conversion:
// Stay renders as "S", Forward(n) as "F{n}" and Left(n) as "L{n}".
type move struct {
	op byte
	n  uint8
}

var (
	stay = move{op: 'S'}

	moveCodec = stringenum.NewCustom("Move", move.String, parseMove)
)

func forward(n uint8) move { return move{op: 'F', n: n} }

func left(n uint8) move { return move{op: 'L', n: n} }

func (m move) String() string {
	if m.op == 'S' {
		return "S"
	}

	return string(m.op) + strconv.Itoa(int(m.n))
}

func parseMove(s string) (move, error) {
	if s == "" {
		return move{}, errors.New("empty move")
	}

	switch s[0] {
	case 'S':
		if len(s) == 1 {
			return stay, nil
		}
	case 'F', 'L':
		n, err := strconv.ParseUint(s[1:], 10, 8)
		if err != nil {
			return move{}, err
		}

		return move{op: s[0], n: uint8(n)}, nil
	}

	return move{}, fmt.Errorf("invalid move %s", s)
}

func (m move) MarshalJSON() ([]byte, error) {
	return stringenum.MarshalJSON[move](moveCodec, m)
}

func (m *move) UnmarshalJSON(data []byte) error {
	return stringenum.UnmarshalJSON[move](moveCodec, data, m)
}
