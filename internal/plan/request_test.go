package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/mapping"
	"stringenum-generator/stringenum"
)

func TestRequestsFromFlags(t *testing.T) {
	opts := FlagOptions{
		Mode:           enumspec.ModeCustom,
		Case:           stringenum.CaseInsensitive,
		Tier:           stringenum.TierNone,
		AllowShadowing: true,
		ParseFunc:      "FromString",
	}

	reqs := RequestsFromFlags([]string{"Type, Region", "", "Move,"}, opts)
	require.Len(t, reqs, 3)

	var names []string
	for _, r := range reqs {
		names = append(names, r.Type)

		assert.Empty(t, r.Package)
		assert.Equal(t, enumspec.ModeCustom, r.Options.Mode)
		assert.Equal(t, stringenum.CaseInsensitive, r.Options.Case)
		assert.True(t, r.Options.AllowShadowing)
		assert.Equal(t, stringenum.TierNone, r.Tier)
		assert.Equal(t, "FromString", r.ParseFunc)
	}

	assert.Equal(t, []string{"Type", "Region", "Move"}, names)
	assert.Equal(t, "--type=Region", reqs[1].Origin)

	assert.Empty(t, RequestsFromFlags(nil, opts))
}

func TestRequestsFromFile(t *testing.T) {
	f, err := mapping.Parse([]byte(`
enums:
  - type: Type
    package: ./examples/pokemon
    case: insensitive
  - type: Move
    mode: custom
    parse_func: ReadMove
    tier: none
    labels:
      Stay: S
`))
	require.NoError(t, err)

	reqs := RequestsFromFile(f)
	require.Len(t, reqs, 2)

	assert.Equal(t, "Type", reqs[0].Type)
	assert.Equal(t, "./examples/pokemon", reqs[0].Package)
	assert.Equal(t, stringenum.CaseInsensitive, reqs[0].Options.Case)
	assert.Equal(t, "line 3", reqs[0].Origin)

	assert.Equal(t, enumspec.ModeCustom, reqs[1].Options.Mode)
	assert.Equal(t, "ReadMove", reqs[1].ParseFunc)
	assert.Equal(t, stringenum.TierNone, reqs[1].Tier)
	assert.Equal(t, []string{"Stay"}, reqs[1].Labels.Variants())

	f.Path = "stringenum.yaml"
	assert.Equal(t, "stringenum.yaml:6", RequestsFromFile(f)[1].Origin)
	assert.Equal(t, "stringenum.yaml", RequestsFromFile(f)[1].File)

	assert.Nil(t, RequestsFromFile(nil))
}
