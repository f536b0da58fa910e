package match

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeCompatibility_String(t *testing.T) {
	tests := []struct {
		compat   TypeCompatibility
		expected string
	}{
		{TypeIdentical, "identical"},
		{TypeAssignable, "assignable"},
		{TypeConvertible, "convertible"},
		{TypeIncompatible, "incompatible"},
		{TypeCompatibility(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.compat.String(); got != tt.expected {
				t.Errorf("TypeCompatibility.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// namedType declares pkg.name with the given underlying type.
func namedType(pkg *types.Package, name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, underlying, nil)
}

func TestScoreTypeCompatibility(t *testing.T) {
	pkg := types.NewPackage("example.com/pokemon", "pokemon")
	enum := namedType(pkg, "Type", types.Typ[types.Int])
	anyType := types.Universe.Lookup("any").Type()

	tests := []struct {
		name     string
		source   types.Type
		target   types.Type
		expected TypeCompatibility
	}{
		{"identical named", enum, enum, TypeIdentical},
		{"named to any", enum, anyType, TypeAssignable},
		{"named to its underlying", enum, types.Typ[types.Int], TypeConvertible},
		{"string to named int", types.Typ[types.String], enum, TypeIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreTypeCompatibility(tt.source, tt.target).Compatibility)
		})
	}
}

func TestScoreSignature(t *testing.T) {
	pkg := types.NewPackage("example.com/pokemon", "pokemon")
	enum := namedType(pkg, "Type", types.Typ[types.Int])
	str := types.Typ[types.String]
	errType := types.Universe.Lookup("error").Type()

	sig := func(params, results []types.Type, variadic bool) types.Type {
		if variadic {
			params[len(params)-1] = types.NewSlice(params[len(params)-1])
		}

		return types.NewSignatureType(nil, nil, nil, tuple(params), tuple(results), variadic)
	}

	want := []types.Type{enum, errType}

	tests := []struct {
		name     string
		fn       types.Type
		expected TypeCompatibility
		reason   string
	}{
		{
			name:     "parse func",
			fn:       sig([]types.Type{str}, []types.Type{enum, errType}, false),
			expected: TypeIdentical,
			reason:   "signatures are identical",
		},
		{
			name:     "returns the underlying type",
			fn:       sig([]types.Type{str}, []types.Type{types.Typ[types.Int], errType}, false),
			expected: TypeConvertible,
			reason:   "result 0 is int, want example.com/pokemon.Type (convertible)",
		},
		{
			name:     "takes bytes",
			fn:       sig([]types.Type{types.NewSlice(types.Universe.Lookup("byte").Type())}, []types.Type{enum, errType}, false),
			expected: TypeConvertible,
			reason:   "parameter 0 is []byte, want string (convertible)",
		},
		{
			name:     "missing error",
			fn:       sig([]types.Type{str}, []types.Type{enum}, false),
			expected: TypeIncompatible,
			reason:   "returns 1 results, want 2",
		},
		{
			name:     "variadic",
			fn:       sig([]types.Type{str}, []types.Type{enum, errType}, true),
			expected: TypeIncompatible,
			reason:   "function is variadic",
		},
		{
			name:     "not a function",
			fn:       enum,
			expected: TypeIncompatible,
			reason:   "not a function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ScoreSignature(tt.fn, []types.Type{str}, want)
			assert.Equal(t, tt.expected, res.Compatibility)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestBaseKinds(t *testing.T) {
	pkg := types.NewPackage("example.com/pokemon", "pokemon")

	assert.True(t, IsIntegerType(namedType(pkg, "Type", types.Typ[types.Uint8])))
	assert.False(t, IsIntegerType(types.Typ[types.Float64]))
	assert.True(t, IsStringType(namedType(pkg, "Color", types.Typ[types.String])))
	assert.False(t, IsStringType(types.NewStruct(nil, nil)))
}
