package match

import (
	"fmt"
	"go/types"
)

// TypeCompatibility represents the level of compatibility between two types.
type TypeCompatibility int

const (
	// TypeIncompatible means the types cannot be converted.
	TypeIncompatible TypeCompatibility = iota
	// TypeConvertible means types are convertible using Go's type conversion.
	TypeConvertible
	// TypeAssignable means the source type can be directly assigned to the target.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical    = "identical"
	VerdictAssignable   = "assignable"
	VerdictConvertible  = "convertible"
	VerdictIncompatible = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string // Human-readable explanation
	SourceType    string
	TargetType    string
}

// ScoreTypeCompatibility determines the compatibility between a source and target type.
func ScoreTypeCompatibility(source, target types.Type) TypeCompatibilityResult {
	res := TypeCompatibilityResult{SourceType: source.String(), TargetType: target.String()}

	switch {
	case types.Identical(source, target):
		res.Compatibility = TypeIdentical
		res.Reason = "types are identical"
	case types.AssignableTo(source, target):
		res.Compatibility = TypeAssignable
		res.Reason = "source is assignable to target"
	case types.ConvertibleTo(source, target):
		res.Compatibility = TypeConvertible
		res.Reason = "source is convertible to target"
	default:
		res.Compatibility = TypeIncompatible
		res.Reason = "types are not compatible"
	}

	return res
}

// ScoreSignature checks fn against the signature func(params...) (results...).
// Parameters are scored as expected-to-actual and results as actual-to-expected,
// which is the direction values flow at a call site. The weakest position
// decides the overall compatibility.
func ScoreSignature(fn types.Type, params, results []types.Type) TypeCompatibilityResult {
	want := types.NewSignatureType(nil, nil, nil, tuple(params), tuple(results), false)

	res := TypeCompatibilityResult{
		Compatibility: TypeIdentical,
		Reason:        "signatures are identical",
		SourceType:    fn.String(),
		TargetType:    want.String(),
	}

	sig, ok := fn.Underlying().(*types.Signature)
	if !ok {
		res.Compatibility = TypeIncompatible
		res.Reason = "not a function"

		return res
	}

	if sig.Variadic() {
		res.Compatibility = TypeIncompatible
		res.Reason = "function is variadic"

		return res
	}

	if sig.Params().Len() != len(params) {
		res.Compatibility = TypeIncompatible
		res.Reason = fmt.Sprintf("takes %d parameters, want %d", sig.Params().Len(), len(params))

		return res
	}

	if sig.Results().Len() != len(results) {
		res.Compatibility = TypeIncompatible
		res.Reason = fmt.Sprintf("returns %d results, want %d", sig.Results().Len(), len(results))

		return res
	}

	weaken := func(what string, i int, got, want types.Type, r TypeCompatibilityResult) {
		if r.Compatibility >= res.Compatibility {
			return
		}

		res.Compatibility = r.Compatibility
		res.Reason = fmt.Sprintf("%s %d is %s, want %s (%s)", what, i, got, want, r.Compatibility)
	}

	for i, p := range params {
		got := sig.Params().At(i).Type()
		weaken("parameter", i, got, p, ScoreTypeCompatibility(p, got))
	}

	for i, r := range results {
		got := sig.Results().At(i).Type()
		weaken("result", i, got, r, ScoreTypeCompatibility(got, r))
	}

	return res
}

func tuple(ts []types.Type) *types.Tuple {
	vars := make([]*types.Var, 0, len(ts))
	for _, t := range ts {
		vars = append(vars, types.NewParam(0, nil, "", t))
	}

	return types.NewTuple(vars...)
}

// IsIntegerType returns true if the underlying type is an integer basic type.
func IsIntegerType(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	return basic.Info()&types.IsInteger != 0
}

// IsStringType returns true if the underlying type is a string.
func IsStringType(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	return basic.Kind() == types.String
}
