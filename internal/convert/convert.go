// Package convert implements numeric conversion between two already-folded
// canon.CanonicalForm values (spec §4.6). It depends only on internal/canon,
// internal/specialfn and internal/ucumerrors — it never parses or resolves
// symbols itself.
package convert

import (
	"math"

	"github.com/ucum-go/ucum/internal/canon"
	"github.com/ucum-go/ucum/internal/specialfn"
	"github.com/ucum-go/ucum/internal/ucumerrors"
)

// Commensurable reports whether values expressed in from can be converted to
// to at all. Two forms are commensurable when they carry the same
// Arbitrary tag, or, for every other unit, when their dimension vectors
// match — the special-unit conversion functions translate between the
// special unit's own scale and its reference unit's scale, but never change
// the underlying dimension, so a special unit remains commensurable with
// any ratio-scale unit over the same dimension (e.g. Cel and K).
func Commensurable(from, to canon.CanonicalForm) bool {
	if from.Arbitrary != "" || to.Arbitrary != "" {
		return from.Arbitrary != "" && to.Arbitrary != "" && from.Arbitrary == to.Arbitrary
	}
	return from.Dims == to.Dims
}

// Convert converts value, expressed in from, into the equivalent value
// expressed in to.
func Convert(value float64, from, to canon.CanonicalForm) (float64, error) {
	if from.Arbitrary != "" || to.Arbitrary != "" {
		if from.Arbitrary != "" && to.Arbitrary != "" && from.Arbitrary == to.Arbitrary {
			return value, nil
		}
		tag := from.Arbitrary
		if tag == "" {
			tag = to.Arbitrary
		}
		return 0, ucumerrors.Newf(ucumerrors.IncompatibleArbitrary,
			"arbitrary unit %q has no numeric ratio to convert", tag)
	}
	if !Commensurable(from, to) {
		return 0, ucumerrors.Newf(ucumerrors.DimensionMismatch,
			"incommensurable units: dims %v vs %v", from.Dims, to.Dims)
	}

	ref, err := toReferenceValue(value, from)
	if err != nil {
		return 0, err
	}
	result, err := fromReferenceValue(ref, to)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ucumerrors.Newf(ucumerrors.NumericError, "conversion produced a non-finite value")
	}
	return result, nil
}

// toReferenceValue maps x, expressed in cf, to the equivalent value
// expressed in base-unit terms. For a ratio-scale form this is a plain
// multiplication by cf.Factor; for a special form it passes through the
// special function's Forward direction first, applying any prefix/
// definitional scale to the function's argument (see DESIGN.md's Open
// Question resolution on prefixed special units), and then applies the
// reference expression's own ratio-scale factor (cf.Special.RefFactor) —
// Forward only lands on the reference unit's own scale (e.g. a bare
// mol/L number for "[pH]"), not yet on base-unit terms.
func toReferenceValue(x float64, cf canon.CanonicalForm) (float64, error) {
	if cf.Special != nil {
		pair, err := specialfn.Lookup(cf.Special.Function)
		if err != nil {
			return 0, err
		}
		return pair.Forward(x*cf.Special.Scale) * cf.Special.RefFactor, nil
	}
	return x * cf.Factor, nil
}

// fromReferenceValue is the inverse of toReferenceValue.
func fromReferenceValue(v float64, cf canon.CanonicalForm) (float64, error) {
	if cf.Special != nil {
		pair, err := specialfn.Lookup(cf.Special.Function)
		if err != nil {
			return 0, err
		}
		if cf.Special.RefFactor == 0 {
			return 0, ucumerrors.Newf(ucumerrors.NumericError, "target unit's reference has a zero factor")
		}
		return pair.Inverse(v/cf.Special.RefFactor) / cf.Special.Scale, nil
	}
	if cf.Factor == 0 {
		return 0, ucumerrors.Newf(ucumerrors.NumericError, "target unit has a zero factor")
	}
	return v / cf.Factor, nil
}
