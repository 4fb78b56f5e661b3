package ucum

import "github.com/ucum-go/ucum/internal/canon"

// Analysis is the descriptive breakdown of a unit expression returned by
// Analyze (spec §6 "analyze" operation) — everything about the expression
// that doesn't require a second unit to compute, unlike Convert.
type Analysis struct {
	Expression    string
	CanonicalText string
	Dims          canon.Dims
	Factor        float64

	// Property is the table's opaque classification label, or "" when the
	// expression is not a single bare atom at exponent 1 (spec §6
	// "property label ... or absent").
	Property string

	// Offset is populated only when the expression resolves to a single
	// affine special unit (Cel, degF, degRe) at the top level; it is the
	// kelvin-equivalent of that unit's zero point, informational only.
	Offset float64

	IsSpecial   bool
	IsArbitrary bool
	ArbitraryTag string
}

// Analyze parses and canonicalizes expr, returning a structural description
// without requiring a target unit.
func (e *Engine) Analyze(expr string) (Analysis, error) {
	cf, err := e.canonicalize(expr)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Expression:    expr,
		CanonicalText: CanonicalText(cf),
		Dims:          cf.Dims,
		Factor:        cf.Factor,
		Offset:        cf.Offset,
		Property:      cf.Property,
		IsSpecial:     cf.Special != nil,
		IsArbitrary:   cf.Arbitrary != "",
		ArbitraryTag:  cf.Arbitrary,
	}
	return a, nil
}
