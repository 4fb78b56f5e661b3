// Package specialfn implements the closed registry of named non-ratio
// conversion functions used by UCUM "special" units (spec §4.5). Every
// special unit's definition names exactly one of these pairs; the pair
// converts between the special unit's own scale and its reference unit's
// scale, in addition to (not instead of) the reference unit's own linear
// factor.
package specialfn

import (
	"math"

	"github.com/ucum-go/ucum/internal/ucumerrors"
)

// Name identifies one of the closed set of special conversion functions.
type Name string

const (
	Cel   Name = "Cel"   // degree Celsius: affine, relative to kelvin
	DegF  Name = "degF"  // degree Fahrenheit: affine, relative to kelvin
	DegRe Name = "degRe" // degree Reaumur: affine, relative to kelvin
	PH    Name = "pH"    // cologarithmic, relative to mol/l
	Ln    Name = "ln"    // natural logarithm (neper family)
	Lg    Name = "lg"    // base-10 logarithm (bel family)
	Ld    Name = "ld"    // base-2 logarithm
	TwoLg Name = "2lg"   // base-10 logarithm of a squared ratio (bel, power quantities)
	HpC   Name = "hpC"   // homeopathic centesimal potency
	HpX   Name = "hpX"   // homeopathic decimal potency
	HpM   Name = "hpM"   // homeopathic millesimal potency
	HpQ   Name = "hpQ"   // homeopathic quintamillesimal potency
	Tan100 Name = "100tan" // 100 * tan, used by diopter-family prism units
	Sqrt  Name = "sqrt"  // square root, used by Hounsfield-like root scales
)

// Pair is a forward/inverse function pair plus the affine flag that governs
// whether CanonicalForm.Offset is meaningful for a unit built on it.
type Pair struct {
	Name Name

	// Forward maps a value expressed in the special unit to the equivalent
	// value expressed in the special unit's reference unit (spec "special
	// unit -> reference" direction, used when converting OUT of the special
	// unit).
	Forward func(x float64) float64

	// Inverse is the functional inverse of Forward (reference -> special).
	Inverse func(x float64) float64

	// Affine marks pairs of the form y = a*x + c (Cel, degF, degRe); only
	// affine pairs populate CanonicalForm.Offset.
	Affine bool
}

var registry = map[Name]Pair{
	Cel: {
		Name:    Cel,
		Forward: func(x float64) float64 { return x + 273.15 },
		Inverse: func(k float64) float64 { return k - 273.15 },
		Affine:  true,
	},
	DegF: {
		Name:    DegF,
		Forward: func(x float64) float64 { return (x + 459.67) * (5.0 / 9.0) },
		Inverse: func(k float64) float64 { return k*(9.0/5.0) - 459.67 },
		Affine:  true,
	},
	DegRe: {
		Name:    DegRe,
		Forward: func(x float64) float64 { return x*(5.0/4.0) + 273.15 },
		Inverse: func(k float64) float64 { return (k - 273.15) * (4.0 / 5.0) },
		Affine:  true,
	},
	PH: {
		Name:    PH,
		Forward: func(x float64) float64 { return math.Pow(10, -x) },
		Inverse: func(x float64) float64 { return -math.Log10(x) },
		Affine:  false,
	},
	Ln: {
		Name:    Ln,
		Forward: func(x float64) float64 { return math.Exp(x) },
		Inverse: func(x float64) float64 { return math.Log(x) },
		Affine:  false,
	},
	Lg: {
		Name:    Lg,
		Forward: func(x float64) float64 { return math.Pow(10, x) },
		Inverse: func(x float64) float64 { return math.Log10(x) },
		Affine:  false,
	},
	Ld: {
		Name:    Ld,
		Forward: func(x float64) float64 { return math.Pow(2, x) },
		Inverse: func(x float64) float64 { return math.Log2(x) },
		Affine:  false,
	},
	TwoLg: {
		Name:    TwoLg,
		Forward: func(x float64) float64 { return math.Pow(10, x/2) },
		Inverse: func(x float64) float64 { return 2 * math.Log10(x) },
		Affine:  false,
	},
	HpC: {
		Name:    HpC,
		Forward: func(x float64) float64 { return math.Pow(100, -x) },
		Inverse: func(x float64) float64 { return -math.Log(x) / math.Log(100) },
		Affine:  false,
	},
	HpX: {
		Name:    HpX,
		Forward: func(x float64) float64 { return math.Pow(10, -x) },
		Inverse: func(x float64) float64 { return -math.Log10(x) },
		Affine:  false,
	},
	HpM: {
		Name:    HpM,
		Forward: func(x float64) float64 { return math.Pow(1000, -x) },
		Inverse: func(x float64) float64 { return -math.Log(x) / math.Log(1000) },
		Affine:  false,
	},
	HpQ: {
		Name:    HpQ,
		Forward: func(x float64) float64 { return math.Pow(50000, -x) },
		Inverse: func(x float64) float64 { return -math.Log(x) / math.Log(50000) },
		Affine:  false,
	},
	Tan100: {
		Name:    Tan100,
		Forward: func(x float64) float64 { return 100 * math.Tan(x) },
		Inverse: func(x float64) float64 { return math.Atan(x / 100) },
		Affine:  false,
	},
	Sqrt: {
		Name:    Sqrt,
		Forward: func(x float64) float64 { return x * x },
		Inverse: func(x float64) float64 { return math.Sqrt(x) },
		Affine:  false,
	},
}

// Lookup returns the Pair registered under name.
func Lookup(name Name) (Pair, error) {
	p, ok := registry[name]
	if !ok {
		return Pair{}, ucumerrors.Newf(ucumerrors.LoaderError, "unknown special function %q", string(name))
	}
	return p, nil
}

// Names returns every registered function name, for catalogue/enumeration
// output and loader validation.
func Names() []Name {
	out := make([]Name, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	return out
}
