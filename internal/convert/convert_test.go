package convert

import (
	"math"
	"testing"

	"github.com/ucum-go/ucum/internal/canon"
	"github.com/ucum-go/ucum/internal/specialfn"
	"github.com/ucum-go/ucum/internal/ucumerrors"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) < tol }

func TestConvertRatio(t *testing.T) {
	km := canon.CanonicalForm{Factor: 1e3, Dims: canon.Dims{canon.Length: 1}}
	m := canon.CanonicalForm{Factor: 1, Dims: canon.Dims{canon.Length: 1}}

	got, err := Convert(2, km, m)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !approxEqual(got, 2000, 1e-9) {
		t.Errorf("Convert(2 km -> m) = %v, want 2000", got)
	}
}

func TestConvertDimensionMismatch(t *testing.T) {
	m := canon.CanonicalForm{Factor: 1, Dims: canon.Dims{canon.Length: 1}}
	s := canon.CanonicalForm{Factor: 1, Dims: canon.Dims{canon.Time: 1}}
	if _, err := Convert(1, m, s); err == nil {
		t.Fatal("expected DimensionMismatch error")
	}
}

func TestConvertSpecialToRatio(t *testing.T) {
	cel := canon.CanonicalForm{
		Dims:    canon.Dims{canon.Temperature: 1},
		Special: &canon.SpecialDescriptor{Function: specialfn.Cel, Scale: 1, RefFactor: 1},
	}
	kelvin := canon.CanonicalForm{Factor: 1, Dims: canon.Dims{canon.Temperature: 1}}

	got, err := Convert(37, cel, kelvin)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !approxEqual(got, 310.15, 1e-9) {
		t.Errorf("Convert(37 Cel -> K) = %v, want 310.15", got)
	}

	back, err := Convert(got, kelvin, cel)
	if err != nil {
		t.Fatalf("Convert back: %v", err)
	}
	if !approxEqual(back, 37, 1e-9) {
		t.Errorf("round trip = %v, want 37", back)
	}
}

func TestConvertSpecialToSpecial(t *testing.T) {
	cel := canon.CanonicalForm{
		Dims:    canon.Dims{canon.Temperature: 1},
		Special: &canon.SpecialDescriptor{Function: specialfn.Cel, Scale: 1, RefFactor: 1},
	}
	degF := canon.CanonicalForm{
		Dims:    canon.Dims{canon.Temperature: 1},
		Special: &canon.SpecialDescriptor{Function: specialfn.DegF, Scale: 1, RefFactor: 1},
	}

	got, err := Convert(0, cel, degF)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !approxEqual(got, 32, 1e-6) {
		t.Errorf("Convert(0 Cel -> degF) = %v, want 32", got)
	}
}

func TestConvertArbitraryIdentity(t *testing.T) {
	// spec scenario E7: convert(1, "[IU]", "[IU]") = 1 — an arbitrary unit
	// converts to itself unchanged, even though it has no numeric ratio to
	// anything else.
	a := canon.CanonicalForm{Arbitrary: "[IU]"}
	b := canon.CanonicalForm{Arbitrary: "[IU]"}
	got, err := Convert(5, a, b)
	if err != nil {
		t.Fatalf("Convert([IU] -> [IU]): %v", err)
	}
	if got != 5 {
		t.Errorf("Convert(5, [IU], [IU]) = %v, want 5", got)
	}
}

func TestConvertArbitraryMismatchRejected(t *testing.T) {
	a := canon.CanonicalForm{Arbitrary: "[IU]"}
	b := canon.CanonicalForm{Arbitrary: "[arb'U]"}
	_, err := Convert(5, a, b)
	if err == nil {
		t.Fatal("expected error converting between distinct arbitrary units")
	}
	ucErr, ok := err.(*ucumerrors.Error)
	if !ok || ucErr.Kind != ucumerrors.IncompatibleArbitrary {
		t.Errorf("got %v, want IncompatibleArbitrary", err)
	}
}

func TestConvertArbitraryAgainstRatioRejected(t *testing.T) {
	a := canon.CanonicalForm{Arbitrary: "[IU]"}
	m := canon.CanonicalForm{Factor: 1, Dims: canon.Dims{canon.Length: 1}}
	_, err := Convert(5, a, m)
	if err == nil {
		t.Fatal("expected error converting an arbitrary unit against a ratio-scale unit")
	}
	ucErr, ok := err.(*ucumerrors.Error)
	if !ok || ucErr.Kind != ucumerrors.IncompatibleArbitrary {
		t.Errorf("got %v, want IncompatibleArbitrary", err)
	}
}

func TestCommensurableArbitraryMismatch(t *testing.T) {
	a := canon.CanonicalForm{Arbitrary: "[IU]"}
	b := canon.CanonicalForm{Arbitrary: "[arb'U]"}
	if Commensurable(a, b) {
		t.Fatal("distinct arbitrary units must not be commensurable")
	}
}

func TestConvertMillimeterOfMercury(t *testing.T) {
	// 100 kPa -> mm[Hg]: 100000 Pa / 133.322387415 Pa = ~750.0615758. Both
	// factors are expressed relative to the pascal (Pa = 1) as a common basis.
	dims := canon.Dims{canon.Length: -1, canon.Mass: 1, canon.Time: -2}
	kPa := canon.CanonicalForm{Factor: 1e3, Dims: dims}
	mmHg := canon.CanonicalForm{Factor: 1e-3 * 133322.387415, Dims: dims}

	got, err := Convert(100, kPa, mmHg)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !approxEqual(got, 750.0615758, 1e-6) {
		t.Errorf("Convert(100 kPa -> mm[Hg]) = %v, want 750.0615758", got)
	}
}

func TestConvertSpecialWithNonUnitReferenceFactor(t *testing.T) {
	// [pH]'s reference expression is mol/L, whose own canonical factor is
	// ~6.02214076e26 relative to the base units (mol's Avogadro factor
	// divided by the litre's 1e-3). A pH of 7 must convert to 1e-7 mol/L,
	// not to a value still entangled with that reference factor.
	concDims := canon.Dims{canon.Length: -3}
	refFactor := 6.02214076e23 / 1e-3

	pH := canon.CanonicalForm{
		Dims:    concDims,
		Factor:  refFactor,
		Special: &canon.SpecialDescriptor{Function: specialfn.PH, Scale: 1, RefFactor: refFactor},
	}
	molPerL := canon.CanonicalForm{Factor: refFactor, Dims: concDims}

	got, err := Convert(7, pH, molPerL)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !approxEqual(got, 1e-7, 1e-7*1e-6) {
		t.Errorf("Convert(7 [pH] -> mol/L) = %v, want 1e-7", got)
	}

	back, err := Convert(got, molPerL, pH)
	if err != nil {
		t.Fatalf("Convert back: %v", err)
	}
	if !approxEqual(back, 7, 1e-9) {
		t.Errorf("round trip = %v, want 7", back)
	}
}
