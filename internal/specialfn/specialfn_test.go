package specialfn

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPairsInvert(t *testing.T) {
	samples := map[Name][]float64{
		Cel:    {-40, 0, 37, 100},
		DegF:   {-40, 32, 98.6, 212},
		DegRe:  {-20, 0, 80},
		PH:     {1e-7, 1e-3, 1e-9},
		Ln:     {0.5, 1, 2.71828},
		Lg:     {0.001, 1, 3},
		Ld:     {0.5, 1, 8},
		TwoLg:  {1, 10, 100},
		HpC:    {1, 6, 30},
		HpX:    {1, 6, 30},
		HpM:    {1, 6, 30},
		HpQ:    {1, 6, 30},
		Tan100: {0.1, 0.5, 1.0},
		Sqrt:   {1, 4, 100},
	}

	for name, xs := range samples {
		pair, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		for _, x := range xs {
			ref := pair.Forward(x)
			back := pair.Inverse(ref)
			if !approxEqual(back, x) {
				t.Errorf("%s: Inverse(Forward(%v)) = %v, want %v", name, x, back, x)
			}
		}
	}
}

func TestAffineFlags(t *testing.T) {
	affine := map[Name]bool{Cel: true, DegF: true, DegRe: true}
	for _, n := range Names() {
		p, _ := Lookup(n)
		if p.Affine != affine[n] {
			t.Errorf("%s: Affine = %v, want %v", n, p.Affine, affine[n])
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Fatal("expected error for unknown function name")
	}
}

func TestCelsiusZero(t *testing.T) {
	pair, _ := Lookup(Cel)
	if got := pair.Forward(0); !approxEqual(got, 273.15) {
		t.Errorf("Cel.Forward(0) = %v, want 273.15", got)
	}
}
