package ucum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ucum-go/ucum/internal/canon"
)

// baseSymbols gives the printable symbol for each base dimension, in the
// engine's fixed dimension order.
var baseSymbols = [canon.NumDimensions]string{
	canon.Length:            "m",
	canon.Time:              "s",
	canon.Mass:              "g",
	canon.Angle:             "rad",
	canon.Temperature:       "K",
	canon.Charge:            "C",
	canon.LuminousIntensity: "cd",
}

// CanonicalText renders a CanonicalForm the way the `ucum analyze` and
// `ucum multiply`/`ucum divide` commands print a result (spec §4.7): the
// numeric factor (if not 1) followed by each base unit raised to its
// exponent, in dimension order, joined with '.'. A special-unit form prints
// its function tag instead; an arbitrary form prints its tag verbatim.
func CanonicalText(cf canon.CanonicalForm) string {
	if cf.Arbitrary != "" {
		return cf.Arbitrary
	}
	if cf.Special != nil {
		return fmt.Sprintf("%s(%s)", cf.Special.Function, dimsText(cf.Dims))
	}

	var parts []string
	if cf.Factor != 1 {
		parts = append(parts, formatFactor(cf.Factor))
	}
	if dt := dimsText(cf.Dims); dt != "" {
		parts = append(parts, dt)
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, ".")
}

func dimsText(dims canon.Dims) string {
	var parts []string
	for i, exp := range dims {
		if exp == 0 {
			continue
		}
		sym := baseSymbols[i]
		if exp == 1 {
			parts = append(parts, sym)
		} else {
			parts = append(parts, sym+strconv.Itoa(exp))
		}
	}
	return strings.Join(parts, ".")
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
