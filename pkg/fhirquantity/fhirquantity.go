// Package fhirquantity bridges the UCUM engine to the FHIR Quantity JSON
// shape (spec §6 "FHIR bridge"):
//
//	{"value": 37.5, "unit": "degrees C", "system": "http://unitsofmeasure.org", "code": "Cel"}
//
// "code" is the UCUM expression; "unit" is a free-text display string that
// this package never interprets. Reading and rewriting the handful of
// fields of interest is done with gjson/sjson rather than unmarshalling the
// whole resource into a Go struct, so a caller can hand this package one
// field plucked out of a much larger FHIR resource document without having
// to model the rest of that resource's shape.
package fhirquantity

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ucum-go/ucum/internal/ucumerrors"
	"github.com/ucum-go/ucum/pkg/ucum"
)

// UCUMSystem is the FHIR-defined system URI identifying UCUM-coded
// quantities.
const UCUMSystem = "http://unitsofmeasure.org"

// Quantity is a decoded FHIR Quantity with a UCUM code.
type Quantity struct {
	Value  float64
	Unit   string
	System string
	Code   string
}

// Parse extracts a Quantity from a FHIR Quantity JSON document. It does not
// validate Code against the engine; call Validate for that.
func Parse(doc string) (Quantity, error) {
	if !gjson.Valid(doc) {
		return Quantity{}, ucumerrors.New(ucumerrors.LoaderError, "invalid JSON document")
	}
	result := gjson.Parse(doc)
	valueResult := result.Get("value")
	if !valueResult.Exists() {
		return Quantity{}, ucumerrors.New(ucumerrors.LoaderError, "Quantity.value is required")
	}
	codeResult := result.Get("code")
	if !codeResult.Exists() {
		return Quantity{}, ucumerrors.New(ucumerrors.LoaderError, "Quantity.code is required")
	}
	return Quantity{
		Value:  valueResult.Float(),
		Unit:   result.Get("unit").String(),
		System: result.Get("system").String(),
		Code:   codeResult.String(),
	}, nil
}

// Validate checks that q.Code is a valid UCUM expression recognized by
// engine, and that q.System (if present) names the UCUM system.
func Validate(engine *ucum.Engine, q Quantity) error {
	if q.System != "" && q.System != UCUMSystem {
		return ucumerrors.Newf(ucumerrors.LoaderError, "unexpected Quantity.system %q, want %q", q.System, UCUMSystem)
	}
	return engine.Validate(q.Code)
}

// ConvertTo converts doc's value into toCode, returning a new FHIR Quantity
// JSON document with value, unit, system and code all updated to describe
// the converted quantity.
func ConvertTo(engine *ucum.Engine, doc, toCode string) (string, error) {
	q, err := Parse(doc)
	if err != nil {
		return "", err
	}
	converted, err := engine.Convert(q.Value, q.Code, toCode)
	if err != nil {
		return "", err
	}

	out := doc
	out, err = sjson.Set(out, "value", converted)
	if err != nil {
		return "", err
	}
	out, err = sjson.Set(out, "code", toCode)
	if err != nil {
		return "", err
	}
	out, err = sjson.Set(out, "system", UCUMSystem)
	if err != nil {
		return "", err
	}
	out, err = sjson.Set(out, "unit", toCode)
	if err != nil {
		return "", err
	}
	return out, nil
}
