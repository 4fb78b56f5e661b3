package fhirquantity

import (
	"math"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/ucum-go/ucum/pkg/ucum"
)

func mustEngine(t *testing.T) *ucum.Engine {
	t.Helper()
	e, err := ucum.New()
	if err != nil {
		t.Fatalf("ucum.New: %v", err)
	}
	return e
}

const sampleDoc = `{
	"value": 100,
	"unit": "kPa",
	"system": "http://unitsofmeasure.org",
	"code": "kPa"
}`

func TestParse(t *testing.T) {
	q, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if q.Value != 100 || q.Code != "kPa" || q.System != UCUMSystem {
		t.Errorf("got %+v", q)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse("{not json"); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseMissingCode(t *testing.T) {
	if _, err := Parse(`{"value": 1}`); err == nil {
		t.Fatal("expected error for missing code")
	}
}

func TestValidate(t *testing.T) {
	e := mustEngine(t)
	q, _ := Parse(sampleDoc)
	if err := Validate(e, q); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateWrongSystem(t *testing.T) {
	e := mustEngine(t)
	q := Quantity{Value: 1, Code: "m", System: "http://example.org/other"}
	if err := Validate(e, q); err == nil {
		t.Fatal("expected error for non-UCUM system")
	}
}

func TestConvertTo(t *testing.T) {
	e := mustEngine(t)
	out, err := ConvertTo(e, sampleDoc, "mm[Hg]")
	if err != nil {
		t.Fatalf("ConvertTo: %v", err)
	}
	got := gjson.Get(out, "value").Float()
	if math.Abs(got-750.0615758) > 1e-5 {
		t.Errorf("converted value = %v, want ~750.0615758", got)
	}
	if gjson.Get(out, "code").String() != "mm[Hg]" {
		t.Errorf("code not updated: %s", out)
	}
}
