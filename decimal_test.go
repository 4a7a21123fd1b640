package iso20022_test

import (
	"math"
	"testing"

	iso20022 "github.com/reoring/isoskema"
)

func TestParseDecimal(t *testing.T) {
	valid := map[string]float64{
		"0":        0,
		"12.50":    12.5,
		" -0.01 ":  -0.01,
		"+3":       3,
		"7.":       7,
		".25":      0.25,
		"00012.30": 12.3,
	}
	for in, want := range valid {
		got, err := iso20022.ParseDecimal([]byte(in))
		if err != nil || got != want {
			t.Errorf("ParseDecimal(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", ".", "-", "+.", "NaN", "nan", "Inf", "+Inf", "-Infinity", "1e3", "1E-2", "0x1p4", "1.2.3", "1,5", "12 3"} {
		if got, err := iso20022.ParseDecimal([]byte(in)); err == nil {
			t.Errorf("ParseDecimal(%q) = %v, want error", in, got)
		}
	}
}

func TestUnmarshalDecimalJSON(t *testing.T) {
	if got, err := iso20022.UnmarshalDecimalJSON([]byte(`"1250.75"`)); err != nil || got != 1250.75 {
		t.Fatalf("quoted: %v %v", got, err)
	}
	if got, err := iso20022.UnmarshalDecimalJSON([]byte(` 42 `)); err != nil || got != 42 {
		t.Fatalf("bare: %v %v", got, err)
	}
	for _, in := range []string{`1e3`, `"NaN"`, `"Inf"`, `null`} {
		if _, err := iso20022.UnmarshalDecimalJSON([]byte(in)); err == nil {
			t.Errorf("UnmarshalDecimalJSON(%s) should fail", in)
		}
	}
}

func TestValidate_NonFiniteDecimal(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(-1)} {
		iss := mustIssues(t, iso20022.Validate(quantity(v)))
		if len(iss) != 1 || iss[0].Code != iso20022.CodeTooSmall {
			t.Fatalf("%v: %+v", v, iss)
		}
	}
	if !iso20022.Is(quantity(math.Copysign(0, -1))) {
		t.Fatalf("-0 equals the bound")
	}
}
