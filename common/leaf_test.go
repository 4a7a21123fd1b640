package common_test

import (
	"math"
	"strings"
	"testing"
	"time"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/common"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	iss, ok := iso20022.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0].Code
}

func TestCountryCode_Pattern(t *testing.T) {
	if err := common.CountryCode("US").Validate(); err != nil {
		t.Fatalf("US should be valid: %v", err)
	}
	for _, bad := range []string{"USA", "us", "U", "", "U1"} {
		err := common.CountryCode(bad).Validate()
		if err == nil {
			t.Fatalf("%q should be invalid", bad)
		}
		if c := codeOf(t, err); c != iso20022.CodePattern {
			t.Fatalf("%q: expected pattern, got %s", bad, c)
		}
	}
}

func TestMax35Text_Boundaries(t *testing.T) {
	cases := []struct {
		n    int
		code string
	}{
		{0, iso20022.CodeTooShort},
		{1, ""},
		{35, ""},
		{36, iso20022.CodeTooLong},
	}
	for _, tc := range cases {
		err := common.Max35Text(strings.Repeat("a", tc.n)).Validate()
		if tc.code == "" {
			if err != nil {
				t.Fatalf("len %d: unexpected %v", tc.n, err)
			}
			continue
		}
		if got := codeOf(t, err); got != tc.code {
			t.Fatalf("len %d: expected %s, got %s", tc.n, tc.code, got)
		}
	}
}

func TestText_LengthCountsCharacters(t *testing.T) {
	// 35 multi-byte characters are within Max35Text even though the byte
	// length is larger.
	if err := common.Max35Text(strings.Repeat("é", 35)).Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := common.Max4Text("日本語です").Validate(); err == nil {
		t.Fatalf("5 characters must exceed Max4Text")
	}
}

func TestAmount_NonNegative(t *testing.T) {
	ok := []float64{0.0, math.Copysign(0, -1), 0.01, 1e12}
	for _, v := range ok {
		if err := common.ActiveOrHistoricCurrencyAndAmountSimpleType(v).Validate(); err != nil {
			t.Fatalf("%v should pass: %v", v, err)
		}
	}
	err := common.ActiveOrHistoricCurrencyAndAmountSimpleType(-0.01).Validate()
	if c := codeOf(t, err); c != iso20022.CodeTooSmall {
		t.Fatalf("expected too_small, got %s", c)
	}
	if err := common.ActiveOrHistoricCurrencyAndAmountSimpleType(-math.SmallestNonzeroFloat64).Validate(); err == nil {
		t.Fatalf("smallest negative must fail")
	}
}

func TestAmount_NaNFailsBound(t *testing.T) {
	if err := common.NonNegativeDecimalNumber(math.NaN()).Validate(); err == nil {
		t.Fatalf("NaN must not satisfy minInclusive 0")
	}
	if err := common.ActiveOrHistoricCurrencyAndAmountSimpleType(math.NaN()).Validate(); err == nil {
		t.Fatalf("NaN amount must fail")
	}
}

func TestDecimal_UnmarshalTextRejectsNonDecimal(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "1e3", "0x1p4"} {
		var v common.ActiveOrHistoricCurrencyAndAmountSimpleType
		if err := v.UnmarshalText([]byte(in)); err == nil {
			t.Errorf("UnmarshalText(%q) should fail, got %v", in, float64(v))
		}
	}
	var v common.ActiveOrHistoricCurrencyAndAmountSimpleType
	if err := v.UnmarshalText([]byte("1250.75")); err != nil || v != 1250.75 {
		t.Fatalf("1250.75: %v %v", float64(v), err)
	}
}

func TestIBAN(t *testing.T) {
	if err := common.IBAN2007Identifier("GB82WEST12345698765432").Validate(); err != nil {
		t.Fatalf("expected valid IBAN: %v", err)
	}
	if err := common.IBAN2007Identifier("gb82west12345698765432").Validate(); err == nil {
		t.Fatalf("lower-case country prefix must fail")
	}
}

func TestPatternLeaves(t *testing.T) {
	cases := []struct {
		name string
		v    iso20022.Scalar
		ok   bool
	}{
		{"BICFI 8", common.BICFIDec2014Identifier("DEUTDEFF"), true},
		{"BICFI 11", common.BICFIDec2014Identifier("DEUTDEFF500"), true},
		{"BICFI 9", common.BICFIDec2014Identifier("DEUTDEFF5"), false},
		{"LEI", common.LEIIdentifier("529900T8BM49AURSDO55"), true},
		{"LEI short", common.LEIIdentifier("529900T8BM49AURSDO5"), false},
		{"UETR", common.UUIDv4Identifier("eb6305c9-1f7f-49de-aed0-16487c27b42d"), true},
		{"UETR v1", common.UUIDv4Identifier("eb6305c9-1f7f-19de-aed0-16487c27b42d"), false},
		{"phone", common.PhoneNumber("+1-212-5551234"), true},
		{"phone no plus", common.PhoneNumber("1-212-5551234"), false},
		{"page", common.Max5NumericText("12345"), true},
		{"page 6", common.Max5NumericText("123456"), false},
		{"entries", common.Max15NumericText("0"), true},
		{"ccy", common.ActiveOrHistoricCurrencyCode("EUR"), true},
		{"ccy lower", common.ActiveOrHistoricCurrencyCode("eur"), false},
		{"isin", common.ISINOct2015Identifier("US0378331005"), true},
		{"uti", common.UTIIdentifier("529900T8BM49AURSDO55ABC123"), true},
		{"exact4", common.Exact4AlphaNumericText("AB12"), true},
		{"exact4 3", common.Exact4AlphaNumericText("AB1"), false},
	}
	for _, tc := range cases {
		if got := iso20022.Is(tc.v); got != tc.ok {
			t.Errorf("%s: Is(%v) = %v, want %v", tc.name, tc.v, got, tc.ok)
		}
	}
}

func TestUnconstrainedLeavesAlwaysValid(t *testing.T) {
	for _, v := range []interface{ Validate() error }{
		common.ISODate("not a date"),
		common.ISODateTime(""),
		common.TrueFalseIndicator(false),
		common.DecimalNumber(-12.5),
	} {
		if err := v.Validate(); err != nil {
			t.Fatalf("%T should always validate: %v", v, err)
		}
	}
}

func TestISODateTime_Time(t *testing.T) {
	for _, s := range []string{"2024-03-01T10:15:00Z", "2024-03-01T10:15:00.123+09:00", "2024-03-01T10:15:00"} {
		if _, err := common.ISODateTime(s).Time(); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	if _, err := common.ISODateTime("yesterday").Time(); err == nil {
		t.Fatalf("expected parse error")
	}
	d, err := common.ISODate("2024-02-29").Time()
	if err != nil || d.Day() != 29 {
		t.Fatalf("ISODate.Time: %v %v", d, err)
	}
}

func TestDateTimeOf(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 15, 0, 123456789, time.FixedZone("", 9*3600))
	v := common.DateTimeOf(want)
	if v != "2024-03-01T10:15:00.123456789+09:00" {
		t.Fatalf("formatted %q", v)
	}
	got, err := v.Time()
	if err != nil || !got.Equal(want) {
		t.Fatalf("round trip: %v %v", got, err)
	}
	if err := v.Validate(); err != nil {
		t.Fatal(err)
	}
	if v := common.DateTimeOf(want.Truncate(time.Second).UTC()); v != "2024-03-01T01:15:00Z" {
		t.Fatalf("utc %q", v)
	}
}

func TestIssueCarriesFacetParams(t *testing.T) {
	err := common.Max35Text(strings.Repeat("x", 40)).Validate()
	iss, _ := iso20022.AsIssues(err)
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", iss)
	}
	it := iss[0]
	if it.Hint != "Max35Text" || it.Rule != "maxLength" {
		t.Fatalf("unexpected hint/rule: %+v", it)
	}
	if it.Params["max"] != 35 || it.Params["got"] != 40 {
		t.Fatalf("unexpected params: %v", it.Params)
	}
	if it.Path != "/" {
		t.Fatalf("leaf issue path should be root, got %s", it.Path)
	}
}
