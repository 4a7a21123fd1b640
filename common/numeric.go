package common

import (
	"fmt"
	"strings"
	"time"

	iso20022 "github.com/reoring/isoskema"
)

var nonNegative = iso20022.MinInclusive(0)

// ActiveOrHistoricCurrencyAndAmountSimpleType is the simple content of an
// amount: a non-negative decimal with up to five fraction digits.
type ActiveOrHistoricCurrencyAndAmountSimpleType float64

func (ActiveOrHistoricCurrencyAndAmountSimpleType) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "ActiveOrHistoricCurrencyAndAmount_SimpleType", MinInclusive: nonNegative}
}
func (v ActiveOrHistoricCurrencyAndAmountSimpleType) Validate() error { return iso20022.Validate(v) }

func (v ActiveOrHistoricCurrencyAndAmountSimpleType) MarshalText() ([]byte, error) {
	return []byte(iso20022.FormatDecimal(float64(v))), nil
}

func (v *ActiveOrHistoricCurrencyAndAmountSimpleType) UnmarshalText(b []byte) error {
	f, err := iso20022.ParseDecimal(b)
	*v = ActiveOrHistoricCurrencyAndAmountSimpleType(f)
	return err
}

func (v ActiveOrHistoricCurrencyAndAmountSimpleType) MarshalJSON() ([]byte, error) {
	return iso20022.MarshalDecimalJSON(float64(v)), nil
}

func (v *ActiveOrHistoricCurrencyAndAmountSimpleType) UnmarshalJSON(b []byte) error {
	f, err := iso20022.UnmarshalDecimalJSON(b)
	*v = ActiveOrHistoricCurrencyAndAmountSimpleType(f)
	return err
}

// ActiveCurrencyAndAmountSimpleType is the simple content of an amount in an
// active currency.
type ActiveCurrencyAndAmountSimpleType float64

func (ActiveCurrencyAndAmountSimpleType) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "ActiveCurrencyAndAmount_SimpleType", MinInclusive: nonNegative}
}
func (v ActiveCurrencyAndAmountSimpleType) Validate() error { return iso20022.Validate(v) }

func (v ActiveCurrencyAndAmountSimpleType) MarshalText() ([]byte, error) {
	return []byte(iso20022.FormatDecimal(float64(v))), nil
}

func (v *ActiveCurrencyAndAmountSimpleType) UnmarshalText(b []byte) error {
	f, err := iso20022.ParseDecimal(b)
	*v = ActiveCurrencyAndAmountSimpleType(f)
	return err
}

func (v ActiveCurrencyAndAmountSimpleType) MarshalJSON() ([]byte, error) {
	return iso20022.MarshalDecimalJSON(float64(v)), nil
}

func (v *ActiveCurrencyAndAmountSimpleType) UnmarshalJSON(b []byte) error {
	f, err := iso20022.UnmarshalDecimalJSON(b)
	*v = ActiveCurrencyAndAmountSimpleType(f)
	return err
}

// DecimalNumber is an unconstrained xs:decimal.
type DecimalNumber float64

func (DecimalNumber) Facets() iso20022.Facets { return iso20022.Facets{Type: "DecimalNumber"} }
func (v DecimalNumber) Validate() error { return nil }

func (v DecimalNumber) MarshalText() ([]byte, error) {
	return []byte(iso20022.FormatDecimal(float64(v))), nil
}

func (v *DecimalNumber) UnmarshalText(b []byte) error {
	f, err := iso20022.ParseDecimal(b)
	*v = DecimalNumber(f)
	return err
}

func (v DecimalNumber) MarshalJSON() ([]byte, error) {
	return iso20022.MarshalDecimalJSON(float64(v)), nil
}

func (v *DecimalNumber) UnmarshalJSON(b []byte) error {
	f, err := iso20022.UnmarshalDecimalJSON(b)
	*v = DecimalNumber(f)
	return err
}

// NonNegativeDecimalNumber is an xs:decimal with minInclusive 0.
type NonNegativeDecimalNumber float64

func (NonNegativeDecimalNumber) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "NonNegativeDecimalNumber", MinInclusive: nonNegative}
}
func (v NonNegativeDecimalNumber) Validate() error { return iso20022.Validate(v) }

func (v NonNegativeDecimalNumber) MarshalText() ([]byte, error) {
	return []byte(iso20022.FormatDecimal(float64(v))), nil
}

func (v *NonNegativeDecimalNumber) UnmarshalText(b []byte) error {
	f, err := iso20022.ParseDecimal(b)
	*v = NonNegativeDecimalNumber(f)
	return err
}

func (v NonNegativeDecimalNumber) MarshalJSON() ([]byte, error) {
	return iso20022.MarshalDecimalJSON(float64(v)), nil
}

func (v *NonNegativeDecimalNumber) UnmarshalJSON(b []byte) error {
	f, err := iso20022.UnmarshalDecimalJSON(b)
	*v = NonNegativeDecimalNumber(f)
	return err
}

// Number is an xs:decimal without fraction digits (sequence numbers, counts).
type Number float64

func (Number) Facets() iso20022.Facets { return iso20022.Facets{Type: "Number"} }
func (v Number) Validate() error { return nil }

func (v Number) MarshalText() ([]byte, error) {
	return []byte(iso20022.FormatDecimal(float64(v))), nil
}

func (v *Number) UnmarshalText(b []byte) error {
	f, err := iso20022.ParseDecimal(b)
	*v = Number(f)
	return err
}

func (v Number) MarshalJSON() ([]byte, error) {
	return iso20022.MarshalDecimalJSON(float64(v)), nil
}

func (v *Number) UnmarshalJSON(b []byte) error {
	f, err := iso20022.UnmarshalDecimalJSON(b)
	*v = Number(f)
	return err
}

// PercentageRate is a rate expressed as a percentage (5 = 5%).
type PercentageRate float64

func (PercentageRate) Facets() iso20022.Facets { return iso20022.Facets{Type: "PercentageRate"} }
func (v PercentageRate) Validate() error { return nil }

func (v PercentageRate) MarshalText() ([]byte, error) {
	return []byte(iso20022.FormatDecimal(float64(v))), nil
}

func (v *PercentageRate) UnmarshalText(b []byte) error {
	f, err := iso20022.ParseDecimal(b)
	*v = PercentageRate(f)
	return err
}

func (v PercentageRate) MarshalJSON() ([]byte, error) {
	return iso20022.MarshalDecimalJSON(float64(v)), nil
}

func (v *PercentageRate) UnmarshalJSON(b []byte) error {
	f, err := iso20022.UnmarshalDecimalJSON(b)
	*v = PercentageRate(f)
	return err
}

// ISODate is an xs:date (YYYY-MM-DD). The lexical value is kept as received.
type ISODate string

func (ISODate) Facets() iso20022.Facets { return iso20022.Facets{Type: "ISODate"} }
func (v ISODate) Validate() error { return nil }

// Time parses the date in UTC.
func (v ISODate) Time() (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(string(v)))
	if err != nil {
		return time.Time{}, fmt.Errorf("ISODate %q: %w", string(v), err)
	}
	return t, nil
}

// ISODateTime is an xs:dateTime. The zone designator is optional on the wire.
type ISODateTime string

func (ISODateTime) Facets() iso20022.Facets { return iso20022.Facets{Type: "ISODateTime"} }
func (v ISODateTime) Validate() error { return nil }

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// Time parses the timestamp. Values without a zone designator are read as UTC.
func (v ISODateTime) Time() (time.Time, error) {
	s := strings.TrimSpace(string(v))
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("ISODateTime %q: %w", string(v), err)
}

// DateTimeOf formats t the way ISODateTime values are written.
func DateTimeOf(t time.Time) ISODateTime { return ISODateTime(t.Format(time.RFC3339Nano)) }

// ISOYearMonth is an xs:gYearMonth (YYYY-MM).
type ISOYearMonth string

func (ISOYearMonth) Facets() iso20022.Facets { return iso20022.Facets{Type: "ISOYearMonth"} }
func (v ISOYearMonth) Validate() error { return nil }

// TrueFalseIndicator is an xs:boolean.
type TrueFalseIndicator bool

func (TrueFalseIndicator) Facets() iso20022.Facets { return iso20022.Facets{Type: "TrueFalseIndicator"} }
func (v TrueFalseIndicator) Validate() error { return nil }

// YesNoIndicator is an xs:boolean.
type YesNoIndicator bool

func (YesNoIndicator) Facets() iso20022.Facets { return iso20022.Facets{Type: "YesNoIndicator"} }
func (v YesNoIndicator) Validate() error { return nil }
