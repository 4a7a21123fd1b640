// Package common holds the simple types, code lists and components shared by
// the ISO 20022 message packages.
package common

import (
	iso20022 "github.com/reoring/isoskema"
)

var (
	patCountryCode     = iso20022.MustRegisterPattern("CountryCode", `[A-Z]{2,2}`)
	patCurrencyCode    = iso20022.MustRegisterPattern("ActiveOrHistoricCurrencyCode", `[A-Z]{3,3}`)
	patActiveCurrency  = iso20022.MustRegisterPattern("ActiveCurrencyCode", `[A-Z]{3,3}`)
	patIBAN            = iso20022.MustRegisterPattern("IBAN2007Identifier", `[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)
	patBICFI           = iso20022.MustRegisterPattern("BICFIDec2014Identifier", `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	patAnyBIC          = iso20022.MustRegisterPattern("AnyBICDec2014Identifier", `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	patLEI             = iso20022.MustRegisterPattern("LEIIdentifier", `[A-Z0-9]{18,18}[0-9]{2,2}`)
	patUUIDv4          = iso20022.MustRegisterPattern("UUIDv4Identifier", `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`)
	patPhoneNumber     = iso20022.MustRegisterPattern("PhoneNumber", `\+[0-9]{1,3}-[0-9()+\-]{1,30}`)
	patUTI             = iso20022.MustRegisterPattern("UTIIdentifier", `[A-Z0-9]{18}[0-9]{2}[A-Z0-9]{0,32}`)
	patISIN            = iso20022.MustRegisterPattern("ISINOct2015Identifier", `[A-Z]{2,2}[A-Z0-9]{9,9}[0-9]{1,1}`)
	patExact4AlphaNum  = iso20022.MustRegisterPattern("Exact4AlphaNumericText", `[a-zA-Z0-9]{4}`)
	patMax5NumericText = iso20022.MustRegisterPattern("Max5NumericText", `[0-9]{1,5}`)
	patMax15Numeric    = iso20022.MustRegisterPattern("Max15NumericText", `[0-9]{1,15}`)
)

func text(name string, max int) iso20022.Facets {
	return iso20022.Facets{Type: name, MinLength: 1, MaxLength: max}
}

var (
	max4Text    = text("Max4Text", 4)
	max16Text   = text("Max16Text", 16)
	max34Text   = text("Max34Text", 34)
	max35Text   = text("Max35Text", 35)
	max50Text   = text("Max50Text", 50)
	max52Text   = text("Max52Text", 52)
	max70Text   = text("Max70Text", 70)
	max72Text   = text("Max72Text", 72)
	max105Text  = text("Max105Text", 105)
	max128Text  = text("Max128Text", 128)
	max140Text  = text("Max140Text", 140)
	max350Text  = text("Max350Text", 350)
	max500Text  = text("Max500Text", 500)
	max2048Text = text("Max2048Text", 2048)
)

// Max4Text is a text of 1 to 4 characters.
type Max4Text string

func (Max4Text) Facets() iso20022.Facets { return max4Text }
func (v Max4Text) Validate() error { return iso20022.Validate(v) }

// Max16Text is a text of 1 to 16 characters.
type Max16Text string

func (Max16Text) Facets() iso20022.Facets { return max16Text }
func (v Max16Text) Validate() error { return iso20022.Validate(v) }

// Max34Text is a text of 1 to 34 characters.
type Max34Text string

func (Max34Text) Facets() iso20022.Facets { return max34Text }
func (v Max34Text) Validate() error { return iso20022.Validate(v) }

// Max35Text is a text of 1 to 35 characters.
type Max35Text string

func (Max35Text) Facets() iso20022.Facets { return max35Text }
func (v Max35Text) Validate() error { return iso20022.Validate(v) }

type Max50Text string

func (Max50Text) Facets() iso20022.Facets { return max50Text }
func (v Max50Text) Validate() error { return iso20022.Validate(v) }

type Max52Text string

func (Max52Text) Facets() iso20022.Facets { return max52Text }
func (v Max52Text) Validate() error { return iso20022.Validate(v) }

type Max70Text string

func (Max70Text) Facets() iso20022.Facets { return max70Text }
func (v Max70Text) Validate() error { return iso20022.Validate(v) }

type Max72Text string

func (Max72Text) Facets() iso20022.Facets { return max72Text }
func (v Max72Text) Validate() error { return iso20022.Validate(v) }

type Max105Text string

func (Max105Text) Facets() iso20022.Facets { return max105Text }
func (v Max105Text) Validate() error { return iso20022.Validate(v) }

type Max128Text string

func (Max128Text) Facets() iso20022.Facets { return max128Text }
func (v Max128Text) Validate() error { return iso20022.Validate(v) }

type Max140Text string

func (Max140Text) Facets() iso20022.Facets { return max140Text }
func (v Max140Text) Validate() error { return iso20022.Validate(v) }

type Max350Text string

func (Max350Text) Facets() iso20022.Facets { return max350Text }
func (v Max350Text) Validate() error { return iso20022.Validate(v) }

type Max500Text string

func (Max500Text) Facets() iso20022.Facets { return max500Text }
func (v Max500Text) Validate() error { return iso20022.Validate(v) }

type Max2048Text string

func (Max2048Text) Facets() iso20022.Facets { return max2048Text }
func (v Max2048Text) Validate() error { return iso20022.Validate(v) }

// Exact4AlphaNumericText is exactly four ASCII letters or digits.
type Exact4AlphaNumericText string

func (Exact4AlphaNumericText) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "Exact4AlphaNumericText", Pattern: patExact4AlphaNum}
}
func (v Exact4AlphaNumericText) Validate() error { return iso20022.Validate(v) }

// Max5NumericText is a string of one to five digits, used for page numbers.
type Max5NumericText string

func (Max5NumericText) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "Max5NumericText", Pattern: patMax5NumericText}
}
func (v Max5NumericText) Validate() error { return iso20022.Validate(v) }

// Max15NumericText is a string of one to fifteen digits.
type Max15NumericText string

func (Max15NumericText) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "Max15NumericText", Pattern: patMax15Numeric}
}
func (v Max15NumericText) Validate() error { return iso20022.Validate(v) }

// CountryCode is an ISO 3166 alpha-2 code.
type CountryCode string

func (CountryCode) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "CountryCode", Pattern: patCountryCode}
}
func (v CountryCode) Validate() error { return iso20022.Validate(v) }

// ActiveOrHistoricCurrencyCode is an ISO 4217 alpha-3 code, including
// withdrawn currencies.
type ActiveOrHistoricCurrencyCode string

func (ActiveOrHistoricCurrencyCode) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "ActiveOrHistoricCurrencyCode", Pattern: patCurrencyCode}
}
func (v ActiveOrHistoricCurrencyCode) Validate() error { return iso20022.Validate(v) }

// ActiveCurrencyCode is an ISO 4217 alpha-3 code of a currency in use.
type ActiveCurrencyCode string

func (ActiveCurrencyCode) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "ActiveCurrencyCode", Pattern: patActiveCurrency}
}
func (v ActiveCurrencyCode) Validate() error { return iso20022.Validate(v) }

// IBAN2007Identifier is an International Bank Account Number. Only the shape
// is checked; the mod-97 check digits are not.
type IBAN2007Identifier string

func (IBAN2007Identifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "IBAN2007Identifier", Pattern: patIBAN}
}
func (v IBAN2007Identifier) Validate() error { return iso20022.Validate(v) }

// BICFIDec2014Identifier is the BIC of a financial institution.
type BICFIDec2014Identifier string

func (BICFIDec2014Identifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "BICFIDec2014Identifier", Pattern: patBICFI}
}
func (v BICFIDec2014Identifier) Validate() error { return iso20022.Validate(v) }

// AnyBICDec2014Identifier is a BIC of any party.
type AnyBICDec2014Identifier string

func (AnyBICDec2014Identifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "AnyBICDec2014Identifier", Pattern: patAnyBIC}
}
func (v AnyBICDec2014Identifier) Validate() error { return iso20022.Validate(v) }

// LEIIdentifier is an ISO 17442 Legal Entity Identifier.
type LEIIdentifier string

func (LEIIdentifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "LEIIdentifier", Pattern: patLEI}
}
func (v LEIIdentifier) Validate() error { return iso20022.Validate(v) }

// UUIDv4Identifier is a lower-case RFC 4122 version 4 UUID (the UETR).
type UUIDv4Identifier string

func (UUIDv4Identifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "UUIDv4Identifier", Pattern: patUUIDv4}
}
func (v UUIDv4Identifier) Validate() error { return iso20022.Validate(v) }

// PhoneNumber is "+" country code "-" number, e.g. +1-212-5551234.
type PhoneNumber string

func (PhoneNumber) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "PhoneNumber", Pattern: patPhoneNumber}
}
func (v PhoneNumber) Validate() error { return iso20022.Validate(v) }

// UTIIdentifier is a Unique Transaction Identifier.
type UTIIdentifier string

func (UTIIdentifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "UTIIdentifier", Pattern: patUTI}
}
func (v UTIIdentifier) Validate() error { return iso20022.Validate(v) }

// ISINOct2015Identifier is an ISO 6166 International Securities Identification Number.
type ISINOct2015Identifier string

func (ISINOct2015Identifier) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "ISINOct2015Identifier", Pattern: patISIN}
}
func (v ISINOct2015Identifier) Validate() error { return iso20022.Validate(v) }
