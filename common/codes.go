package common

import (
	iso20022 "github.com/reoring/isoskema"
)

var (
	creditDebitCodes      = iso20022.NewEnumSet("CreditDebitCode", "CRDT", "DBIT")
	copyDuplicateCodes    = iso20022.NewEnumSet("CopyDuplicate1Code", "CODU", "COPY", "DUPL")
	addressTypeCodes      = iso20022.NewEnumSet("AddressType2Code", "ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY")
	namePrefixCodes       = iso20022.NewEnumSet("NamePrefix2Code", "DOCT", "MADM", "MISS", "MIST", "MIKS")
	preferredContactCodes = iso20022.NewEnumSet("PreferredContactMethod1Code", "LETT", "MAIL", "PHON", "FAXX", "CELL")
	interestTypeCodes     = iso20022.NewEnumSet("InterestType1Code", "INDY", "OVRN")
)

// CreditDebitCode tells whether an entry is a credit or a debit.
type CreditDebitCode string

const (
	Credit CreditDebitCode = "CRDT"
	Debit  CreditDebitCode = "DBIT"
)

func (CreditDebitCode) EnumSet() *iso20022.EnumSet { return creditDebitCodes }
func (v CreditDebitCode) Validate() error { return iso20022.Validate(v) }

func (v *CreditDebitCode) UnmarshalText(b []byte) error {
	s, err := creditDebitCodes.Parse(b)
	*v = CreditDebitCode(s)
	return err
}

// CopyDuplicate1Code qualifies a message as a copy or duplicate.
type CopyDuplicate1Code string

const (
	CopyDuplicate CopyDuplicate1Code = "CODU"
	Copy          CopyDuplicate1Code = "COPY"
	Duplicate     CopyDuplicate1Code = "DUPL"
)

func (CopyDuplicate1Code) EnumSet() *iso20022.EnumSet { return copyDuplicateCodes }
func (v CopyDuplicate1Code) Validate() error { return iso20022.Validate(v) }

func (v *CopyDuplicate1Code) UnmarshalText(b []byte) error {
	s, err := copyDuplicateCodes.Parse(b)
	*v = CopyDuplicate1Code(s)
	return err
}

type AddressType2Code string

const (
	AddressPostal      AddressType2Code = "ADDR"
	AddressPOBox       AddressType2Code = "PBOX"
	AddressResidential AddressType2Code = "HOME"
	AddressBusiness    AddressType2Code = "BIZZ"
	AddressMailTo      AddressType2Code = "MLTO"
	AddressDeliveryTo  AddressType2Code = "DLVY"
)

func (AddressType2Code) EnumSet() *iso20022.EnumSet { return addressTypeCodes }
func (v AddressType2Code) Validate() error { return iso20022.Validate(v) }

func (v *AddressType2Code) UnmarshalText(b []byte) error {
	s, err := addressTypeCodes.Parse(b)
	*v = AddressType2Code(s)
	return err
}

type NamePrefix2Code string

func (NamePrefix2Code) EnumSet() *iso20022.EnumSet { return namePrefixCodes }
func (v NamePrefix2Code) Validate() error { return iso20022.Validate(v) }

func (v *NamePrefix2Code) UnmarshalText(b []byte) error {
	s, err := namePrefixCodes.Parse(b)
	*v = NamePrefix2Code(s)
	return err
}

type PreferredContactMethod1Code string

func (PreferredContactMethod1Code) EnumSet() *iso20022.EnumSet { return preferredContactCodes }
func (v PreferredContactMethod1Code) Validate() error { return iso20022.Validate(v) }

func (v *PreferredContactMethod1Code) UnmarshalText(b []byte) error {
	s, err := preferredContactCodes.Parse(b)
	*v = PreferredContactMethod1Code(s)
	return err
}

// InterestType1Code distinguishes intraday from overnight interest.
type InterestType1Code string

func (InterestType1Code) EnumSet() *iso20022.EnumSet { return interestTypeCodes }
func (v InterestType1Code) Validate() error { return iso20022.Validate(v) }

func (v *InterestType1Code) UnmarshalText(b []byte) error {
	s, err := interestTypeCodes.Parse(b)
	*v = InterestType1Code(s)
	return err
}

// External code lists are published outside the schema; only their length is
// checked here.
var (
	external4  = text("ExternalCode", 4)
	external5  = text("ExternalCode", 5)
	external35 = text("ExternalCode", 35)
)

type ExternalAccountIdentification1Code string

func (ExternalAccountIdentification1Code) Facets() iso20022.Facets { return named(external4, "ExternalAccountIdentification1Code") }

type ExternalCashAccountType1Code string

func (ExternalCashAccountType1Code) Facets() iso20022.Facets { return named(external4, "ExternalCashAccountType1Code") }

type ExternalClearingSystemIdentification1Code string

func (ExternalClearingSystemIdentification1Code) Facets() iso20022.Facets {
	return named(external5, "ExternalClearingSystemIdentification1Code")
}

type ExternalOrganisationIdentification1Code string

func (ExternalOrganisationIdentification1Code) Facets() iso20022.Facets {
	return named(external4, "ExternalOrganisationIdentification1Code")
}

type ExternalPersonIdentification1Code string

func (ExternalPersonIdentification1Code) Facets() iso20022.Facets { return named(external4, "ExternalPersonIdentification1Code") }

type ExternalProxyAccountType1Code string

func (ExternalProxyAccountType1Code) Facets() iso20022.Facets { return named(external4, "ExternalProxyAccountType1Code") }

type ExternalFinancialInstitutionIdentification1Code string

func (ExternalFinancialInstitutionIdentification1Code) Facets() iso20022.Facets {
	return named(external4, "ExternalFinancialInstitutionIdentification1Code")
}

type ExternalBankTransactionDomain1Code string

func (ExternalBankTransactionDomain1Code) Facets() iso20022.Facets { return named(external4, "ExternalBankTransactionDomain1Code") }

type ExternalBankTransactionFamily1Code string

func (ExternalBankTransactionFamily1Code) Facets() iso20022.Facets { return named(external4, "ExternalBankTransactionFamily1Code") }

type ExternalBankTransactionSubFamily1Code string

func (ExternalBankTransactionSubFamily1Code) Facets() iso20022.Facets {
	return named(external4, "ExternalBankTransactionSubFamily1Code")
}

type ExternalEntryStatus1Code string

func (ExternalEntryStatus1Code) Facets() iso20022.Facets { return named(external4, "ExternalEntryStatus1Code") }

type ExternalReportingSource1Code string

func (ExternalReportingSource1Code) Facets() iso20022.Facets { return named(external4, "ExternalReportingSource1Code") }

type ExternalTechnicalInputChannel1Code string

func (ExternalTechnicalInputChannel1Code) Facets() iso20022.Facets { return named(external4, "ExternalTechnicalInputChannel1Code") }

type ExternalPurpose1Code string

func (ExternalPurpose1Code) Facets() iso20022.Facets { return named(external4, "ExternalPurpose1Code") }

type ExternalLocalInstrument1Code string

func (ExternalLocalInstrument1Code) Facets() iso20022.Facets { return named(external35, "ExternalLocalInstrument1Code") }

func named(f iso20022.Facets, name string) iso20022.Facets {
	f.Type = name
	return f
}
