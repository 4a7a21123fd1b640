package common

// ActiveOrHistoricCurrencyAndAmount is a non-negative amount with its
// currency carried in the Ccy attribute: <Amt Ccy="EUR">12.5</Amt>.
type ActiveOrHistoricCurrencyAndAmount struct {
	Value ActiveOrHistoricCurrencyAndAmountSimpleType `xml:",chardata" json:"$value"`
	Ccy   ActiveOrHistoricCurrencyCode                `xml:"Ccy,attr" json:"Ccy"`
}

// ActiveCurrencyAndAmount is ActiveOrHistoricCurrencyAndAmount restricted to
// currencies in use.
type ActiveCurrencyAndAmount struct {
	Value ActiveCurrencyAndAmountSimpleType `xml:",chardata" json:"$value"`
	Ccy   ActiveCurrencyCode                `xml:"Ccy,attr" json:"Ccy"`
}

// AmountAndDirection35 is an unsigned amount with an explicit direction.
type AmountAndDirection35 struct {
	Amt       NonNegativeDecimalNumber `xml:"Amt" json:"Amt"`
	CdtDbtInd CreditDebitCode          `xml:"CdtDbtInd" json:"CdtDbtInd"`
}

// DateAndDateTime2Choice carries either a date or a date and time.
type DateAndDateTime2Choice struct {
	Dt   *ISODate     `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *ISODateTime `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (DateAndDateTime2Choice) XSDChoice() {}

type DateTimePeriod1 struct {
	FrDtTm ISODateTime `xml:"FrDtTm" json:"FrDtTm"`
	ToDtTm ISODateTime `xml:"ToDtTm" json:"ToDtTm"`
}

type DatePeriod2 struct {
	FrDt ISODate `xml:"FrDt" json:"FrDt"`
	ToDt ISODate `xml:"ToDt" json:"ToDt"`
}

// SupplementaryData1 carries market-specific extensions. The envelope content
// is kept verbatim.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

// SupplementaryDataEnvelope1 holds any well-formed XML. In JSON the raw XML
// travels as a string under "$xml".
type SupplementaryDataEnvelope1 struct {
	XML string `xml:",innerxml" json:"$xml,omitempty"`
}

// SignatureEnvelope holds an XML signature, kept verbatim.
type SignatureEnvelope struct {
	XML string `xml:",innerxml" json:"$xml,omitempty"`
}
