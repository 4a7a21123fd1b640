package common

// AccountIdentification4Choice identifies an account by IBAN or by a
// proprietary scheme.
type AccountIdentification4Choice struct {
	IBAN *IBAN2007Identifier            `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (AccountIdentification4Choice) XSDChoice() {}

type GenericAccountIdentification1 struct {
	Id      Max34Text                 `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

type AccountSchemeName1Choice struct {
	Cd    *ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (AccountSchemeName1Choice) XSDChoice() {}

type CashAccountType2Choice struct {
	Cd    *ExternalCashAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (CashAccountType2Choice) XSDChoice() {}

type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id Max2048Text              `xml:"Id" json:"Id"`
}

type ProxyAccountType1Choice struct {
	Cd    *ExternalProxyAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (ProxyAccountType1Choice) XSDChoice() {}

// CashAccount38 is a cash account without owner and servicer details.
type CashAccount38 struct {
	Id   AccountIdentification4Choice  `xml:"Id" json:"Id"`
	Tp   *CashAccountType2Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}
