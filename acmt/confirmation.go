package acmt

import (
	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/common"
)

// AccountDetailsConfirmationV08 confirms the opening or modification of an
// account and reports its details.
type AccountDetailsConfirmationV08 struct {
	MsgId        MessageIdentification1         `xml:"MsgId" json:"MsgId"`
	OrdrRef      *InvestmentFundOrder4          `xml:"OrdrRef,omitempty" json:"OrdrRef,omitempty"`
	RltdRef      *AdditionalReference13         `xml:"RltdRef,omitempty" json:"RltdRef,omitempty"`
	ConfDtls     AccountManagementConfirmation5 `xml:"ConfDtls" json:"ConfDtls"`
	InvstmtAcct  *InvestmentAccount74           `xml:"InvstmtAcct,omitempty" json:"InvstmtAcct,omitempty"`
	MktPrctcVrsn *MarketPracticeVersion1        `xml:"MktPrctcVrsn,omitempty" json:"MktPrctcVrsn,omitempty"`
	Xtnsn        []Extension1                   `xml:"Xtnsn,omitempty" json:"Xtnsn,omitempty"`
}

type MessageIdentification1 struct {
	Id      common.Max35Text   `xml:"Id" json:"Id"`
	CreDtTm common.ISODateTime `xml:"CreDtTm" json:"CreDtTm"`
}

type InvestmentFundOrder4 struct {
	OrdrRef common.Max35Text  `xml:"OrdrRef" json:"OrdrRef"`
	MstrRef *common.Max35Text `xml:"MstrRef,omitempty" json:"MstrRef,omitempty"`
}

type AdditionalReference13 struct {
	Ref     common.Max35Text              `xml:"Ref" json:"Ref"`
	RefIssr *PartyIdentification125Choice `xml:"RefIssr,omitempty" json:"RefIssr,omitempty"`
	MsgNm   *common.Max35Text             `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
}

// PartyIdentification125Choice identifies the issuer of a reference.
type PartyIdentification125Choice struct {
	AnyBIC   *common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryId  *common.GenericIdentification1  `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *common.NameAndAddress5         `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (PartyIdentification125Choice) XSDChoice() {}

// AccountManagementConfirmation5 says which instruction is being confirmed.
type AccountManagementConfirmation5 struct {
	ConfTp     AccountManagementType3Code `xml:"ConfTp" json:"ConfTp"`
	AcctApplId *common.Max35Text          `xml:"AcctApplId,omitempty" json:"AcctApplId,omitempty"`
	ClntRef    *common.Max35Text          `xml:"ClntRef,omitempty" json:"ClntRef,omitempty"`
	CtrPtyRef  *AdditionalReference13     `xml:"CtrPtyRef,omitempty" json:"CtrPtyRef,omitempty"`
	AcctId     *common.Max35Text          `xml:"AcctId,omitempty" json:"AcctId,omitempty"`
}

type InvestmentAccount74 struct {
	AcctId                 *common.Max35Text                    `xml:"AcctId,omitempty" json:"AcctId,omitempty"`
	AcctNm                 *common.Max35Text                    `xml:"AcctNm,omitempty" json:"AcctNm,omitempty"`
	AcctDsgnt              *common.Max35Text                    `xml:"AcctDsgnt,omitempty" json:"AcctDsgnt,omitempty"`
	RefCcy                 *common.ActiveOrHistoricCurrencyCode `xml:"RefCcy,omitempty" json:"RefCcy,omitempty"`
	RptgCcy                *common.ActiveCurrencyCode           `xml:"RptgCcy,omitempty" json:"RptgCcy,omitempty"`
	OpngDt                 *common.ISODate                      `xml:"OpngDt,omitempty" json:"OpngDt,omitempty"`
	ClsgDt                 *common.ISODate                      `xml:"ClsgDt,omitempty" json:"ClsgDt,omitempty"`
	AcctSvcr               *PartyIdentification125Choice        `xml:"AcctSvcr,omitempty" json:"AcctSvcr,omitempty"`
	PwrOfAttnyLvlOfCtrlInd *common.YesNoIndicator               `xml:"PwrOfAttnyLvlOfCtrlInd,omitempty" json:"PwrOfAttnyLvlOfCtrlInd,omitempty"`
}

type MarketPracticeVersion1 struct {
	Nm common.Max35Text     `xml:"Nm" json:"Nm"`
	Dt *common.ISOYearMonth `xml:"Dt,omitempty" json:"Dt,omitempty"`
	Nb *common.Max35Text    `xml:"Nb,omitempty" json:"Nb,omitempty"`
}

type Extension1 struct {
	PlcAndNm common.Max350Text `xml:"PlcAndNm" json:"PlcAndNm"`
	Txt      common.Max350Text `xml:"Txt" json:"Txt"`
}

var accountManagementTypes = iso20022.NewEnumSet("AccountManagementType3Code", "ACCM", "ACCO", "GACC", "ACST")

// AccountManagementType3Code is the kind of account management instruction.
type AccountManagementType3Code string

const (
	AccountModification AccountManagementType3Code = "ACCM"
	AccountOpening      AccountManagementType3Code = "ACCO"
	GetAccountDetails   AccountManagementType3Code = "GACC"
	AccountStatus       AccountManagementType3Code = "ACST"
)

func (AccountManagementType3Code) EnumSet() *iso20022.EnumSet { return accountManagementTypes }
func (v AccountManagementType3Code) Validate() error { return iso20022.Validate(v) }

func (v *AccountManagementType3Code) UnmarshalText(b []byte) error {
	s, err := accountManagementTypes.Parse(b)
	*v = AccountManagementType3Code(s)
	return err
}
