package camt

import (
	"github.com/reoring/isoskema/common"
)

// BankToCustomerDebitCreditNotificationV08 informs an account owner of
// single or multiple debit and/or credit entries.
type BankToCustomerDebitCreditNotificationV08 struct {
	GrpHdr      GroupHeader81               `xml:"GrpHdr" json:"GrpHdr"`
	Ntfctn      []AccountNotification17     `xml:"Ntfctn" json:"Ntfctn" iso20022:"required"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

type GroupHeader81 struct {
	MsgId       common.Max35Text               `xml:"MsgId" json:"MsgId"`
	CreDtTm     common.ISODateTime             `xml:"CreDtTm" json:"CreDtTm"`
	MsgRcpt     *common.PartyIdentification135 `xml:"MsgRcpt,omitempty" json:"MsgRcpt,omitempty"`
	MsgPgntn    *Pagination1                   `xml:"MsgPgntn,omitempty" json:"MsgPgntn,omitempty"`
	OrgnlBizQry *OriginalBusinessQuery1        `xml:"OrgnlBizQry,omitempty" json:"OrgnlBizQry,omitempty"`
	AddtlInf    *common.Max500Text             `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

type OriginalBusinessQuery1 struct {
	MsgId   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	MsgNmId *common.Max35Text   `xml:"MsgNmId,omitempty" json:"MsgNmId,omitempty"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
}

// AccountNotification17 reports the entries booked on one account.
type AccountNotification17 struct {
	Id             common.Max35Text           `xml:"Id" json:"Id"`
	NtfctnPgntn    *Pagination1               `xml:"NtfctnPgntn,omitempty" json:"NtfctnPgntn,omitempty"`
	ElctrncSeqNb   *common.Number             `xml:"ElctrncSeqNb,omitempty" json:"ElctrncSeqNb,omitempty"`
	RptgSeq        *SequenceRange1Choice      `xml:"RptgSeq,omitempty" json:"RptgSeq,omitempty"`
	LglSeqNb       *common.Number             `xml:"LglSeqNb,omitempty" json:"LglSeqNb,omitempty"`
	CreDtTm        *common.ISODateTime        `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	FrToDt         *common.DateTimePeriod1    `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	CpyDplctInd    *common.CopyDuplicate1Code `xml:"CpyDplctInd,omitempty" json:"CpyDplctInd,omitempty"`
	RptgSrc        *ReportingSource1Choice    `xml:"RptgSrc,omitempty" json:"RptgSrc,omitempty"`
	Acct           CashAccount39              `xml:"Acct" json:"Acct"`
	RltdAcct       *common.CashAccount38      `xml:"RltdAcct,omitempty" json:"RltdAcct,omitempty"`
	Intrst         []AccountInterest4         `xml:"Intrst,omitempty" json:"Intrst,omitempty"`
	TxsSummry      *TotalTransactions6        `xml:"TxsSummry,omitempty" json:"TxsSummry,omitempty"`
	Ntry           []ReportEntry10            `xml:"Ntry,omitempty" json:"Ntry,omitempty"`
	AddtlNtfctnInf *common.Max500Text         `xml:"AddtlNtfctnInf,omitempty" json:"AddtlNtfctnInf,omitempty"`
}

type SequenceRange1Choice struct {
	FrSeq   *common.Max35Text  `xml:"FrSeq,omitempty" json:"FrSeq,omitempty"`
	ToSeq   *common.Max35Text  `xml:"ToSeq,omitempty" json:"ToSeq,omitempty"`
	FrToSeq []SequenceRange1   `xml:"FrToSeq,omitempty" json:"FrToSeq,omitempty"`
	EQSeq   []common.Max35Text `xml:"EQSeq,omitempty" json:"EQSeq,omitempty"`
	NEQSeq  []common.Max35Text `xml:"NEQSeq,omitempty" json:"NEQSeq,omitempty"`
}

func (SequenceRange1Choice) XSDChoice() {}

type SequenceRange1 struct {
	FrSeq common.Max35Text `xml:"FrSeq" json:"FrSeq"`
	ToSeq common.Max35Text `xml:"ToSeq" json:"ToSeq"`
}

type ReportingSource1Choice struct {
	Cd    *common.ExternalReportingSource1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (ReportingSource1Choice) XSDChoice() {}

// CashAccount39 is the reported account, including owner and servicer.
type CashAccount39 struct {
	Id   common.AccountIdentification4Choice                  `xml:"Id" json:"Id"`
	Tp   *common.CashAccountType2Choice                       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *common.ActiveOrHistoricCurrencyCode                 `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *common.Max70Text                                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *common.ProxyAccountIdentification1                  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
	Ownr *common.PartyIdentification135                       `xml:"Ownr,omitempty" json:"Ownr,omitempty"`
	Svcr *common.BranchAndFinancialInstitutionIdentification6 `xml:"Svcr,omitempty" json:"Svcr,omitempty"`
}

type AccountInterest4 struct {
	Tp     *InterestType1Choice    `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Rate   []Rate4                 `xml:"Rate,omitempty" json:"Rate,omitempty"`
	FrToDt *common.DateTimePeriod1 `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	Rsn    *common.Max35Text       `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	Tax    *TaxCharges2            `xml:"Tax,omitempty" json:"Tax,omitempty"`
}

type InterestType1Choice struct {
	Cd    *common.InterestType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (InterestType1Choice) XSDChoice() {}

type Rate4 struct {
	Tp RateType4Choice `xml:"Tp" json:"Tp"`
}

type RateType4Choice struct {
	Pctg *common.PercentageRate `xml:"Pctg,omitempty" json:"Pctg,omitempty"`
	Othr *common.Max35Text      `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (RateType4Choice) XSDChoice() {}

type TaxCharges2 struct {
	Id   *common.Max35Text                         `xml:"Id,omitempty" json:"Id,omitempty"`
	Rate *common.PercentageRate                    `xml:"Rate,omitempty" json:"Rate,omitempty"`
	Amt  *common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt,omitempty" json:"Amt,omitempty"`
}

// TotalTransactions6 summarises the entries of a notification.
type TotalTransactions6 struct {
	TtlNtries          *NumberAndSumOfTransactions4    `xml:"TtlNtries,omitempty" json:"TtlNtries,omitempty"`
	TtlCdtNtries       *NumberAndSumOfTransactions1    `xml:"TtlCdtNtries,omitempty" json:"TtlCdtNtries,omitempty"`
	TtlDbtNtries       *NumberAndSumOfTransactions1    `xml:"TtlDbtNtries,omitempty" json:"TtlDbtNtries,omitempty"`
	TtlNtriesPerBkTxCd []TotalsPerBankTransactionCode5 `xml:"TtlNtriesPerBkTxCd,omitempty" json:"TtlNtriesPerBkTxCd,omitempty"`
}

type NumberAndSumOfTransactions4 struct {
	NbOfNtries *common.Max15NumericText     `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum        *common.DecimalNumber        `xml:"Sum,omitempty" json:"Sum,omitempty"`
	TtlNetNtry *common.AmountAndDirection35 `xml:"TtlNetNtry,omitempty" json:"TtlNetNtry,omitempty"`
}

type NumberAndSumOfTransactions1 struct {
	NbOfNtries *common.Max15NumericText `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum        *common.DecimalNumber    `xml:"Sum,omitempty" json:"Sum,omitempty"`
}

type TotalsPerBankTransactionCode5 struct {
	NbOfNtries *common.Max15NumericText       `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum        *common.DecimalNumber          `xml:"Sum,omitempty" json:"Sum,omitempty"`
	TtlNetNtry *common.AmountAndDirection35   `xml:"TtlNetNtry,omitempty" json:"TtlNetNtry,omitempty"`
	CdtNtries  *NumberAndSumOfTransactions1   `xml:"CdtNtries,omitempty" json:"CdtNtries,omitempty"`
	DbtNtries  *NumberAndSumOfTransactions1   `xml:"DbtNtries,omitempty" json:"DbtNtries,omitempty"`
	FcstInd    *common.TrueFalseIndicator     `xml:"FcstInd,omitempty" json:"FcstInd,omitempty"`
	BkTxCd     BankTransactionCodeStructure4  `xml:"BkTxCd" json:"BkTxCd"`
	Dt         *common.DateAndDateTime2Choice `xml:"Dt,omitempty" json:"Dt,omitempty"`
}

type Pagination1 struct {
	PgNb      common.Max5NumericText `xml:"PgNb" json:"PgNb"`
	LastPgInd common.YesNoIndicator  `xml:"LastPgInd" json:"LastPgInd"`
}
