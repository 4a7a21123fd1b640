package camt

import (
	"github.com/reoring/isoskema/common"
)

// ReportEntry10 is one booked or pending entry on the account.
type ReportEntry10 struct {
	NtryRef       *common.Max35Text                        `xml:"NtryRef,omitempty" json:"NtryRef,omitempty"`
	Amt           common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd     common.CreditDebitCode                   `xml:"CdtDbtInd" json:"CdtDbtInd"`
	RvslInd       *common.TrueFalseIndicator               `xml:"RvslInd,omitempty" json:"RvslInd,omitempty"`
	Sts           EntryStatus1Choice                       `xml:"Sts" json:"Sts"`
	BookgDt       *common.DateAndDateTime2Choice           `xml:"BookgDt,omitempty" json:"BookgDt,omitempty"`
	ValDt         *common.DateAndDateTime2Choice           `xml:"ValDt,omitempty" json:"ValDt,omitempty"`
	AcctSvcrRef   *common.Max35Text                        `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	BkTxCd        BankTransactionCodeStructure4            `xml:"BkTxCd" json:"BkTxCd"`
	ComssnWvrInd  *common.YesNoIndicator                   `xml:"ComssnWvrInd,omitempty" json:"ComssnWvrInd,omitempty"`
	AddtlInfInd   *MessageIdentification2                  `xml:"AddtlInfInd,omitempty" json:"AddtlInfInd,omitempty"`
	TechInptChanl *TechnicalInputChannel1Choice            `xml:"TechInptChanl,omitempty" json:"TechInptChanl,omitempty"`
	NtryDtls      []EntryDetails9                          `xml:"NtryDtls,omitempty" json:"NtryDtls,omitempty"`
	AddtlNtryInf  *common.Max500Text                       `xml:"AddtlNtryInf,omitempty" json:"AddtlNtryInf,omitempty"`
}

type EntryStatus1Choice struct {
	Cd    *common.ExternalEntryStatus1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (EntryStatus1Choice) XSDChoice() {}

type TechnicalInputChannel1Choice struct {
	Cd    *common.ExternalTechnicalInputChannel1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (TechnicalInputChannel1Choice) XSDChoice() {}

// BankTransactionCodeStructure4 is the domain/family/sub-family code of an
// entry, or a proprietary code.
type BankTransactionCodeStructure4 struct {
	Domn  *BankTransactionCodeStructure5            `xml:"Domn,omitempty" json:"Domn,omitempty"`
	Prtry *ProprietaryBankTransactionCodeStructure1 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

type BankTransactionCodeStructure5 struct {
	Cd   common.ExternalBankTransactionDomain1Code `xml:"Cd" json:"Cd"`
	Fmly BankTransactionCodeStructure6             `xml:"Fmly" json:"Fmly"`
}

type BankTransactionCodeStructure6 struct {
	Cd        common.ExternalBankTransactionFamily1Code    `xml:"Cd" json:"Cd"`
	SubFmlyCd common.ExternalBankTransactionSubFamily1Code `xml:"SubFmlyCd" json:"SubFmlyCd"`
}

type ProprietaryBankTransactionCodeStructure1 struct {
	Cd   common.Max35Text  `xml:"Cd" json:"Cd"`
	Issr *common.Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

type MessageIdentification2 struct {
	MsgNmId *common.Max35Text `xml:"MsgNmId,omitempty" json:"MsgNmId,omitempty"`
	MsgId   *common.Max35Text `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
}

type EntryDetails9 struct {
	Btch   *BatchInformation2   `xml:"Btch,omitempty" json:"Btch,omitempty"`
	TxDtls []EntryTransaction10 `xml:"TxDtls,omitempty" json:"TxDtls,omitempty"`
}

type BatchInformation2 struct {
	MsgId     *common.Max35Text                         `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
	PmtInfId  *common.Max35Text                         `xml:"PmtInfId,omitempty" json:"PmtInfId,omitempty"`
	NbOfTxs   *common.Max15NumericText                  `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	TtlAmt    *common.ActiveOrHistoricCurrencyAndAmount `xml:"TtlAmt,omitempty" json:"TtlAmt,omitempty"`
	CdtDbtInd *common.CreditDebitCode                   `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
}

// EntryTransaction10 details one transaction inside an entry.
type EntryTransaction10 struct {
	Refs        *TransactionReferences6                   `xml:"Refs,omitempty" json:"Refs,omitempty"`
	Amt         *common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt,omitempty" json:"Amt,omitempty"`
	CdtDbtInd   *common.CreditDebitCode                   `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
	AmtDtls     *AmountAndCurrencyExchange3               `xml:"AmtDtls,omitempty" json:"AmtDtls,omitempty"`
	BkTxCd      *BankTransactionCodeStructure4            `xml:"BkTxCd,omitempty" json:"BkTxCd,omitempty"`
	RltdPties   *TransactionParties6                      `xml:"RltdPties,omitempty" json:"RltdPties,omitempty"`
	RltdAgts    *TransactionAgents5                       `xml:"RltdAgts,omitempty" json:"RltdAgts,omitempty"`
	LclInstrm   *LocalInstrument2Choice                   `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	Purp        *Purpose2Choice                           `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf      *RemittanceInformation16                  `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	RltdDts     *TransactionDates3                        `xml:"RltdDts,omitempty" json:"RltdDts,omitempty"`
	FinInstrmId *SecurityIdentification19                 `xml:"FinInstrmId,omitempty" json:"FinInstrmId,omitempty"`
	RtrInf      *PaymentReturnReason5                     `xml:"RtrInf,omitempty" json:"RtrInf,omitempty"`
	AddtlTxInf  *common.Max500Text                        `xml:"AddtlTxInf,omitempty" json:"AddtlTxInf,omitempty"`
	SplmtryData []common.SupplementaryData1               `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

type TransactionReferences6 struct {
	MsgId             *common.Max35Text        `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
	AcctSvcrRef       *common.Max35Text        `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	PmtInfId          *common.Max35Text        `xml:"PmtInfId,omitempty" json:"PmtInfId,omitempty"`
	InstrId           *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId        *common.Max35Text        `xml:"EndToEndId,omitempty" json:"EndToEndId,omitempty"`
	UETR              *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
	TxId              *common.Max35Text        `xml:"TxId,omitempty" json:"TxId,omitempty"`
	MndtId            *common.Max35Text        `xml:"MndtId,omitempty" json:"MndtId,omitempty"`
	ChqNb             *common.Max35Text        `xml:"ChqNb,omitempty" json:"ChqNb,omitempty"`
	ClrSysRef         *common.Max35Text        `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
	AcctOwnrTxId      *common.Max35Text        `xml:"AcctOwnrTxId,omitempty" json:"AcctOwnrTxId,omitempty"`
	AcctSvcrTxId      *common.Max35Text        `xml:"AcctSvcrTxId,omitempty" json:"AcctSvcrTxId,omitempty"`
	MktInfrstrctrTxId *common.Max35Text        `xml:"MktInfrstrctrTxId,omitempty" json:"MktInfrstrctrTxId,omitempty"`
	PrcgId            *common.Max35Text        `xml:"PrcgId,omitempty" json:"PrcgId,omitempty"`
	Prtry             []ProprietaryReference1  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

type ProprietaryReference1 struct {
	Tp  common.Max35Text `xml:"Tp" json:"Tp"`
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
}

type AmountAndCurrencyExchange3 struct {
	InstdAmt      *AmountAndCurrencyExchangeDetails3 `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	TxAmt         *AmountAndCurrencyExchangeDetails3 `xml:"TxAmt,omitempty" json:"TxAmt,omitempty"`
	CntrValAmt    *AmountAndCurrencyExchangeDetails3 `xml:"CntrValAmt,omitempty" json:"CntrValAmt,omitempty"`
	AnncdPstngAmt *AmountAndCurrencyExchangeDetails3 `xml:"AnncdPstngAmt,omitempty" json:"AnncdPstngAmt,omitempty"`
}

type AmountAndCurrencyExchangeDetails3 struct {
	Amt     common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CcyXchg *CurrencyExchange5                       `xml:"CcyXchg,omitempty" json:"CcyXchg,omitempty"`
}

type CurrencyExchange5 struct {
	SrcCcy   common.ActiveOrHistoricCurrencyCode  `xml:"SrcCcy" json:"SrcCcy"`
	TrgtCcy  *common.ActiveOrHistoricCurrencyCode `xml:"TrgtCcy,omitempty" json:"TrgtCcy,omitempty"`
	UnitCcy  *common.ActiveOrHistoricCurrencyCode `xml:"UnitCcy,omitempty" json:"UnitCcy,omitempty"`
	XchgRate common.DecimalNumber                 `xml:"XchgRate" json:"XchgRate"`
	CtrctId  *common.Max35Text                    `xml:"CtrctId,omitempty" json:"CtrctId,omitempty"`
	QtnDt    *common.ISODateTime                  `xml:"QtnDt,omitempty" json:"QtnDt,omitempty"`
}

// TransactionParties6 names the parties of a transaction.
type TransactionParties6 struct {
	InitgPty  *common.Party40Choice `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr      *common.Party40Choice `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct  *common.CashAccount38 `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	UltmtDbtr *common.Party40Choice `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Cdtr      *common.Party40Choice `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct  *common.CashAccount38 `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr *common.Party40Choice `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	TradgPty  *common.Party40Choice `xml:"TradgPty,omitempty" json:"TradgPty,omitempty"`
}

// TransactionAgents5 names the agents of a transaction.
type TransactionAgents5 struct {
	InstgAgt   *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt   *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	DbtrAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	CdtrAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	IntrmyAgt1 *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt2 *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt2,omitempty" json:"IntrmyAgt2,omitempty"`
	IntrmyAgt3 *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt3,omitempty" json:"IntrmyAgt3,omitempty"`
	RcvgAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"RcvgAgt,omitempty" json:"RcvgAgt,omitempty"`
	DlvrgAgt   *common.BranchAndFinancialInstitutionIdentification6 `xml:"DlvrgAgt,omitempty" json:"DlvrgAgt,omitempty"`
	IssgAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"IssgAgt,omitempty" json:"IssgAgt,omitempty"`
	SttlmPlc   *common.BranchAndFinancialInstitutionIdentification6 `xml:"SttlmPlc,omitempty" json:"SttlmPlc,omitempty"`
}

type LocalInstrument2Choice struct {
	Cd    *common.ExternalLocalInstrument1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (LocalInstrument2Choice) XSDChoice() {}

type Purpose2Choice struct {
	Cd    *common.ExternalPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (Purpose2Choice) XSDChoice() {}

// RemittanceInformation16 carries unstructured remittance lines.
// Structured remittance is not modelled.
type RemittanceInformation16 struct {
	Ustrd []common.Max140Text `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

type TransactionDates3 struct {
	AccptncDtTm   *common.ISODateTime `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	TradDt        *common.ISODate     `xml:"TradDt,omitempty" json:"TradDt,omitempty"`
	IntrBkSttlmDt *common.ISODate     `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	StartDt       *common.ISODate     `xml:"StartDt,omitempty" json:"StartDt,omitempty"`
	EndDt         *common.ISODate     `xml:"EndDt,omitempty" json:"EndDt,omitempty"`
	TxDtTm        *common.ISODateTime `xml:"TxDtTm,omitempty" json:"TxDtTm,omitempty"`
}

type SecurityIdentification19 struct {
	ISIN *common.ISINOct2015Identifier `xml:"ISIN,omitempty" json:"ISIN,omitempty"`
	Desc *common.Max140Text            `xml:"Desc,omitempty" json:"Desc,omitempty"`
}

type PaymentReturnReason5 struct {
	OrgnlBkTxCd *BankTransactionCodeStructure4 `xml:"OrgnlBkTxCd,omitempty" json:"OrgnlBkTxCd,omitempty"`
	Orgtr       *common.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn         *ReturnReason5Choice           `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf    []common.Max105Text            `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

type ReturnReason5Choice struct {
	Cd    *common.Max4Text  `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (ReturnReason5Choice) XSDChoice() {}
