package auth

import (
	"github.com/reoring/isoskema/common"
)

type DerivativesTradeReconciliationStatisticalReportV03 struct {
	RcncltnSttstcs StatisticsPerCounterparty19Choice `xml:"RcncltnSttstcs" json:"RcncltnSttstcs"`
	SplmtryData    []common.SupplementaryData1       `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

// StatisticsPerCounterparty19Choice either reports that nothing happened in
// the period or carries the per-counterparty statistics.
type StatisticsPerCounterparty19Choice struct {
	DataSetActn *ReportPeriodActivity1Code                 `xml:"DataSetActn,omitempty" json:"DataSetActn,omitempty"`
	Rpt         []ReconciliationStatisticsPerCounterparty4 `xml:"Rpt,omitempty" json:"Rpt,omitempty"`
}

func (StatisticsPerCounterparty19Choice) XSDChoice() {}

type ReconciliationStatisticsPerCounterparty4 struct {
	RefDt        common.ISODate                              `xml:"RefDt" json:"RefDt"`
	RcncltnCtgrs ReportingRequirement3Choice                 `xml:"RcncltnCtgrs" json:"RcncltnCtgrs"`
	TtlNbOfTxs   common.Number                               `xml:"TtlNbOfTxs" json:"TtlNbOfTxs"`
	TxDtls       []ReconciliationCounterpartyPairStatistics7 `xml:"TxDtls,omitempty" json:"TxDtls,omitempty"`
}

type ReportingRequirement3Choice struct {
	RptgRqrmnt   *ReconciliationCategory5 `xml:"RptgRqrmnt,omitempty" json:"RptgRqrmnt,omitempty"`
	NoRptgRqrmnt *ReconciliationCategory4 `xml:"NoRptgRqrmnt,omitempty" json:"NoRptgRqrmnt,omitempty"`
}

func (ReportingRequirement3Choice) XSDChoice() {}

// ReconciliationCategory5 classifies the reconciliation outcome of a set of
// trades.
type ReconciliationCategory5 struct {
	RptgTp       TradeRepositoryReportingType1Code `xml:"RptgTp" json:"RptgTp"`
	Pairg        PairingStatus1Code                `xml:"Pairg" json:"Pairg"`
	Rcncltn      ReconciliationStatus2Code         `xml:"Rcncltn" json:"Rcncltn"`
	ValtnRcncltn ReconciliationStatus1Code         `xml:"ValtnRcncltn" json:"ValtnRcncltn"`
	Rvvd         common.TrueFalseIndicator         `xml:"Rvvd" json:"Rvvd"`
	FrthrMod     common.TrueFalseIndicator         `xml:"FrthrMod" json:"FrthrMod"`
}

type ReconciliationCategory4 struct {
	Rvvd     common.TrueFalseIndicator `xml:"Rvvd" json:"Rvvd"`
	FrthrMod common.TrueFalseIndicator `xml:"FrthrMod" json:"FrthrMod"`
}

type ReconciliationCounterpartyPairStatistics7 struct {
	CtrPtyId   CounterpartyData91       `xml:"CtrPtyId" json:"CtrPtyId"`
	TtlNbOfTxs common.Number            `xml:"TtlNbOfTxs" json:"TtlNbOfTxs"`
	RcncltnRpt []ReconciliationReport15 `xml:"RcncltnRpt" json:"RcncltnRpt" iso20022:"required"`
}

type CounterpartyData91 struct {
	RptgCtrPty        *OrganisationIdentification15Choice `xml:"RptgCtrPty,omitempty" json:"RptgCtrPty,omitempty"`
	OthrCtrPty        *PartyIdentification236Choice       `xml:"OthrCtrPty,omitempty" json:"OthrCtrPty,omitempty"`
	RptSubmitgNtty    *OrganisationIdentification15Choice `xml:"RptSubmitgNtty,omitempty" json:"RptSubmitgNtty,omitempty"`
	NttyRspnsblForRpt *OrganisationIdentification15Choice `xml:"NttyRspnsblForRpt,omitempty" json:"NttyRspnsblForRpt,omitempty"`
}

// OrganisationIdentification15Choice identifies a legal entity, preferably by
// its LEI.
type OrganisationIdentification15Choice struct {
	LEI    *common.LEIIdentifier           `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   *OrganisationIdentification38   `xml:"Othr,omitempty" json:"Othr,omitempty"`
	AnyBIC *common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
}

func (OrganisationIdentification15Choice) XSDChoice() {}

type OrganisationIdentification38 struct {
	Id   GenericIdentification175 `xml:"Id" json:"Id"`
	Nm   *common.Max105Text       `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Dmcl *common.Max500Text       `xml:"Dmcl,omitempty" json:"Dmcl,omitempty"`
}

type PartyIdentification236Choice struct {
	Lgl  *OrganisationIdentification15Choice `xml:"Lgl,omitempty" json:"Lgl,omitempty"`
	Ntrl *NaturalPersonIdentification2       `xml:"Ntrl,omitempty" json:"Ntrl,omitempty"`
}

func (PartyIdentification236Choice) XSDChoice() {}

type NaturalPersonIdentification2 struct {
	Id   GenericIdentification175 `xml:"Id" json:"Id"`
	Nm   *common.Max105Text       `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Dmcl *common.Max500Text       `xml:"Dmcl,omitempty" json:"Dmcl,omitempty"`
}

type GenericIdentification175 struct {
	Id      common.Max72Text  `xml:"Id" json:"Id"`
	SchmeNm *common.Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *common.Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

// ReconciliationReport15 reports the matching result of one trade.
type ReconciliationReport15 struct {
	TxId      TradeTransactionIdentification24 `xml:"TxId" json:"TxId"`
	MtchgCrit MatchingCriteria17               `xml:"MtchgCrit" json:"MtchgCrit"`
}

type TradeTransactionIdentification24 struct {
	TechRcrdId     *common.Max140Text                  `xml:"TechRcrdId,omitempty" json:"TechRcrdId,omitempty"`
	ActnTp         *TransactionOperationType10Code     `xml:"ActnTp,omitempty" json:"ActnTp,omitempty"`
	RptgTmStmp     *common.ISODateTime                 `xml:"RptgTmStmp,omitempty" json:"RptgTmStmp,omitempty"`
	DerivEvtTp     *DerivativeEventType3Code           `xml:"DerivEvtTp,omitempty" json:"DerivEvtTp,omitempty"`
	DerivEvtTmStmp *common.DateAndDateTime2Choice      `xml:"DerivEvtTmStmp,omitempty" json:"DerivEvtTmStmp,omitempty"`
	OthrCtrPty     *PartyIdentification236Choice       `xml:"OthrCtrPty,omitempty" json:"OthrCtrPty,omitempty"`
	UnqIdr         *UniqueTransactionIdentifier2Choice `xml:"UnqIdr,omitempty" json:"UnqIdr,omitempty"`
}

type UniqueTransactionIdentifier2Choice struct {
	UnqTxIdr *common.UTIIdentifier     `xml:"UnqTxIdr,omitempty" json:"UnqTxIdr,omitempty"`
	Prtry    *GenericIdentification175 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (UniqueTransactionIdentifier2Choice) XSDChoice() {}

// MatchingCriteria17 holds the compared values of a reconciled trade. Only
// the transaction matching criteria are modelled.
type MatchingCriteria17 struct {
	TxMtchgCrit *TransactionMatchingCriteria7 `xml:"TxMtchgCrit,omitempty" json:"TxMtchgCrit,omitempty"`
}

type TransactionMatchingCriteria7 struct {
	RptTrckgNb     *CompareText2                        `xml:"RptTrckgNb,omitempty" json:"RptTrckgNb,omitempty"`
	UnqTxIdr       *CompareUniqueTransactionIdentifier2 `xml:"UnqTxIdr,omitempty" json:"UnqTxIdr,omitempty"`
	PrrUnqTxIdr    *CompareUniqueTransactionIdentifier2 `xml:"PrrUnqTxIdr,omitempty" json:"PrrUnqTxIdr,omitempty"`
	MstrAgrmtVrsn  *CompareMax50Text1                   `xml:"MstrAgrmtVrsn,omitempty" json:"MstrAgrmtVrsn,omitempty"`
	FctvDt         *CompareDate3                        `xml:"FctvDt,omitempty" json:"FctvDt,omitempty"`
	XprtnDt        *CompareDate3                        `xml:"XprtnDt,omitempty" json:"XprtnDt,omitempty"`
	EarlyTermntnDt *CompareDate3                        `xml:"EarlyTermntnDt,omitempty" json:"EarlyTermntnDt,omitempty"`
	SttlmDt        []CompareDate3                       `xml:"SttlmDt,omitempty" json:"SttlmDt,omitempty"`
}

// Compare types carry the value reported by each counterparty.

type CompareText2 struct {
	Val1 *common.Max52Text `xml:"Val1,omitempty" json:"Val1,omitempty"`
	Val2 *common.Max52Text `xml:"Val2,omitempty" json:"Val2,omitempty"`
}

type CompareUniqueTransactionIdentifier2 struct {
	Val1 *UniqueTransactionIdentifier2Choice `xml:"Val1,omitempty" json:"Val1,omitempty"`
	Val2 *UniqueTransactionIdentifier2Choice `xml:"Val2,omitempty" json:"Val2,omitempty"`
}

type CompareMax50Text1 struct {
	Val1 *common.Max50Text `xml:"Val1,omitempty" json:"Val1,omitempty"`
	Val2 *common.Max50Text `xml:"Val2,omitempty" json:"Val2,omitempty"`
}

type CompareDate3 struct {
	Val1 *common.ISODate `xml:"Val1,omitempty" json:"Val1,omitempty"`
	Val2 *common.ISODate `xml:"Val2,omitempty" json:"Val2,omitempty"`
}
