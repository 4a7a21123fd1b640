package auth

import (
	iso20022 "github.com/reoring/isoskema"
)

var (
	reportPeriodActivities = iso20022.NewEnumSet("ReportPeriodActivity1Code", "NOTX")
	reconciliation1        = iso20022.NewEnumSet("ReconciliationStatus1Code", "NREC", "RECO")
	reconciliation2        = iso20022.NewEnumSet("ReconciliationStatus2Code", "NOAP", "NREC", "RECO")
	pairingStatuses        = iso20022.NewEnumSet("PairingStatus1Code", "PARD", "UNPR")
	reportingTypes         = iso20022.NewEnumSet("TradeRepositoryReportingType1Code", "SWOS", "TWOS")
	derivativeEvents       = iso20022.NewEnumSet("DerivativeEventType3Code", "ALOC", "CLRG", "COMP", "CORP", "CREV", "ETRM", "EXER", "INCP", "NOVA", "PTNG", "TRAD", "UPDT")
	operationTypes         = iso20022.NewEnumSet("TransactionOperationType10Code", "COMP", "CORR", "EROR", "MARU", "MODI", "NEWT", "POSC", "REVI", "TERM", "VALU")
)

// ReportPeriodActivity1Code signals that no transaction was reported in the
// period.
type ReportPeriodActivity1Code string

const NoTransactions ReportPeriodActivity1Code = "NOTX"

func (ReportPeriodActivity1Code) EnumSet() *iso20022.EnumSet { return reportPeriodActivities }
func (v ReportPeriodActivity1Code) Validate() error { return iso20022.Validate(v) }

func (v *ReportPeriodActivity1Code) UnmarshalText(b []byte) error {
	s, err := reportPeriodActivities.Parse(b)
	*v = ReportPeriodActivity1Code(s)
	return err
}

type ReconciliationStatus1Code string

const (
	NotReconciled ReconciliationStatus1Code = "NREC"
	Reconciled    ReconciliationStatus1Code = "RECO"
)

func (ReconciliationStatus1Code) EnumSet() *iso20022.EnumSet { return reconciliation1 }
func (v ReconciliationStatus1Code) Validate() error { return iso20022.Validate(v) }

func (v *ReconciliationStatus1Code) UnmarshalText(b []byte) error {
	s, err := reconciliation1.Parse(b)
	*v = ReconciliationStatus1Code(s)
	return err
}

// ReconciliationStatus2Code adds "not applicable" to ReconciliationStatus1Code.
type ReconciliationStatus2Code string

func (ReconciliationStatus2Code) EnumSet() *iso20022.EnumSet { return reconciliation2 }
func (v ReconciliationStatus2Code) Validate() error { return iso20022.Validate(v) }

func (v *ReconciliationStatus2Code) UnmarshalText(b []byte) error {
	s, err := reconciliation2.Parse(b)
	*v = ReconciliationStatus2Code(s)
	return err
}

type PairingStatus1Code string

const (
	Paired   PairingStatus1Code = "PARD"
	Unpaired PairingStatus1Code = "UNPR"
)

func (PairingStatus1Code) EnumSet() *iso20022.EnumSet { return pairingStatuses }
func (v PairingStatus1Code) Validate() error { return iso20022.Validate(v) }

func (v *PairingStatus1Code) UnmarshalText(b []byte) error {
	s, err := pairingStatuses.Parse(b)
	*v = PairingStatus1Code(s)
	return err
}

// TradeRepositoryReportingType1Code tells whether one or both counterparties
// report the trade.
type TradeRepositoryReportingType1Code string

const (
	SingleSided TradeRepositoryReportingType1Code = "SWOS"
	DualSided   TradeRepositoryReportingType1Code = "TWOS"
)

func (TradeRepositoryReportingType1Code) EnumSet() *iso20022.EnumSet { return reportingTypes }
func (v TradeRepositoryReportingType1Code) Validate() error { return iso20022.Validate(v) }

func (v *TradeRepositoryReportingType1Code) UnmarshalText(b []byte) error {
	s, err := reportingTypes.Parse(b)
	*v = TradeRepositoryReportingType1Code(s)
	return err
}

type DerivativeEventType3Code string

func (DerivativeEventType3Code) EnumSet() *iso20022.EnumSet { return derivativeEvents }
func (v DerivativeEventType3Code) Validate() error { return iso20022.Validate(v) }

func (v *DerivativeEventType3Code) UnmarshalText(b []byte) error {
	s, err := derivativeEvents.Parse(b)
	*v = DerivativeEventType3Code(s)
	return err
}

type TransactionOperationType10Code string

func (TransactionOperationType10Code) EnumSet() *iso20022.EnumSet { return operationTypes }
func (v TransactionOperationType10Code) Validate() error { return iso20022.Validate(v) }

func (v *TransactionOperationType10Code) UnmarshalText(b []byte) error {
	s, err := operationTypes.Parse(b)
	*v = TransactionOperationType10Code(s)
	return err
}
