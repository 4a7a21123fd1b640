// Package auth models the Derivatives Trade Reconciliation Statistical Report
// (auth.091.001.03) that trade repositories send to competent authorities.
package auth

import (
	"encoding/xml"

	iso20022 "github.com/reoring/isoskema"
)

const Namespace = iso20022.NamespacePrefix + "auth.091.001.03"

func init() {
	iso20022.Register(Namespace, func() iso20022.Message { return new(Document) })
}

type Document struct {
	XMLName                     xml.Name                                           `xml:"urn:iso:std:iso:20022:tech:xsd:auth.091.001.03 Document" json:"-"`
	DerivsTradRcncltnSttstclRpt DerivativesTradeReconciliationStatisticalReportV03 `xml:"DerivsTradRcncltnSttstclRpt" json:"DerivsTradRcncltnSttstclRpt"`
}

func (d *Document) Namespace() string { return Namespace }

func (d *Document) Validate(opts ...iso20022.ValidateOpt) error {
	return iso20022.Validate(d, opts...)
}
