// Package camt models the Bank-to-Customer Debit Credit Notification
// (camt.054.001.08).
package camt

import (
	"encoding/xml"

	iso20022 "github.com/reoring/isoskema"
)

// Namespace is the XML namespace of camt.054.001.08 documents.
const Namespace = iso20022.NamespacePrefix + "camt.054.001.08"

func init() {
	iso20022.Register(Namespace, func() iso20022.Message { return new(Document) })
}

// Document is the XML root of a camt.054.001.08 message.
type Document struct {
	XMLName               xml.Name                                 `xml:"urn:iso:std:iso:20022:tech:xsd:camt.054.001.08 Document" json:"-"`
	BkToCstmrDbtCdtNtfctn BankToCustomerDebitCreditNotificationV08 `xml:"BkToCstmrDbtCdtNtfctn" json:"BkToCstmrDbtCdtNtfctn"`
}

func (d *Document) Namespace() string { return Namespace }

// Validate checks the notification against the schema facets.
func (d *Document) Validate(opts ...iso20022.ValidateOpt) error {
	return iso20022.Validate(d, opts...)
}
