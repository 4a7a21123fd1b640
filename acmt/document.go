// Package acmt models the Account Details Confirmation (acmt.002.001.08)
// sent by an account servicer after opening or modifying an investment
// account.
package acmt

import (
	"encoding/xml"

	iso20022 "github.com/reoring/isoskema"
)

const Namespace = iso20022.NamespacePrefix + "acmt.002.001.08"

func init() {
	iso20022.Register(Namespace, func() iso20022.Message { return new(Document) })
}

type Document struct {
	XMLName      xml.Name                      `xml:"urn:iso:std:iso:20022:tech:xsd:acmt.002.001.08 Document" json:"-"`
	AcctDtlsConf AccountDetailsConfirmationV08 `xml:"AcctDtlsConf" json:"AcctDtlsConf"`
}

func (d *Document) Namespace() string { return Namespace }

func (d *Document) Validate(opts ...iso20022.ValidateOpt) error {
	return iso20022.Validate(d, opts...)
}
