// Package head models the Business Application Header (head.001.001.02)
// that travels alongside a business message.
package head

import (
	"encoding/xml"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/common"
)

const Namespace = iso20022.NamespacePrefix + "head.001.001.02"

func init() {
	iso20022.Register(Namespace, func() iso20022.Message { return new(BusinessApplicationHeaderV02) })
}

// BusinessApplicationHeaderV02 is the root AppHdr element. Unlike the other
// messages its root is not a Document wrapper, so the header itself is the
// Message.
type BusinessApplicationHeaderV02 struct {
	XMLName    xml.Name                      `xml:"urn:iso:std:iso:20022:tech:xsd:head.001.001.02 AppHdr" json:"-"`
	CharSet    *UnicodeChartsCode            `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         common.Party44Choice          `xml:"Fr" json:"Fr"`
	To         common.Party44Choice          `xml:"To" json:"To"`
	BizMsgIdr  common.Max35Text              `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  common.Max35Text              `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *common.Max35Text             `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	MktPrctc   *ImplementationSpecification1 `xml:"MktPrctc,omitempty" json:"MktPrctc,omitempty"`
	CreDt      common.ISODateTime            `xml:"CreDt" json:"CreDt"`
	BizPrcgDt  *common.ISODateTime           `xml:"BizPrcgDt,omitempty" json:"BizPrcgDt,omitempty"`
	CpyDplct   *common.CopyDuplicate1Code    `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *common.YesNoIndicator        `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *BusinessMessagePriorityCode  `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *common.SignatureEnvelope     `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
	Rltd       []BusinessApplicationHeader5  `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
}

func (h *BusinessApplicationHeaderV02) Namespace() string { return Namespace }

func (h *BusinessApplicationHeaderV02) Validate(opts ...iso20022.ValidateOpt) error {
	return iso20022.Validate(h, opts...)
}

// BusinessApplicationHeader5 is the header of a related message.
type BusinessApplicationHeader5 struct {
	CharSet    *UnicodeChartsCode           `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         common.Party44Choice         `xml:"Fr" json:"Fr"`
	To         common.Party44Choice         `xml:"To" json:"To"`
	BizMsgIdr  common.Max35Text             `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  common.Max35Text             `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *common.Max35Text            `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	CreDt      common.ISODateTime           `xml:"CreDt" json:"CreDt"`
	CpyDplct   *common.CopyDuplicate1Code   `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *common.YesNoIndicator       `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *BusinessMessagePriorityCode `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *common.SignatureEnvelope    `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
}

type ImplementationSpecification1 struct {
	Regy common.Max350Text  `xml:"Regy" json:"Regy"`
	Id   common.Max2048Text `xml:"Id" json:"Id"`
}

// UnicodeChartsCode names the character set of the business message.
type UnicodeChartsCode string

func (UnicodeChartsCode) Facets() iso20022.Facets { return iso20022.Facets{Type: "UnicodeChartsCode"} }
func (v UnicodeChartsCode) Validate() error { return nil }

// BusinessMessagePriorityCode is a priority agreed within a market practice.
type BusinessMessagePriorityCode string

func (BusinessMessagePriorityCode) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "BusinessMessagePriorityCode"}
}
func (v BusinessMessagePriorityCode) Validate() error { return nil }
