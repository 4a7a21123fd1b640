package head_test

import (
	"encoding/xml"
	"strings"
	"testing"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/common"
	"github.com/reoring/isoskema/head"
)

func ptr[T any](v T) *T { return &v }

func bic(s string) common.Party44Choice {
	return common.Party44Choice{FIId: &common.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: common.FinancialInstitutionIdentification18{BICFI: ptr(common.BICFIDec2014Identifier(s))},
	}}
}

func header() *head.BusinessApplicationHeaderV02 {
	return &head.BusinessApplicationHeaderV02{
		Fr:        bic("BANKUS33XXX"),
		To:        bic("BANKGB2L"),
		BizMsgIdr: "BIZ-0001",
		MsgDefIdr: "camt.054.001.08",
		CreDt:     "2024-03-01T10:00:00Z",
		CpyDplct:  ptr(common.Copy),
		Rltd: []head.BusinessApplicationHeader5{{
			Fr: bic("BANKGB2L"), To: bic("BANKUS33XXX"), BizMsgIdr: "BIZ-0000", MsgDefIdr: "pacs.008.001.08", CreDt: "2024-02-29T09:00:00Z",
		}},
	}
}

func TestHeaderValid(t *testing.T) {
	if err := header().Validate(iso20022.ValidateOpt{StrictChoice: true}); err != nil {
		t.Fatal(err)
	}
}

func TestHeaderPaths(t *testing.T) {
	h := header()
	h.To = bic("bankgb2l")
	h.Rltd[0].BizMsgIdr = common.Max35Text(strings.Repeat("9", 36))

	iss, _ := iso20022.AsIssues(h.Validate())
	if len(iss) != 2 {
		t.Fatalf("got %v", iss)
	}
	if iss[0].Path != "/To/FIId/FinInstnId/BICFI" || iss[0].Code != iso20022.CodePattern {
		t.Errorf("first: %+v", iss[0])
	}
	if iss[1].Path != "/Rltd/0/BizMsgIdr" || iss[1].Code != iso20022.CodeTooLong {
		t.Errorf("second: %+v", iss[1])
	}
}

func TestHeaderEmptyPartyStrict(t *testing.T) {
	h := header()
	h.Fr = common.Party44Choice{}
	if err := h.Validate(); err != nil {
		t.Fatalf("loose: %v", err)
	}
	iss, _ := iso20022.AsIssues(h.Validate(iso20022.ValidateOpt{StrictChoice: true}))
	if len(iss) != 1 || iss[0].Path != "/Fr" || iss[0].Hint != "Party44Choice" {
		t.Fatalf("strict: %v", iss)
	}
}

func TestHeaderXMLRoot(t *testing.T) {
	out, err := xml.Marshal(header())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), `<AppHdr xmlns="urn:iso:std:iso:20022:tech:xsd:head.001.001.02">`) {
		t.Fatalf("root: %s", out[:80])
	}
	var back head.BusinessApplicationHeaderV02
	if err := xml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.BizMsgIdr != "BIZ-0001" || *back.CpyDplct != common.Copy || len(back.Rltd) != 1 {
		t.Fatalf("decoded %+v", back)
	}
}
