package camt_test

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/camt"
	"github.com/reoring/isoskema/common"
)

func ptr[T any](v T) *T { return &v }

func iban(s string) common.AccountIdentification4Choice {
	v := common.IBAN2007Identifier(s)
	return common.AccountIdentification4Choice{IBAN: &v}
}

func sampleDocument() *camt.Document {
	return &camt.Document{BkToCstmrDbtCdtNtfctn: camt.BankToCustomerDebitCreditNotificationV08{
		GrpHdr: camt.GroupHeader81{MsgId: "NTF-2024-0001", CreDtTm: "2024-03-01T10:00:00Z"},
		Ntfctn: []camt.AccountNotification17{{
			Id:   "N1",
			Acct: camt.CashAccount39{Id: iban("DE89370400440532013000"), Ccy: ptr(common.ActiveOrHistoricCurrencyCode("EUR"))},
			Ntry: []camt.ReportEntry10{{
				Amt:       common.ActiveOrHistoricCurrencyAndAmount{Value: 125.5, Ccy: "EUR"},
				CdtDbtInd: common.Credit,
				Sts:       camt.EntryStatus1Choice{Cd: ptr(common.ExternalEntryStatus1Code("BOOK"))},
				BookgDt:   &common.DateAndDateTime2Choice{Dt: ptr(common.ISODate("2024-03-01"))},
				BkTxCd: camt.BankTransactionCodeStructure4{Domn: &camt.BankTransactionCodeStructure5{
					Cd:   "PMNT",
					Fmly: camt.BankTransactionCodeStructure6{Cd: "RCDT", SubFmlyCd: "ESCT"},
				}},
				NtryDtls: []camt.EntryDetails9{{TxDtls: []camt.EntryTransaction10{{
					Refs:   &camt.TransactionReferences6{EndToEndId: ptr(common.Max35Text("E2E-1")), UETR: ptr(common.UUIDv4Identifier("8a562c67-ca16-48ba-b074-65581be6f001"))},
					RmtInf: &camt.RemittanceInformation16{Ustrd: []common.Max140Text{"Invoice 42"}},
				}}}},
			}},
		}},
	}}
}

func TestValidDocument(t *testing.T) {
	d := sampleDocument()
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if d.Namespace() != "urn:iso:std:iso:20022:tech:xsd:camt.054.001.08" {
		t.Fatalf("namespace: %s", d.Namespace())
	}
}

func TestIssuePaths(t *testing.T) {
	d := sampleDocument()
	d.BkToCstmrDbtCdtNtfctn.Ntfctn = append(d.BkToCstmrDbtCdtNtfctn.Ntfctn, d.BkToCstmrDbtCdtNtfctn.Ntfctn[0], d.BkToCstmrDbtCdtNtfctn.Ntfctn[0])
	d.BkToCstmrDbtCdtNtfctn.Ntfctn[2].Acct = camt.CashAccount39{Id: iban("gb82WEST12345698765432")}

	iss, ok := iso20022.AsIssues(d.Validate())
	if !ok || len(iss) != 1 {
		t.Fatalf("want one issue, got %v", iss)
	}
	it := iss[0]
	if it.Path != "/BkToCstmrDbtCdtNtfctn/Ntfctn/2/Acct/Id/IBAN" || it.Code != iso20022.CodePattern {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if it.Location() != "BkToCstmrDbtCdtNtfctn.Ntfctn[2].Acct.Id.IBAN" {
		t.Fatalf("location: %s", it.Location())
	}
}

func TestAccumulateAndFailFast(t *testing.T) {
	d := sampleDocument()
	n := &d.BkToCstmrDbtCdtNtfctn
	n.GrpHdr.MsgId = ""
	n.Ntfctn[0].Id = common.Max35Text(strings.Repeat("x", 36))
	n.Ntfctn[0].Ntry[0].Amt.Value = -1
	n.Ntfctn[0].Ntry[0].CdtDbtInd = "CRED"

	iss, _ := iso20022.AsIssues(d.Validate())
	want := []string{
		"/BkToCstmrDbtCdtNtfctn/GrpHdr/MsgId required",
		"/BkToCstmrDbtCdtNtfctn/Ntfctn/0/Id too_long",
		"/BkToCstmrDbtCdtNtfctn/Ntfctn/0/Ntry/0/Amt too_small",
		"/BkToCstmrDbtCdtNtfctn/Ntfctn/0/Ntry/0/CdtDbtInd invalid_enum",
	}
	if len(iss) != len(want) {
		t.Fatalf("got %d issues: %v", len(iss), iss)
	}
	for i, it := range iss {
		if got := it.Path + " " + it.Code; got != want[i] {
			t.Errorf("issue %d: got %q want %q", i, got, want[i])
		}
	}

	iss, _ = iso20022.AsIssues(d.Validate(iso20022.ValidateOpt{FailFast: true}))
	if len(iss) != 1 || iss[0].Path != "/BkToCstmrDbtCdtNtfctn/GrpHdr/MsgId" {
		t.Fatalf("fail fast: %v", iss)
	}

	iss, _ = iso20022.AsIssues(d.Validate(iso20022.ValidateOpt{MaxIssues: 2}))
	if len(iss) != 3 || iss[2].Code != iso20022.CodeTruncated {
		t.Fatalf("max issues: %v", iss.Codes())
	}
}

func TestEmptyNotificationList(t *testing.T) {
	d := sampleDocument()
	d.BkToCstmrDbtCdtNtfctn.Ntfctn = nil
	iss, _ := iso20022.AsIssues(d.Validate())
	if len(iss) != 1 || iss[0].Code != iso20022.CodeRequired || iss[0].Path != "/BkToCstmrDbtCdtNtfctn/Ntfctn" {
		t.Fatalf("unexpected: %v", iss)
	}
}

func TestStrictChoiceInEntry(t *testing.T) {
	d := sampleDocument()
	e := &d.BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0]
	e.Sts.Prtry = ptr(common.Max35Text("booked"))
	if err := d.Validate(); err != nil {
		t.Fatalf("loose mode: %v", err)
	}
	iss, _ := iso20022.AsIssues(d.Validate(iso20022.ValidateOpt{StrictChoice: true}))
	if len(iss) != 1 || iss[0].Code != iso20022.CodeUnionAmbiguous || iss[0].Path != "/BkToCstmrDbtCdtNtfctn/Ntfctn/0/Ntry/0/Sts" {
		t.Fatalf("strict mode: %v", iss)
	}
}

func TestRegistered(t *testing.T) {
	m, err := iso20022.New(camt.Namespace)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(*camt.Document); !ok {
		t.Fatalf("factory returned %T", m)
	}
}

func TestXMLUnknownCodeFailsDecode(t *testing.T) {
	src := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.054.001.08"><BkToCstmrDbtCdtNtfctn>
<GrpHdr><MsgId>M</MsgId><CreDtTm>2024-03-01T10:00:00</CreDtTm></GrpHdr>
<Ntfctn><Id>N</Id><Acct><Id><IBAN>DE89370400440532013000</IBAN></Id></Acct>
<Ntry><Amt Ccy="EUR">1.00</Amt><CdtDbtInd>CRED</CdtDbtInd><Sts><Cd>BOOK</Cd></Sts>
<BkTxCd><Prtry><Cd>X</Cd></Prtry></BkTxCd></Ntry></Ntfctn></BkToCstmrDbtCdtNtfctn></Document>`
	var d camt.Document
	err := xml.Unmarshal([]byte(src), &d)
	var ue *iso20022.UnknownEnumError
	if !errors.As(err, &ue) || ue.Value != "CRED" {
		t.Fatalf("want UnknownEnumError, got %v", err)
	}

	if err := xml.Unmarshal([]byte(strings.Replace(src, "CRED", "DBIT", 1)), &d); err != nil {
		t.Fatal(err)
	}
	e := d.BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0]
	if e.CdtDbtInd != common.Debit || e.Amt.Value != 1 || e.Amt.Ccy != "EUR" {
		t.Fatalf("decoded entry: %+v", e)
	}
}
