package iso20022_test

import (
	"encoding/xml"
	"errors"
	"fmt"
	"reflect"
	"testing"

	iso20022 "github.com/reoring/isoskema"
)

var (
	patTestCode = iso20022.MustRegisterPattern("TestCode", `[A-Z]{3}`)
	colourCodes = iso20022.NewEnumSet("Colour1Code", "RED", "GRN")
)

type testCode string

func (testCode) Facets() iso20022.Facets { return iso20022.Facets{Type: "TestCode", Pattern: patTestCode} }

type shortText string

func (shortText) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "Max5Text", MinLength: 1, MaxLength: 5}
}

type quantity float64

func (quantity) Facets() iso20022.Facets {
	return iso20022.Facets{Type: "Quantity", MinInclusive: iso20022.MinInclusive(0)}
}

type flag bool

func (flag) Facets() iso20022.Facets { return iso20022.Facets{Type: "YesNoIndicator"} }

type colourCode string

func (colourCode) EnumSet() *iso20022.EnumSet { return colourCodes }

type partyChoice struct {
	Code *testCode  `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Name *shortText `xml:"Nm,omitempty" json:"Nm,omitempty"`
}

func (partyChoice) XSDChoice() {}

type line struct {
	Qty  quantity   `xml:"Qty" json:"Qty"`
	Note *shortText `xml:"Note,omitempty" json:"Note,omitempty"`
}

type order struct {
	XMLName xml.Name     `xml:"urn:test:order Document" json:"-"`
	Id      shortText    `xml:"Id" json:"Id"`
	Colour  colourCode   `xml:"Colour" json:"Colour"`
	Urgent  flag         `xml:"Urgent" json:"Urgent"`
	Party   *partyChoice `xml:"Pty,omitempty" json:"Pty,omitempty"`
	Lines   []line       `xml:"Line" json:"Line" iso20022:"required"`
	Tags    []testCode   `xml:"Tag,omitempty" json:"Tag,omitempty"`
}

func (o *order) Namespace() string { return "urn:test:order" }

func (o *order) Validate(opts ...iso20022.ValidateOpt) error { return iso20022.Validate(o, opts...) }

func init() {
	iso20022.Register("urn:test:order", func() iso20022.Message { return new(order) })
}

func validOrder() *order {
	return &order{Id: "A1", Colour: "RED", Lines: []line{{Qty: 2}}}
}

// brokenOrder violates one facet in five different places.
func brokenOrder() *order {
	code := testCode("ab")
	return &order{
		Colour: "BLU",
		Party:  &partyChoice{Code: &code},
		Lines:  []line{{Qty: 1}, {Qty: -1}},
		Tags:   []testCode{"TOOLONG"},
	}
}

func paths(iss iso20022.Issues) []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Path
	}
	return out
}

func mustIssues(t *testing.T, err error) iso20022.Issues {
	t.Helper()
	iss, ok := iso20022.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss
}

func TestValidate_ValidRecord(t *testing.T) {
	o := validOrder()
	if err := o.Validate(); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if !iso20022.Is(o) {
		t.Fatalf("Is must agree with Validate")
	}
}

func TestValidate_CollectsInDeclarationOrder(t *testing.T) {
	iss := mustIssues(t, brokenOrder().Validate())
	wantCodes := []string{"required", "invalid_enum", "pattern", "too_small", "pattern"}
	wantPaths := []string{"/Id", "/Colour", "/Pty/Cd", "/Line/1/Qty", "/Tag/0"}
	if !reflect.DeepEqual(iss.Codes(), wantCodes) {
		t.Fatalf("codes: got %v want %v", iss.Codes(), wantCodes)
	}
	if !reflect.DeepEqual(paths(iss), wantPaths) {
		t.Fatalf("paths: got %v want %v", paths(iss), wantPaths)
	}
	if iss[0].Hint != "Max5Text" || iss[0].Rule != "minOccurs" {
		t.Fatalf("required issue: %+v", iss[0])
	}
	if iss[1].Hint != "Colour1Code" || iss[1].Params["got"] != "BLU" {
		t.Fatalf("enum issue: %+v", iss[1])
	}
	if got := iss[3].Location(); got != "Line[1].Qty" {
		t.Fatalf("location: %q", got)
	}
}

func TestValidate_FailFast(t *testing.T) {
	iss := mustIssues(t, brokenOrder().Validate(iso20022.ValidateOpt{FailFast: true}))
	if len(iss) != 1 || iss[0].Path != "/Id" {
		t.Fatalf("fail-fast should stop at the first issue: %v", iss)
	}
}

func TestValidate_MaxIssues(t *testing.T) {
	iss := mustIssues(t, brokenOrder().Validate(iso20022.ValidateOpt{MaxIssues: 2}))
	if len(iss) != 3 {
		t.Fatalf("want 2 issues plus truncated, got %v", iss)
	}
	last := iss[2]
	if last.Code != iso20022.CodeTruncated || last.Path != "/" {
		t.Fatalf("last issue: %+v", last)
	}
}

func TestValidate_RequiredRepeatedField(t *testing.T) {
	o := validOrder()
	o.Lines = nil
	iss := mustIssues(t, o.Validate())
	if len(iss) != 1 || iss[0].Code != iso20022.CodeRequired || iss[0].Path != "/Line" || iss[0].Hint != "line" {
		t.Fatalf("unexpected: %+v", iss)
	}
}

func TestValidate_OptionalFieldChecksWhenPresent(t *testing.T) {
	o := validOrder()
	note := shortText("far too long")
	o.Lines[0].Note = &note
	iss := mustIssues(t, o.Validate())
	if len(iss) != 1 || iss[0].Code != iso20022.CodeTooLong || iss[0].Path != "/Line/0/Note" {
		t.Fatalf("unexpected: %+v", iss)
	}
	if iss[0].Params["max"] != 5 || iss[0].Params["got"] != 12 {
		t.Fatalf("params: %v", iss[0].Params)
	}
}

func TestValidate_StrictChoice(t *testing.T) {
	o := validOrder()
	o.Party = &partyChoice{}
	if err := o.Validate(); err != nil {
		t.Fatalf("empty choice is accepted by default: %v", err)
	}
	iss := mustIssues(t, o.Validate(iso20022.ValidateOpt{StrictChoice: true}))
	if len(iss) != 1 || iss[0].Code != iso20022.CodeRequired || iss[0].Path != "/Pty" || iss[0].Hint != "partyChoice" {
		t.Fatalf("empty choice: %+v", iss)
	}

	code, name := testCode("ABC"), shortText("Bob")
	o.Party = &partyChoice{Code: &code, Name: &name}
	if err := o.Validate(); err != nil {
		t.Fatalf("two alternatives are accepted by default: %v", err)
	}
	iss = mustIssues(t, o.Validate(iso20022.ValidateOpt{StrictChoice: true}))
	if len(iss) != 1 || iss[0].Code != iso20022.CodeUnionAmbiguous || iss[0].Rule != "choice" {
		t.Fatalf("ambiguous choice: %+v", iss)
	}
	if got := iss[0].Params["got"]; !reflect.DeepEqual(got, []string{"Cd", "Nm"}) {
		t.Fatalf("alternatives: %v", got)
	}
}

func TestValidate_Leaf(t *testing.T) {
	iss := mustIssues(t, iso20022.Validate(shortText("toolong")))
	if len(iss) != 1 || iss[0].Code != iso20022.CodeTooLong || iss[0].Path != "/" {
		t.Fatalf("unexpected: %+v", iss)
	}
	if iss[0].Location() != "" {
		t.Fatalf("leaf location should be empty, got %q", iss[0].Location())
	}
	if !iso20022.Is(quantity(0)) || iso20022.Is(quantity(-0.5)) {
		t.Fatalf("minInclusive 0")
	}
	if !iso20022.Is(colourCode("GRN")) || iso20022.Is(colourCode("grn")) {
		t.Fatalf("enum membership is case-sensitive")
	}
}

func TestIssues_ErrorAndAsIssues(t *testing.T) {
	err := brokenOrder().Validate()
	want := "required at /Id; invalid_enum at /Colour; pattern at /Pty/Cd; ... (total 5)"
	if err.Error() != want {
		t.Fatalf("Error():\n got %q\nwant %q", err.Error(), want)
	}
	wrapped := fmt.Errorf("order 42: %w", err)
	var iss iso20022.Issues
	if !errors.As(wrapped, &iss) || len(iss) != 5 {
		t.Fatalf("errors.As through a wrap: %v", wrapped)
	}
	if _, ok := iso20022.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error is not Issues")
	}
	if _, ok := iso20022.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
}

func TestIssue_Location(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"/GrpHdr/MsgId", "GrpHdr.MsgId"},
		{"/Ntfctn/2/Acct/Id/IBAN", "Ntfctn[2].Acct.Id.IBAN"},
		{"/Rltd/0/BizMsgIdr", "Rltd[0].BizMsgIdr"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		if got := (iso20022.Issue{Path: tt.path}).Location(); got != tt.want {
			t.Errorf("Location(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPathRef(t *testing.T) {
	base := iso20022.Root().Field("Ntfctn").Index(2)
	a := base.Field("Acct").Field("Id")
	b := base.Field("a/b~c")
	if got := a.Pointer(); got != "/Ntfctn/2/Acct/Id" {
		t.Fatalf("a = %q", got)
	}
	if got := b.Pointer(); got != "/Ntfctn/2/a~1b~0c" {
		t.Fatalf("b = %q", got)
	}
	if got := base.Field("").Pointer(); got != "/Ntfctn/2" {
		t.Fatalf("chardata must share the parent path, got %q", got)
	}
	if got := iso20022.Root().Pointer(); got != "/" {
		t.Fatalf("root = %q", got)
	}
	if got := iso20022.At("/Ntfctn/2/a~1b~0c").Pointer(); got != b.Pointer() {
		t.Fatalf("At round trip = %q", got)
	}
	it := a.Issue(iso20022.CodeRequired, "missing", "type", "AccountIdentification4Choice")
	if it.Path != "/Ntfctn/2/Acct/Id" || it.Params["type"] != "AccountIdentification4Choice" {
		t.Fatalf("issue: %+v", it)
	}
}
