package iso20022_test

import (
	"reflect"
	"testing"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/jsonschema"
)

func TestJSONSchema_MessageEnvelope(t *testing.T) {
	s, err := iso20022.JSONSchema(new(order))
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if s.SchemaURI != jsonschema.Draft202012 {
		t.Fatalf("$schema = %q", s.SchemaURI)
	}
	if got := s.Properties["xmlns"].Const; got != "urn:test:order" {
		t.Fatalf("xmlns const = %v", got)
	}
	if got := s.Properties["Document"].Ref; got != "#/$defs/order" {
		t.Fatalf("Document ref = %q", got)
	}
	if !reflect.DeepEqual(s.Required, []string{"xmlns", "Document"}) {
		t.Fatalf("envelope required = %v", s.Required)
	}

	doc := s.Defs["order"]
	if doc == nil || doc.Type != "object" {
		t.Fatalf("order def: %+v", doc)
	}
	if !reflect.DeepEqual(doc.Required, []string{"Id", "Colour", "Urgent", "Line"}) {
		t.Fatalf("order required = %v", doc.Required)
	}
	if _, ok := doc.Properties["XMLName"]; ok {
		t.Fatalf("XMLName must not be exported")
	}
	lines := doc.Properties["Line"]
	if lines.Type != "array" || lines.Items.Ref != "#/$defs/line" || lines.MinItems == nil || *lines.MinItems != 1 {
		t.Fatalf("Line: %+v", lines)
	}
	if tags := doc.Properties["Tag"]; tags.MinItems != nil {
		t.Fatalf("optional list must not carry minItems")
	}
}

func TestJSONSchema_Facets(t *testing.T) {
	s, err := iso20022.JSONSchema(new(order))
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	d := s.Defs
	if got := d["testCode"].Pattern; got != "^(?:[A-Z]{3})$" {
		t.Fatalf("pattern = %q", got)
	}
	if st := d["shortText"]; st.Type != "string" || *st.MinLength != 1 || *st.MaxLength != 5 {
		t.Fatalf("shortText: %+v", st)
	}
	if q := d["quantity"]; q.Type != "number" || q.Minimum == nil || *q.Minimum != 0 {
		t.Fatalf("quantity: %+v", q)
	}
	if got := d["flag"].Type; got != "boolean" {
		t.Fatalf("flag type = %q", got)
	}
	if c := d["colourCode"]; c.Type != "string" || !reflect.DeepEqual(c.Enum, []string{"RED", "GRN"}) {
		t.Fatalf("colourCode: %+v", c)
	}
	ch := d["partyChoice"]
	if ch.MaxProperties == nil || *ch.MaxProperties != 1 || len(ch.Required) != 0 {
		t.Fatalf("partyChoice: %+v", ch)
	}
}

func TestJSONSchema_Component(t *testing.T) {
	s, err := iso20022.JSONSchema(line{})
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if s.Ref != "#/$defs/line" || s.Title != "line" {
		t.Fatalf("root: %+v", s)
	}
	if _, ok := s.Properties["xmlns"]; ok {
		t.Fatalf("components are not wrapped in the envelope")
	}
	if _, err := iso20022.JSONSchema(nil); err == nil {
		t.Fatalf("nil must fail")
	}
}
