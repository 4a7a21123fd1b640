package iso20022_test

import (
	"encoding/xml"
	"reflect"
	"testing"

	iso20022 "github.com/reoring/isoskema"
)

func TestResolveStructKey(t *testing.T) {
	type sample struct {
		XMLName xml.Name `xml:"urn:x Document"`
		Plain   string
		Tagged  string  `xml:"Tg"`
		Omit    *string `xml:"Opt,omitempty"`
		Renamed string  `xml:"Tg2" iso20022:"name=Other"`
		Skipped string  `xml:"-"`
		Value   string  `xml:",chardata"`
		Ccy     string  `xml:"Ccy,attr"`
		Raw     string  `xml:",innerxml"`
		Spaced  string  `xml:"urn:x Spc"`
	}
	want := map[string]string{
		"XMLName": "Document",
		"Plain":   "Plain",
		"Tagged":  "Tg",
		"Omit":    "Opt",
		"Renamed": "Other",
		"Skipped": "-",
		"Value":   "",
		"Ccy":     "Ccy",
		"Raw":     "-",
		"Spaced":  "Spc",
	}
	rt := reflect.TypeOf(sample{})
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if got := iso20022.ResolveStructKey(sf); got != want[sf.Name] {
			t.Errorf("%s: got %q want %q", sf.Name, got, want[sf.Name])
		}
	}
}
