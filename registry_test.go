package iso20022_test

import (
	"errors"
	"slices"
	"testing"

	iso20022 "github.com/reoring/isoskema"
)

func TestRegistry_LookupAndNew(t *testing.T) {
	f, ok := iso20022.Lookup("urn:test:order")
	if !ok {
		t.Fatalf("order not registered")
	}
	a, b := f(), f()
	if a == b {
		t.Fatalf("factory must return a fresh document each call")
	}
	m, err := iso20022.New("urn:test:order")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := m.(*order); !ok {
		t.Fatalf("New returned %T", m)
	}
	if !slices.Contains(iso20022.Namespaces(), "urn:test:order") {
		t.Fatalf("Namespaces: %v", iso20022.Namespaces())
	}
	if !slices.IsSorted(iso20022.Namespaces()) {
		t.Fatalf("Namespaces must be sorted")
	}
}

func TestRegistry_UnknownNamespace(t *testing.T) {
	_, err := iso20022.New(iso20022.NamespaceFor("pacs.008.001.08"))
	if !errors.Is(err, iso20022.ErrUnknownMessage) {
		t.Fatalf("want ErrUnknownMessage, got %v", err)
	}
	if _, ok := iso20022.Lookup("urn:nowhere"); ok {
		t.Fatalf("unexpected factory")
	}
}

func TestRegister_Panics(t *testing.T) {
	tests := []struct {
		name    string
		ns      string
		factory func() iso20022.Message
	}{
		{"duplicate", "urn:test:order", func() iso20022.Message { return new(order) }},
		{"nil factory", "urn:test:nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Register should panic")
				}
			}()
			iso20022.Register(tt.ns, tt.factory)
		})
	}
}

func TestNamespaceHelpers(t *testing.T) {
	ns := "urn:iso:std:iso:20022:tech:xsd:camt.054.001.08"
	if got := iso20022.NamespaceFor("camt.054.001.08"); got != ns {
		t.Fatalf("NamespaceFor(id) = %q", got)
	}
	if got := iso20022.NamespaceFor(ns); got != ns {
		t.Fatalf("NamespaceFor(ns) = %q", got)
	}
	if got := iso20022.MessageDefinition(ns); got != "camt.054.001.08" {
		t.Fatalf("MessageDefinition = %q", got)
	}
}
