package iso20022_test

import (
	"testing"

	iso20022 "github.com/reoring/isoskema"
)

func TestPattern_LazyAndAnchored(t *testing.T) {
	p := iso20022.MustRegisterPattern("DigitsOnly", `[0-9]+`)
	if p.Name() != "DigitsOnly" || p.Expr() != `[0-9]+` {
		t.Fatalf("accessors: %q %q", p.Name(), p.Expr())
	}
	if again := iso20022.MustRegisterPattern("DigitsOnly", `[0-9]+`); again != p {
		t.Fatalf("re-registering the same expression must return the shared pattern")
	}
	if got, ok := iso20022.LookupPattern("DigitsOnly"); !ok || got != p {
		t.Fatalf("LookupPattern")
	}
	for s, want := range map[string]bool{"123": true, "12a": false, "a12": false, "": false} {
		if got := p.MatchString(s); got != want {
			t.Errorf("MatchString(%q) = %v", s, got)
		}
	}
	if !p.Compiled() {
		t.Fatalf("pattern should be compiled after first use")
	}
}

func TestPattern_TableIsSorted(t *testing.T) {
	_ = iso20022.MustRegisterPattern("ZZLast", `z`)
	ps := iso20022.Patterns()
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Name() >= ps[i].Name() {
			t.Fatalf("not sorted at %d: %s >= %s", i, ps[i-1].Name(), ps[i].Name())
		}
	}
}

func TestMustRegisterPattern_Panics(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"BrokenPattern", `[A-Z`},
		{"Conflicting", `b`},
	}
	iso20022.MustRegisterPattern("Conflicting", `a`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustRegisterPattern(%q, %q) should panic", tt.name, tt.expr)
				}
			}()
			iso20022.MustRegisterPattern(tt.name, tt.expr)
		})
	}
}

func TestFacets_CheckString(t *testing.T) {
	f := iso20022.Facets{Type: "Max3Text", MinLength: 1, MaxLength: 3}
	if iss := f.CheckString(iso20022.Root(), "äöü"); len(iss) != 0 {
		t.Fatalf("length counts code points: %v", iss)
	}
	iss := f.CheckString(iso20022.Root().Field("Nm"), "")
	if len(iss) != 1 || iss[0].Code != iso20022.CodeTooShort || iss[0].Path != "/Nm" || iss[0].Rule != "minLength" {
		t.Fatalf("too short: %+v", iss)
	}
}
