package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg == "required" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "required element missing" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("too_long", map[string]string{"max": "35", "got": "36"})
	want := "longer than the maximum length of 35 (got 36)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := T("pattern", nil); got != "does not match pattern ?" {
		t.Fatalf("missing data should leave a marker, got %q", got)
	}
}

func TestTranslator_EveryCodeInEveryLanguage(t *testing.T) {
	for _, lang := range Languages() {
		for code := range dictionaries["en"] {
			if _, ok := dictionaries[lang][code]; !ok {
				t.Errorf("%s: missing %s", lang, code)
			}
		}
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("pattern", nil); got != "X-pattern" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("unlisted_code", nil); got != "unlisted_code" {
		t.Fatalf("unknown code should fall back to the code, got %q", got)
	}
}
