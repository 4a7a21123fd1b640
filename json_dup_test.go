package iso20022

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectDuplicateKeys_NoDup(t *testing.T) {
	iss, err := DetectDuplicateKeys(strings.NewReader(`{"a":1,"b":2}`), Warn, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectDuplicateKeys_WithDup(t *testing.T) {
	iss, err := DetectDuplicateKeys(strings.NewReader(`{"Document":{"a":1,"a":2}}`), Warn, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("expected duplicate_key issue, got %v", iss)
	}
	if iss[0].Code != CodeDuplicateKey || iss[0].Path != "/Document" {
		t.Fatalf("unexpected issue %+v", iss[0])
	}
	if iss[0].Message != "key 'a' duplicated" {
		t.Fatalf("message: %q", iss[0].Message)
	}
}

func TestScanJSON_MaxDepth(t *testing.T) {
	js := `{"Document":{"A":{"B":[1]}}}`
	if _, err := ScanJSON(strings.NewReader(js), JSONScanOpt{MaxDepth: 3}); !errors.Is(err, ErrMaxDepth) {
		t.Fatalf("depth 3: got %v", err)
	}
	if _, err := ScanJSON(strings.NewReader(js), JSONScanOpt{MaxDepth: 4}); err != nil {
		t.Fatalf("depth 4: %v", err)
	}
	if _, err := ScanJSON(strings.NewReader(js), JSONScanOpt{}); err != nil {
		t.Fatalf("unlimited: %v", err)
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []string{"ignore", "warn", "error"} {
		sev, ok := ParseSeverity(s)
		if !ok || sev.String() != s {
			t.Errorf("%s: got %v %v", s, sev, ok)
		}
	}
	if _, ok := ParseSeverity("fatal"); ok {
		t.Error("fatal accepted")
	}
}
