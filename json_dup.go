package iso20022

import (
	"io"

	"github.com/reoring/isoskema/i18n"
	eng "github.com/reoring/isoskema/internal/engine"
)

// Severity selects how a decoding-boundary check is reported.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseSeverity maps "ignore", "warn" and "error" to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "ignore", "":
		return Ignore, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	}
	return Ignore, false
}

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// ErrMaxDepth is returned by ScanJSON when objects and arrays nest deeper
// than JSONScanOpt.MaxDepth.
var ErrMaxDepth = eng.ErrMaxDepth

// JSONScanOpt configures ScanJSON.
type JSONScanOpt struct {
	OnDuplicateKey Severity
	MaxDepth       int // 0 means unlimited
	MaxIssues      int // < 0 means unlimited
}

// ScanJSON streams a raw JSON document once before it is decoded. It reports
// duplicate object keys per OnDuplicateKey and fails with ErrMaxDepth on
// excessive nesting. Paths point at the object that repeats the key.
func ScanJSON(r io.Reader, opt JSONScanOpt) (Issues, error) {
	si, err := eng.ScanJSON(r, eng.ScanOptions{
		OnDuplicate: toEngineDup(opt.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxIssues:   opt.MaxIssues,
	})
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

// DetectDuplicateKeys reports duplicate JSON object keys. maxIssues < 0 means
// unlimited.
func DetectDuplicateKeys(r io.Reader, sev Severity, maxIssues int) (Issues, error) {
	return ScanJSON(r, JSONScanOpt{OnDuplicateKey: sev, MaxIssues: maxIssues})
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		it := Issue{Code: s.Code, Path: s.Path}
		switch s.Code {
		case CodeDuplicateKey:
			it.Message = i18n.T(CodeDuplicateKey, map[string]string{"key": s.Key})
			it.Params = map[string]any{"key": s.Key}
		default:
			it.Message = i18n.T(s.Code, nil)
		}
		iss = AppendIssues(iss, it)
	}
	return iss
}
