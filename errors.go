package iso20022

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes reported by Validate and by the codec package.
const (
	CodeRequired       = "required"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodeTooSmall       = "too_small"
	CodePattern        = "pattern"
	CodeInvalidEnum    = "invalid_enum"
	CodeUnionAmbiguous = "union_ambiguous"
	// Decoding boundary
	CodeParseError     = "parse_error"
	CodeUnknownMessage = "unknown_message"
	CodeDuplicateKey   = "duplicate_key"
	CodeTruncated      = "truncated"
)

// Issue represents a single schema violation.
type Issue struct {
	Path    string // JSON Pointer built from XML element names (for example: /Ntfctn/2/Acct/Id/IBAN).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the XSD type name that carried the facet.
	// Params carries structured parameters (e.g., {"min":1, "max":35, "got":36})
	// for i18n and reporting.
	Params map[string]any
	// Rule optionally records the facet that produced this issue.
	Rule string
}

// Location renders Path in dotted form, with list indexes in brackets:
// /Ntfctn/2/Acct/Id/IBAN becomes Ntfctn[2].Acct.Id.IBAN.
func (it Issue) Location() string {
	if it.Path == "" || it.Path == "/" {
		return ""
	}
	b := &strings.Builder{}
	for _, seg := range strings.Split(strings.TrimPrefix(it.Path, "/"), "/") {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(unescapePointer(seg))
	}
	return b.String()
}

func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. pattern at /GrpHdr/MsgRcpt/Id/OrgId/LEI
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order, mainly for assertions and summaries.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrUnknownMessage is returned when a document namespace has no registered
// message definition.
var ErrUnknownMessage = errors.New("iso20022: unknown message namespace")

// UnknownEnumError reports a code outside the closed vocabulary of an
// enumerated type. It is returned while decoding; unknown tags are never kept.
type UnknownEnumError struct {
	Type  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("iso20022: %q is not a known %s value", e.Value, e.Type)
}
