// Package codec reads and writes ISO 20022 messages as XML or JSON.
//
// The message type is chosen from the document's namespace through the
// iso20022 registry, so the message packages to be decoded must be imported
// (usually with a blank import).
package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/i18n"
)

// DecodeOpt configures decoding. The zero value accepts duplicate JSON keys
// (last one wins) and ignores unknown fields.
type DecodeOpt struct {
	OnDuplicateKey iso20022.Severity // Warn or Error (duplicate JSON keys).
	// RejectUnknown fails JSON decoding on keys that are not part of the
	// message model. XML decoding always skips unmodelled elements.
	RejectUnknown bool
	// MaxIssues caps the duplicate-key report; 0 means unlimited.
	MaxIssues int
	// MaxDepth bounds the nesting of JSON objects and arrays, counting the
	// envelope itself; 0 means unlimited. Deeper input fails with a
	// parse_error that wraps iso20022.ErrMaxDepth.
	MaxDepth int
}

// firstOpt returns the first option, like the iso20022 package does for
// ValidateOpt. Later options are ignored.
func firstOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[0]
	}
	return DecodeOpt{}
}

// Decoded is a decoded message together with non-fatal findings.
type Decoded struct {
	Message  iso20022.Message
	Warnings iso20022.Issues
}

// ErrDuplicateKey is wrapped by a DecodeError when OnDuplicateKey is Error.
var ErrDuplicateKey = errors.New("codec: duplicate JSON key")

// DecodeError reports why a document could not be decoded. It unwraps to the
// cause, so errors.Is(err, iso20022.ErrUnknownMessage) works.
type DecodeError struct {
	Issues iso20022.Issues
	Err    error
}

func (e *DecodeError) Error() string {
	if len(e.Issues) == 0 {
		return "codec: " + e.Err.Error()
	}
	return "codec: " + e.Issues.Error() + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func parseError(err error) *DecodeError {
	it := iso20022.Root().Issue(iso20022.CodeParseError, i18n.T(iso20022.CodeParseError, map[string]string{"err": err.Error()}))
	return &DecodeError{Issues: iso20022.Issues{it}, Err: err}
}

func unknownMessage(ns string) *DecodeError {
	it := iso20022.Root().Issue(iso20022.CodeUnknownMessage, i18n.T(iso20022.CodeUnknownMessage, map[string]string{"namespace": ns}), "namespace", ns)
	return &DecodeError{Issues: iso20022.Issues{it}, Err: fmt.Errorf("%w: %q", iso20022.ErrUnknownMessage, ns)}
}

// Decode reads a whole document in format f.
func Decode(ctx context.Context, r io.Reader, f Format, opts ...DecodeOpt) (Decoded, error) {
	switch f {
	case XML:
		m, err := DecodeXML(ctx, r)
		return Decoded{Message: m}, err
	case JSON:
		return DecodeJSON(ctx, r, opts...)
	}
	return Decoded{}, fmt.Errorf("codec: unsupported format %v", f)
}

// Encode writes m in format f.
func Encode(w io.Writer, m iso20022.Message, f Format) error {
	switch f {
	case XML:
		return EncodeXML(w, m)
	case JSON:
		return EncodeJSON(w, m)
	}
	return fmt.Errorf("codec: unsupported format %v", f)
}

func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}
	return bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), nil
}
