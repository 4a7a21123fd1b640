package codec

import (
	"bytes"
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	iso20022 "github.com/reoring/isoskema"
)

// envelope is the JSON form of a document: the namespace plus the content of
// the root element.
type envelope struct {
	Xmlns    string          `json:"xmlns"`
	Document json.RawMessage `json:"Document"`
}

// DecodeJSON reads a JSON envelope {"xmlns": ..., "Document": {...}}.
func DecodeJSON(ctx context.Context, r io.Reader, opts ...DecodeOpt) (Decoded, error) {
	opt := firstOpt(opts)
	data, err := readAll(ctx, r)
	if err != nil {
		return Decoded{}, err
	}
	var out Decoded
	if opt.OnDuplicateKey != iso20022.Ignore || opt.MaxDepth > 0 {
		limit := opt.MaxIssues
		if limit == 0 {
			limit = -1
		}
		dups, err := iso20022.ScanJSON(bytes.NewReader(data), iso20022.JSONScanOpt{
			OnDuplicateKey: opt.OnDuplicateKey,
			MaxDepth:       opt.MaxDepth,
			MaxIssues:      limit,
		})
		if err != nil {
			return Decoded{}, parseError(err)
		}
		if len(dups) > 0 {
			if opt.OnDuplicateKey == iso20022.Error {
				return Decoded{}, &DecodeError{Issues: dups, Err: ErrDuplicateKey}
			}
			out.Warnings = dups
		}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Decoded{}, parseError(err)
	}
	if env.Xmlns == "" {
		return Decoded{}, parseError(fmt.Errorf("missing %q", "xmlns"))
	}
	m, err := iso20022.New(env.Xmlns)
	if err != nil {
		return Decoded{}, unknownMessage(env.Xmlns)
	}
	if len(env.Document) == 0 {
		return Decoded{}, parseError(fmt.Errorf("missing %q", "Document"))
	}
	dec := json.NewDecoder(bytes.NewReader(env.Document))
	if opt.RejectUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(m); err != nil {
		return Decoded{}, parseError(err)
	}
	out.Message = m
	return out, nil
}

// EncodeJSON writes m as an indented JSON envelope.
func EncodeJSON(w io.Writer, m iso20022.Message) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", iso20022.MessageDefinition(m.Namespace()), err)
	}
	b, err := json.MarshalIndent(envelope{Xmlns: m.Namespace(), Document: doc}, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
