package codec

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	iso20022 "github.com/reoring/isoskema"
)

// DecodeXML reads an XML document. The message type is chosen from the
// namespace of the root element.
func DecodeXML(ctx context.Context, r io.Reader) (iso20022.Message, error) {
	data, err := readAll(ctx, r)
	if err != nil {
		return nil, err
	}
	root, err := rootElement(data)
	if err != nil {
		return nil, parseError(err)
	}
	m, err := iso20022.New(root.Space)
	if err != nil {
		return nil, unknownMessage(root.Space)
	}
	if err := xml.Unmarshal(data, m); err != nil {
		return nil, parseError(err)
	}
	return m, nil
}

func rootElement(data []byte) (xml.Name, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.Name{}, errors.New("no root element")
			}
			return xml.Name{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name, nil
		}
	}
}

// EncodeXML writes m with an XML declaration, indented by two spaces. The
// namespace becomes the default xmlns of the root element.
func EncodeXML(w io.Writer, m iso20022.Message) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("codec: encode %s: %w", iso20022.MessageDefinition(m.Namespace()), err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
