package codec

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a wire representation.
type Format int

const (
	Unknown Format = iota
	XML
	JSON
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat accepts "xml" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return XML, nil
	case "json":
		return JSON, nil
	}
	return Unknown, fmt.Errorf("codec: unknown format %q", s)
}

// DetectFormat picks the format from the file extension and falls back to
// the first non-blank byte of data.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml":
		return XML
	case ".json":
		return JSON
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}
	switch data[0] {
	case '<':
		return XML
	case '{':
		return JSON
	}
	return Unknown
}
