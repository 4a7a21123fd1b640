package iso20022

import (
	"strings"
)

// Enumerated is implemented by code types backed by a closed vocabulary.
type Enumerated interface {
	EnumSet() *EnumSet
}

// EnumSet is the closed vocabulary of one XSD code list. It is built at package
// init and read-only afterwards.
type EnumSet struct {
	name   string
	values []string
	index  map[string]struct{}
}

// NewEnumSet builds the vocabulary for the named code type. Values keep the
// declaration order of the schema.
func NewEnumSet(name string, values ...string) *EnumSet {
	idx := make(map[string]struct{}, len(values))
	for _, v := range values {
		idx[v] = struct{}{}
	}
	return &EnumSet{name: name, values: append([]string(nil), values...), index: idx}
}

// Name returns the XSD type name.
func (e *EnumSet) Name() string { return e.name }

// Values returns a copy of the tags in schema order.
func (e *EnumSet) Values() []string { return append([]string(nil), e.values...) }

// Contains reports whether tag belongs to the vocabulary.
func (e *EnumSet) Contains(tag string) bool {
	_, ok := e.index[tag]
	return ok
}

// Parse decodes a wire tag. Surrounding whitespace is collapsed as for
// xs:token; unknown tags return *UnknownEnumError.
func (e *EnumSet) Parse(text []byte) (string, error) {
	s := strings.TrimSpace(string(text))
	if !e.Contains(s) {
		return "", &UnknownEnumError{Type: e.name, Value: s}
	}
	return s, nil
}
