package iso20022

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errDecimalSyntax = errors.New("not an xs:decimal literal")

// ParseDecimal parses the lexical form of xs:decimal: an optional sign and
// digits with at most one decimal point. Exponents, hexadecimal and the
// special values NaN and Inf are rejected.
func ParseDecimal(text []byte) (float64, error) {
	s := strings.TrimSpace(string(text))
	if !isDecimalLiteral(s) {
		return 0, fmt.Errorf("iso20022: invalid decimal %q: %w", s, errDecimalSyntax)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("iso20022: invalid decimal %q: %w", s, err)
	}
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("iso20022: invalid decimal %q: out of range", s)
	}
	return f, nil
}

// isDecimalLiteral matches [+-]?(\d+(\.\d*)?|\.\d+).
func isDecimalLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// MarshalDecimalJSON renders a decimal as a bare JSON number in plain notation.
func MarshalDecimalJSON(f float64) []byte { return []byte(FormatDecimal(f)) }

// UnmarshalDecimalJSON accepts a JSON number or a quoted decimal string.
func UnmarshalDecimalJSON(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return ParseDecimal(data)
}
