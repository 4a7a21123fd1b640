package iso20022

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/reoring/isoskema/i18n"
)

// Scalar is implemented by constrained simple types (XSD simpleType with
// facets). The walker reads the underlying string or float value through
// reflection and checks it against the returned facets.
type Scalar interface {
	Facets() Facets
}

// Facets describes the XSD restriction facets of a simple type. Zero values
// mean "no constraint": MaxLength == 0 is unbounded and a nil MinInclusive
// disables the lower bound.
type Facets struct {
	Type         string // XSD simple type name
	Pattern      *Pattern
	MinLength    int
	MaxLength    int
	MinInclusive *float64
}

// MinInclusive returns a pointer suitable for Facets.MinInclusive.
func MinInclusive(v float64) *float64 { return &v }

// CheckString checks s against the string facets. Length is counted in
// Unicode code points.
func (f Facets) CheckString(p PathRef, s string) Issues {
	var iss Issues
	n := utf8.RuneCountInString(s)
	if f.MinLength > 0 && n < f.MinLength {
		iss = AppendIssues(iss, f.issue(p, CodeTooShort, "minLength", "min", f.MinLength, "got", n))
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		iss = AppendIssues(iss, f.issue(p, CodeTooLong, "maxLength", "max", f.MaxLength, "got", n))
	}
	if f.Pattern != nil && !f.Pattern.MatchString(s) {
		iss = AppendIssues(iss, f.issue(p, CodePattern, "pattern", "pattern", f.Pattern.Expr()))
	}
	return iss
}

// CheckDecimal checks d against the numeric facets.
func (f Facets) CheckDecimal(p PathRef, d float64) Issues {
	// Negated so that NaN fails the bound.
	if f.MinInclusive != nil && !(d >= *f.MinInclusive) {
		return Issues{f.issue(p, CodeTooSmall, "minInclusive", "min", FormatDecimal(*f.MinInclusive), "got", FormatDecimal(d))}
	}
	return nil
}

func (f Facets) issue(p PathRef, code, rule string, kv ...any) Issue {
	data := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
	}
	it := p.Issue(code, i18n.T(code, data), kv...)
	it.Hint = f.Type
	it.Rule = rule
	return it
}

// Pattern is the pattern facet of one XSD simple type. The expression is
// compiled on first use and shared read-only afterwards.
type Pattern struct {
	name     string
	expr     string
	once     sync.Once
	re       *regexp.Regexp
	compiled atomic.Bool
}

// Name returns the XSD type name the pattern belongs to.
func (p *Pattern) Name() string { return p.name }

// Expr returns the pattern exactly as it appears in the schema.
func (p *Pattern) Expr() string { return p.expr }

// Compiled reports whether the expression has been compiled yet.
func (p *Pattern) Compiled() bool { return p.compiled.Load() }

// MatchString reports whether the whole of s matches the pattern. XSD
// patterns are implicitly anchored at both ends.
func (p *Pattern) MatchString(s string) bool {
	p.once.Do(func() {
		p.re = regexp.MustCompile(`^(?:` + p.expr + `)$`)
		p.compiled.Store(true)
	})
	return p.re.MatchString(s)
}

var (
	patternsMu sync.RWMutex
	patterns   = map[string]*Pattern{}
)

// MustRegisterPattern adds the pattern facet of the named simple type to the
// process-wide table and returns it. The expression is syntax-checked here and
// compiled lazily. Registering a name twice with a different expression panics.
func MustRegisterPattern(name, expr string) *Pattern {
	if _, err := syntax.Parse(expr, syntax.Perl); err != nil {
		panic(fmt.Sprintf("iso20022: invalid pattern for %s: %v", name, err))
	}
	patternsMu.Lock()
	defer patternsMu.Unlock()
	if p, ok := patterns[name]; ok {
		if p.expr != expr {
			panic(fmt.Sprintf("iso20022: pattern for %s registered twice (%q, %q)", name, p.expr, expr))
		}
		return p
	}
	p := &Pattern{name: name, expr: expr}
	patterns[name] = p
	return p
}

// LookupPattern returns the registered pattern for an XSD type name.
func LookupPattern(name string) (*Pattern, bool) {
	patternsMu.RLock()
	p, ok := patterns[name]
	patternsMu.RUnlock()
	return p, ok
}

// Patterns returns the pattern table sorted by type name.
func Patterns() []*Pattern {
	patternsMu.RLock()
	out := make([]*Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)
	}
	patternsMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// FormatDecimal renders a decimal in plain notation (no exponent), which is
// what xs:decimal requires on the wire.
func FormatDecimal(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
