package iso20022

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/reoring/isoskema/i18n"
)

var (
	scalarType = reflect.TypeOf((*Scalar)(nil)).Elem()
	enumType   = reflect.TypeOf((*Enumerated)(nil)).Elem()
	choiceType = reflect.TypeOf((*Choice)(nil)).Elem()
	bytesType  = reflect.TypeOf([]byte(nil))
)

// Validate walks v and checks every populated element against its facets.
// v may be a leaf scalar, an enum code, a record, a choice or a pointer to any
// of them. It returns nil when v is valid, or Issues.
//
// Records are walked in field declaration order: value fields are required,
// pointer fields are checked when present and slice fields element by element.
func Validate(v any, opts ...ValidateOpt) error {
	w := &walker{opt: firstOpt(opts)}
	w.value(reflect.ValueOf(v), Root(), false)
	if len(w.issues) == 0 {
		return nil
	}
	return w.issues
}

// Is is the boolean projection of Validate.
func Is(v any, opts ...ValidateOpt) bool { return Validate(v, opts...) == nil }

type walker struct {
	opt       ValidateOpt
	issues    Issues
	truncated bool
}

func (w *walker) done() bool {
	return w.truncated || (w.opt.FailFast && len(w.issues) > 0)
}

func (w *walker) add(iss ...Issue) {
	for _, it := range iss {
		if w.done() {
			return
		}
		if w.opt.MaxIssues > 0 && len(w.issues) >= w.opt.MaxIssues {
			w.issues = append(w.issues, Issue{Path: "/", Code: CodeTruncated, Message: i18n.T(CodeTruncated, nil)})
			w.truncated = true
			return
		}
		w.issues = append(w.issues, it)
	}
}

func (w *walker) value(rv reflect.Value, p PathRef, required bool) {
	if w.done() || !rv.IsValid() {
		return
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		w.value(rv.Elem(), p, required)
		return
	}
	t := rv.Type()
	switch {
	case t.Implements(enumType):
		w.enum(rv, p, required)
	case t.Implements(scalarType):
		w.scalar(rv, p, required)
	case rv.Kind() == reflect.Struct:
		w.record(rv, p)
	case rv.Kind() == reflect.Slice && t != bytesType:
		for i := 0; i < rv.Len() && !w.done(); i++ {
			w.value(rv.Index(i), p.Index(i), false)
		}
	}
}

func (w *walker) scalar(rv reflect.Value, p PathRef, required bool) {
	f := rv.Interface().(Scalar).Facets()
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if required && s == "" {
			w.add(requiredIssue(p, f.Type))
			return
		}
		w.add(f.CheckString(p, s)...)
	case reflect.Float32, reflect.Float64:
		w.add(f.CheckDecimal(p, rv.Float())...)
	}
}

func (w *walker) enum(rv reflect.Value, p PathRef, required bool) {
	set := rv.Interface().(Enumerated).EnumSet()
	s := rv.String()
	if required && s == "" {
		w.add(requiredIssue(p, set.Name()))
		return
	}
	if set.Contains(s) {
		return
	}
	it := p.Issue(CodeInvalidEnum,
		i18n.T(CodeInvalidEnum, map[string]string{"got": strconv.Quote(s), "type": set.Name()}),
		"type", set.Name(), "got", s, "values", set.Values())
	it.Hint = set.Name()
	it.Rule = "enumeration"
	w.add(it)
}

func (w *walker) record(rv reflect.Value, p PathRef) {
	pl := planFor(rv.Type())
	if pl.choice && w.opt.StrictChoice {
		w.choiceCardinality(rv, p, pl)
	}
	for _, f := range pl.fields {
		if w.done() {
			return
		}
		fv := rv.Field(f.index)
		fp := p.Field(f.name)
		switch f.kind {
		case fieldOptional:
			if fv.IsNil() {
				if f.required {
					w.add(requiredIssue(fp, f.typeName))
				}
				continue
			}
			w.value(fv, fp, false)
		case fieldRepeated:
			if fv.Len() == 0 {
				if f.required {
					w.add(requiredIssue(fp, f.typeName))
				}
				continue
			}
			for i := 0; i < fv.Len() && !w.done(); i++ {
				w.value(fv.Index(i), fp.Index(i), false)
			}
		default:
			w.value(fv, fp, true)
		}
	}
}

func (w *walker) choiceCardinality(rv reflect.Value, p PathRef, pl *typePlan) {
	var present []string
	for _, f := range pl.fields {
		if populated(rv.Field(f.index)) {
			present = append(present, f.name)
		}
	}
	switch {
	case len(present) == 0:
		w.add(requiredIssue(p, pl.name))
	case len(present) > 1:
		got := strings.Join(present, ", ")
		it := p.Issue(CodeUnionAmbiguous, i18n.T(CodeUnionAmbiguous, map[string]string{"got": got}), "got", present)
		it.Hint = pl.name
		it.Rule = "choice"
		w.add(it)
	}
}

func requiredIssue(p PathRef, typeName string) Issue {
	it := p.Issue(CodeRequired, i18n.T(CodeRequired, nil), "type", typeName)
	it.Hint = typeName
	it.Rule = "minOccurs"
	return it
}

func populated(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return !v.IsNil()
	case reflect.Slice:
		return v.Len() > 0
	default:
		return !v.IsZero()
	}
}

type fieldKind int

const (
	fieldValue fieldKind = iota
	fieldOptional
	fieldRepeated
)

type fieldPlan struct {
	index    int
	name     string
	typeName string
	kind     fieldKind
	required bool
}

type typePlan struct {
	name   string
	choice bool
	fields []fieldPlan
}

var plans sync.Map // reflect.Type -> *typePlan

// planFor returns the cached field plan of a struct type.
func planFor(t reflect.Type) *typePlan {
	if pl, ok := plans.Load(t); ok {
		return pl.(*typePlan)
	}
	pl := &typePlan{name: t.Name(), choice: t.Implements(choiceType) || reflect.PointerTo(t).Implements(choiceType)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type == xmlNameType || sf.Type == bytesType {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "-" {
			continue
		}
		fp := fieldPlan{index: i, name: name, required: fieldRequired(sf), typeName: elemName(sf.Type)}
		switch sf.Type.Kind() {
		case reflect.Pointer, reflect.Interface:
			fp.kind = fieldOptional
		case reflect.Slice:
			fp.kind = fieldRepeated
		}
		pl.fields = append(pl.fields, fp)
	}
	actual, _ := plans.LoadOrStore(t, pl)
	return actual.(*typePlan)
}

func elemName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Name()
}
