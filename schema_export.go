package iso20022

import (
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/reoring/isoskema/jsonschema"
)

// JSONSchema projects a message or component type to a JSON Schema document
// (draft 2020-12) describing its JSON encoding. Named types are emitted once
// under $defs and referenced with $ref. A Message is wrapped in the codec's
// {"xmlns": ..., "Document": ...} envelope.
func JSONSchema(v any) (*jsonschema.Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, fmt.Errorf("iso20022: JSONSchema of nil")
	}
	g := &schemaGen{defs: map[string]*jsonschema.Schema{}, names: map[reflect.Type]string{}}
	var root *jsonschema.Schema
	if m, ok := v.(Message); ok && t.Kind() == reflect.Struct {
		root = &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"xmlns":    {Type: "string", Const: m.Namespace()},
				"Document": g.schemaFor(t),
			},
			Required: []string{"xmlns", "Document"},
		}
		root.Title = MessageDefinition(m.Namespace())
	} else {
		root = g.schemaFor(t)
		root.Title = t.Name()
	}
	root.SchemaURI = jsonschema.Draft202012
	root.Defs = g.defs
	return root, nil
}

type schemaGen struct {
	defs  map[string]*jsonschema.Schema
	names map[reflect.Type]string
}

// defName assigns a $defs key. Types sharing a name across packages are
// qualified with the package name.
func (g *schemaGen) defName(t reflect.Type) (string, bool) {
	if n, ok := g.names[t]; ok {
		return n, true
	}
	n := t.Name()
	if _, taken := g.defs[n]; taken {
		n = path.Base(t.PkgPath()) + "." + n
	}
	g.names[t] = n
	return n, false
}

func (g *schemaGen) schemaFor(t reflect.Type) *jsonschema.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Slice && t != bytesType {
		return &jsonschema.Schema{Type: "array", Items: g.schemaFor(t.Elem())}
	}
	if t.Name() == "" {
		return primitiveSchema(t)
	}
	name, seen := g.defName(t)
	if seen {
		return jsonschema.RefTo(name)
	}
	def := &jsonschema.Schema{Title: t.Name()}
	g.defs[name] = def
	zero := reflect.New(t).Elem().Interface()
	switch {
	case t.Implements(enumType):
		def.Type = "string"
		def.Enum = zero.(Enumerated).EnumSet().Values()
	case t.Implements(scalarType):
		f := zero.(Scalar).Facets()
		*def = *facetSchema(t, f)
		def.Title = t.Name()
	case t.Kind() == reflect.Struct:
		g.object(t, def)
	default:
		p := primitiveSchema(t)
		p.Title = t.Name()
		*def = *p
	}
	return jsonschema.RefTo(name)
}

func (g *schemaGen) object(t reflect.Type, def *jsonschema.Schema) {
	def.Type = "object"
	def.Properties = map[string]*jsonschema.Schema{}
	for _, f := range jsonFields(t) {
		ps := g.schemaFor(f.sf.Type)
		def.Properties[f.key] = ps
		switch f.sf.Type.Kind() {
		case reflect.Pointer:
			if fieldRequired(f.sf) {
				def.Required = append(def.Required, f.key)
			}
		case reflect.Slice:
			if fieldRequired(f.sf) {
				ps.MinItems = jsonschema.Int(1)
				def.Required = append(def.Required, f.key)
			}
		default:
			def.Required = append(def.Required, f.key)
		}
	}
	if t.Implements(choiceType) {
		def.MaxProperties = jsonschema.Int(1)
	}
}

func facetSchema(t reflect.Type, f Facets) *jsonschema.Schema {
	s := primitiveSchema(t)
	if f.Pattern != nil {
		s.Pattern = "^(?:" + f.Pattern.Expr() + ")$"
	}
	if f.MinLength > 0 {
		s.MinLength = jsonschema.Int(f.MinLength)
	}
	if f.MaxLength > 0 {
		s.MaxLength = jsonschema.Int(f.MaxLength)
	}
	if f.MinInclusive != nil {
		m := *f.MinInclusive
		s.Minimum = &m
	}
	switch f.Type {
	case "ISODate":
		s.Format = "date"
	case "ISODateTime":
		s.Format = "date-time"
	}
	return s
}

func primitiveSchema(t reflect.Type) *jsonschema.Schema {
	switch t.Kind() {
	case reflect.Bool:
		return &jsonschema.Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &jsonschema.Schema{Type: "number"}
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		return &jsonschema.Schema{Type: "integer"}
	default:
		return &jsonschema.Schema{Type: "string"}
	}
}

type jsonField struct {
	key string
	sf  reflect.StructField
}

// jsonFields lists the fields that appear in the JSON encoding, keyed by
// their json tag name.
func jsonFields(t reflect.Type) []jsonField {
	var out []jsonField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type == xmlNameType {
			continue
		}
		key := ResolveStructKey(sf)
		if jt, ok := sf.Tag.Lookup("json"); ok {
			key, _, _ = strings.Cut(jt, ",")
			if key == "" {
				key = sf.Name
			}
		}
		if key == "-" {
			continue
		}
		out = append(out, jsonField{key: key, sf: sf})
	}
	return out
}
