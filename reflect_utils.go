package iso20022

import (
	"encoding/xml"
	"reflect"
	"strings"
)

var xmlNameType = reflect.TypeOf(xml.Name{})

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// element name, which becomes a JSON Pointer segment in Issue paths.
// Priority: iso20022:"name=..." > xml tag name > field name; "-" disables the
// field. Character data resolves to "" (the value shares its parent's path).
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("iso20022"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if xt, ok := sf.Tag.Lookup("xml"); ok {
		if xt == "-" {
			return "-"
		}
		name, flags, _ := strings.Cut(xt, ",")
		switch {
		case strings.Contains(flags, "chardata"):
			return ""
		case strings.Contains(flags, "innerxml"), strings.Contains(flags, "comment"), strings.Contains(flags, "any"):
			return "-"
		}
		// "ns Local" carries a namespace; keep the local name.
		if i := strings.LastIndexByte(name, ' '); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.LastIndexByte(name, '>'); i >= 0 {
			name = name[i+1:]
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}

// fieldRequired reports whether the field is tagged iso20022:"required".
func fieldRequired(sf reflect.StructField) bool {
	for _, p := range strings.Split(sf.Tag.Get("iso20022"), ",") {
		if strings.TrimSpace(p) == "required" {
			return true
		}
	}
	return false
}
