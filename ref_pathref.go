package iso20022

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef is an immutable JSON Pointer under construction. The walker extends
// it one element name or list index at a time and materializes it only when
// an Issue is created.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the empty path ("/").
func Root() PathRef { return (*pathNode)(nil) }

// At parses a JSON Pointer into a PathRef. Segments are kept escaped.
func At(pointer string) PathRef {
	var p *pathNode
	for _, seg := range strings.Split(pointer, "/") {
		if seg != "" {
			p = p.push(seg)
		}
	}
	return p
}

// pathNode is one segment linked to its parent; nil is the root.
type pathNode struct {
	parent *pathNode
	seg    string // escaped per RFC 6901
	depth  int
}

func (p *pathNode) push(seg string) *pathNode {
	d := 1
	if p != nil {
		d = p.depth + 1
	}
	return &pathNode{parent: p, seg: seg, depth: d}
}

// Field appends an element name. Character data shares its parent's path,
// so the empty name is a no-op.
func (p *pathNode) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return p.push(escapePointer(name))
}

func (p *pathNode) Index(i int) PathRef { return p.push(strconv.Itoa(i)) }

func (p *pathNode) Pointer() string {
	if p == nil {
		return "/"
	}
	segs := make([]string, p.depth)
	for n := p; n != nil; n = n.parent {
		segs[n.depth-1] = n.seg
	}
	return "/" + strings.Join(segs, "/")
}

// Issue creates an Issue at this path. kv are alternating param keys and
// values.
func (p *pathNode) Issue(code, msg string, kv ...any) Issue {
	params := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

func escapePointer(s string) string { return pointerEscaper.Replace(s) }
func unescapePointer(s string) string { return pointerUnescaper.Replace(s) }
