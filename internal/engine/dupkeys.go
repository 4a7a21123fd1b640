// Package engine scans raw JSON documents for problems that are lost once the
// document is decoded into Go structs.
package engine

import (
	"errors"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is the engine's issue shape; callers convert it to their own.
type SimpleIssue struct {
	Code string
	Path string
	Key  string
}

// ErrMaxDepth is returned when nesting exceeds ScanOptions.MaxDepth.
var ErrMaxDepth = errors.New("engine: max nesting depth exceeded")

// ScanOptions configures ScanJSON.
type ScanOptions struct {
	OnDuplicate DuplicateStrictness
	// MaxDepth limits object/array nesting; 0 means unlimited.
	MaxDepth int
	// MaxIssues < 0 means unlimited; 0 disables reporting; > 0 caps the list
	// and appends a "truncated" issue.
	MaxIssues int
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// ScanJSON reads r token by token and reports duplicate object keys with the
// JSON Pointer of the object holding them. With DupError it stops at the first
// duplicate. A syntax error or ErrMaxDepth is returned as error.
func ScanJSON(r io.Reader, opt ScanOptions) ([]SimpleIssue, error) {
	if opt.OnDuplicate == DupIgnore && opt.MaxDepth == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var issues []SimpleIssue
	var stack []dupFrame
	full := false
	appendIssue := func(i SimpleIssue) {
		if opt.MaxIssues == 0 || full {
			return
		}
		issues = append(issues, i)
		if opt.MaxIssues > 0 && len(issues) >= opt.MaxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/"})
			full = true
		}
	}

	// valuePath returns the pointer of the value about to be read and marks it
	// consumed in the enclosing container.
	valuePath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := top.path + "/" + strconv.Itoa(top.nextIndex)
			top.nextIndex++
			return p
		}
		top.expectingKey = true
		return top.path + "/" + escape(top.pendingKey)
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return issues, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				p := valuePath()
				if opt.MaxDepth > 0 && len(stack) >= opt.MaxDepth {
					return issues, ErrMaxDepth
				}
				f := dupFrame{kind: kindArray, path: p}
				if v == '{' {
					f.kind = kindObject
					f.keys = make(map[string]struct{})
					f.expectingKey = true
				}
				stack = append(stack, f)
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok && opt.OnDuplicate != DupIgnore {
						appendIssue(SimpleIssue{Code: "duplicate_key", Path: pointerOrRoot(top.path), Key: v})
						if opt.OnDuplicate == DupError {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.pendingKey = v
					top.expectingKey = false
					continue
				}
			}
			valuePath()
		default:
			valuePath()
		}
	}
	return issues, nil
}

func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
