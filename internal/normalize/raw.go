package normalize

import (
	"fmt"
	"strings"
)

// Document is a raw profile document as uploaded or fetched, before any shape
// guarantees hold.
type Document map[string]any

// entry is the tagged variant a legacy list item may take: either a bare
// string ("AWS") or a full object ({"name": "AWS"}). It is collapsed to the
// canonical object shape at the boundary and never re-examined downstream.
type entry struct {
	legacy string
	fields map[string]any
	isStr  bool
}

// asEntry classifies one raw list item. Items that are neither strings nor
// objects yield an empty entry, which normalizes to the section's template.
func asEntry(v any) entry {
	switch t := v.(type) {
	case string:
		return entry{legacy: strings.TrimSpace(t), isStr: true}
	case map[string]any:
		return entry{fields: t}
	default:
		return entry{}
	}
}

// str returns the first non-empty string among the given field names. For the
// bare-string variant there are no fields, so str yields "": only the section's
// identifying field, read through ident, carries the legacy value.
func (e entry) str(names ...string) string {
	if e.isStr {
		return ""
	}
	for _, name := range names {
		if s := stringOf(e.fields[name]); s != "" {
			return s
		}
	}
	return ""
}

// ident reads the section's identifying field. A bare-string entry collapses to
// an object whose sole populated field is this one.
func (e entry) ident(names ...string) string {
	if e.isStr {
		return e.legacy
	}
	return e.str(names...)
}

func (e entry) boolField(name string) bool {
	if e.isStr {
		return false
	}
	return boolOf(e.fields[name])
}

func (e entry) list(name string) []any {
	if e.isStr {
		return nil
	}
	if l, ok := e.fields[name].([]any); ok {
		return l
	}
	return nil
}

// objectOf returns v as a map when it is one, or nil.
func objectOf(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// listOf returns the first of the given keys that holds a list.
func listOf(doc Document, keys ...string) []any {
	for _, key := range keys {
		if l, ok := doc[key].([]any); ok {
			return l
		}
	}
	return nil
}

// stringOf coerces scalar values to their string form; composite values and
// nil collapse to "".
func stringOf(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// boolOf accepts booleans and their common string spellings.
func boolOf(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	default:
		return false
	}
}

// firstNonEmpty returns the first non-empty candidate.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// stringList flattens a raw list of strings and/or {name: ...} objects into a
// deduplicated list of non-empty strings, preserving first-seen order.
func stringList(raw []any) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		e := asEntry(item)
		s := e.ident("name")
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
