// Package codec provides the paired normalize/denormalize transforms between
// the canonical profile shape and the shapes the wizard steps and the backend
// contract need. Normalized forms default every field so an editor never sees
// an absent value; denormalized records turn empty optional strings into JSON
// null.
package codec

import (
	"regexp"
	"strings"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// optional maps "" to nil so the serialized record carries null rather than
// an empty string.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// yearOf extracts the four-digit year from a date value in any of the forms
// the codecs traffic in (bare year, MM/YYYY, YYYY-MM-DD). Values without a
// year collapse to "".
func yearOf(s string) string {
	return yearPattern.FindString(s)
}

// splitLines turns a multi-line description into its nonblank trimmed lines.
func splitLines(description string) []string {
	lines := strings.Split(description, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// EditableList returns the entries a wizard step should display: the stored
// list when non-empty, otherwise a one-element list holding the section's
// empty template. The substitution is display-only; the stored section is not
// written.
func EditableList[T any](stored []T, template T) []T {
	if len(stored) == 0 {
		return []T{template}
	}
	return stored
}

// RemoveEntry returns the list with index i removed. Removing the last
// remaining entry (or an out-of-range index) is a no-op: the visible list
// never drops below one entry, so the returned bool reports whether anything
// changed and the caller should write the section back.
func RemoveEntry[T any](stored []T, i int) ([]T, bool) {
	if len(stored) <= 1 || i < 0 || i >= len(stored) {
		return stored, false
	}
	out := make([]T, 0, len(stored)-1)
	out = append(out, stored[:i]...)
	out = append(out, stored[i+1:]...)
	return out, true
}

// DedupeStrings suppresses duplicates in a set-like string list, preserving
// first-seen order and dropping blanks.
func DedupeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
