// Package dates normalizes the free-text month/year values that arrive in
// uploaded profile documents.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	slashForm   = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	isoForm     = regexp.MustCompile(`^(\d{4})-(\d{1,2})(?:-(\d{1,2}))?$`)
	sepForm     = regexp.MustCompile(`^(\d{1,2})[-.](\d{4})$`)
	nameForm    = regexp.MustCompile(`^([A-Za-z]{3,9})[ ,]+(\d{4})$`)
	bareYear    = regexp.MustCompile(`^\d{4}$`)
	monthsByNum = []string{"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december"}
)

// NormalizeMonthYear converts a free-text month/year value to the canonical
// MM/YYYY form. Accepted inputs: MM/YYYY, YYYY-MM[-DD], MM-YYYY, MM.YYYY,
// "Mon YYYY"/"Month YYYY" (case-insensitive), or a bare YYYY. A bare year is
// kept as-is; anything unrecognized passes through unchanged. The function is
// total and idempotent.
func NormalizeMonthYear(s string) string {
	v := strings.TrimSpace(s)
	if v == "" {
		return s
	}

	if m := slashForm.FindStringSubmatch(v); m != nil {
		return formatMonthYear(m[1], m[2])
	}
	if m := isoForm.FindStringSubmatch(v); m != nil {
		return formatMonthYear(m[2], m[1])
	}
	if m := sepForm.FindStringSubmatch(v); m != nil {
		return formatMonthYear(m[1], m[2])
	}
	if m := nameForm.FindStringSubmatch(v); m != nil {
		if num, ok := monthNumber(m[1]); ok {
			return fmt.Sprintf("%02d/%s", num, m[2])
		}
	}
	if bareYear.MatchString(v) {
		return v
	}

	// Unrecognized input passes through so a stray value never becomes an error.
	return s
}

func formatMonthYear(month, year string) string {
	n, err := strconv.Atoi(month)
	if err != nil || n < 1 || n > 12 {
		return fmt.Sprintf("%s/%s", month, year)
	}
	return fmt.Sprintf("%02d/%s", n, year)
}

// monthNumber resolves a month name or unambiguous prefix (at least three
// letters, e.g. "Aug", "Sept") to its 1-based month number.
func monthNumber(name string) (int, bool) {
	lower := strings.ToLower(name)
	for i, full := range monthsByNum {
		if lower == full || (len(lower) >= 3 && strings.HasPrefix(full, lower)) {
			return i + 1, true
		}
	}
	return 0, false
}
