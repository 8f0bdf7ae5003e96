// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/profile-builder/internal/types"
	"github.com/jonathan/profile-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs a human-readable summary of a normalized
// profile.
func (p *Printer) PrintProfileSummary(profile types.Profile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name: %s\n", valueOrDash(profile.BasicInfo.Name)))
	sb.WriteString(fmt.Sprintf("Email: %s\n", valueOrDash(profile.BasicInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", valueOrDash(profile.BasicInfo.Phone)))
	sb.WriteString(fmt.Sprintf("Education entries: %d\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Work experience entries: %d\n", len(profile.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Projects: %d, Achievements: %d, Certifications: %d\n",
		len(profile.Projects), len(profile.Achievements), len(profile.Certification)))

	skills := profile.PrimarySkills
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("Primary skills: %s, ... (%d total)",
			strings.Join(skills[:maxItemsToShow], ", "), len(skills)))
	} else if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Primary skills: %s", strings.Join(skills, ", ")))
	} else {
		sb.WriteString("Primary skills: -")
	}

	p.printBox("PROFILE SUMMARY", sb.String())
}

// PrintValidationReport outputs per-step error counts and the messages of
// every failing field.
func (p *Printer) PrintValidationReport(profile types.Profile) {
	var sb strings.Builder
	for _, section := range types.SectionOrder {
		n := validation.StepErrorCount(profile, section)
		if n == 0 {
			sb.WriteString(fmt.Sprintf("%s: ok\n", section))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %d error(s)\n", section, n))
	}
	p.printBox("VALIDATION", strings.TrimRight(sb.String(), "\n"))
}

// PrintCompletion outputs the completion score.
func (p *Printer) PrintCompletion(score int) {
	p.printBox("COMPLETION", fmt.Sprintf("Profile is %d%% complete", score))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
