// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-chat/internal/types"
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
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(title, inner), inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-fills s with spaces to n runes; %-*s counts bytes, not runes.
func pad(s string, n int) string {
	if missing := n - utf8.RuneCountInString(s); missing > 0 {
		return s + strings.Repeat(" ", missing)
	}
	return s
}

// writeList appends up to maxItemsToShow items under a heading.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", heading, len(items))
	for _, item := range items[:min(len(items), maxItemsToShow)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
	sb.WriteString("\n")
}

// PrintProfile outputs a human-readable summary of a parsed or stored profile.
func (p *Printer) PrintProfile(source string, profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", profile.Name)
	fmt.Fprintf(&sb, "Title:    %s\n", profile.Title)
	fmt.Fprintf(&sb, "Location: %s\n", profile.Location)
	if profile.Bio != "" {
		fmt.Fprintf(&sb, "Bio:      %s\n", profile.Bio)
	}
	sb.WriteString("\n")

	jobs := make([]string, len(profile.Experience))
	for i, exp := range profile.Experience {
		jobs[i] = fmt.Sprintf("%s at %s (%s)", exp.Title, exp.Company, exp.Period)
	}
	writeList(&sb, "Experience", jobs)
	writeList(&sb, "Skills", profile.Skills)
	writeList(&sb, "Certificates", profile.Certificates)

	langs := make([]string, len(profile.Languages))
	for i, lang := range profile.Languages {
		langs[i] = fmt.Sprintf("%s: %s", lang.Name, lang.Level)
	}
	writeList(&sb, "Languages", langs)
	writeList(&sb, "Memberships", profile.Memberships)

	title := "CV PROFILE"
	if source != "" {
		title += " · " + source
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintChat outputs one question and its answer.
func (p *Printer) PrintChat(section, question, answer string) {
	title := "CHAT"
	if section != "" {
		title += " · " + section
	}
	p.printBox(title, fmt.Sprintf("Q: %s\n\n%s", question, wrap(answer, boxWidth-4)))
}

// wrap breaks text on spaces so lines fit in width runes.
func wrap(text string, width int) string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width:
				out = append(out, line)
				line = word
			default:
				line += " " + word
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
