// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/inclusive-jobsearch/internal/analysis"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of list items to display
	maxItemsToShow = 10
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result
func (p *Printer) PrintAnalysis(company string, result *analysis.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:         %s\n", company))
	sb.WriteString(fmt.Sprintf("Match:           %d%%\n", result.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Inclusion score: %d/5\n", result.InclusionScore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Required skills (%d):\n", len(result.Skills)))
	for i, skill := range result.Skills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}

	if len(result.SupportPrograms) > 0 {
		sb.WriteString("\nSupport programs:\n")
		for _, program := range result.SupportPrograms {
			sb.WriteString(fmt.Sprintf("  - %s\n", program))
		}
	}

	p.printBox("Job Analysis", strings.TrimRight(sb.String(), "\n"))
}
