// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-drafter/internal/generation"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/strategy"
	"github.com/jonathan/resume-drafter/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintSelection outputs the chosen strategy and how every candidate scored.
func (p *Printer) PrintSelection(sel *strategy.Selection) {
	if sel == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy:   %s\n", sel.Strategy))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f", sel.Confidence))
	if sel.Override {
		sb.WriteString(" (override)")
	}
	sb.WriteString("\n")

	if len(sel.Reasons) > 0 {
		sb.WriteString("\nReasons:\n")
		for _, reason := range sel.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}

	if len(sel.Candidates) > 0 {
		sb.WriteString("\nCandidates:\n")
		for _, c := range sel.Candidates {
			mark := " "
			if c.Applicable {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %-26s %.2f\n", mark, c.Strategy, c.Confidence))
		}
	}

	p.printBox("STRATEGY SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDraft outputs a section-by-section summary of a generated draft.
func (p *Printer) PrintDraft(result *generation.Result) {
	if result == nil || result.Draft == nil {
		return
	}
	d := result.Draft

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(d.PersonalInfo.FullName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(d.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", orDash(result.Industry)))
	sb.WriteString(fmt.Sprintf("Template: %s\n", orDash(d.Settings.Template)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Summary: %s\n\n", truncate(d.Summary, 40)))

	sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(d.Experience)))
	writeItems(&sb, d.Experience, func(e types.Experience) string {
		return strings.TrimSpace(e.Position + " @ " + e.Company)
	})
	sb.WriteString(fmt.Sprintf("Education (%d):\n", len(d.Education)))
	writeItems(&sb, d.Education, func(e types.Education) string {
		return strings.TrimSpace(e.Degree + " " + e.Institution)
	})
	sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(d.Skills)))
	writeItems(&sb, d.Skills, func(s types.Skill) string {
		return fmt.Sprintf("%s [%s, %s]", s.Name, s.Category, s.Level)
	})
	sb.WriteString(fmt.Sprintf("Projects (%d):\n", len(d.Projects)))
	writeItems(&sb, d.Projects, func(pr types.Project) string { return pr.Name })

	if len(result.Fallbacks) > 0 {
		sb.WriteString(fmt.Sprintf("\nFrom template: %s\n", strings.Join(result.Fallbacks, ", ")))
	}

	p.printBox("GENERATED DRAFT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs adaptation diagnostics for a text.
func (p *Printer) PrintAnalysis(industry string, a keywords.Analysis) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:     %s\n", orDash(industry)))
	sb.WriteString(fmt.Sprintf("Words:        %d\n", a.WordCount))
	sb.WriteString(fmt.Sprintf("Replaceable:  %d\n", a.PotentialReplacements))
	sb.WriteString(fmt.Sprintf("Keywords:     %d\n", a.IndustryKeywordsPresent))
	sb.WriteString(fmt.Sprintf("Verbs:        %d\n", a.ActionVerbsPresent))
	sb.WriteString(fmt.Sprintf("Terms:        %d\n", a.TechnicalTermsPresent))
	sb.WriteString(fmt.Sprintf("Potential:    %s", a.AdaptationPotential))

	p.printBox("TEXT ANALYSIS", sb.String())
}

// PrintAdaptation outputs the replacements made while adapting a text.
func (p *Printer) PrintAdaptation(result keywords.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.2f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Replacements: %d\n", len(result.Replacements)))

	count := min(len(result.Replacements), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := result.Replacements[i]
		sb.WriteString(fmt.Sprintf("  • %s → %s\n", r.From, r.To))
	}
	if len(result.Replacements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Replacements)-maxItemsToShow))
	}

	p.printBox("KEYWORD ADAPTATION", strings.TrimSuffix(sb.String(), "\n"))
}

// writeItems writes up to maxItemsToShow labeled list entries
func writeItems[T any](sb *strings.Builder, items []T, label func(T) string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", label(items[i])))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
