// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for CLI results
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

// PrintMatchResults outputs a human-readable summary of ranked career matches.
// With verbose set, the score breakdown is included per match.
func (p *Printer) PrintMatchResults(results []types.MatchResult, verbose bool) {
	for i, result := range results {
		var sb strings.Builder

		sb.WriteString(fmt.Sprintf("Match:   %.1f%% (%s)\n", result.Score, result.Label))
		sb.WriteString(fmt.Sprintf("Salary:  %s\n", result.Job.SalaryRange))
		sb.WriteString(fmt.Sprintf("Demand:  %s\n", result.Job.DemandTrend))

		if len(result.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(result.MissingSkills, ", ")))
		} else {
			sb.WriteString("You have all the core skills.\n")
		}

		if verbose {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("Skill match:       %.1f%%\n", result.Breakdown.SkillMatchPct))
			sb.WriteString(fmt.Sprintf("Interest bonus:    +%.0f\n", result.Breakdown.InterestBonus))
			sb.WriteString(fmt.Sprintf("Math penalty:      -%.0f\n", result.Breakdown.MathPenalty))
			sb.WriteString(fmt.Sprintf("Code penalty:      -%.0f\n", result.Breakdown.CodePenalty))
			sb.WriteString(fmt.Sprintf("Personality bonus: +%.0f\n", result.Breakdown.PersonalityBonus))
		}

		p.printBox(fmt.Sprintf("%d. %s", i+1, result.Job.Title), strings.TrimRight(sb.String(), "\n"))
	}
}

// PrintSkills outputs a skill list under a titled box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSkills(title string, skills []string) {
	if len(skills) == 0 {
		p.printBox(title, "(none)")
		return
	}
	p.printBox(fmt.Sprintf("%s (%d)", title, len(skills)), strings.Join(skills, "\n"))
}
