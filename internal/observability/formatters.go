// Package observability provides formatted report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/schemas"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/jonathan/competitiveness/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer writes boxed, human-readable reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Padding is
// measured in display cells so styled and multi-byte text stays aligned.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(styleTitle.Render(title), inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to width display cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// truncate shortens unstyled text to width display cells.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// levelStyle colours a level by where it sits in the policy's thresholds.
// The upper half of the levels reads as good.
func levelStyle(r *types.EvaluationResult, policy *config.Competitiveness) lipgloss.Style {
	if r.Disqualified {
		return styleBad
	}
	if policy == nil {
		policy = config.Default()
	}
	levels := policy.SortedLevels()
	for i, l := range levels {
		if l.Level == r.Level && i < (len(levels)+1)/2 {
			return styleGood
		}
	}
	return styleWarn
}

func tierStyle(t types.Tier) lipgloss.Style {
	switch {
	case t.IsHigh():
		return styleGood
	case t == types.TierUnknown:
		return styleMuted
	default:
		return styleWarn
	}
}

// PrintEvaluation outputs the numeric score, level and per-category points.
// The level is coloured against policy; nil means the default policy.
func (p *Printer) PrintEvaluation(result *types.EvaluationResult, policy *config.Competitiveness) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:  %.1f / 100\n", result.Total))
	sb.WriteString(fmt.Sprintf("Level:  %s\n", levelStyle(result, policy).Render(result.Level)))
	if result.Disqualified {
		sb.WriteString(fmt.Sprintf("Disqualified by %s\n", result.DisqualifierID))
	}
	for _, flag := range result.Flags {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", flag))
	}
	sb.WriteString("\n")

	for _, d := range result.Details {
		line := fmt.Sprintf("%-12s %5.1f / %-4g", d.Category, d.CappedPoints, d.CategoryMax)
		switch {
		case d.Zeroed:
			line += "  " + styleBad.Render("zeroed")
		case d.RawPoints > d.CappedPoints:
			line += "  " + styleMuted.Render(fmt.Sprintf("capped from %g", d.RawPoints))
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("COMPETITIVENESS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStages outputs the readiness stage of each category, noting anchor lifts.
func (p *Printer) PrintStages(stages []types.StageResult) {
	if len(stages) == 0 {
		return
	}

	var sb strings.Builder
	for _, st := range stages {
		line := fmt.Sprintf("%-12s %3.0f%%  %s", st.Category, st.Percent, st.Stage)
		if st.LiftedBy != "" {
			line += styleMuted.Render(fmt.Sprintf("  (lifted from %s by %s)", st.BaseStage, st.LiftedBy))
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("READINESS STAGES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs the categories with the most points left to earn.
func (p *Printer) PrintGaps(gaps []scoring.Gap) {
	if len(gaps) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %-12s %g points available\n", gaps[i].Category, gaps[i].Missing))
	}
	if len(gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gaps)-maxItemsToShow))
	}

	p.printBox("WHERE TO IMPROVE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualitative outputs per-category tiers with their status summaries and
// the overall tier from the reducers selected by strategy ("majority",
// "weighted" or anything else for both).
func (p *Printer) PrintQualitative(q *types.QualitativeResult, strategy string) {
	if q == nil {
		return
	}

	var sb strings.Builder
	if strategy != "weighted" {
		sb.WriteString(fmt.Sprintf("Majority tier:  %s\n", tierStyle(q.MajorityTier).Render(string(q.MajorityTier))))
	}
	if strategy != "majority" {
		sb.WriteString(fmt.Sprintf("Weighted tier:  %s (%.2f)\n", tierStyle(q.WeightedTier).Render(string(q.WeightedTier)), q.WeightedScore))
	}
	sb.WriteString("\n")

	for i, a := range q.Categories {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", a.Category, tierStyle(a.Tier).Render(string(a.Tier))))
		sb.WriteString(fmt.Sprintf("  %s\n", a.Status))
		if i < len(q.Categories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("QUALITATIVE ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the result of validating a document against a schema.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(name string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad(styleGood.Render("✅ "+name+" is valid"), boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if verr, ok := err.(*schemas.ValidationError); ok {
		sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(verr.Errors)))
		for _, fe := range verr.Errors {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
			sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
		}
	} else {
		sb.WriteString(err.Error())
	}

	p.printBox("VALIDATION FAILED: "+name, strings.TrimSuffix(sb.String(), "\n"))
}
