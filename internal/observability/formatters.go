// Package observability provides formatted output for verbose CLI mode and service metrics.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
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

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

// PrintScoreResult prints every box for a result: summary, keywords,
// measurable results and structure.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}
	p.PrintScoreSummary(result)
	p.PrintKeywordUsage(&result.Details.KeywordUsage)
	p.PrintMeasurableResults(&result.Details.MeasurableResults)
	p.PrintStructure(&result.Details.Structure)
}

// PrintScoreSummary outputs the composite and the three weighted sub-scores.
func (p *Printer) PrintScoreSummary(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite:          %3d / 100\n", result.Composite))
	if result.MaxAchievable != nil {
		sb.WriteString(fmt.Sprintf("Max achievable:     %3d / 100\n", *result.MaxAchievable))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keywords (50%%):     %3d\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Measurable (25%%):   %3d\n", result.MeasurableResultsScore))
	sb.WriteString(fmt.Sprintf("Structure (25%%):    %3d", result.StructureScore))

	p.printBox("ATS SCORE", sb.String())
}

// PrintKeywordUsage outputs matched keywords with where they were found and
// missing keywords with their importance.
func (p *Printer) PrintKeywordUsage(usage *types.KeywordScoreResult) {
	if usage == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d  (matched %d, missing %d)\n",
		usage.Score, len(usage.Matched), len(usage.Missing)))

	if len(usage.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(usage.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := usage.Matched[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s", m.Keyword))
			if len(m.FoundIn) > 0 {
				sb.WriteString(fmt.Sprintf(" [%s]", truncate(strings.Join(m.FoundIn, ", "), 30)))
			}
			sb.WriteString("\n")
		}
		if len(usage.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(usage.Matched)-maxItemsToShow))
		}
	}

	if len(usage.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(usage.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := usage.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s (%s)", m.Keyword, m.Importance))
			if m.InFullProfile {
				sb.WriteString(" *in master résumé")
			}
			sb.WriteString("\n")
		}
		if len(usage.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(usage.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD USAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMeasurableResults outputs the bullets that lack a quantified result.
func (p *Printer) PrintMeasurableResults(results *types.MeasurableResultsScoreResult) {
	if results == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d\n", results.Score))
	sb.WriteString(fmt.Sprintf("Quantified: %d of %d bullets (ideal %d)\n",
		results.BulletsWithMetrics, results.TotalBullets, results.IdealCount))
	if results.SummaryHasMetric {
		sb.WriteString("Summary carries a metric\n")
	}

	var flagged []types.BulletAssessment
	for _, a := range results.BulletAssessments {
		if !a.HasMetric {
			flagged = append(flagged, a)
		}
	}
	if len(flagged) > 0 {
		sb.WriteString("\nWithout a metric:\n")
		count := min(len(flagged), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", truncate(flagged[i].Text, 48)))
		}
		if len(flagged) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(flagged)-maxItemsToShow))
		}
	}

	p.printBox("MEASURABLE RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStructure outputs the five structure sub-scores and what drove them.
func (p *Printer) PrintStructure(structure *types.StructureScoreResult) {
	if structure == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d\n\n", structure.Score))
	sb.WriteString(fmt.Sprintf("Section order:  %3d\n", structure.SectionOrderScore))
	sb.WriteString(fmt.Sprintf("Completeness:   %3d\n", structure.CompletenessScore))
	sb.WriteString(fmt.Sprintf("Summary:        %3d  (%d words, ideal %d-%d)\n",
		structure.SummaryScore, structure.SummaryWordCount,
		structure.SummaryIdealRange[0], structure.SummaryIdealRange[1]))
	sb.WriteString(fmt.Sprintf("Bullet counts:  %3d\n", structure.BulletCountScore))
	sb.WriteString(fmt.Sprintf("Page length:    %3d  (%d pages, ideal %d)\n",
		structure.PageLengthScore, structure.EstimatedPages, structure.IdealPages))

	if len(structure.MissingSections) > 0 {
		names := make([]string, len(structure.MissingSections))
		for i, s := range structure.MissingSections {
			names[i] = string(s)
		}
		sb.WriteString(fmt.Sprintf("\nMissing sections: %s\n", strings.Join(names, ", ")))
	}

	p.printBox("STRUCTURE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMeasurableLines prints each line prefixed with its measurable flag.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMeasurableLines(lines []string, flags []bool) {
	for i, line := range lines {
		mark := "✗"
		if i < len(flags) && flags[i] {
			mark = "✓"
		}
		fmt.Fprintf(p.out, "%s %s\n", mark, line)
	}
}
