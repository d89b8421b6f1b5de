package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/pattern"
	"github.com/charmbracelet/lipgloss"
)

// RenderTranslation renders a translation result in a box.
func RenderTranslation(phrase string, result model.TranslationResult) string {
	lines := []string{
		field("Phrase", phrase),
		field("Plain", ExpressionStyle.Render(result.Plain)),
		field("Typeset", ExpressionStyle.Render(result.Typeset)),
		field("Pattern", string(result.PatternID)),
	}

	if len(result.Explanation) > 0 {
		lines = append(lines, "", SubtitleStyle.Render("How it was read"))
		for _, step := range result.Explanation {
			lines = append(lines, "  • "+step)
		}
	}

	if len(result.Traps) > 0 {
		lines = append(lines, "")
		for _, trap := range result.Traps {
			lines = append(lines, FormatWarning(trap))
		}
	}

	title := MathIcon + " Translation"
	if !result.Recognized() {
		title = "No pattern matched"
	}
	return RenderBox(title, strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}

// RenderHistory renders history entries as a table, most recent first.
func RenderHistory(entries []model.HistoryEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No translations yet.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("Jan 2 15:04"),
			e.Phrase,
			e.Plain,
			string(e.PatternID),
		})
	}
	return renderTable([]string{"When", "Phrase", "Expression", "Pattern"}, rows)
}

// RenderStats renders aggregated practice results.
func RenderStats(stats model.PracticeStats) string {
	if stats.Total == 0 {
		return SubtleStyle.Render("No practice questions answered yet.")
	}

	lines := []string{
		field("Answered", fmt.Sprintf("%d", stats.Total)),
		field("Correct", SuccessStyle.Render(fmt.Sprintf("%d", stats.Correct))),
		field("Accuracy", fmt.Sprintf("%.1f%%", stats.Accuracy()*100)),
	}

	if len(stats.MistakesByPattern) > 0 {
		ids := make([]model.PatternID, 0, len(stats.MistakesByPattern))
		for id := range stats.MistakesByPattern {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			ci, cj := stats.MistakesByPattern[ids[i]], stats.MistakesByPattern[ids[j]]
			if ci != cj {
				return ci > cj
			}
			return ids[i] < ids[j]
		})

		lines = append(lines, "", SubtitleStyle.Render("Mistakes by pattern"))
		for _, id := range ids {
			lines = append(lines, fmt.Sprintf("  %-16s %d", id, stats.MistakesByPattern[id]))
		}
	}

	return RenderBox(ChartIcon+" Practice stats", strings.Join(lines, "\n"))
}

// RenderMistakes renders incorrect attempts as a table.
func RenderMistakes(attempts []model.PracticeAttempt) string {
	if len(attempts) == 0 {
		return SuccessStyle.Render("No mistakes recorded.")
	}

	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, []string{string(a.PatternID), a.Phrase, a.Expected, a.Answer})
	}
	return renderTable([]string{"Pattern", "Question", "Expected", "Answered"}, rows)
}

// RenderExamples renders corpus examples grouped by difficulty.
func RenderExamples(examples []model.Example) string {
	if len(examples) == 0 {
		return SubtleStyle.Render("No examples match.")
	}

	var b strings.Builder
	var current model.Difficulty
	for _, ex := range examples {
		if ex.Difficulty != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = ex.Difficulty
			b.WriteString(BoldStyle.Render(BookIcon+" "+string(current)) + "\n")
		}
		fmt.Fprintf(&b, "  %s  %s  %s\n", ex.Phrase, SubtleStyle.Render("→"), ExpressionStyle.Render(ex.Plain))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderPatterns lists rules in priority order with their triggers.
func RenderPatterns(rules []pattern.Rule) string {
	rows := make([][]string, 0, len(rules))
	for i, rule := range rules {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), string(rule.ID), rule.Describe()})
	}
	return renderTable([]string{"#", "Pattern", "Triggers"}, rows)
}

// renderTable pads every column to its widest cell.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string) string {
		styled := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				styled[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
				continue
			}
			styled[i] = TableCellStyle.Width(widths[i] + TableCellStyle.GetPaddingRight()).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, styled...)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, TableHeaderStyle.Render(line(headers)))
	for _, row := range rows {
		lines = append(lines, line(row))
	}
	return strings.Join(lines, "\n")
}
