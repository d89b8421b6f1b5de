package sheets

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/service"
)

// Tab titles, in the order they appear in the spreadsheet.
const (
	TabSummary  = "Summary"
	TabHistory  = "History"
	TabMistakes = "Mistakes"
)

// Tab is one worksheet worth of cell values. Row 0 is the header row.
type Tab struct {
	Title  string
	Values [][]any
}

// TabTitles returns every tab title in spreadsheet order.
func TabTitles() []string {
	return []string{TabSummary, TabHistory, TabMistakes}
}

// BuildTabs lays out a report as spreadsheet tabs.
func BuildTabs(report service.Report) []Tab {
	return []Tab{
		summaryTab(report),
		historyTab(report.History),
		mistakesTab(report.Mistakes),
	}
}

func summaryTab(report service.Report) Tab {
	stats := report.Stats
	values := [][]any{
		{"Metric", "Value"},
		{"Generated", report.GeneratedAt.Format(time.RFC3339)},
		{"Questions answered", stats.Total},
		{"Correct answers", stats.Correct},
		{"Accuracy", fmt.Sprintf("%.1f%%", stats.Accuracy()*100)},
		{"Translations in history", len(report.History)},
		{},
		{"Pattern", "Mistakes"},
	}

	patterns := make([]model.PatternID, 0, len(stats.MistakesByPattern))
	for id := range stats.MistakesByPattern {
		patterns = append(patterns, id)
	}
	// Most frequent mistakes first, ties by id.
	slices.SortFunc(patterns, func(a, b model.PatternID) int {
		if diff := stats.MistakesByPattern[b] - stats.MistakesByPattern[a]; diff != 0 {
			return diff
		}
		return cmp.Compare(a, b)
	})

	for _, id := range patterns {
		values = append(values, []any{string(id), stats.MistakesByPattern[id]})
	}

	return Tab{Title: TabSummary, Values: values}
}

func historyTab(entries []model.HistoryEntry) Tab {
	values := make([][]any, 0, len(entries)+1)
	values = append(values, []any{"When", "Phrase", "Plain", "Typeset", "Pattern"})
	for _, e := range entries {
		values = append(values, []any{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Phrase,
			// A leading apostrophe keeps USER_ENTERED from reading "x + 5" style text as a formula.
			"'" + e.Plain,
			"'" + e.Typeset,
			string(e.PatternID),
		})
	}
	return Tab{Title: TabHistory, Values: values}
}

func mistakesTab(attempts []model.PracticeAttempt) Tab {
	values := make([][]any, 0, len(attempts)+1)
	values = append(values, []any{"When", "Pattern", "Phrase", "Expected", "Answered"})
	for _, a := range attempts {
		values = append(values, []any{
			a.CreatedAt.Format("2006-01-02 15:04"),
			string(a.PatternID),
			a.Phrase,
			"'" + a.Expected,
			"'" + a.Answer,
		})
	}
	return Tab{Title: TabMistakes, Values: values}
}
