package sheets

import (
	"testing"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() service.Report {
	at := time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC)
	return service.Report{
		GeneratedAt: at,
		Stats: model.PracticeStats{
			Total:   8,
			Correct: 6,
			MistakesByPattern: map[model.PatternID]int{
				model.PatternTwice:    1,
				model.PatternLessThan: 1,
			},
		},
		History: []model.HistoryEntry{
			{CreatedAt: at, Phrase: "5 less than y", Plain: "y - 5", Typeset: "y - 5", PatternID: model.PatternLessThan},
		},
		Mistakes: []model.PracticeAttempt{
			{CreatedAt: at, PatternID: model.PatternLessThan, Phrase: "3 less than y", Expected: "y - 3", Answer: "3 - y"},
			{CreatedAt: at, PatternID: model.PatternTwice, Phrase: "twice z", Expected: "2 * z", Answer: "z + 2"},
		},
	}
}

func TestBuildTabs_Layout(t *testing.T) {
	tabs := BuildTabs(sampleReport())
	require.Len(t, tabs, 3)

	titles := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		titles = append(titles, tab.Title)
	}
	assert.Equal(t, TabTitles(), titles)
}

func TestBuildTabs_Summary(t *testing.T) {
	summary := BuildTabs(sampleReport())[0]

	assert.Equal(t, []any{"Metric", "Value"}, summary.Values[0])
	assert.Equal(t, []any{"Generated", "2026-04-02T15:30:00Z"}, summary.Values[1])
	assert.Equal(t, []any{"Questions answered", 8}, summary.Values[2])
	assert.Equal(t, []any{"Correct answers", 6}, summary.Values[3])
	assert.Equal(t, []any{"Accuracy", "75.0%"}, summary.Values[4])
	assert.Equal(t, []any{"Translations in history", 1}, summary.Values[5])
	assert.Equal(t, []any{"Pattern", "Mistakes"}, summary.Values[7])

	// Equal counts fall back to pattern id order.
	assert.Equal(t, []any{"less_than", 1}, summary.Values[8])
	assert.Equal(t, []any{"twice", 1}, summary.Values[9])
}

func TestBuildTabs_SummaryOrdersByMistakes(t *testing.T) {
	report := sampleReport()
	report.Stats.MistakesByPattern[model.PatternTwice] = 4

	summary := BuildTabs(report)[0]
	assert.Equal(t, []any{"twice", 4}, summary.Values[8])
	assert.Equal(t, []any{"less_than", 1}, summary.Values[9])
}

func TestBuildTabs_HistoryAndMistakes(t *testing.T) {
	tabs := BuildTabs(sampleReport())

	history := tabs[1]
	require.Len(t, history.Values, 2)
	assert.Equal(t, []any{"When", "Phrase", "Plain", "Typeset", "Pattern"}, history.Values[0])
	assert.Equal(t, []any{"2026-04-02 15:30", "5 less than y", "'y - 5", "'y - 5", "less_than"}, history.Values[1])

	mistakes := tabs[2]
	require.Len(t, mistakes.Values, 3)
	assert.Equal(t, []any{"2026-04-02 15:30", "less_than", "3 less than y", "'y - 3", "'3 - y"}, mistakes.Values[1])
}

func TestBuildTabs_Empty(t *testing.T) {
	tabs := BuildTabs(service.Report{})
	require.Len(t, tabs, 3)
	assert.Len(t, tabs[1].Values, 1)
	assert.Len(t, tabs[2].Values, 1)
	assert.Equal(t, []any{"Accuracy", "0.0%"}, tabs[0].Values[4])
}
