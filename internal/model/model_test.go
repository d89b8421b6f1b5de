package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationResult_Clone(t *testing.T) {
	original := TranslationResult{
		Plain:       "5 + 3",
		Typeset:     "5 + 3",
		PatternID:   PatternSum,
		Explanation: []string{`"sum of" → addition (+)`},
		Traps:       []string{},
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.Explanation[0] = "mutated"
	assert.Equal(t, `"sum of" → addition (+)`, original.Explanation[0])
	assert.NotNil(t, clone.Traps, "empty trap list stays non-nil")
}

func TestTranslationResult_JSON(t *testing.T) {
	data, err := json.Marshal(TranslationResult{
		Plain:       "???",
		Typeset:     "???",
		PatternID:   PatternUnknown,
		Explanation: []string{"no match"},
		Traps:       []string{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"plain":"???","typeset":"???","pattern":"unknown","explanation":["no match"],"traps":[]}`, string(data))
}

func TestTranslationResult_Recognized(t *testing.T) {
	assert.True(t, TranslationResult{PatternID: PatternRatio}.Recognized())
	assert.False(t, TranslationResult{PatternID: PatternUnknown}.Recognized())
	assert.False(t, TranslationResult{}.Recognized())
}

func TestPracticeStats(t *testing.T) {
	assert.Zero(t, PracticeStats{}.Accuracy())

	stats := PracticeStats{Total: 4, Correct: 3}
	assert.InDelta(t, 0.75, stats.Accuracy(), 1e-9)
	assert.Equal(t, 1, stats.Mistakes())
}

func TestDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		assert.True(t, d.IsValid(), d)
	}
	assert.True(t, DifficultyAll.IsValid())
	assert.False(t, Difficulty("graduate").IsValid())
	assert.Len(t, Difficulties(), 7)
}

func TestExample_HasTag(t *testing.T) {
	ex := Example{Tags: []string{"addition", "sum"}}
	assert.True(t, ex.HasTag("sum"))
	assert.False(t, ex.HasTag("product"))
}

func TestNewHistoryEntry(t *testing.T) {
	entry := NewHistoryEntry("twice y", TranslationResult{Plain: "2 * y", Typeset: "2y", PatternID: PatternTwice})
	assert.Equal(t, "twice y", entry.Phrase)
	assert.Equal(t, "2 * y", entry.Plain)
	assert.Equal(t, "2y", entry.Typeset)
	assert.Equal(t, PatternTwice, entry.PatternID)
	assert.Empty(t, entry.ID)
	assert.True(t, entry.CreatedAt.IsZero())
}
