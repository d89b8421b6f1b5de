package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_Seeds(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()

	db.SeedHistory("sum of 1 and 2", "twice y")
	db.SeedAttempts(model.PracticeAttempt{
		PatternID: model.PatternTwice,
		Phrase:    "twice z",
		Expected:  "2 * z",
		Answer:    "z * 2",
	})

	history, err := db.Storage.GetHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "twice y", history[0].Phrase)
	assert.Equal(t, model.PatternTwice, history[0].PatternID)

	stats, err := db.Storage.GetPracticeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.MistakesByPattern[model.PatternTwice])
}
