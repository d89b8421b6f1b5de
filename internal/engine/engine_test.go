package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/pattern"
	"github.com/Veraticus/mathspeak/internal/practice"
	"github.com/Veraticus/mathspeak/internal/service"
	"github.com/Veraticus/mathspeak/internal/sheets"
	"github.com/Veraticus/mathspeak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTranslator records how often the underlying translator runs.
type countingTranslator struct {
	calls atomic.Int32
}

func (c *countingTranslator) Translate(raw string) model.TranslationResult {
	c.calls.Add(1)
	return pattern.Translate(raw)
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *testutil.TestDB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	e, err := NewWithComponents(db.Storage, nil, practice.NewGenerator(rand.NewPCG(1, 2)), cfg)
	require.NoError(t, err)
	return e, db
}

func TestNew_RequiresStorage(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestTranslate_RecordsHistory(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	result, err := e.Translate(ctx, "  5 less than x  ")
	require.NoError(t, err)
	assert.Equal(t, "x - 5", result.Plain)
	assert.Equal(t, model.PatternLessThan, result.PatternID)

	history, err := e.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "5 less than x", history[0].Phrase)
	assert.Equal(t, "x - 5", history[0].Plain)
	assert.Equal(t, model.PatternLessThan, history[0].PatternID)
}

func TestTranslate_HistoryDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryEnabled = false
	e, _ := newTestEngine(t, cfg)
	ctx := context.Background()

	_, err := e.Translate(ctx, "sum of 1 and 2")
	require.NoError(t, err)

	history, err := e.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTranslate_EmptyPhrase(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	for _, phrase := range []string{"", "   ", "\t\n"} {
		_, err := e.Translate(context.Background(), phrase)
		assert.ErrorIs(t, err, common.ErrEmptyPhrase, "phrase %q", phrase)
	}
}

func TestTranslate_UnknownStillRecorded(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	result, err := e.Translate(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, model.PatternUnknown, result.PatternID)

	history, err := e.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.PatternUnknown, history[0].PatternID)
}

func TestTranslate_Cache(t *testing.T) {
	db := testutil.SetupTestDB(t)
	translator := &countingTranslator{}
	cfg := DefaultConfig()
	cfg.CacheSize = 2

	e, err := NewWithComponents(db.Storage, translator, nil, cfg)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := e.Translate(ctx, "The sum of 5 and 3.")
	require.NoError(t, err)
	second, err := e.Translate(ctx, "the sum of 5 and 3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), translator.calls.Load(), "normalized phrases share a cache entry")
	assert.Equal(t, 1, e.CacheLen())

	// Callers cannot corrupt the cached copy.
	second.Explanation[0] = "mutated"
	third := e.Preview("the sum of 5 and 3")
	assert.NotEqual(t, "mutated", third.Explanation[0])

	e.Preview("twice y")
	e.Preview("triple z")
	assert.Equal(t, 2, e.CacheLen())
}

func TestTranslate_CacheDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	translator := &countingTranslator{}
	cfg := DefaultConfig()
	cfg.CacheSize = 0

	e, err := NewWithComponents(db.Storage, translator, nil, cfg)
	require.NoError(t, err)

	e.Preview("twice y")
	e.Preview("twice y")
	assert.Equal(t, int32(2), translator.calls.Load())
	assert.Zero(t, e.CacheLen())
}

func TestTranslate_Concurrent(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := e.Translate(ctx, "product of a and b")
			assert.NoError(t, err)
			assert.Equal(t, "a * b", result.Plain)
		}()
	}
	wg.Wait()

	history, err := e.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 20)
}

func TestPractice_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PracticeCount = 4
	cfg.DefaultPattern = model.PatternTwice
	e, _ := newTestEngine(t, cfg)

	items := e.Practice("", 0)
	require.Len(t, items, 4)
	for _, item := range items {
		assert.Equal(t, model.PatternTwice, item.PatternID)
	}

	items = e.Practice(model.PatternSquare, 2)
	require.Len(t, items, 2)
	assert.Equal(t, "square of t", items[0].Phrase)
}

func TestSubmit_RecordsStats(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	items := e.Practice(model.PatternLessThan, 3)
	require.Len(t, items, 3)

	attempt, err := e.Submit(ctx, items[0], " "+items[0].Answer+" ")
	require.NoError(t, err)
	assert.True(t, attempt.Correct)
	assert.NotEmpty(t, attempt.ID)

	attempt, err = e.Submit(ctx, items[1], "wrong")
	require.NoError(t, err)
	assert.False(t, attempt.Correct)

	_, err = e.Submit(ctx, items[2], "also wrong")
	require.NoError(t, err)

	stats, err := e.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Correct)
	assert.Equal(t, 2, stats.MistakesByPattern[model.PatternLessThan])

	mistakes, err := e.Mistakes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, "also wrong", mistakes[0].Answer)

	require.NoError(t, e.ResetPractice(ctx))
	stats, err = e.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}

func TestClearHistory(t *testing.T) {
	e, db := newTestEngine(t, DefaultConfig())
	ctx := context.Background()
	db.SeedHistory("twice x", "triple y")

	require.NoError(t, e.ClearHistory(ctx))
	history, err := e.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExport(t *testing.T) {
	e, db := newTestEngine(t, DefaultConfig())
	ctx := context.Background()
	db.SeedHistory("sum of 1 and 2", "twice y")
	db.SeedAttempts(model.PracticeAttempt{
		PatternID: model.PatternSquare,
		Phrase:    "square of t",
		Expected:  "t^2",
		Answer:    "2t",
	})

	writer := sheets.NewMockWriter()
	require.NoError(t, e.Export(ctx, writer))

	require.NotNil(t, writer.LastReport)
	report := writer.LastReport
	assert.Len(t, report.History, 2)
	assert.Equal(t, "twice y", report.History[0].Phrase)
	assert.Equal(t, 1, report.Stats.Total)
	require.Len(t, report.Mistakes, 1)
	assert.Equal(t, "2t", report.Mistakes[0].Answer)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestExport_WriterFailure(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	writer := sheets.NewMockWriter()
	writer.SetWriteError(errors.New("quota exceeded"))

	err := e.Export(context.Background(), writer)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExportFailed)
}

// failingStorage fails every operation.
type failingStorage struct {
	service.Storage
	err error
}

func (f failingStorage) SaveTranslation(context.Context, *model.HistoryEntry) error { return f.err }
func (f failingStorage) SavePracticeAttempt(context.Context, *model.PracticeAttempt) error {
	return f.err
}
func (f failingStorage) GetHistory(context.Context, int) ([]model.HistoryEntry, error) {
	return nil, f.err
}
func (f failingStorage) GetPracticeStats(context.Context) (*model.PracticeStats, error) {
	return nil, f.err
}

func TestStorageFailures(t *testing.T) {
	boom := errors.New("database is locked")
	e, err := New(failingStorage{err: boom}, DefaultConfig())
	require.NoError(t, err)
	ctx := context.Background()

	result, err := e.Translate(ctx, "twice y")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "2 * y", result.Plain, "the translation is still returned")

	_, err = e.Submit(ctx, model.PracticeItem{Phrase: "twice z", Answer: "2 * z", PatternID: model.PatternTwice}, "2 * z")
	assert.ErrorIs(t, err, boom)

	_, err = e.History(ctx, 5)
	assert.ErrorIs(t, err, boom)

	_, err = e.Stats(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = e.Report(ctx)
	assert.ErrorIs(t, err, boom)
}
