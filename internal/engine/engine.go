// Package engine holds the application state shared by every command: the
// translator, the practice generator, persistence and the translation cache.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/pattern"
	"github.com/Veraticus/mathspeak/internal/practice"
	"github.com/Veraticus/mathspeak/internal/service"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config holds configuration options for the engine.
type Config struct {
	DefaultPattern model.PatternID
	CacheSize      int
	PracticeCount  int
	HistoryEnabled bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPattern: model.PatternSum,
		CacheSize:      256,
		PracticeCount:  5,
		HistoryEnabled: true,
	}
}

// Engine orchestrates translation, practice and their persistence.
type Engine struct {
	translator pattern.PhraseTranslator
	generator  *practice.Generator
	storage    service.Storage
	cache      *lru.Cache[string, model.TranslationResult]
	config     Config
}

// New creates an engine over storage with the default catalog and a
// time-seeded generator.
func New(storage service.Storage, config Config) (*Engine, error) {
	return NewWithComponents(storage, pattern.NewTranslator(), practice.NewGenerator(nil), config)
}

// NewWithComponents creates an engine with explicit collaborators.
func NewWithComponents(storage service.Storage, translator pattern.PhraseTranslator, generator *practice.Generator, config Config) (*Engine, error) {
	if storage == nil {
		return nil, fmt.Errorf("%w: storage is required", common.ErrMissingConfig)
	}
	if translator == nil {
		translator = pattern.NewTranslator()
	}
	if generator == nil {
		generator = practice.NewGenerator(nil)
	}
	if config.PracticeCount <= 0 {
		config.PracticeCount = DefaultConfig().PracticeCount
	}
	if config.DefaultPattern == "" {
		config.DefaultPattern = model.PatternSum
	}

	e := &Engine{
		translator: translator,
		generator:  generator,
		storage:    storage,
		config:     config,
	}

	if config.CacheSize > 0 {
		cache, err := lru.New[string, model.TranslationResult](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create translation cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Translate converts phrase and, when history is enabled, records it.
// A blank phrase is rejected with common.ErrEmptyPhrase.
func (e *Engine) Translate(ctx context.Context, phrase string) (model.TranslationResult, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return model.TranslationResult{}, common.ErrEmptyPhrase
	}

	result := e.lookup(phrase)

	if e.config.HistoryEnabled {
		entry := model.NewHistoryEntry(phrase, result)
		if err := e.storage.SaveTranslation(ctx, &entry); err != nil {
			return result, fmt.Errorf("failed to record translation: %w", err)
		}
	}

	slog.Debug("Translated phrase",
		"phrase", phrase,
		"pattern", result.PatternID,
		"plain", result.Plain)

	return result, nil
}

// Preview translates phrase without touching history.
func (e *Engine) Preview(phrase string) model.TranslationResult {
	return e.lookup(phrase)
}

// lookup consults the cache keyed by normalized phrase. Callers always get
// their own copy of the slices.
func (e *Engine) lookup(phrase string) model.TranslationResult {
	if e.cache == nil {
		return e.translator.Translate(phrase)
	}

	key := pattern.Normalize(phrase)
	if cached, ok := e.cache.Get(key); ok {
		return cached.Clone()
	}

	result := e.translator.Translate(phrase)
	e.cache.Add(key, result.Clone())
	return result
}

// CacheLen reports the number of cached translations.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Practice draws count items for id. Zero values fall back to the configured
// default pattern and count.
func (e *Engine) Practice(id model.PatternID, count int) []model.PracticeItem {
	if id == "" {
		id = e.config.DefaultPattern
	}
	if count <= 0 {
		count = e.config.PracticeCount
	}
	return e.generator.Generate(id, count)
}

// Submit grades answer against item and records the attempt.
func (e *Engine) Submit(ctx context.Context, item model.PracticeItem, answer string) (model.PracticeAttempt, error) {
	attempt := practice.Grade(item, answer)
	if err := e.storage.SavePracticeAttempt(ctx, &attempt); err != nil {
		return attempt, fmt.Errorf("failed to record attempt: %w", err)
	}

	if !attempt.Correct {
		slog.Debug("Practice mistake",
			"pattern", attempt.PatternID,
			"expected", attempt.Expected,
			"answer", attempt.Answer)
	}

	return attempt, nil
}

// History returns up to limit recent translations, most recent first.
func (e *Engine) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	entries, err := e.storage.GetHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

// ClearHistory forgets every recorded translation.
func (e *Engine) ClearHistory(ctx context.Context) error {
	if err := e.storage.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Stats aggregates every recorded practice attempt.
func (e *Engine) Stats(ctx context.Context) (model.PracticeStats, error) {
	stats, err := e.storage.GetPracticeStats(ctx)
	if err != nil {
		return model.PracticeStats{}, fmt.Errorf("failed to load practice stats: %w", err)
	}
	return *stats, nil
}

// Mistakes returns up to limit incorrect attempts, most recent first.
func (e *Engine) Mistakes(ctx context.Context, limit int) ([]model.PracticeAttempt, error) {
	mistakes, err := e.storage.GetMistakes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load mistakes: %w", err)
	}
	return mistakes, nil
}

// ResetPractice forgets every recorded attempt.
func (e *Engine) ResetPractice(ctx context.Context) error {
	if err := e.storage.ClearPractice(ctx); err != nil {
		return fmt.Errorf("failed to reset practice: %w", err)
	}
	return nil
}

// Report gathers everything an export needs.
func (e *Engine) Report(ctx context.Context) (service.Report, error) {
	history, err := e.History(ctx, 0)
	if err != nil {
		return service.Report{}, err
	}
	stats, err := e.Stats(ctx)
	if err != nil {
		return service.Report{}, err
	}
	mistakes, err := e.Mistakes(ctx, 0)
	if err != nil {
		return service.Report{}, err
	}

	return service.Report{
		GeneratedAt: time.Now(),
		Stats:       stats,
		History:     history,
		Mistakes:    mistakes,
	}, nil
}

// Export writes the current report with writer.
func (e *Engine) Export(ctx context.Context, writer service.ReportWriter) error {
	report, err := e.Report(ctx)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx, report); err != nil {
		return fmt.Errorf("%w: %v", common.ErrExportFailed, err)
	}
	return nil
}
