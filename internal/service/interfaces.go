// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// History operations
	SaveTranslation(ctx context.Context, entry *model.HistoryEntry) error
	GetHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	ClearHistory(ctx context.Context) error

	// Practice operations
	SavePracticeAttempt(ctx context.Context, attempt *model.PracticeAttempt) error
	GetPracticeStats(ctx context.Context) (*model.PracticeStats, error)
	GetMistakes(ctx context.Context, limit int) ([]model.PracticeAttempt, error)
	ClearPractice(ctx context.Context) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Report is the data set written by a ReportWriter.
type Report struct {
	GeneratedAt time.Time
	Stats       model.PracticeStats
	History     []model.HistoryEntry
	Mistakes    []model.PracticeAttempt
}

// ReportWriter defines the contract for exporting history and practice results.
type ReportWriter interface {
	Write(ctx context.Context, report Report) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
