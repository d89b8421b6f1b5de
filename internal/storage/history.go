package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/google/uuid"
)

// MaxHistoryEntries is the number of translations kept; older ones are pruned on save.
const MaxHistoryEntries = 50

// SaveTranslation records a translation at the head of the history, assigning
// an ID and timestamp when missing, and prunes anything past MaxHistoryEntries.
func (s *SQLiteStorage) SaveTranslation(ctx context.Context, entry *model.HistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHistoryEntry(entry); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO translations (id, phrase, plain, typeset, pattern_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Phrase, entry.Plain, entry.Typeset, string(entry.PatternID), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save translation: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM translations WHERE id NOT IN (
			SELECT id FROM translations ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`, MaxHistoryEntries)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	return tx.Commit()
}

// GetHistory returns up to limit entries, most recent first. A non-positive
// limit returns the whole history.
func (s *SQLiteStorage) GetHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxHistoryEntries {
		limit = MaxHistoryEntries
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, phrase, plain, typeset, pattern_id, created_at
		FROM translations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]model.HistoryEntry, 0, limit)
	for rows.Next() {
		entry, scanErr := scanHistoryEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return entries, nil
}

// ClearHistory removes every stored translation.
func (s *SQLiteStorage) ClearHistory(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM translations`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func scanHistoryEntry(rows *sql.Rows) (model.HistoryEntry, error) {
	var (
		entry     model.HistoryEntry
		patternID string
	)
	err := rows.Scan(&entry.ID, &entry.Phrase, &entry.Plain, &entry.Typeset, &patternID, &entry.CreatedAt)
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to scan history entry: %w", err)
	}
	entry.PatternID = model.PatternID(patternID)
	return entry, nil
}
