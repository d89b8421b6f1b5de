package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/google/uuid"
)

// SavePracticeAttempt records one graded answer.
func (s *SQLiteStorage) SavePracticeAttempt(ctx context.Context, attempt *model.PracticeAttempt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAttempt(attempt); err != nil {
		return err
	}

	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	attempt.CreatedAt = attempt.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO practice_attempts (id, pattern_id, phrase, expected, answer, correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, attempt.ID, string(attempt.PatternID), attempt.Phrase, attempt.Expected, attempt.Answer,
		attempt.Correct, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save practice attempt: %w", err)
	}
	return nil
}

// GetPracticeStats aggregates every recorded attempt.
func (s *SQLiteStorage) GetPracticeStats(ctx context.Context) (*model.PracticeStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.PracticeStats{MistakesByPattern: make(map[model.PatternID]int)}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM practice_attempts
	`).Scan(&stats.Total, &stats.Correct)
	if err != nil {
		return nil, fmt.Errorf("failed to count practice attempts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern_id, COUNT(*) FROM practice_attempts
		WHERE correct = 0
		GROUP BY pattern_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mistakes by pattern: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			patternID string
			count     int
		)
		if err := rows.Scan(&patternID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan mistake count: %w", err)
		}
		stats.MistakesByPattern[model.PatternID(patternID)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mistake counts: %w", err)
	}

	return stats, nil
}

// GetMistakes returns up to limit incorrect attempts, most recent first.
// A non-positive limit returns all of them.
func (s *SQLiteStorage) GetMistakes(ctx context.Context, limit int) ([]model.PracticeAttempt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, pattern_id, phrase, expected, answer, correct, created_at
		FROM practice_attempts
		WHERE correct = 0
		ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mistakes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var mistakes []model.PracticeAttempt
	for rows.Next() {
		attempt, scanErr := scanAttempt(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		mistakes = append(mistakes, attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mistakes: %w", err)
	}

	return mistakes, nil
}

// ClearPractice removes every recorded attempt.
func (s *SQLiteStorage) ClearPractice(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM practice_attempts`); err != nil {
		return fmt.Errorf("failed to clear practice attempts: %w", err)
	}
	return nil
}

func scanAttempt(rows *sql.Rows) (model.PracticeAttempt, error) {
	var (
		attempt   model.PracticeAttempt
		patternID string
	)
	err := rows.Scan(&attempt.ID, &patternID, &attempt.Phrase, &attempt.Expected,
		&attempt.Answer, &attempt.Correct, &attempt.CreatedAt)
	if err != nil {
		return model.PracticeAttempt{}, fmt.Errorf("failed to scan practice attempt: %w", err)
	}
	attempt.PatternID = model.PatternID(patternID)
	return attempt, nil
}
