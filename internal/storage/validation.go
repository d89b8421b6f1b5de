package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
)

// Validation errors.
var (
	ErrNilContext          = errors.New("context cannot be nil")
	ErrEmptyString         = errors.New("string parameter cannot be empty")
	ErrNilParameter        = errors.New("parameter cannot be nil")
	ErrInvalidHistoryEntry = errors.New("invalid history entry")
	ErrInvalidAttempt      = errors.New("invalid practice attempt")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateHistoryEntry(entry *model.HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: history entry", ErrNilParameter)
	}
	if strings.TrimSpace(entry.Phrase) == "" {
		return fmt.Errorf("%w: missing phrase", ErrInvalidHistoryEntry)
	}
	if entry.Plain == "" || entry.Typeset == "" {
		return fmt.Errorf("%w: missing rendering", ErrInvalidHistoryEntry)
	}
	if entry.PatternID == "" {
		return fmt.Errorf("%w: missing pattern", ErrInvalidHistoryEntry)
	}
	return nil
}

func validateAttempt(attempt *model.PracticeAttempt) error {
	if attempt == nil {
		return fmt.Errorf("%w: practice attempt", ErrNilParameter)
	}
	if strings.TrimSpace(attempt.Phrase) == "" {
		return fmt.Errorf("%w: missing phrase", ErrInvalidAttempt)
	}
	if attempt.Expected == "" {
		return fmt.Errorf("%w: missing expected answer", ErrInvalidAttempt)
	}
	if attempt.PatternID == "" {
		return fmt.Errorf("%w: missing pattern", ErrInvalidAttempt)
	}
	return nil
}
