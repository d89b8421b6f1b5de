package tui

import "github.com/Veraticus/mathspeak/internal/model"

// attemptRecordedMsg carries the result of grading one answer.
type attemptRecordedMsg struct {
	err     error
	attempt model.PracticeAttempt
}
