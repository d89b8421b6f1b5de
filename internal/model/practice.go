package model

import "time"

// PracticeItem is a single drill question with its canonical answer.
type PracticeItem struct {
	Phrase    string    `json:"phrase"`
	Answer    string    `json:"answer"`
	PatternID PatternID `json:"pattern,omitempty"`
}

// PracticeAttempt records one answered drill question.
type PracticeAttempt struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	PatternID PatternID `json:"pattern"`
	Phrase    string    `json:"phrase"`
	Expected  string    `json:"expected"`
	Answer    string    `json:"answer"`
	Correct   bool      `json:"correct"`
}

// PracticeStats aggregates all recorded attempts.
type PracticeStats struct {
	MistakesByPattern map[PatternID]int `json:"mistakes_by_pattern"`
	Total             int               `json:"total"`
	Correct           int               `json:"correct"`
}

// Accuracy returns the fraction of correct answers, or 0 when nothing was answered.
func (s PracticeStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Mistakes returns the number of incorrect answers.
func (s PracticeStats) Mistakes() int {
	return s.Total - s.Correct
}
