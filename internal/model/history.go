package model

import "time"

// HistoryEntry is a translation the user chose to keep.
type HistoryEntry struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Phrase    string    `json:"phrase"`
	Plain     string    `json:"plain"`
	Typeset   string    `json:"typeset"`
	PatternID PatternID `json:"pattern"`
}

// NewHistoryEntry builds an entry from a phrase and its translation.
// ID and CreatedAt are assigned by storage when empty.
func NewHistoryEntry(phrase string, result TranslationResult) HistoryEntry {
	return HistoryEntry{
		Phrase:    phrase,
		Plain:     result.Plain,
		Typeset:   result.Typeset,
		PatternID: result.PatternID,
	}
}
