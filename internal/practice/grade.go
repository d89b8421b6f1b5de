package practice

import (
	"strings"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
)

// Grade checks answer against item. Surrounding whitespace is ignored; the
// comparison is otherwise exact and case-sensitive.
func Grade(item model.PracticeItem, answer string) model.PracticeAttempt {
	answer = strings.TrimSpace(answer)
	return model.PracticeAttempt{
		PatternID: item.PatternID,
		Phrase:    item.Phrase,
		Expected:  item.Answer,
		Answer:    answer,
		Correct:   answer == item.Answer,
		CreatedAt: time.Now(),
	}
}
