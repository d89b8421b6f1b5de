package corpus

import (
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/pattern"
)

// Outcome is the translator's result for one example.
type Outcome struct {
	Result  model.TranslationResult
	Example model.Example
	// PlainMatch is true when the plain rendering equals the expected one.
	PlainMatch bool
	// TypesetMatch is true when the typeset rendering equals the expected one.
	TypesetMatch bool
}

// Report summarizes a verification run.
type Report struct {
	Outcomes     []Outcome
	Matched      int
	Recognized   int
	ByDifficulty map[model.Difficulty]int
}

// Mismatches returns the outcomes whose plain rendering differs from the corpus.
func (r Report) Mismatches() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.PlainMatch {
			out = append(out, o)
		}
	}
	return out
}

// Coverage returns the fraction of examples whose plain rendering matched.
func (r Report) Coverage() float64 {
	if len(r.Outcomes) == 0 {
		return 0
	}
	return float64(r.Matched) / float64(len(r.Outcomes))
}

// Verify translates every example and compares it with the expected renderings.
// progress, when non-nil, is called once per example.
func Verify(translator pattern.PhraseTranslator, examples []model.Example, progress func()) Report {
	report := Report{
		Outcomes:     make([]Outcome, 0, len(examples)),
		ByDifficulty: make(map[model.Difficulty]int),
	}

	for _, ex := range examples {
		result := translator.Translate(ex.Phrase)
		outcome := Outcome{
			Example:      ex,
			Result:       result,
			PlainMatch:   result.Plain == ex.Plain,
			TypesetMatch: result.Typeset == ex.Typeset,
		}
		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.PlainMatch {
			report.Matched++
			report.ByDifficulty[ex.Difficulty]++
		}
		if result.Recognized() {
			report.Recognized++
		}
		if progress != nil {
			progress()
		}
	}

	return report
}
