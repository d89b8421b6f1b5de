package pattern

import (
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
)

// Fallback explanations for phrases no rule recognized.
const (
	ExplanationEcho    = "The phrase was interpreted as a simple variable expression."
	ExplanationUnknown = "Sorry, no known pattern recognized. Try a standard math phrase."
)

// Translator implements PhraseTranslator over an ordered rule list.
type Translator struct {
	rules []Rule
}

// NewTranslator creates a translator over rules, or the default catalog when none are given.
func NewTranslator(rules ...Rule) *Translator {
	if len(rules) == 0 {
		rules = catalog
	}
	return &Translator{rules: rules}
}

var defaultTranslator = NewTranslator()

// Translate translates raw with the default catalog.
func Translate(raw string) model.TranslationResult {
	return defaultTranslator.Translate(raw)
}

// Translate implements PhraseTranslator. The first matching rule wins; later
// rules are never consulted.
func (t *Translator) Translate(raw string) model.TranslationResult {
	phrase := Normalize(raw)

	result, ok := t.firstMatch(phrase)
	if !ok {
		result = fallback(phrase)
	}

	if result.Plain == "" {
		result.Plain = model.Sentinel
	}
	if result.Typeset == "" {
		result.Typeset = model.Sentinel
	}
	return result
}

// Match returns the rule that would translate raw, if any.
func (t *Translator) Match(raw string) (Rule, bool) {
	phrase := Normalize(raw)
	for _, rule := range t.rules {
		if rule.Matches(phrase) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Candidates returns every rule whose trigger occurs in raw, in priority
// order. Only the first one is ever applied by Translate.
func (t *Translator) Candidates(raw string) []Rule {
	phrase := Normalize(raw)
	var matches []Rule
	for _, rule := range t.rules {
		if rule.Matches(phrase) {
			matches = append(matches, rule)
		}
	}
	return matches
}

func (t *Translator) firstMatch(phrase string) (model.TranslationResult, bool) {
	for _, rule := range t.rules {
		if rule.Matches(phrase) {
			return rule.Apply(phrase), true
		}
	}
	return model.TranslationResult{}, false
}

func fallback(phrase string) model.TranslationResult {
	result := model.TranslationResult{
		PatternID: model.PatternUnknown,
		Traps:     []string{},
	}

	tokens := ExtractTokens(phrase)
	if len(tokens) == 0 {
		result.Plain = model.Sentinel
		result.Typeset = model.Sentinel
		result.Explanation = []string{ExplanationUnknown}
		return result
	}

	echo := strings.Join(tokens, " ")
	result.Plain = echo
	result.Typeset = echo
	result.Explanation = []string{ExplanationEcho}
	return result
}
