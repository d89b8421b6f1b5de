package pattern

import (
	"regexp"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
)

// Placeholder operands substituted when a phrase does not supply enough tokens.
const (
	PlaceholderFirst  = "a"
	PlaceholderSecond = "b"
	PlaceholderUnary  = "x"
)

var binaryPlaceholders = [2]string{PlaceholderFirst, PlaceholderSecond}

// Rule maps a lexical trigger to an expression builder. Rules are immutable
// once constructed.
type Rule struct {
	trigger  *regexp.Regexp
	build    builder
	ID       model.PatternID
	Triggers []string
}

// Match holds the pieces of a normalized phrase around a rule's trigger.
type Match struct {
	Phrase string
	// Before is the text preceding the first trigger occurrence.
	Before string
	// After is the text between the first and second trigger occurrences.
	After string
	// Stripped is the phrase with every trigger occurrence removed.
	Stripped string
	// Remainder is the phrase with only the first trigger occurrence removed.
	Remainder string
	// Groups holds the submatches of the first trigger occurrence.
	Groups []string
}

type expression struct {
	plain       string
	typeset     string
	explanation []string
	traps       []string
}

type builder func(m Match) expression

// trigger is one alternative of a rule predicate.
type trigger struct {
	display string
	expr    string
}

// literal matches text as a plain substring.
func literal(text string) trigger {
	return trigger{display: text, expr: regexp.QuoteMeta(text)}
}

// word matches text only as a whole word.
func word(text string) trigger {
	return trigger{display: text + " (whole word)", expr: `\b` + regexp.QuoteMeta(text) + `\b`}
}

// regex matches a raw regular expression.
func regex(expr string) trigger {
	return trigger{display: "/" + expr + "/", expr: expr}
}

func newRule(id model.PatternID, build builder, triggers ...trigger) Rule {
	exprs := make([]string, len(triggers))
	display := make([]string, len(triggers))
	for i, t := range triggers {
		exprs[i] = t.expr
		display[i] = t.display
	}

	return Rule{
		ID:       id,
		Triggers: display,
		trigger:  regexp.MustCompile(strings.Join(exprs, "|")),
		build:    build,
	}
}

// Matches reports whether the rule's trigger occurs in a normalized phrase.
func (r Rule) Matches(phrase string) bool {
	return r.trigger.MatchString(phrase)
}

// Split locates the trigger in phrase and returns the surrounding pieces.
func (r Rule) Split(phrase string) Match {
	parts := r.trigger.Split(phrase, -1)
	m := Match{
		Phrase:   phrase,
		Before:   parts[0],
		Stripped: strings.TrimSpace(r.trigger.ReplaceAllString(phrase, "")),
		Groups:   r.trigger.FindStringSubmatch(phrase),
	}
	if loc := r.trigger.FindStringIndex(phrase); loc != nil {
		m.Remainder = strings.TrimSpace(phrase[:loc[0]] + phrase[loc[1]:])
	} else {
		m.Remainder = phrase
	}
	if len(parts) > 1 {
		m.After = parts[1]
	}
	return m
}

// Apply builds the translation for a normalized phrase. Callers are expected
// to have checked Matches first.
func (r Rule) Apply(phrase string) model.TranslationResult {
	expr := r.build(r.Split(phrase))

	result := model.TranslationResult{
		Plain:       expr.plain,
		Typeset:     expr.typeset,
		PatternID:   r.ID,
		Explanation: expr.explanation,
		Traps:       expr.traps,
	}
	if result.Plain == "" {
		result.Plain = model.Sentinel
	}
	if result.Typeset == "" {
		result.Typeset = model.Sentinel
	}
	if result.Explanation == nil {
		result.Explanation = []string{}
	}
	if result.Traps == nil {
		result.Traps = []string{}
	}
	return result
}

// Describe returns the rule's triggers joined for display.
func (r Rule) Describe() string {
	return strings.Join(r.Triggers, " | ")
}

// operands returns the first two tokens of text, padded with a and b.
func operands(text string) [2]string {
	tokens := ExtractTokens(text)
	out := binaryPlaceholders
	for i := 0; i < len(out) && i < len(tokens); i++ {
		out[i] = tokens[i]
	}
	return out
}

// variadic returns every token of text. It never invents operands; an
// empty result renders as the sentinel.
func variadic(text string) []string {
	return ExtractTokens(text)
}

// unary returns the first token of text, or x.
func unary(text string) string {
	if tokens := ExtractTokens(text); len(tokens) > 0 {
		return tokens[0]
	}
	return PlaceholderUnary
}

// side returns the whole token sequence of text, or placeholder. Tokens are
// joined by single spaces on purpose so a multi-word side reads as written.
func side(text, placeholder string) string {
	tokens := ExtractTokens(text)
	if len(tokens) == 0 {
		return placeholder
	}
	return strings.Join(tokens, " ")
}
