// Package pattern translates natural-language math phrases into symbolic
// expressions using an ordered catalog of lexical rules.
package pattern

import "github.com/Veraticus/mathspeak/internal/model"

// PhraseTranslator turns a raw phrase into a translation result.
type PhraseTranslator interface {
	// Translate never fails; unrecognized phrases yield model.PatternUnknown.
	Translate(raw string) model.TranslationResult
}

// TokenExtractor pulls operand tokens out of phrase text.
type TokenExtractor interface {
	ExtractTokens(text string) []string
}
