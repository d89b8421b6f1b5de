package pattern

import (
	"regexp"
	"strings"
)

var (
	numericToken    = regexp.MustCompile(`^[0-9]+$`)
	identifierToken = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
)

// connectorWords have identifier shape but only glue a phrase together.
// Single letters are never connectors; "a" stays a valid variable.
var connectorWords = map[string]struct{}{
	"and":  {},
	"an":   {},
	"by":   {},
	"from": {},
	"is":   {},
	"of":   {},
	"than": {},
	"the":  {},
	"to":   {},
	"with": {},
}

// Extractor implements TokenExtractor.
type Extractor struct{}

// ExtractTokens implements TokenExtractor.
func (Extractor) ExtractTokens(text string) []string {
	return ExtractTokens(text)
}

// ExtractTokens returns the numeric literals and identifiers in text, in order.
// Numbers are kept verbatim regardless of magnitude. Symbols and connector
// words are dropped without error.
func ExtractTokens(text string) []string {
	tokens := []string{}
	for _, piece := range strings.Fields(text) {
		if isToken(piece) {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

func isToken(piece string) bool {
	if numericToken.MatchString(piece) {
		return true
	}
	if !identifierToken.MatchString(piece) {
		return false
	}
	_, connector := connectorWords[strings.ToLower(piece)]
	return !connector
}
