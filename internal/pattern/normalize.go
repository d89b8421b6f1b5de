package pattern

import (
	"strings"
)

var punctuationReplacer = strings.NewReplacer(
	".", " ",
	",", " ",
	";", " ",
	"!", " ",
	"?", " ",
)

// Normalize lower-cases raw, turns sentence punctuation into spaces and
// collapses whitespace. Normalizing an already normalized phrase is a no-op.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)
	lower = punctuationReplacer.Replace(lower)
	return strings.Join(strings.Fields(lower), " ")
}
