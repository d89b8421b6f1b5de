// Package model defines the core data structures for the mathspeak application.
package model

// PatternID identifies the catalog rule that produced a translation.
type PatternID string

// Pattern identifiers, in catalog priority order.
const (
	PatternSum           PatternID = "sum"
	PatternDifference    PatternID = "difference"
	PatternProduct       PatternID = "product"
	PatternQuotient      PatternID = "quotient"
	PatternMoreThan      PatternID = "more_than"
	PatternLessThan      PatternID = "less_than"
	PatternAtLeast       PatternID = "at_least"
	PatternAtMost        PatternID = "at_most"
	PatternTwice         PatternID = "twice"
	PatternTriple        PatternID = "triple"
	PatternTimes         PatternID = "times"
	PatternSquare        PatternID = "square"
	PatternCube          PatternID = "cube"
	PatternSqrt          PatternID = "sqrt"
	PatternPercentOf     PatternID = "percent_of"
	PatternRatio         PatternID = "ratio"
	PatternAreaCircle    PatternID = "area_circle"
	PatternPerimeterRect PatternID = "perimeter_rect"
	PatternFunction      PatternID = "function"
	PatternDerivative    PatternID = "derivative"

	// PatternUnknown is reported when no catalog rule matched.
	PatternUnknown PatternID = "unknown"
)

// Sentinel is the placeholder expression used when nothing meaningful can be built.
const Sentinel = "???"

// TranslationResult is the outcome of translating one phrase.
// Plain and Typeset are never empty; they fall back to Sentinel.
type TranslationResult struct {
	Plain       string    `json:"plain"`
	Typeset     string    `json:"typeset"`
	PatternID   PatternID `json:"pattern"`
	Explanation []string  `json:"explanation"`
	Traps       []string  `json:"traps"`
}

// Recognized reports whether a catalog rule produced the result.
func (r TranslationResult) Recognized() bool {
	return r.PatternID != PatternUnknown && r.PatternID != ""
}

// Clone returns a deep copy so cached results cannot be mutated by callers.
func (r TranslationResult) Clone() TranslationResult {
	out := r
	out.Explanation = cloneStrings(r.Explanation)
	out.Traps = cloneStrings(r.Traps)
	return out
}

// cloneStrings copies s, keeping nil and empty distinct.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
