package model

import "slices"

// Difficulty groups example phrases by curriculum level.
type Difficulty string

// Difficulty levels, easiest first.
const (
	DifficultyElementary Difficulty = "elementary"
	DifficultyMiddle     Difficulty = "middle"
	DifficultyAlgebra1   Difficulty = "algebra1"
	DifficultyAlgebra2   Difficulty = "algebra2"
	DifficultyPrecalc    Difficulty = "precalc"
	DifficultyCalculus   Difficulty = "calculus"
	DifficultyStats      Difficulty = "stats"

	// DifficultyAll matches every level when filtering.
	DifficultyAll Difficulty = "all"
)

// Difficulties returns every concrete level in curriculum order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyElementary,
		DifficultyMiddle,
		DifficultyAlgebra1,
		DifficultyAlgebra2,
		DifficultyPrecalc,
		DifficultyCalculus,
		DifficultyStats,
	}
}

// IsValid reports whether d is a known level or the wildcard.
func (d Difficulty) IsValid() bool {
	return d == DifficultyAll || slices.Contains(Difficulties(), d)
}

// Example is a reference phrase with its expected renderings.
type Example struct {
	Phrase     string     `yaml:"phrase" json:"phrase"`
	Plain      string     `yaml:"plain" json:"plain"`
	Typeset    string     `yaml:"typeset" json:"typeset"`
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty"`
	Tags       []string   `yaml:"tags" json:"tags"`
}

// HasTag reports whether the example carries tag.
func (e Example) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}
