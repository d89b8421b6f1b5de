// Package corpus provides the reference phrase collection used for browsing
// and for checking translator output against expected renderings.
package corpus

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var embedded []byte

type document struct {
	Examples []model.Example `yaml:"examples"`
}

// Load returns the embedded example corpus.
func Load() ([]model.Example, error) {
	return Parse(embedded)
}

// Parse decodes a corpus document and validates every entry.
func Parse(data []byte) ([]model.Example, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse example corpus: %w", err)
	}

	for i, ex := range doc.Examples {
		if strings.TrimSpace(ex.Phrase) == "" {
			return nil, fmt.Errorf("example %d: missing phrase", i)
		}
		if ex.Difficulty == model.DifficultyAll || !ex.Difficulty.IsValid() {
			return nil, fmt.Errorf("example %d (%q): invalid difficulty %q", i, ex.Phrase, ex.Difficulty)
		}
	}

	return doc.Examples, nil
}

// Filter returns the examples at difficulty (or every level for DifficultyAll
// and the empty string) that carry tag, when tag is non-empty.
func Filter(examples []model.Example, difficulty model.Difficulty, tag string) []model.Example {
	var out []model.Example
	for _, ex := range examples {
		if difficulty != "" && difficulty != model.DifficultyAll && ex.Difficulty != difficulty {
			continue
		}
		if tag != "" && !ex.HasTag(tag) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// Tags returns every distinct tag in first-seen order.
func Tags(examples []model.Example) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, ex := range examples {
		for _, tag := range ex.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
