// Package practice generates randomized drill questions for catalog patterns
// and grades answers to them.
package practice

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
)

// constructor builds one practice item from the generator's random source.
type constructor func(rng *rand.Rand) model.PracticeItem

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

var constructors = map[model.PatternID]constructor{
	model.PatternSum: func(rng *rand.Rand) model.PracticeItem {
		a, b := between(rng, 1, 20), between(rng, 1, 20)
		return model.PracticeItem{
			Phrase: fmt.Sprintf("sum of %d and %d", a, b),
			Answer: fmt.Sprintf("%d + %d", a, b),
		}
	},
	model.PatternDifference: func(rng *rand.Rand) model.PracticeItem {
		a, b := between(rng, 10, 39), between(rng, 1, 10)
		return model.PracticeItem{
			Phrase: fmt.Sprintf("difference of %d and %d", a, b),
			Answer: fmt.Sprintf("%d - %d", a, b),
		}
	},
	model.PatternMoreThan: func(rng *rand.Rand) model.PracticeItem {
		n := between(rng, 1, 10)
		return model.PracticeItem{
			Phrase: fmt.Sprintf("%d more than x", n),
			Answer: fmt.Sprintf("x + %d", n),
		}
	},
	model.PatternLessThan: func(rng *rand.Rand) model.PracticeItem {
		n := between(rng, 1, 10)
		return model.PracticeItem{
			Phrase: fmt.Sprintf("%d less than y", n),
			Answer: fmt.Sprintf("y - %d", n),
		}
	},
	model.PatternTwice: func(_ *rand.Rand) model.PracticeItem {
		return model.PracticeItem{Phrase: "twice z", Answer: "2 * z"}
	},
	model.PatternPercentOf: func(rng *rand.Rand) model.PracticeItem {
		pct := between(rng, 10, 59)
		return model.PracticeItem{
			Phrase: fmt.Sprintf("%d%% of x", pct),
			Answer: fmt.Sprintf("(%d/100) * x", pct),
		}
	},
	model.PatternSquare: func(_ *rand.Rand) model.PracticeItem {
		return model.PracticeItem{Phrase: "square of t", Answer: "t^2"}
	},
}

// Supported returns the pattern identifiers with a dedicated constructor, sorted.
func Supported() []model.PatternID {
	ids := make([]model.PatternID, 0, len(constructors))
	for id := range constructors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsSupported reports whether id has a dedicated constructor.
func IsSupported(id model.PatternID) bool {
	_, ok := constructors[id]
	return ok
}

// Generator produces practice items. Draws from the random source are
// serialized, so a Generator may be shared between goroutines.
type Generator struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// NewGenerator creates a generator over src. A nil src uses a time-seeded PCG.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &Generator{rng: rand.New(src)}
}

// Generate returns exactly count items for id; negative counts yield none.
// Identifiers without a constructor, including unknown, fall back to sum.
func (g *Generator) Generate(id model.PatternID, count int) []model.PracticeItem {
	if count < 0 {
		count = 0
	}

	build, ok := constructors[id]
	if !ok {
		id = model.PatternSum
		build = constructors[id]
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	items := make([]model.PracticeItem, count)
	for i := range items {
		items[i] = build(g.rng)
		items[i].PatternID = id
	}
	return items
}
