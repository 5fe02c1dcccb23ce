package engine

import (
	"math/rand"
	"time"
)

// ValueGenerator produces the candidate values a round asks the player to
// place. The distribution is a policy of the configuration, not of the grid.
type ValueGenerator interface {
	Next() int
}

// uniformGenerator draws values uniformly from [min, max].
type uniformGenerator struct {
	rng *rand.Rand
	min int
	max int
}

// NewUniformGenerator creates a generator drawing uniformly from [min, max]
// using the given seed. If max < min the bounds are swapped.
func NewUniformGenerator(min, max int, seed int64) ValueGenerator {
	if max < min {
		min, max = max, min
	}
	return &uniformGenerator{
		rng: rand.New(rand.NewSource(seed)),
		min: min,
		max: max,
	}
}

func (g *uniformGenerator) Next() int {
	return g.min + g.rng.Intn(g.max-g.min+1)
}

// newGeneratorFromConfig builds the default time-seeded generator for a
// validated configuration.
func newGeneratorFromConfig(config *GameConfig) ValueGenerator {
	return NewUniformGenerator(config.MinValue, config.MaxValue, time.Now().UnixNano())
}

// sequenceGenerator replays a fixed list of values, then repeats the last
// one. Deterministic rounds for tests and automated play.
type sequenceGenerator struct {
	values []int
	pos    int
}

// NewSequenceGenerator creates a generator that yields the given values in
// order and keeps returning the final value once exhausted. It panics if no
// values are provided; a generator with nothing to generate is a programming
// error.
func NewSequenceGenerator(values ...int) ValueGenerator {
	if len(values) == 0 {
		panic("engine: sequence generator needs at least one value")
	}
	return &sequenceGenerator{values: values}
}

func (g *sequenceGenerator) Next() int {
	v := g.values[g.pos]
	if g.pos < len(g.values)-1 {
		g.pos++
	}
	return v
}
