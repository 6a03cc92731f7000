package partition

import (
	"math/rand"

	"github.com/katalvlaran/districts/logging"
)

// Option customizes Build, FromLabels and the subsequent Mutate behaviour.
// Option constructors panic on meaningless inputs; the algorithms never do.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	strict      bool
	incremental bool
	bounded     bool
	popMin      int
	popMax      int
	log         logging.Logger
}

// WithRand provides the RNG used for seeding, growth and mutation.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partition: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG. Seed 0 maps to defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithStrictContiguity makes Mutate verify, by flood fill, that a flip
// never disconnects the losing district.
func WithStrictContiguity() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithIncrementalFrontiers makes Mutate patch frontiers around the flipped
// cell instead of recomputing them over the whole grid.
func WithIncrementalFrontiers() Option {
	return func(c *config) {
		c.incremental = true
	}
}

// WithPopulationBounds makes Mutate reject flips that would take the losing
// district below min or the gaining district above max voters.
// Panics if min < 0 or max < min.
func WithPopulationBounds(min, max int) Option {
	if min < 0 || max < min {
		panic("partition: WithPopulationBounds(min<0 || max<min)")
	}
	return func(c *config) {
		c.bounded = true
		c.popMin, c.popMax = min, max
	}
}

// WithLogger injects a Logger. Panics on nil; the default discards output.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("partition: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}
	if c.log == nil {
		c.log = logging.NewNop()
	}
	return c
}
