package world

import "math/rand"

// Point is a cell coordinate, X in [0,Width) and Y in [0,Height).
type Point struct {
	X, Y int
}

// Cell holds the fixed voter data at one coordinate.
type Cell struct {
	Point
	VotesA int // voters for party A
	VotesB int // voters for party B
}

// Population returns the total number of voters in the cell.
func (c Cell) Population() int { return c.VotesA + c.VotesB }

// Neighborhood is a fixed-capacity list of at most four in-bounds neighbours.
// It is a plain value, so enumerating neighbours never allocates.
type Neighborhood struct {
	pts [4]Point
	n   int
}

// Len returns the number of in-bounds neighbours (2, 3 or 4 on grids ≥2×2).
func (nb Neighborhood) Len() int { return nb.n }

// At returns the i-th neighbour. i must lie in [0, Len()).
func (nb Neighborhood) At(i int) Point { return nb.pts[i] }

// Points returns the neighbours as a slice backed by a copy of nb.
func (nb Neighborhood) Points() []Point {
	out := nb.pts
	return out[:nb.n]
}

// VoterRule decides the voter counts of the cell at (x,y).
// Implementations must draw randomness only from rng so that a fixed seed
// reproduces the same world.
type VoterRule func(rng *rand.Rand, x, y int) (votesA, votesB int)

// Option customizes world construction.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// defaultSeed is used when no RNG is supplied or WithSeed(0) is given.
const defaultSeed int64 = 1

// WithRand supplies the RNG consumed by the VoterRule. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("world: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG. Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}
