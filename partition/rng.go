package partition

import "math/rand"

// defaultRNGSeed seeds every RegionMap built without WithRand or with
// WithSeed(0), so that an unconfigured Build is still reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns the generator a RegionMap draws seeds, growth picks
// and mutation picks from. seed==0 selects defaultRNGSeed.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed turns a parent draw and a clone number into the seed of a
// cloned RegionMap. The bit mixing (SplitMix64 finalizer) keeps clone k
// and clone k+1 of the same parent from producing correlated walks.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG gives a Clone its own generator. It draws once from the
// parent's generator, so a search loop that clones the same parent many
// times gets a different candidate stream each time, and the parent's
// later picks shift accordingly. A nil parent falls back to defaultRNGSeed.
// Complexity: O(1).
func deriveRNG(parent *rand.Rand, clone uint64) *rand.Rand {
	seed := defaultRNGSeed
	if parent != nil {
		seed = parent.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(seed, clone)))
}
