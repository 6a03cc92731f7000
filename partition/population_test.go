package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/partition"
	"github.com/katalvlaran/districts/world"
)

// skewed returns a 6×6 world with one voter per cell, labelled so that
// district 0 holds only the left column (6 voters) and district 1 the
// remaining 30. Ideal population is 18.
func skewed(t *testing.T, opts ...partition.Option) *partition.RegionMap {
	t.Helper()
	ones := make([][]int, 6)
	for y := range ones {
		ones[y] = []int{1, 1, 1, 1, 1, 1}
	}
	wd, err := world.FromVotes(ones, nil)
	require.NoError(t, err)

	labels := make([]int, wd.Size())
	for idx := range labels {
		if x, _ := wd.Coordinate(idx); x > 0 {
			labels[idx] = 1
		}
	}
	rm, err := partition.FromLabels(wd, labels, 2, opts...)
	require.NoError(t, err)
	require.Equal(t, []int{6, 30}, rm.Populations())
	return rm
}

// TestFixPopulation_Balances drives a skewed partition into tolerance with
// both frontier strategies.
func TestFixPopulation_Balances(t *testing.T) {
	cases := []struct {
		name string
		opts []partition.Option
	}{
		{"Wholesale", nil},
		{"Incremental", []partition.Option{partition.WithIncrementalFrontiers()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rm := skewed(t, append([]partition.Option{partition.WithSeed(3)}, tc.opts...)...)

			iters, err := rm.FixPopulation(0.1, 1000)
			require.NoError(t, err)
			assert.Positive(t, iters)

			lo, hi := rm.PopulationRange(0.1)
			assert.InDelta(t, 16.2, lo, 1e-9)
			assert.InDelta(t, 19.8, hi, 1e-9)
			for d, p := range rm.Populations() {
				assert.GreaterOrEqual(t, float64(p), lo, "district %d", d)
				assert.LessOrEqual(t, float64(p), hi, "district %d", d)
				assert.True(t, rm.IsContiguous(d), "district %d", d)
			}
			require.NoError(t, rm.Validate())
		})
	}
}

// TestFixPopulation_AlreadyBalanced returns on the first sweep untouched.
func TestFixPopulation_AlreadyBalanced(t *testing.T) {
	wd, err := world.FromVotes([][]int{{1, 1}, {1, 1}}, nil)
	require.NoError(t, err)
	rm, err := partition.FromLabels(wd, []int{0, 1, 0, 1}, 2)
	require.NoError(t, err)
	before := rm.Labels()

	iters, err := rm.FixPopulation(0.2, 10)
	require.NoError(t, err)
	assert.Zero(t, iters)
	assert.Equal(t, before, rm.Labels())
}

func TestFixPopulation_Unfixable(t *testing.T) {
	rm := skewed(t)
	_, err := rm.FixPopulation(0.1, 1)
	assert.ErrorIs(t, err, partition.ErrPopulationUnfixable)
	assert.NoError(t, rm.Validate(), "an exhausted budget still leaves a valid map")
}

func TestFixPopulation_InvalidArguments(t *testing.T) {
	rm := skewed(t)
	for _, tc := range []struct {
		tol   float64
		iters int
	}{{0, 10}, {1, 10}, {-0.5, 10}, {0.1, 0}} {
		_, err := rm.FixPopulation(tc.tol, tc.iters)
		assert.ErrorIs(t, err, partition.ErrInvalidTolerance, "tol=%v iters=%d", tc.tol, tc.iters)
	}
	assert.Equal(t, []int{6, 30}, rm.Populations())
}

// TestFixPopulation_AfterBuild balances a randomly grown partition.
func TestFixPopulation_AfterBuild(t *testing.T) {
	rm := buildRandom(t, 12, 12, 4, 19)
	_, err := rm.FixPopulation(0.3, 5000)
	require.NoError(t, err)
	lo, hi := rm.PopulationRange(0.3)
	for d, p := range rm.Populations() {
		assert.GreaterOrEqual(t, float64(p), lo, "district %d", d)
		assert.LessOrEqual(t, float64(p), hi, "district %d", d)
		assert.True(t, rm.IsContiguous(d))
	}
	require.NoError(t, rm.Validate())
}
