package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/partition"
	"github.com/katalvlaran/districts/world"
)

// TestFrontiers_Oracle checks the wholesale pass on a hand-labelled grid.
//
//	0 0 1
//	0 0 1
//	2 2 1
func TestFrontiers_Oracle(t *testing.T) {
	wd, err := world.New(3, 3)
	require.NoError(t, err)
	labels := []int{
		0, 0, 1,
		0, 0, 1,
		2, 2, 1,
	}
	fr, err := partition.Frontiers(wd, labels, 3)
	require.NoError(t, err)
	require.Len(t, fr, 3)

	// (0,0) touches only district 0 and the grid edge: edges do not count.
	assert.Equal(t, []world.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, fr[0])
	assert.Equal(t, []world.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, fr[1])
	assert.Equal(t, []world.Point{{X: 0, Y: 2}, {X: 1, Y: 2}}, fr[2])
}

// TestFrontiers_Unassigned treats unlabelled neighbours as foreign.
func TestFrontiers_Unassigned(t *testing.T) {
	wd, err := world.New(3, 1)
	require.NoError(t, err)
	u := partition.Unassigned
	fr, err := partition.Frontiers(wd, []int{0, 0, u}, 1)
	require.NoError(t, err)
	assert.Equal(t, []world.Point{{X: 1, Y: 0}}, fr[0])
}

func TestFrontiers_Errors(t *testing.T) {
	wd, err := world.New(2, 1)
	require.NoError(t, err)

	_, err = partition.Frontiers(nil, []int{0}, 1)
	assert.ErrorIs(t, err, partition.ErrNilWorld)
	_, err = partition.Frontiers(wd, []int{0, 0}, 0)
	assert.ErrorIs(t, err, partition.ErrInvalidDistricts)
	_, err = partition.Frontiers(wd, []int{0, 0, 0}, 1)
	assert.ErrorIs(t, err, partition.ErrLabelsShape)
	_, err = partition.Frontiers(wd, []int{0, 3}, 2)
	assert.ErrorIs(t, err, partition.ErrLabelRange)
	_, err = partition.Frontiers(wd, []int{0, -2}, 2)
	assert.ErrorIs(t, err, partition.ErrLabelRange)
}

// TestRecomputeFrontiers_MatchesOracle compares a built map with the oracle.
func TestRecomputeFrontiers_MatchesOracle(t *testing.T) {
	rm := buildRandom(t, 9, 9, 4, 31)
	rm.RecomputeFrontiers()
	fr, err := partition.Frontiers(rm.World(), rm.Labels(), rm.NumDistricts())
	require.NoError(t, err)
	for _, d := range rm.Districts() {
		assert.Equal(t, len(fr[d]), len(rm.Frontier(d)))
		for i, p := range rm.Frontier(d) {
			assert.Equal(t, fr[d][i], p)
		}
	}
}
