package partition

import (
	"fmt"

	"github.com/katalvlaran/districts/world"
)

// FromLabels wraps an existing, fully assigned labelling of w, e.g. one
// persisted by an evaluator, so that it can be mutated further.
// labels is row-major and is copied; every entry must lie in [0,n).
func FromLabels(w *world.World, labels []int, n int, opts ...Option) (*RegionMap, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if n <= 0 {
		return nil, ErrInvalidDistricts
	}
	if len(labels) != w.Size() {
		return nil, ErrLabelsShape
	}
	rm := newRegionMap(w, n, newConfig(opts))
	for idx, v := range labels {
		if v < 0 || v >= n {
			x, y := w.Coordinate(idx)
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrLabelRange, v, x, y)
		}
		rm.assign(idx, v)
	}
	rm.RecomputeFrontiers()
	return rm, nil
}

// World returns the underlying grid.
func (rm *RegionMap) World() *world.World { return rm.w }

// NumDistricts returns the fixed number of districts.
func (rm *RegionMap) NumDistricts() int { return rm.n }

// Districts returns the district indices 0..n-1.
func (rm *RegionMap) Districts() []int {
	out := make([]int, rm.n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Label returns the district of (x,y), or Unassigned.
func (rm *RegionMap) Label(x, y int) int {
	return rm.labels[rm.w.Index(x, y)]
}

// Labels returns a row-major copy of the label grid.
func (rm *RegionMap) Labels() []int {
	out := make([]int, len(rm.labels))
	copy(out, rm.labels)
	return out
}

// Frontier returns the frontier cells of district d in row-major order.
// An out-of-range d yields nil.
func (rm *RegionMap) Frontier(d int) []world.Point {
	if d < 0 || d >= rm.n {
		return nil
	}
	return toPoints(rm.w, rm.frontiers[d])
}

// Seeds returns the border seed of each district, or nil for maps created
// by FromLabels.
func (rm *RegionMap) Seeds() []world.Point {
	if rm.seeds == nil {
		return nil
	}
	out := make([]world.Point, len(rm.seeds))
	copy(out, rm.seeds)
	return out
}

// Counts returns the number of cells per district.
func (rm *RegionMap) Counts() []int {
	out := make([]int, rm.n)
	copy(out, rm.counts)
	return out
}

// Populations returns the number of voters per district.
func (rm *RegionMap) Populations() []int {
	out := make([]int, rm.n)
	copy(out, rm.pops)
	return out
}

// Clone returns a deep copy sharing only the world. The copy gets its own
// RNG stream derived from rm's; deriving it advances rm's RNG once.
func (rm *RegionMap) Clone() *RegionMap {
	c := *rm
	c.labels = append([]int(nil), rm.labels...)
	c.counts = append([]int(nil), rm.counts...)
	c.pops = append([]int(nil), rm.pops...)
	c.seeds = append([]world.Point(nil), rm.seeds...)
	c.frontiers = make([][]int, rm.n)
	for d, f := range rm.frontiers {
		c.frontiers[d] = append([]int(nil), f...)
	}
	rm.streams++
	c.rng = deriveRNG(rm.rng, rm.streams)
	c.streams = 0
	c.mark, c.stamp, c.queue = nil, 0, nil
	return &c
}

// Validate checks full coverage, label ranges, per-district tallies and
// that every frontier matches the wholesale oracle. A non-nil result wraps
// ErrInvariant and indicates a bug, not bad input.
func (rm *RegionMap) Validate() error {
	counts := make([]int, rm.n)
	pops := make([]int, rm.n)
	for idx, v := range rm.labels {
		x, y := rm.w.Coordinate(idx)
		if v == Unassigned {
			return fmt.Errorf("%w: cell (%d,%d) unassigned", ErrInvariant, x, y)
		}
		if v < 0 || v >= rm.n {
			return fmt.Errorf("%w: cell (%d,%d) label %d", ErrInvariant, x, y, v)
		}
		counts[v]++
		pops[v] += rm.w.CellAt(idx).Population()
	}
	want := computeFrontiers(rm.w, rm.labels, rm.n)
	for d := 0; d < rm.n; d++ {
		if counts[d] != rm.counts[d] || pops[d] != rm.pops[d] {
			return fmt.Errorf("%w: district %d tally %d/%d, recorded %d/%d",
				ErrInvariant, d, counts[d], pops[d], rm.counts[d], rm.pops[d])
		}
		if !equalInts(want[d], rm.frontiers[d]) {
			return fmt.Errorf("%w: district %d frontier out of date", ErrInvariant, d)
		}
	}
	return nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
