package partition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/districts/world"
)

// Frontiers computes, from scratch, the frontier of every district of a
// label grid: the cells labelled d with at least one in-bounds neighbour
// carrying a different label (Unassigned counts as different). Missing
// neighbours past the grid edge do not count.
//
// labels is row-major over w and may be partially assigned. It is the
// reference oracle for RegionMap frontiers.
// Returns ErrNilWorld, ErrInvalidDistricts, ErrLabelsShape or ErrLabelRange.
// Complexity: O(W×H).
func Frontiers(w *world.World, labels []int, n int) ([][]world.Point, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if n <= 0 {
		return nil, ErrInvalidDistricts
	}
	if len(labels) != w.Size() {
		return nil, ErrLabelsShape
	}
	for idx, v := range labels {
		if v < Unassigned || v >= n {
			x, y := w.Coordinate(idx)
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrLabelRange, v, x, y)
		}
	}
	fr := computeFrontiers(w, labels, n)
	out := make([][]world.Point, n)
	for d := range fr {
		out[d] = toPoints(w, fr[d])
	}
	return out, nil
}

// computeFrontiers is the unchecked wholesale pass. Each list is ascending.
func computeFrontiers(w *world.World, labels []int, n int) [][]int {
	out := make([][]int, n)
	for idx, v := range labels {
		if v == Unassigned {
			continue
		}
		if isFrontier(w, labels, idx) {
			out[v] = append(out[v], idx)
		}
	}
	return out
}

// isFrontier reports whether any in-bounds neighbour of idx has another label.
func isFrontier(w *world.World, labels []int, idx int) bool {
	v := labels[idx]
	x, y := w.Coordinate(idx)
	nb := w.Neighbors(x, y)
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		if labels[w.Index(p.X, p.Y)] != v {
			return true
		}
	}
	return false
}

// RecomputeFrontiers rebuilds every frontier from the label grid, dropping
// whatever the previous lists held.
// Complexity: O(W×H) time, O(total frontier) memory.
func (rm *RegionMap) RecomputeFrontiers() {
	rm.frontiers = computeFrontiers(rm.w, rm.labels, rm.n)
}

// refreshAround patches frontier membership after cell idx moved from
// district old to its current label.
//
// Only idx and its (up to four) neighbours can change status: a cell's
// frontier membership depends on its own label and its neighbours' labels,
// and only idx's label changed. Each touched cell is removed from the
// lists it may sit in and re-inserted where the definition now puts it.
// Lists stay sorted, so the result is identical to RecomputeFrontiers.
//
// Complexity: O(F) per touched list (sorted insert and remove), F being the
// frontier length; at most five cells and seven lists are touched.
// Memory: O(1) beyond list growth.
func (rm *RegionMap) refreshAround(idx, old int) {
	rm.refreshCell(idx, old)
	x, y := rm.w.Coordinate(idx)
	nb := rm.w.Neighbors(x, y)
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		j := rm.w.Index(p.X, p.Y)
		rm.refreshCell(j, rm.labels[j])
	}
}

// refreshCell drops idx from frontiers[old] and re-inserts it into the
// frontier of its current label if it still borders another label.
// Complexity: O(F).
func (rm *RegionMap) refreshCell(idx, old int) {
	if old != Unassigned {
		rm.frontiers[old] = removeSorted(rm.frontiers[old], idx)
	}
	v := rm.labels[idx]
	if v == Unassigned {
		return
	}
	if old != v {
		rm.frontiers[v] = removeSorted(rm.frontiers[v], idx)
	}
	if isFrontier(rm.w, rm.labels, idx) {
		rm.frontiers[v] = insertSorted(rm.frontiers[v], idx)
	}
}

// removeSorted deletes v from the ascending slice a in place, if present.
// Complexity: O(log F) search plus O(F) shift.
func removeSorted(a []int, v int) []int {
	i := sort.SearchInts(a, v)
	if i < len(a) && a[i] == v {
		return append(a[:i], a[i+1:]...)
	}
	return a
}

// insertSorted adds v to the ascending slice a, keeping it a set.
// Complexity: O(log F) search plus O(F) shift.
func insertSorted(a []int, v int) []int {
	i := sort.SearchInts(a, v)
	if i < len(a) && a[i] == v {
		return a
	}
	a = append(a, 0)
	copy(a[i+1:], a[i:])
	a[i] = v
	return a
}

func toPoints(w *world.World, idxs []int) []world.Point {
	out := make([]world.Point, len(idxs))
	for i, idx := range idxs {
		x, y := w.Coordinate(idx)
		out[i] = world.Point{X: x, Y: y}
	}
	return out
}
