package partition

import (
	"math/rand"

	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/world"
)

// Unassigned is the label of a cell that belongs to no district yet.
const Unassigned = -1

// RegionMap is a labelling of every world cell with a district index in
// [0, NumDistricts()), plus the frontier of each district.
//
// The world is shared read-only; labels, frontiers and tallies are owned
// exclusively by the RegionMap. A RegionMap is not safe for concurrent use.
type RegionMap struct {
	w *world.World
	n int

	labels    []int   // row-major, Unassigned or 0..n-1
	frontiers [][]int // per district, ascending row-major indices
	counts    []int   // cells per district
	pops      []int   // voters per district
	seeds     []world.Point

	rng     *rand.Rand
	streams uint64 // Clone counter for deriveRNG

	strict      bool
	incremental bool
	bounded     bool
	popMin      int
	popMax      int
	log         logging.Logger

	// flood-fill scratch for the strict guard: mark[i]==stamp means visited.
	mark  []uint32
	stamp uint32
	queue []int
}

func newRegionMap(w *world.World, n int, cfg config) *RegionMap {
	rm := &RegionMap{
		w:           w,
		n:           n,
		labels:      make([]int, w.Size()),
		frontiers:   make([][]int, n),
		counts:      make([]int, n),
		pops:        make([]int, n),
		rng:         cfg.rng,
		strict:      cfg.strict,
		incremental: cfg.incremental,
		bounded:     cfg.bounded,
		popMin:      cfg.popMin,
		popMax:      cfg.popMax,
		log:         cfg.log,
	}
	for i := range rm.labels {
		rm.labels[i] = Unassigned
	}
	return rm
}

// assign relabels cell idx to district d and keeps the tallies in step.
func (rm *RegionMap) assign(idx, d int) {
	pop := rm.w.CellAt(idx).Population()
	if old := rm.labels[idx]; old != Unassigned {
		rm.counts[old]--
		rm.pops[old] -= pop
	}
	rm.labels[idx] = d
	rm.counts[d]++
	rm.pops[d] += pop
}
