package partition

import (
	"fmt"

	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/world"
)

// Build partitions w into nDistricts districts.
//
// Behavior:
//  1. Seeding: each district i draws uniformly random border cells until it
//     finds an unassigned one; its initial frontier is that single seed.
//  2. Growth: each round visits districts in index order. A district picks a
//     random cell of its frontier and, if that cell has unassigned
//     neighbours, claims one of them at random; otherwise it sits the round
//     out. Frontiers are then recomputed wholesale from the label grid.
//  3. A round in which no district grew is redone choosing only among
//     frontier cells that still have unassigned neighbours, so every round
//     claims at least one cell and growth ends within W×H rounds.
//
// Returns ErrNilWorld, ErrInvalidDistricts, or ErrTooManyDistricts (wrapped
// with the counts) for bad configuration. On success every cell carries a
// label in [0,nDistricts).
func Build(w *world.World, nDistricts int, opts ...Option) (*RegionMap, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if nDistricts <= 0 {
		return nil, ErrInvalidDistricts
	}
	if nDistricts > w.BorderLen() {
		return nil, fmt.Errorf("%w: %d districts, %d border cells",
			ErrTooManyDistricts, nDistricts, w.BorderLen())
	}

	cfg := newConfig(opts)
	rm := newRegionMap(w, nDistricts, cfg)
	rm.seed()
	rounds, stalls := rm.grow()
	if rounds == 0 {
		// Seeds alone covered the grid; single-cell seed frontiers may be stale.
		rm.frontiers = computeFrontiers(w, rm.labels, nDistricts)
	}

	if err := rm.Validate(); err != nil {
		return nil, err
	}
	rm.log.Debug("partition built",
		logging.Int("width", w.Width()),
		logging.Int("height", w.Height()),
		logging.Int("districts", nDistricts),
		logging.Int("rounds", rounds),
		logging.Int("stalls", stalls),
	)
	return rm, nil
}

// seed places one distinct border seed per district.
func (rm *RegionMap) seed() {
	rm.seeds = make([]world.Point, 0, rm.n)
	for d := 0; d < rm.n; d++ {
		var p world.Point
		for {
			p = rm.w.BorderAt(rm.rng.Intn(rm.w.BorderLen()))
			if rm.labels[rm.w.Index(p.X, p.Y)] == Unassigned {
				break
			}
		}
		idx := rm.w.Index(p.X, p.Y)
		rm.assign(idx, d)
		rm.seeds = append(rm.seeds, p)
		rm.frontiers[d] = []int{idx}
	}
}

// grow fills the grid and returns the number of rounds and stalled rounds.
func (rm *RegionMap) grow() (rounds, stalls int) {
	filled, size := rm.n, rm.w.Size()
	var open [4]int

	for filled < size {
		rounds++
		grown := 0
		for d := 0; d < rm.n; d++ {
			front := rm.frontiers[d]
			if len(front) == 0 {
				continue
			}
			src := front[rm.rng.Intn(len(front))]
			k := rm.openNeighbors(src, &open)
			if k == 0 {
				continue
			}
			rm.assign(open[rm.rng.Intn(k)], d)
			grown++
		}
		if grown == 0 {
			stalls++
			grown = rm.growStalled()
		}
		filled += grown
		rm.frontiers = computeFrontiers(rm.w, rm.labels, rm.n)
	}
	return rounds, stalls
}

// growStalled lets each district claim one cell next to a frontier cell
// that actually has unassigned neighbours. Frontiers are current because
// nothing changed since they were computed.
func (rm *RegionMap) growStalled() int {
	var open [4]int
	grown := 0
	candidates := make([]int, 0, 16)
	for d := 0; d < rm.n; d++ {
		candidates = candidates[:0]
		for _, idx := range rm.frontiers[d] {
			if rm.openNeighbors(idx, &open) > 0 {
				candidates = append(candidates, idx)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		src := candidates[rm.rng.Intn(len(candidates))]
		// An earlier district in this pass may have claimed src's last open cell.
		k := rm.openNeighbors(src, &open)
		if k == 0 {
			continue
		}
		rm.assign(open[rm.rng.Intn(k)], d)
		grown++
	}
	return grown
}

// openNeighbors writes the unassigned neighbours of idx into out in
// N, E, S, W order and returns how many there are.
func (rm *RegionMap) openNeighbors(idx int, out *[4]int) int {
	x, y := rm.w.Coordinate(idx)
	nb := rm.w.Neighbors(x, y)
	k := 0
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		j := rm.w.Index(p.X, p.Y)
		if rm.labels[j] == Unassigned {
			out[k] = j
			k++
		}
	}
	return k
}
