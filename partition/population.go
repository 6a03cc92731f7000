package partition

import "fmt"

// fixSample is how many frontier cells of a district are tried per sweep.
const fixSample = 5

// FixPopulation repairs population equality in place.
//
// With ideal = total voters / districts, every district must end within
// [ideal×(1-tolerance), ideal×(1+tolerance)]. Each sweep visits districts
// in index order and tries up to five random frontier cells of each:
//
//   - an over-populated district gives one cell it can lose (flood-fill
//     checked) to a random neighbouring district;
//   - an under-populated district takes one neighbouring cell that its
//     owner can lose.
//
// At most one cell moves per district per sweep. The sweep count at which
// no district was out of range is returned. Moves always preserve
// contiguity of both districts involved, regardless of WithStrictContiguity.
//
// Returns ErrInvalidTolerance for tolerance ∉ (0,1) or maxIters ≤ 0, and
// ErrPopulationUnfixable (wrapped with the iteration count) when the budget
// runs out; the map is still valid, just not balanced.
//
// Complexity: O(maxIters × n × (F + district)) worst case, where F is the
// frontier length and district the flood-fill cost of canLose.
func (rm *RegionMap) FixPopulation(tolerance float64, maxIters int) (int, error) {
	if !(tolerance > 0 && tolerance < 1) || maxIters <= 0 {
		return 0, ErrInvalidTolerance
	}
	lo, hi := rm.PopulationRange(tolerance)

	var sample []int
	for iter := 0; iter < maxIters; iter++ {
		changesNeeded := false
		for d := 0; d < rm.n; d++ {
			pop := float64(rm.pops[d])
			tooBig, tooSmall := pop > hi, pop < lo
			if !tooBig && !tooSmall {
				continue
			}
			changesNeeded = true

			sample = rm.sampleFrontier(d, fixSample, sample)
			for _, idx := range sample {
				if tooBig && rm.giveAway(idx) {
					break
				}
				if tooSmall && rm.takeFrom(idx, d) {
					break
				}
			}
		}
		if !changesNeeded {
			return iter, nil
		}
	}
	return maxIters, fmt.Errorf("%w: after %d iterations", ErrPopulationUnfixable, maxIters)
}

// PopulationRange returns the accepted per-district population interval
// for tolerance: ideal×(1∓tolerance), ideal = total voters / districts.
func (rm *RegionMap) PopulationRange(tolerance float64) (lo, hi float64) {
	total := 0
	for _, p := range rm.pops {
		total += p
	}
	ideal := float64(total) / float64(rm.n)
	return ideal * (1 - tolerance), ideal * (1 + tolerance)
}

// sampleFrontier draws up to k distinct frontier cells of d into buf.
// Complexity: O(F) for the copy, O(k) for the partial shuffle.
func (rm *RegionMap) sampleFrontier(d, k int, buf []int) []int {
	buf = append(buf[:0], rm.frontiers[d]...)
	if k > len(buf) {
		k = len(buf)
	}
	for i := 0; i < k; i++ {
		j := i + rm.rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k]
}

// giveAway moves idx to a random neighbouring district if its own district
// can lose it.
func (rm *RegionMap) giveAway(idx int) bool {
	if !rm.canLose(idx) {
		return false
	}
	v := rm.labels[idx]
	x, y := rm.w.Coordinate(idx)
	nb := rm.w.Neighbors(x, y)
	var opts [4]int
	n := 0
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		if l := rm.labels[rm.w.Index(p.X, p.Y)]; l != v {
			opts[n] = l
			n++
		}
	}
	if n == 0 {
		return false
	}
	rm.move(idx, opts[rm.rng.Intn(n)])
	return true
}

// takeFrom pulls into district d one random neighbour of idx whose owner
// can lose it.
func (rm *RegionMap) takeFrom(idx, d int) bool {
	x, y := rm.w.Coordinate(idx)
	nb := rm.w.Neighbors(x, y)
	var opts [4]int
	n := 0
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		j := rm.w.Index(p.X, p.Y)
		if rm.labels[j] != d && rm.canLose(j) {
			opts[n] = j
			n++
		}
	}
	if n == 0 {
		return false
	}
	rm.move(opts[rm.rng.Intn(n)], d)
	return true
}

// move relabels idx to d and refreshes frontiers per the configured mode.
func (rm *RegionMap) move(idx, d int) {
	old := rm.labels[idx]
	rm.assign(idx, d)
	if rm.incremental {
		rm.refreshAround(idx, old)
	} else {
		rm.RecomputeFrontiers()
	}
}
