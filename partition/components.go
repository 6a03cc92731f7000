package partition

import "github.com/katalvlaran/districts/world"

// Components splits district d into its 4-connected pieces. A contiguous
// district yields exactly one component; an out-of-range d yields nil.
// Each component lists cells in BFS order from its lowest row-major cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (rm *RegionMap) Components(d int) [][]world.Point {
	if d < 0 || d >= rm.n {
		return nil
	}
	seen := make([]bool, len(rm.labels))
	var comps [][]world.Point

	for i0, v := range rm.labels {
		if v != d || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := rm.w.Coordinate(queue[qi])
			nb := rm.w.Neighbors(ux, uy)
			for i := 0; i < nb.Len(); i++ {
				p := nb.At(i)
				j := rm.w.Index(p.X, p.Y)
				if rm.labels[j] == d && !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		comps = append(comps, toPoints(rm.w, queue))
	}
	return comps
}

// IsContiguous reports whether district d forms a single connected piece.
func (rm *RegionMap) IsContiguous(d int) bool {
	return len(rm.Components(d)) == 1
}
