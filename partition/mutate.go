package partition

// Mutate flips one frontier cell to the label of a neighbouring district.
//
// Behavior:
//  1. Pick a uniformly random district, then a uniformly random cell of
//     its frontier; let v be that cell's label.
//  2. Contiguity guard. Default: reject if exactly two neighbours carry v.
//     WithStrictContiguity: reject unless a flood fill through v, with the
//     cell removed, reaches every same-label neighbour.
//  3. Reject if the cell is the last one of its district.
//  4. Candidates are the distinct neighbour labels other than v, filtered by
//     population bounds when WithPopulationBounds is set. Reject if none.
//  5. Relabel the cell with a uniformly random candidate and refresh frontiers.
//
// Rejections are silent: Mutate reports false and leaves the map untouched.
// Exactly one cell changes label when it reports true.
func (rm *RegionMap) Mutate() bool {
	d := rm.rng.Intn(rm.n)
	front := rm.frontiers[d]
	if len(front) == 0 {
		return false
	}
	return rm.mutateAt(front[rm.rng.Intn(len(front))])
}

// MutateN attempts up to maxTries mutations and stops early once edits of
// them were accepted. It returns the number of accepted flips.
func (rm *RegionMap) MutateN(edits, maxTries int) int {
	accepted := 0
	for try := 0; try < maxTries && accepted < edits; try++ {
		if rm.Mutate() {
			accepted++
		}
	}
	return accepted
}

// mutateAt applies steps 2-5 of Mutate to cell idx.
func (rm *RegionMap) mutateAt(idx int) bool {
	v := rm.labels[idx]
	x, y := rm.w.Coordinate(idx)
	nb := rm.w.Neighbors(x, y)

	var (
		cand [4]int
		nc   int
		same int
	)
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		l := rm.labels[rm.w.Index(p.X, p.Y)]
		switch {
		case l == v:
			same++
		case l != Unassigned && !containsLabel(cand[:nc], l):
			cand[nc] = l
			nc++
		}
	}

	if rm.strict {
		if !rm.canLose(idx) {
			return false
		}
	} else if same == 2 {
		return false
	}
	if rm.counts[v] <= 1 {
		return false
	}

	if rm.bounded {
		pop := rm.w.CellAt(idx).Population()
		if rm.pops[v]-pop < rm.popMin {
			return false
		}
		k := 0
		for _, l := range cand[:nc] {
			if rm.pops[l]+pop <= rm.popMax {
				cand[k] = l
				k++
			}
		}
		nc = k
	}
	if nc == 0 {
		return false
	}

	rm.move(idx, cand[rm.rng.Intn(nc)])
	return true
}

// containsLabel reports whether l already sits in the candidate list ls.
// ls never holds more than four labels.
// Complexity: O(len(ls)) ≤ O(4).
func containsLabel(ls []int, l int) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}

// canLose reports whether cell idx can leave its district without
// splitting it.
//
// Behavior:
//  1. Collect the same-label neighbours of idx (at most four).
//  2. None: the cell is the whole district or already detached from it,
//     so it cannot be lost. Exactly one: idx is a leaf and can always go.
//  3. Otherwise BFS through the district starting at the first neighbour,
//     with idx marked as visited so the search cannot pass through it,
//     and stop as soon as every other same-label neighbour is reached.
//
// The visited set is a generation-stamped scratch slice owned by the
// RegionMap, so repeated calls do not allocate after the first.
//
// Complexity: O(size of the district) time in the worst case, O(1) when
// the neighbours meet close to idx. Memory: O(W×H) scratch, allocated once.
func (rm *RegionMap) canLose(idx int) bool {
	v := rm.labels[idx]
	x, y := rm.w.Coordinate(idx)
	nb := rm.w.Neighbors(x, y)

	var targets [4]int
	nt := 0
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		j := rm.w.Index(p.X, p.Y)
		if rm.labels[j] == v {
			targets[nt] = j
			nt++
		}
	}
	if nt == 0 {
		return false
	}
	if nt == 1 {
		return true
	}

	rm.nextStamp()
	rm.mark[idx] = rm.stamp // treat idx as removed
	rm.mark[targets[0]] = rm.stamp
	rm.queue = append(rm.queue[:0], targets[0])
	remaining := nt - 1

	for qi := 0; qi < len(rm.queue) && remaining > 0; qi++ {
		u := rm.queue[qi]
		ux, uy := rm.w.Coordinate(u)
		unb := rm.w.Neighbors(ux, uy)
		for i := 0; i < unb.Len(); i++ {
			p := unb.At(i)
			j := rm.w.Index(p.X, p.Y)
			if rm.labels[j] != v || rm.mark[j] == rm.stamp {
				continue
			}
			rm.mark[j] = rm.stamp
			for t := 1; t < nt; t++ {
				if targets[t] == j {
					remaining--
				}
			}
			rm.queue = append(rm.queue, j)
		}
	}
	return remaining == 0
}

// nextStamp advances the flood-fill generation, resetting marks on wrap.
// Complexity: O(1) amortized; O(W×H) once every 2^32 calls.
func (rm *RegionMap) nextStamp() {
	if rm.mark == nil {
		rm.mark = make([]uint32, rm.w.Size())
	}
	rm.stamp++
	if rm.stamp == 0 {
		for i := range rm.mark {
			rm.mark[i] = 0
		}
		rm.stamp = 1
	}
}
