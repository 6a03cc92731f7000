package world

import "math/rand"

// neighborOffsets enumerates orthogonal neighbours in N, E, S, W order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// World is a rectangular grid of voter cells. It is immutable once built;
// every accessor is safe for concurrent readers.
type World struct {
	width, height int
	cells         []Cell // row-major: cells[y*width+x]
	border        []Point
}

// New constructs a width×height World with no voters.
// Returns ErrInvalidDimensions if either dimension is ≤ 0.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	w := &World{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.cells[w.Index(x, y)].Point = Point{X: x, Y: y}
		}
	}
	w.border = computeBorder(width, height)

	return w, nil
}

// Random constructs a World whose voters are drawn cell by cell, in
// row-major order, from rule. The RNG comes from opts (WithRand/WithSeed);
// without one a fixed default seed is used.
// Complexity: O(W×H) time and memory plus the cost of rule.
func Random(width, height int, rule VoterRule, opts ...Option) (*World, error) {
	w, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return w, nil
	}
	cfg := newConfig(opts)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, b := rule(cfg.rng, x, y)
			if a < 0 || b < 0 {
				return nil, ErrNegativeVotes
			}
			c := &w.cells[w.Index(x, y)]
			c.VotesA, c.VotesB = a, b
		}
	}

	return w, nil
}

// FromVotes constructs a World from explicit per-party layouts indexed
// [y][x]. votesB may be nil, meaning no party-B voters. Input is deep-copied.
func FromVotes(votesA, votesB [][]int) (*World, error) {
	if len(votesA) == 0 || len(votesA[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, wd := len(votesA), len(votesA[0])
	if votesB != nil && len(votesB) != h {
		return nil, ErrNonRectangular
	}
	w, err := New(wd, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		if len(votesA[y]) != wd || (votesB != nil && len(votesB[y]) != wd) {
			return nil, ErrNonRectangular
		}
		for x := 0; x < wd; x++ {
			c := &w.cells[w.Index(x, y)]
			c.VotesA = votesA[y][x]
			if votesB != nil {
				c.VotesB = votesB[y][x]
			}
			if c.VotesA < 0 || c.VotesB < 0 {
				return nil, ErrNegativeVotes
			}
		}
	}

	return w, nil
}

// Bernoulli returns the classic random-world rule: with
// probability p a cell gets a single voter whose party is drawn uniformly
// from the first `classes` parties, otherwise it stays empty.
func Bernoulli(p float64, classes int) (VoterRule, error) {
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if classes < 1 || classes > 2 {
		return nil, ErrInvalidClasses
	}
	return func(rng *rand.Rand, _, _ int) (int, int) {
		if rng.Float64() >= p {
			return 0, 0
		}
		if rng.Intn(classes) == 0 {
			return 1, 0
		}
		return 0, 1
	}, nil
}

// computeBorder lists every cell with x∈{0,W-1} or y∈{0,H-1} exactly once,
// scanning rows top to bottom.
func computeBorder(width, height int) []Point {
	var out []Point
	for y := 0; y < height; y++ {
		if y == 0 || y == height-1 {
			for x := 0; x < width; x++ {
				out = append(out, Point{X: x, Y: y})
			}
			continue
		}
		out = append(out, Point{X: 0, Y: y})
		if width > 1 {
			out = append(out, Point{X: width - 1, Y: y})
		}
	}
	return out
}

// Width returns the number of columns. Complexity: O(1).
func (w *World) Width() int { return w.width }

// Height returns the number of rows. Complexity: O(1).
func (w *World) Height() int { return w.height }

// Size returns Width×Height, the length of every per-cell slice.
// Complexity: O(1).
func (w *World) Size() int { return len(w.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (w *World) Index(x, y int) int {
	return y*w.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (w *World) Coordinate(idx int) (x, y int) {
	return idx % w.width, idx / w.width
}

// Cell returns the cell at (x,y). (x,y) must be in bounds; out-of-range
// coordinates panic like any slice index.
// Complexity: O(1).
func (w *World) Cell(x, y int) Cell {
	return w.cells[w.Index(x, y)]
}

// CellAt returns the cell at row-major index idx, the indexing every
// RegionMap slice shares.
// Complexity: O(1).
func (w *World) CellAt(idx int) Cell {
	return w.cells[idx]
}

// Neighbors returns the in-bounds orthogonal neighbours of (x,y) in
// N, E, S, W order. Edge cells have fewer than four.
// Complexity: O(1), no allocation.
func (w *World) Neighbors(x, y int) Neighborhood {
	var nb Neighborhood
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !w.InBounds(nx, ny) {
			continue
		}
		nb.pts[nb.n] = Point{X: nx, Y: ny}
		nb.n++
	}
	return nb
}

// Border returns a copy of the outer ring of cells computed at construction:
// every cell with x∈{0,W-1} or y∈{0,H-1}, once, in row-major order.
// Callers may modify the copy freely; use BorderLen/BorderAt in hot loops.
// Complexity: O(W+H) time and memory.
func (w *World) Border() []Point {
	out := make([]Point, len(w.border))
	copy(out, w.border)
	return out
}

// BorderLen returns the number of border cells without copying.
func (w *World) BorderLen() int { return len(w.border) }

// BorderAt returns the i-th border cell without copying.
func (w *World) BorderAt(i int) Point { return w.border[i] }

// Totals returns the grid-wide voter counts per party.
// Complexity: O(W×H).
func (w *World) Totals() (votesA, votesB int) {
	for _, c := range w.cells {
		votesA += c.VotesA
		votesB += c.VotesB
	}
	return votesA, votesB
}
