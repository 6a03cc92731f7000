// Package world models the fixed voter grid that districting partitions
// are drawn over.
//
// What:
//
//   - World is an immutable W×H rectangle of Cells, each carrying the voter
//     counts of two parties (A and B).
//   - Border lists the outer ring of cells once, in row-major order; it is
//     computed at construction and never changes.
//   - Neighbors yields the up-to-4 orthogonal neighbours of a cell (N, E, S, W).
//     There is no diagonal adjacency.
//
// Construction:
//
//   - New:       empty grid (no voters anywhere).
//   - Random:    per-cell voters drawn by a VoterRule from an explicit *rand.Rand.
//   - FromVotes: explicit per-party vote layouts, indexed [y][x].
//
// Complexity:
//
//   - Construction: O(W×H) time and memory.
//   - Cell, InBounds, Index, Coordinate, Neighbors: O(1), no allocation.
//   - Border: O(W+H) (returns a copy).
//
// Errors:
//
//   - ErrInvalidDimensions:  width or height ≤ 0, or an empty layout.
//   - ErrNonRectangular:     layout rows of differing lengths or shapes.
//   - ErrNegativeVotes:      a layout cell carries a negative count.
//   - ErrInvalidProbability: Bernoulli probability outside [0,1].
//   - ErrInvalidClasses:     Bernoulli class count outside {1,2}.
package world
