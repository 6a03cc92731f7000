// Package partition grows and perturbs districting partitions of a world.World.
//
// What:
//
//   - Build seeds one border cell per district and grows every district
//     outward, one cell per district per round, until all cells are labelled.
//   - RegionMap owns the label grid and, per district, its frontier: the
//     cells having at least one in-bounds neighbour with another label.
//   - Mutate flips one frontier cell to a neighbouring district's label,
//     the step operator of an external local search.
//
// Contiguity:
//
//	By default Mutate uses a cheap local guard: a cell whose neighbourhood
//	holds exactly two cells of its own district is never flipped. This is
//	an approximation of an articulation-point test and can both over- and
//	under-reject. WithStrictContiguity replaces it with a flood fill that
//	proves the remaining same-label neighbours stay connected.
//
// Population repair:
//
//	FixPopulation moves frontier cells out of over-populated districts and
//	into under-populated ones until every district lies within a tolerance
//	of the ideal population. Every move keeps both districts contiguous.
//
// Frontiers:
//
//	Frontiers are recomputed wholesale after every growth round and after
//	every accepted mutation. WithIncrementalFrontiers patches only the
//	flipped cell and its neighbours; Frontiers is the reference oracle.
//
// Determinism:
//
//	All randomness flows through an explicit *rand.Rand (WithRand/WithSeed).
//	A RegionMap is single-writer: do not share one across goroutines. Clone
//	derives an independent RNG stream for each copy.
//
// Complexity:
//
//   - Build:   O(R×W×H) where R ≤ W×H is the number of growth rounds.
//   - Mutate:  O(W×H) wholesale, O(F) incremental (F = frontier length),
//     plus O(district) for the strict guard.
//
// Errors:
//
//   - ErrNilWorld:          world argument is nil.
//   - ErrInvalidDistricts:  district count ≤ 0.
//   - ErrTooManyDistricts:  more districts than border cells to seed from.
//   - ErrLabelsShape:       FromLabels got a label slice of the wrong length.
//   - ErrLabelRange:        FromLabels got a label outside [0,n).
//   - ErrInvalidTolerance:  FixPopulation tolerance outside (0,1) or budget ≤ 0.
//   - ErrPopulationUnfixable: FixPopulation exhausted its iteration budget.
//   - ErrInvariant:         internal consistency check failed (a bug).
package partition
