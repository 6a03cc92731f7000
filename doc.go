// Package districts experiments with contiguous districting partitions of
// a 2D voter grid.
//
// The repository is organized under four packages and one command:
//
//	world/          immutable voter grid: cells, orthogonal neighbours, border ring
//	partition/      region-growing Build, frontier bookkeeping, guarded Mutate
//	config/         YAML run configuration
//	logging/        structured Logger contract backed by zap
//	cmd/districts/  cobra CLI: build and walk
//
// Quick ASCII example, a 5×3 grid split into three districts:
//
//	0 0 1 1 1
//	0 2 2 1 1
//	0 2 2 2 1
//
// Fairness metrics, rendering and search drivers consume a
// (*world.World, *partition.RegionMap) pair read-only and live elsewhere.
//
//	go get github.com/katalvlaran/districts
package districts
