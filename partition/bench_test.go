package partition_test

import (
	"testing"

	"github.com/katalvlaran/districts/partition"
	"github.com/katalvlaran/districts/world"
)

// BenchmarkBuild measures growing 10 districts over a 100×100 grid.
// Complexity: O(R×W×H), R ≤ W×H rounds.
func BenchmarkBuild(b *testing.B) {
	wd, err := world.New(100, 100)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partition.Build(wd, 10, partition.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkMutate(b *testing.B, opts ...partition.Option) {
	wd, err := world.New(100, 100)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rm, err := partition.Build(wd, 10, append([]partition.Option{partition.WithSeed(42)}, opts...)...)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rm.Mutate()
	}
}

// BenchmarkMutate_Wholesale recomputes every frontier per accepted flip.
func BenchmarkMutate_Wholesale(b *testing.B) { benchmarkMutate(b) }

// BenchmarkMutate_Incremental patches frontiers around the flipped cell.
func BenchmarkMutate_Incremental(b *testing.B) {
	benchmarkMutate(b, partition.WithIncrementalFrontiers())
}

// BenchmarkMutate_Strict adds the flood-fill contiguity guard.
func BenchmarkMutate_Strict(b *testing.B) {
	benchmarkMutate(b, partition.WithIncrementalFrontiers(), partition.WithStrictContiguity())
}
