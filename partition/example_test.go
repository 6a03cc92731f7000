package partition_test

import (
	"fmt"

	"github.com/katalvlaran/districts/partition"
	"github.com/katalvlaran/districts/world"
)

// ExampleBuild grows three districts over a 6×4 grid and reports the
// invariants every build guarantees: full coverage and contiguity.
func ExampleBuild() {
	wd, _ := world.New(6, 4)
	rm, err := partition.Build(wd, 3, partition.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	total := 0
	for _, c := range rm.Counts() {
		total += c
	}
	fmt.Println("cells:", total)
	for _, d := range rm.Districts() {
		fmt.Printf("district %d contiguous: %v\n", d, rm.IsContiguous(d))
	}

	// Output:
	// cells: 24
	// district 0 contiguous: true
	// district 1 contiguous: true
	// district 2 contiguous: true
}

// ExampleRegionMap_Mutate shows the search-loop pattern: clone the current
// partition, mutate the copy, and keep or discard it.
func ExampleRegionMap_Mutate() {
	wd, _ := world.New(5, 5)
	current, _ := partition.Build(wd, 2, partition.WithSeed(1), partition.WithStrictContiguity())

	for step := 0; step < 100; step++ {
		candidate := current.Clone()
		if !candidate.Mutate() {
			continue // rejected: try another candidate
		}
		current = candidate
	}
	fmt.Println("valid:", current.Validate() == nil)
	fmt.Println("contiguous:", current.IsContiguous(0), current.IsContiguous(1))

	// Output:
	// valid: true
	// contiguous: true true
}

// ExampleBuild_tooManyDistricts shows the configuration error for a grid
// whose border cannot seed every district.
func ExampleBuild_tooManyDistricts() {
	wd, _ := world.New(2, 2)
	_, err := partition.Build(wd, 5)
	fmt.Println(err)

	// Output:
	// partition: district count exceeds border cells: 5 districts, 4 border cells
}
