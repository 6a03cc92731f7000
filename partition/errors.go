package partition

import "errors"

var (
	// ErrNilWorld indicates a nil *world.World argument.
	ErrNilWorld = errors.New("partition: world must not be nil")
	// ErrInvalidDistricts indicates a non-positive district count.
	ErrInvalidDistricts = errors.New("partition: district count must be positive")
	// ErrTooManyDistricts indicates fewer border cells than districts to seed.
	ErrTooManyDistricts = errors.New("partition: district count exceeds border cells")
	// ErrLabelsShape indicates a label slice whose length differs from the world size.
	ErrLabelsShape = errors.New("partition: label count must equal world size")
	// ErrLabelRange indicates a label outside [0, districts).
	ErrLabelRange = errors.New("partition: label out of range")
	// ErrInvalidTolerance indicates a population tolerance outside (0,1) or a
	// non-positive iteration budget.
	ErrInvalidTolerance = errors.New("partition: tolerance must lie in (0,1) and iterations be positive")
	// ErrPopulationUnfixable indicates FixPopulation ran out of iterations.
	ErrPopulationUnfixable = errors.New("partition: population equality not reached")
	// ErrInvariant indicates a broken internal invariant. It is never expected.
	ErrInvariant = errors.New("partition: invariant violated")
)
