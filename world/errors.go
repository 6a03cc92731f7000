package world

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("world: width and height must be positive")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("world: all rows must have the same length")
	// ErrNegativeVotes indicates a negative voter count in a layout.
	ErrNegativeVotes = errors.New("world: voter counts must be non-negative")
	// ErrInvalidProbability indicates a voter probability outside [0,1].
	ErrInvalidProbability = errors.New("world: probability must lie in [0,1]")
	// ErrInvalidClasses indicates an unsupported number of parties.
	ErrInvalidClasses = errors.New("world: classes must be 1 or 2")
)
