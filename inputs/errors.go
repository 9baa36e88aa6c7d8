package inputs

import "errors"

// Sentinel errors for the inputs package.
var (
	// ErrNotInitialized indicates Advance was called on an Accumulator
	// before Init.
	ErrNotInitialized = errors.New("inputs: accumulator not initialized")

	// ErrAlreadyInitialized indicates Init was called twice on the same
	// Accumulator.
	ErrAlreadyInitialized = errors.New("inputs: accumulator already initialized")

	// ErrInvalidPeriod indicates Period was constructed with m <= 0.
	ErrInvalidPeriod = errors.New("inputs: collapse period must be positive")
)
