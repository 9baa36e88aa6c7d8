package engine

import "errors"

// Error family sentinels, one per spec.md §7 taxonomy entry. Callers
// branch with errors.Is against these families; call sites wrap a more
// specific cause with fmt.Errorf("%w: ...", family).
var (
	// ErrConfig roots every ConfigError: invalid partition, incompatible
	// policy, non-positive horizon. Surfaced before iteration begins.
	ErrConfig = errors.New("engine: invalid configuration")

	// ErrShape roots every ShapeError: block dimension mismatches,
	// misaligned Φᵏ rows.
	ErrShape = errors.New("engine: shape mismatch")

	// ErrNumeric roots every NumericError: non-finite set coordinates, an
	// unexpected empty intermediate set.
	ErrNumeric = errors.New("engine: numeric failure")

	// ErrExternal roots every ExternalError: a failure reported by the
	// set algebra, the matrix-power handle, or a user property predicate.
	ErrExternal = errors.New("engine: external collaborator failed")
)

// Specific ConfigError causes. Validate reports each one wrapped
// together with ErrConfig, so errors.Is matches both.
var (
	ErrNilPartition       = errors.New("engine: partition must not be nil")
	ErrNilInitialSet      = errors.New("engine: decomposed initial set must not be nil")
	ErrBlockCountMismatch = errors.New("engine: initial set block count does not match partition length")
	ErrNonPositiveHorizon = errors.New("engine: horizon N must be >= 1")
	ErrNonPositiveDelta   = errors.New("engine: time step delta must be > 0")
	ErrNilMatrixPower     = errors.New("engine: matrix-power handle must not be nil")
	ErrIncompatiblePolicy = errors.New("engine: epsilon and eps-polygon policy must be set together")
	ErrNilTermination     = errors.New("engine: termination policy must not be nil")
	ErrVarsNotAscending   = errors.New("engine: vars of interest must be sorted ascending with no duplicates")
	ErrNilProperty        = errors.New("engine: check mode requires a property predicate")
)
