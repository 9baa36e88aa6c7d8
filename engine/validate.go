package engine

import (
	"fmt"

	"github.com/arborix/reachflow/sets"
)

// Validate runs the full ConfigError checklist from spec.md §7.1 against
// cfg and returns every violation found (not just the first), letting a
// driver author report a complete diagnosis in one pass — grounded in
// builder.validators.go's convention of a dedicated validators file
// separate from option application.
func Validate(cfg *Config) []error {
	var errs []error
	add := func(cause error, detail string, args ...any) {
		if detail == "" {
			errs = append(errs, fmt.Errorf("%w: %w", ErrConfig, cause))
			return
		}
		errs = append(errs, fmt.Errorf("%w: %w: %s", ErrConfig, cause, fmt.Sprintf(detail, args...)))
	}

	if cfg.Partition == nil {
		add(ErrNilPartition, "")
	}
	if cfg.MatPow == nil {
		add(ErrNilMatrixPower, "")
	}
	if !cfg.LazyX0 && cfg.X0 == nil {
		add(ErrNilInitialSet, "required unless lazy_X0 is set")
	}
	if cfg.Partition != nil && cfg.X0 != nil && len(cfg.X0) != cfg.Partition.Len() {
		add(ErrBlockCountMismatch, "initial set has %d blocks, partition has %d", len(cfg.X0), cfg.Partition.Len())
	}
	if cfg.Delta <= 0 {
		add(ErrNonPositiveDelta, "got %v", cfg.Delta)
	}
	if cfg.Termination == nil {
		add(ErrNilTermination, "")
	}
	if h, isHorizon := cfg.Termination.(Horizon); isHorizon && h.N < 1 {
		add(ErrNonPositiveHorizon, "got %d", h.N)
	}
	if ih, isIH := cfg.Termination.(InvariantHorizon); isIH && ih.N < 1 {
		add(ErrNonPositiveHorizon, "got %d", ih.N)
	}
	for i := 1; i < len(cfg.Vars); i++ {
		if cfg.Vars[i] <= cfg.Vars[i-1] {
			add(ErrVarsNotAscending, "")
			break
		}
	}
	if cfg.BlockOptionsIter.Uniform != nil {
		if err := validatePolicyEpsilon(*cfg.BlockOptionsIter.Uniform); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range cfg.BlockOptionsIter.Explicit {
		if err := validatePolicyEpsilon(p); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// validatePolicyEpsilon reports ErrIncompatiblePolicy (joined with
// ErrConfig) when a positive Epsilon is paired with a non-eps-polygon
// policy, or an eps-polygon policy is paired with a non-positive
// Epsilon — the "incompatible policy" ConfigError of spec.md §7.1.
func validatePolicyEpsilon(p sets.BlockPolicy) error {
	if p.Kind == sets.KindEpsPolygon && p.Epsilon <= 0 {
		return fmt.Errorf("%w: %w", ErrConfig, ErrIncompatiblePolicy)
	}
	if p.Kind != sets.KindEpsPolygon && p.Epsilon > 0 {
		return fmt.Errorf("%w: %w", ErrConfig, ErrIncompatiblePolicy)
	}
	return nil
}
