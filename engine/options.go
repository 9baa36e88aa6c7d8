package engine

import (
	"github.com/arborix/reachflow/inputs"
	"github.com/arborix/reachflow/matpow"
	"github.com/arborix/reachflow/partition"
	"github.com/arborix/reachflow/sets"
	"gonum.org/v1/gonum/mat"
)

// BlockOptions holds a per-block approximation policy map together with
// a uniform fallback, implementing spec.md §4.5's tie-break rule: "the
// explicit block map takes precedence over the uniform policy."
type BlockOptions struct {
	Explicit map[int]sets.BlockPolicy
	Uniform  *sets.BlockPolicy
}

// PolicyFor resolves the effective policy for block i of dimension dim,
// per spec.md §4.5: explicit > uniform > default-by-dimension.
func (b BlockOptions) PolicyFor(i, dim int) sets.BlockPolicy {
	if b.Explicit != nil {
		if p, ok := b.Explicit[i]; ok {
			return p
		}
	}
	if b.Uniform != nil {
		return *b.Uniform
	}
	return sets.DefaultPolicyFor(dim)
}

// Config is the single typed, validated value the driver builds once
// via functional options before Run or Check starts, mirroring
// builder.BuilderConfig / matrix.Option's "global option state becomes
// one typed value" discipline (§9 design note).
type Config struct {
	Partition *partition.Partition
	MatPow    matpow.Handle
	X0        []sets.Set
	U         sets.Set

	Delta float64
	N     int

	Vars []int

	BlockOptionsInit BlockOptions
	BlockOptionsIter BlockOptions

	LazyInputsInterval inputs.CollapsePredicate

	OutputFunction mat.Matrix

	Termination TerminationPolicy
	Guards      []sets.HalfSpace

	AssumeSparse      bool
	AssumeHomogeneous bool
	LazyX0            bool
	EagerChecking     bool

	Property func(sets.Set) (bool, error)

	OnStep       func(k int, candidate sets.Set)
	OnCollapse   func(blockIdx, k int)
	OnGuardCross func(k int)
}

// Option customizes a Config before a run starts. Option constructors
// validate and panic only where a nil callback or nil required
// collaborator would otherwise surface as a baffling nil-pointer
// dereference deep inside the hot loop — never on user-supplied numeric
// data, which Validate(cfg) reports as ordinary ConfigErrors instead.
type Option func(*Config)

// WithPartition sets the block partition. Panics on nil: a nil
// *partition.Partition is a construction-site bug, not a user-data
// condition Validate can usefully describe differently.
func WithPartition(p *partition.Partition) Option {
	if p == nil {
		panic("engine: WithPartition(nil)")
	}
	return func(c *Config) { c.Partition = p }
}

// WithMatrixPower sets the matrix-power handle driving Φᵏ row/sub-block
// queries. Panics on nil.
func WithMatrixPower(h matpow.Handle) Option {
	if h == nil {
		panic("engine: WithMatrixPower(nil)")
	}
	return func(c *Config) { c.MatPow = h }
}

// WithX0 sets the decomposed initial set, one entry per partition block
// in partition order. Panics on nil; an empty (but non-nil) slice is
// left for Validate to reject as a user-data error.
func WithX0(x0 []sets.Set) Option {
	if x0 == nil {
		panic("engine: WithX0(nil)")
	}
	return func(c *Config) { c.X0 = x0 }
}

// WithU sets the (optional) constant nondeterministic input set U. Pass
// nil (the default) to mean "no inputs"; equivalent to
// WithAssumeHomogeneous(true).
func WithU(u sets.Set) Option {
	return func(c *Config) { c.U = u }
}

// WithDelta sets the time step δ.
func WithDelta(delta float64) Option {
	return func(c *Config) { c.Delta = delta }
}

// WithHorizon sets Config.N. Run, Check and Validate do not read it: the
// step a run stops at comes from the termination policy (Horizon{N} or
// InvariantHorizon{N, ...}).
func WithHorizon(n int) Option {
	return func(c *Config) { c.N = n }
}

// WithVars sets the sorted, duplicate-free variables of interest.
// An empty or nil value means "all variables" (the default).
func WithVars(vars []int) Option {
	return func(c *Config) { c.Vars = vars }
}

// WithBlockOptionsInit sets the per-block / uniform policy used when
// decomposing X₀.
func WithBlockOptionsInit(opts BlockOptions) Option {
	return func(c *Config) { c.BlockOptionsInit = opts }
}

// WithBlockOptionsIter sets the per-block / uniform policy used at every
// propagation step.
func WithBlockOptionsIter(opts BlockOptions) Option {
	return func(c *Config) { c.BlockOptionsIter = opts }
}

// WithLazyInputsInterval sets the input-accumulator collapse predicate.
// Panics on nil; use inputs.Always()/Never()/Period(m) to construct one.
func WithLazyInputsInterval(pred inputs.CollapsePredicate) Option {
	if pred == nil {
		panic("engine: WithLazyInputsInterval(nil)")
	}
	return func(c *Config) { c.LazyInputsInterval = pred }
}

// WithOutputFunction sets an optional linear map applied to each step's
// decomposed set before it is recorded, enabling plotting-space reach
// sets (spec.md §6).
func WithOutputFunction(m mat.Matrix) Option {
	return func(c *Config) { c.OutputFunction = m }
}

// WithTermination sets the termination policy. Panics on nil; use
// Unbounded{}, Horizon{N}, Invariant{...} or InvariantHorizon{...}.
func WithTermination(t TerminationPolicy) Option {
	if t == nil {
		panic("engine: WithTermination(nil)")
	}
	return func(c *Config) { c.Termination = t }
}

// WithGuards sets the guard half-space union that triggers cross-guard
// splicing (spec.md §4.5 point 3).
func WithGuards(guards []sets.HalfSpace) Option {
	return func(c *Config) { c.Guards = guards }
}

// WithAssumeSparse sets Config.AssumeSparse. Run and Check do not read
// it; the lazy-matrix-exponential backend takes its own assumeSparse
// argument in matpow.NewLazyExp.
func WithAssumeSparse(v bool) Option {
	return func(c *Config) { c.AssumeSparse = v }
}

// WithAssumeHomogeneous ignores U even if one was supplied, equivalent
// to running with U replaced by the empty set (spec.md §8's round-trip
// property).
func WithAssumeHomogeneous(v bool) Option {
	return func(c *Config) { c.AssumeHomogeneous = v }
}

// WithLazyX0 sets Config.LazyX0. Its only effect is that Validate no
// longer reports a nil X0; Run and Check always read the per-block X0
// slice as given. Keeping X₀ as a single unchanged block is done by
// DecomposeX0 for a single-block partition under
// KindLinearMapPassthrough (spec.md §4.2's shortcut).
func WithLazyX0(v bool) Option {
	return func(c *Config) { c.LazyX0 = v }
}

// WithEagerChecking toggles per-step property evaluation in check mode.
// Defaults to true (spec.md §4.6).
func WithEagerChecking(v bool) Option {
	return func(c *Config) { c.EagerChecking = v }
}

// WithProperty sets the check-mode property predicate over a
// cartesian-product set restricted to the interesting blocks. Panics on
// nil; Check itself returns ErrNilProperty if none was ever configured.
func WithProperty(p func(sets.Set) (bool, error)) Option {
	if p == nil {
		panic("engine: WithProperty(nil)")
	}
	return func(c *Config) { c.Property = p }
}

// WithOnStep registers the deterministic replay hook, invoked by Run once
// per completed step k with the candidate decomposed set, before the
// termination policy runs (a SPEC_FULL supplemented feature; spec.md §2
// excludes progress reporting from the engine's own concern, but an
// observer hook is additive and costs nothing on the hot path when nil).
func WithOnStep(fn func(k int, candidate sets.Set)) Option {
	return func(c *Config) { c.OnStep = fn }
}

// WithOnCollapse registers a hook Run invokes whenever a block's input
// accumulator collapses to a concrete set. Check does not call it.
func WithOnCollapse(fn func(blockIdx, k int)) Option {
	return func(c *Config) { c.OnCollapse = fn }
}

// WithOnGuardCross registers a hook invoked whenever a step triggers
// cross-guard splicing.
func WithOnGuardCross(fn func(k int)) Option {
	return func(c *Config) { c.OnGuardCross = fn }
}

// NewConfig builds a Config by applying opts over the documented
// defaults (EagerChecking=true, LazyInputsInterval=inputs.Always() —
// the tightest-memory schedule — and Termination=Unbounded{}).
func NewConfig(opts ...Option) *Config {
	c := &Config{
		EagerChecking:      true,
		LazyInputsInterval: inputs.Always(),
		Termination:        Unbounded{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
