package sets

// Kind names a per-block overapproximation policy. The zero value,
// KindNone, means "keep lazy" — the engine defers materialization.
type Kind int

const (
	// KindNone keeps the value lazy; no overapproximation is performed.
	KindNone Kind = iota

	// KindInterval overapproximates a 1-dimensional block to [lo, hi].
	KindInterval

	// KindHyperrectangle overapproximates an n-dimensional block to an
	// axis-aligned box.
	KindHyperrectangle

	// KindEpsPolygon overapproximates a 2-dimensional block to a convex
	// polygon whose support-function error against the true set is
	// bounded by Epsilon at every sampled direction.
	KindEpsPolygon

	// KindTemplateBox is the axis-direction template (equivalent to
	// KindHyperrectangle, named separately so block_options can request
	// "box template" explicitly as spec'd in §3).
	KindTemplateBox

	// KindTemplateOctagon overapproximates a 2-dimensional block to the
	// 8-direction (axis + diagonal) template polytope.
	KindTemplateOctagon

	// KindTemplateBoxDiag is an alias family for "box + diagonals";
	// currently realized identically to KindTemplateOctagon at 2D.
	KindTemplateBoxDiag

	// KindLinearMapPassthrough keeps a lazy LinearMap value unreduced:
	// no overapproximation error is introduced, but the value must
	// already be a *LinearMap (see ErrPolicyNotApplicable).
	KindLinearMapPassthrough
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInterval:
		return "interval"
	case KindHyperrectangle:
		return "hyperrectangle"
	case KindEpsPolygon:
		return "eps-polygon"
	case KindTemplateBox:
		return "template-box"
	case KindTemplateOctagon:
		return "template-octagon"
	case KindTemplateBoxDiag:
		return "template-box-diag"
	case KindLinearMapPassthrough:
		return "linear-map-passthrough"
	default:
		return "unknown"
	}
}

// BlockPolicy is a per-block overapproximation policy: a Kind plus the
// Epsilon parameter KindEpsPolygon needs. Block set-type policy per §3.
type BlockPolicy struct {
	Kind    Kind
	Epsilon float64
}

// DependsOnHistory reports whether tightening this policy requires
// retaining every prior Minkowski-sum summand rather than only the most
// recent collapsed prefix. ε-close polygon refinement depends on the
// full history (a wider union of supporting directions tightens the
// enclosure); template/box policies do not. This is the capability bit
// §9's "forget prior summands" design note asks to be queried at every
// collapse.
func (p BlockPolicy) DependsOnHistory() bool {
	return p.Kind == KindEpsPolygon
}

// DefaultPolicyFor returns the default block policy when none is
// configured: interval for 1D blocks, hyperrectangle otherwise, per
// spec §4.5's tie-break rule.
func DefaultPolicyFor(dim int) BlockPolicy {
	if dim == 1 {
		return BlockPolicy{Kind: KindInterval}
	}
	return BlockPolicy{Kind: KindHyperrectangle}
}

// HalfSpace represents { x ∈ R^n : Normal·x <= Offset }.
type HalfSpace struct {
	Normal []float64
	Offset float64
}
