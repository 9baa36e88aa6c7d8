// Package sets provides the lazy set algebra consumed by the reachability
// engine: a closed tagged variant over the concrete set kinds the engine
// needs (interval, hyperrectangle, zonotope, ε-close polygon, cartesian
// product array, cached Minkowski-sum array, lazy linear map, zero set)
// behind a single capability interface, Set.
//
// The engine itself never switches on concrete set kind; it calls Set's
// methods (Support, LinearMap, MinkowskiSum, Overapproximate) and lets the
// concrete value decide how to materialize. This mirrors how a graph library's
// own matrix package hands a Matrix interface to algorithms and keeps the
// concrete Dense representation private to the matrix package.
//
// Geometry here is expressed purely through support functions:
//
//	ρ_X(d) = sup { d·x : x ∈ X }
//
// Every operation a block-propagation loop needs — axis-aligned box
// enclosure, template-direction polytopes, guard/invariant separation
// tests — reduces to evaluating ρ_X along a handful of directions, so a
// single Support method is enough to make every concrete type usable
// wherever the engine expects a Set.
package sets
