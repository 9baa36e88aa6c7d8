package engine

import "gonum.org/v1/gonum/mat"

// selectionMatrix builds the dim×n 0/1 matrix P such that P·x = x[lo:hi+1]
// for any n-vector x — the projection π_i used both to decompose X₀ onto
// block i (spec.md §4.2) and to project U onto a block before folding it
// into the input accumulator (spec.md §4.3).
func selectionMatrix(n, lo, hi int) *mat.Dense {
	dim := hi - lo + 1
	m := mat.NewDense(dim, n, nil)
	for r := 0; r < dim; r++ {
		m.Set(r, lo+r, 1)
	}
	return m
}

// mergeSortedBlocks merges two strictly-ascending, disjoint block-index
// slices into one ascending slice, preserving partition order in the
// spliced reach-set record (spec.md §4.5 point 3).
func mergeSortedBlocks(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
