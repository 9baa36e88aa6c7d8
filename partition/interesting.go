package partition

import "github.com/bits-and-blooms/bitset"

// InterestingBlocks computes blocks(V) and diff_blocks(V) per spec.md
// §4.1: blocks(V) is the ordered set of partition indices whose block
// contains at least one element of the sorted variables-of-interest
// slice vars; diff_blocks(V) is its ordered complement. An empty vars
// slice means "all variables are of interest" (spec.md §6: "vars ...
// empty ⇒ all"), so blocks(V) covers every block and diff_blocks(V) is
// empty.
//
// Membership is accumulated in a bitset.BitSet (one bit per block index)
// so both results can be read back in ascending order via bitset's
// NextSet iteration without an intermediate sort.
func (p *Partition) InterestingBlocks(vars []int) (interesting, complement []int, err error) {
	if len(vars) == 0 {
		interesting = make([]int, p.Len())
		for i := range interesting {
			interesting[i] = i
		}
		return interesting, nil, nil
	}

	interestingSet := bitset.New(uint(p.Len()))
	prev := -1
	for _, v := range vars {
		if v <= prev {
			return nil, nil, ErrUnsortedVars
		}
		prev = v
		b, _, err := p.BlockOf(v)
		if err != nil {
			return nil, nil, err
		}
		interestingSet.Set(uint(b))
	}

	for i, e := interestingSet.NextSet(0); e; i, e = interestingSet.NextSet(i + 1) {
		interesting = append(interesting, int(i))
	}
	complementSet := interestingSet.Complement()
	// Complement() extends implicitly to the bitset's length (64-aligned);
	// mask it back down to the partition's actual block count so stray
	// high bits never leak into diff_blocks(V).
	for i, e := complementSet.NextSet(0); e && int(i) < p.Len(); i, e = complementSet.NextSet(i + 1) {
		complement = append(complement, int(i))
	}
	return interesting, complement, nil
}
