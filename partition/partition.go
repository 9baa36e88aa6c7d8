package partition

// Block is a contiguous, ascending, inclusive range of variable indices
// [Lo, Hi], 0-based. A single variable i is the degenerate block
// {Lo: i, Hi: i}.
type Block struct {
	Lo, Hi int
}

// Len returns the number of variables in the block (Hi - Lo + 1).
func (b Block) Len() int { return b.Hi - b.Lo + 1 }

// Partition is an ordered, immutable sequence of Blocks covering
// {0, ..., n-1} exactly once, in order (spec.md §3's partition
// invariant). Once constructed via New, a Partition is never mutated —
// every iteration of the propagation engine shares one read-only copy.
type Partition struct {
	blocks []Block
	n      int
}

// New validates and constructs a Partition from blocks given in order.
// Returns ErrEmptyPartition, ErrEmptyBlock or ErrNotAscending on any
// violation of the covering invariant.
func New(blocks []Block) (*Partition, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyPartition
	}
	expected := 0
	for _, b := range blocks {
		if b.Hi < b.Lo {
			return nil, ErrEmptyBlock
		}
		if b.Lo != expected {
			return nil, ErrNotAscending
		}
		expected = b.Hi + 1
	}
	cp := make([]Block, len(blocks))
	copy(cp, blocks)
	return &Partition{blocks: cp, n: expected}, nil
}

// Singleton builds the trivial single-block partition spanning all n
// variables — the shortcut case referenced in spec.md §4.2.
func Singleton(n int) (*Partition, error) {
	return New([]Block{{Lo: 0, Hi: n - 1}})
}

// Len returns the number of blocks in the partition.
func (p *Partition) Len() int { return len(p.blocks) }

// N returns the total number of variables covered.
func (p *Partition) N() int { return p.n }

// Block returns the i-th block (0-indexed, 0 <= i < Len()).
func (p *Partition) Block(i int) Block { return p.blocks[i] }

// Dim returns the i-th block's dimension (its variable count).
func (p *Partition) Dim(i int) int { return p.blocks[i].Len() }

// Dims returns every block's dimension in partition order, a slice
// frequently needed to size per-block accumulators and decomposed sets.
func (p *Partition) Dims() []int {
	dims := make([]int, len(p.blocks))
	for i, b := range p.blocks {
		dims[i] = b.Len()
	}
	return dims
}

// BlockOf returns the index of the block containing variable v, and v's
// offset within that block. Returns ErrVarOutOfRange if v is outside
// [0, N()).
func (p *Partition) BlockOf(v int) (blockIdx, offset int, err error) {
	if v < 0 || v >= p.n {
		return 0, 0, ErrVarOutOfRange
	}
	// Blocks are contiguous and ascending, so a linear scan suffices; the
	// partition is small in every configuration this engine targets
	// (block count, not variable count, drives the cross-block cost).
	for i, b := range p.blocks {
		if v >= b.Lo && v <= b.Hi {
			return i, v - b.Lo, nil
		}
	}
	return 0, 0, ErrVarOutOfRange // unreachable given the New() invariant
}
