package sparsemat

import "gonum.org/v1/gonum/mat"

// CSR is a compressed-sparse-row matrix of float64 values. RowPtr has
// length rows+1; row i's entries live at ColIdx[RowPtr[i]:RowPtr[i+1]]
// and Data[RowPtr[i]:RowPtr[i+1]], with ColIdx ascending within each row.
type CSR struct {
	rows, cols int
	RowPtr     []int
	ColIdx     []int
	Data       []float64
}

// Entry is a single (row, col, value) triplet used to build a CSR.
type Entry struct {
	Row, Col int
	Value    float64
}

// NewCSR builds a CSR matrix from row/col/value triplets. Triplets need
// not be pre-sorted; NewCSR buckets them by row and sorts each row's
// column indices internally (a simple insertion sort, since per-row
// entry counts in the block-diagonal-ish matrices this engine targets
// are small).
func NewCSR(rows, cols int, entries []Entry) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buckets := make([][]Entry, rows)
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, ErrIndexOutOfBounds
		}
		buckets[e.Row] = append(buckets[e.Row], e)
	}
	rowPtr := make([]int, rows+1)
	var colIdx []int
	var data []float64
	for i := 0; i < rows; i++ {
		row := buckets[i]
		insertionSortEntries(row)
		for _, e := range row {
			colIdx = append(colIdx, e.Col)
			data = append(data, e.Value)
		}
		rowPtr[i+1] = len(colIdx)
	}
	return &CSR{rows: rows, cols: cols, RowPtr: rowPtr, ColIdx: colIdx, Data: data}, nil
}

func insertionSortEntries(row []Entry) {
	for i := 1; i < len(row); i++ {
		v := row[i]
		j := i - 1
		for j >= 0 && row[j].Col > v.Col {
			row[j+1] = row[j]
			j--
		}
		row[j+1] = v
	}
}

// Identity builds the n×n sparse identity matrix.
func Identity(n int) *CSR {
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{Row: i, Col: i, Value: 1}
	}
	m, _ := NewCSR(n, n, entries)
	return m
}

// Dims implements gonum's mat.Matrix.
func (m *CSR) Dims() (r, c int) { return m.rows, m.cols }

// At implements gonum's mat.Matrix with an O(log nnz-in-row) binary
// search over the row's ascending column indices.
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0
	}
	lo, hi := m.RowPtr[i], m.RowPtr[i+1]
	for lo < hi {
		mid := (lo + hi) / 2
		c := m.ColIdx[mid]
		switch {
		case c == j:
			return m.Data[mid]
		case c < j:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// T implements gonum's mat.Matrix by wrapping in the standard transpose
// view rather than materializing a transposed copy.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// RowRange returns the half-open slice bounds [start, end) into ColIdx
// and Data for row i.
func (m *CSR) RowRange(i int) (start, end int) {
	return m.RowPtr[i], m.RowPtr[i+1]
}

// IsStructurallyZero reports whether every entry of the sub-block
// rows[rowLo, rowHi] × cols[colLo, colHi] (inclusive) is absent from the
// sparsity pattern. This backs the "zero test on B" used by the sparse
// micro-strategy in spec.md §4.5 to skip a cross-block contribution
// entirely rather than constructing and summing a zero set.
func (m *CSR) IsStructurallyZero(rowLo, rowHi, colLo, colHi int) bool {
	for i := rowLo; i <= rowHi; i++ {
		start, end := m.RowRange(i)
		for k := start; k < end; k++ {
			c := m.ColIdx[k]
			if c >= colLo && c <= colHi {
				return false
			}
		}
	}
	return true
}

// RowBlockDense materializes rows [rowLo, rowHi] (inclusive), all
// columns, as a dense matrix — the concrete form package matpow hands
// off to the sets package for a cross-block linear map.
func (m *CSR) RowBlockDense(rowLo, rowHi int) *mat.Dense {
	h := rowHi - rowLo + 1
	out := mat.NewDense(h, m.cols, nil)
	for i := rowLo; i <= rowHi; i++ {
		start, end := m.RowRange(i)
		for k := start; k < end; k++ {
			out.Set(i-rowLo, m.ColIdx[k], m.Data[k])
		}
	}
	return out
}

// SubBlockDense materializes rows [rowLo,rowHi] x cols [colLo,colHi] as
// a dense matrix.
func (m *CSR) SubBlockDense(rowLo, rowHi, colLo, colHi int) *mat.Dense {
	h := rowHi - rowLo + 1
	w := colHi - colLo + 1
	out := mat.NewDense(h, w, nil)
	for i := rowLo; i <= rowHi; i++ {
		start, end := m.RowRange(i)
		for k := start; k < end; k++ {
			c := m.ColIdx[k]
			if c >= colLo && c <= colHi {
				out.Set(i-rowLo, c-colLo, m.Data[k])
			}
		}
	}
	return out
}

// Mul computes a*b as a fresh CSR via the standard row-wise sparse
// accumulation (a's row i contributes data[i,k]*b's row k to the output
// row), the "explicit sparse Φᵏ⁺¹ ← Φᵏ · Φ" advance from spec.md §4.4.
func Mul(a, b *CSR) (*CSR, error) {
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	acc := make(map[int]float64, b.cols)
	var entries []Entry
	for i := 0; i < a.rows; i++ {
		for k := range acc {
			delete(acc, k)
		}
		start, end := a.RowRange(i)
		for p := start; p < end; p++ {
			k := a.ColIdx[p]
			av := a.Data[p]
			bs, be := b.RowRange(k)
			for q := bs; q < be; q++ {
				acc[b.ColIdx[q]] += av * b.Data[q]
			}
		}
		for col, v := range acc {
			if v != 0 {
				entries = append(entries, Entry{Row: i, Col: col, Value: v})
			}
		}
	}
	return NewCSR(a.rows, b.cols, entries)
}
