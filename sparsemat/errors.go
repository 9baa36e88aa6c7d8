package sparsemat

import "errors"

// Sentinel errors for the sparsemat package.
var (
	// ErrInvalidDimensions indicates non-positive rows/cols were requested.
	ErrInvalidDimensions = errors.New("sparsemat: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside range.
	ErrIndexOutOfBounds = errors.New("sparsemat: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes for an operation
	// such as Mul (a.Cols must equal b.Rows).
	ErrDimensionMismatch = errors.New("sparsemat: dimension mismatch")

	// ErrUnsortedRow names a CSR whose column indices are not ascending
	// within a row, which every CSR algorithm here assumes. NewCSR does not
	// return it: it sorts each row's entries itself.
	ErrUnsortedRow = errors.New("sparsemat: column indices within a row must be ascending")
)
