package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates operands whose dimensions are incompatible with the
	// requested operation, e.g. Add of different shapes or Mul where
	// a.Cols() != b.Rows().
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrBounds indicates a row or column index outside the matrix.
	ErrBounds = errors.New("matrix: index out of range")

	// ErrNotColumn indicates a multi-column matrix passed where a column
	// vector is required.
	ErrNotColumn = errors.New("matrix: not a column vector")
)

// shapeErrorf builds the panic value for a binary op on mismatched operands.
func shapeErrorf(op string, a, b *Matrix) error {
	return fmt.Errorf("matrix: %s %dx%d and %dx%d: %w", op, a.rows, a.cols, b.rows, b.cols, ErrShape)
}

func requireSameShape(op string, a, b *Matrix) {
	if !SameShape(a, b) {
		panic(shapeErrorf(op, a, b))
	}
}
