// Package matrix implements the dense row-major matrix used by the network.
//
// A Matrix owns a flat []float64 of length rows*cols; element (i, j) lives
// at offset i*cols + j. Shape never changes in place except through CopyFrom,
// which replaces the whole value.
//
// Shape and index violations are programmer errors: the operation panics
// with an error wrapping ErrShape, ErrBounds or ErrNotColumn before touching
// any data, so callers that recover can still match with errors.Is.
package matrix

import "fmt"

// Matrix is a fixed-shape dense matrix of float64 in row-major order.
//
// The zero value is an empty 0×0 matrix.
//
// Example:
//
//	a := matrix.MustFromSlice(3, []float64{
//	    2.0, 3.0, 4.0,
//	    -1.0, 0.3, -1.2,
//	})
//	b := matrix.Transpose(a) // 3×2
//	c := matrix.Mul(a, b)    // 2×2
type Matrix struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

// New creates a zero-filled rows×cols matrix.
//
// Panics if either dimension is negative.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("matrix: New %dx%d: %w", rows, cols, ErrShape))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Filled creates a rows×cols matrix with every entry set to v.
func Filled(rows, cols int, v float64) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// FromSlice creates a matrix with the given column count from a flat
// row-major slice. The number of rows is len(values)/cols.
// The slice is copied into the matrix.
func FromSlice(cols int, values []float64) (*Matrix, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("matrix: FromSlice with %d columns: %w", cols, ErrShape)
	}
	if len(values)%cols != 0 {
		return nil, fmt.Errorf("matrix: FromSlice %d values into %d columns: %w", len(values), cols, ErrShape)
	}

	m := New(len(values)/cols, cols)
	copy(m.data, values)
	return m, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(cols int, values []float64) *Matrix {
	m, err := FromSlice(cols, values)
	if err != nil {
		panic(err)
	}
	return m
}

// Column creates a column vector holding values.
func Column(values ...float64) *Matrix {
	m := New(len(values), 1)
	copy(m.data, values)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Size returns rows*cols.
func (m *Matrix) Size() int { return len(m.data) }

// IsColumn reports whether m has exactly one column.
func (m *Matrix) IsColumn() bool { return m.cols == 1 }

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Matrix) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Data returns the underlying row-major buffer.
// Writes through the returned slice modify the matrix.
func (m *Matrix) Data() []float64 { return m.data }

// At returns the element at (r, c).
func (m *Matrix) At(r, c int) float64 {
	m.checkIndex("At", r, c)
	return m.data[r*m.cols+c]
}

// Set stores v at (r, c).
func (m *Matrix) Set(r, c int, v float64) {
	m.checkIndex("Set", r, c)
	m.data[r*m.cols+c] = v
}

// Row returns a mutable view over row r.
func (m *Matrix) Row(r int) []float64 {
	if r < 0 || r >= m.rows {
		panic(fmt.Errorf("matrix: Row(%d) of %dx%d: %w", r, m.rows, m.cols, ErrBounds))
	}
	return m.data[r*m.cols : (r+1)*m.cols : (r+1)*m.cols]
}

func (m *Matrix) checkIndex(op string, r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Errorf("matrix: %s(%d,%d) of %dx%d: %w", op, r, c, m.rows, m.cols, ErrBounds))
	}
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// CopyFrom replaces m with a copy of src, shape included.
// The existing buffer is reused when it is large enough.
func (m *Matrix) CopyFrom(src *Matrix) *Matrix {
	n := len(src.data)
	if cap(m.data) < n {
		m.data = make([]float64, n)
	}
	m.data = m.data[:n]
	copy(m.data, src.data)
	m.rows, m.cols = src.rows, src.cols
	return m
}

// Zero sets every entry to 0.
func (m *Matrix) Zero() *Matrix {
	clear(m.data)
	return m
}

// Equal reports whether a and b have the same shape and identical entries.
func Equal(a, b *Matrix) bool {
	if !SameShape(a, b) {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}
