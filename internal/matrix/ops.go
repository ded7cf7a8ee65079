package matrix

import "fmt"

// AddInPlace adds rhs to m elementwise and returns m.
// Panics with ErrShape if the shapes differ.
func (m *Matrix) AddInPlace(rhs *Matrix) *Matrix {
	requireSameShape("Add", m, rhs)
	for i, v := range rhs.data {
		m.data[i] += v
	}
	return m
}

// SubInPlace subtracts rhs from m elementwise and returns m.
// Panics with ErrShape if the shapes differ.
func (m *Matrix) SubInPlace(rhs *Matrix) *Matrix {
	requireSameShape("Sub", m, rhs)
	for i, v := range rhs.data {
		m.data[i] -= v
	}
	return m
}

// ScaleInPlace multiplies every entry of m by s and returns m.
func (m *Matrix) ScaleInPlace(s float64) *Matrix {
	for i := range m.data {
		m.data[i] *= s
	}
	return m
}

// AddCol broadcast-adds the column vector col to every column of m:
// m[i][j] += col[i]. Returns m.
//
// Panics with ErrShape and ErrNotColumn if col has more than one column,
// and with ErrShape if col.Rows() != m.Rows().
func (m *Matrix) AddCol(col *Matrix) *Matrix {
	if col.cols != 1 {
		panic(fmt.Errorf("matrix: AddCol %dx%d and %dx%d: %w: %w",
			m.rows, m.cols, col.rows, col.cols, ErrShape, ErrNotColumn))
	}
	if col.rows != m.rows {
		panic(shapeErrorf("AddCol", m, col))
	}
	for i := 0; i < m.rows; i++ {
		b := col.data[i]
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			row[j] += b
		}
	}
	return m
}

// Add returns a + b. Neither operand is modified.
func Add(a, b *Matrix) *Matrix {
	requireSameShape("Add", a, b)
	return a.Clone().AddInPlace(b)
}

// Sub returns a - b. Neither operand is modified.
func Sub(a, b *Matrix) *Matrix {
	requireSameShape("Sub", a, b)
	return a.Clone().SubInPlace(b)
}

// Scale returns a * s.
func Scale(a *Matrix, s float64) *Matrix {
	return a.Clone().ScaleInPlace(s)
}

// Hadamard returns the elementwise product of a and b.
// Panics with ErrShape if the shapes differ.
func Hadamard(a, b *Matrix) *Matrix {
	requireSameShape("Hadamard", a, b)
	out := New(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v * b.data[i]
	}
	return out
}

// Transpose returns a new matrix t with t[j][i] = a[i][j].
func Transpose(a *Matrix) *Matrix {
	out := New(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}
	return out
}

// Apply returns a new matrix with fn applied to every entry of a.
func Apply(a *Matrix, fn func(float64) float64) *Matrix {
	out := New(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = fn(v)
	}
	return out
}
