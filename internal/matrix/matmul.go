package matrix

import "fmt"

// Mul returns the standard matrix product a·b.
// (M, K) · (K, N) -> (M, N)
//
// Each output cell is accumulated over the shared dimension in order, rows
// first, then columns, then k. Results are therefore bit-identical to the
// naive triple loop.
//
// Panics with ErrShape if a.Cols() != b.Rows().
func Mul(a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic(shapeErrorf("Mul", a, b))
	}
	out := New(a.rows, b.cols)
	mulFloat64(out.data, a.data, b.data, a.rows, a.cols, b.cols)
	return out
}

// MulInto writes a·b into dst and returns dst.
//
// dst must already have the result shape; it is never reshaped.
// Panics with ErrShape otherwise. dst must not share storage with a or b.
func MulInto(dst, a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic(shapeErrorf("Mul", a, b))
	}
	if dst.rows != a.rows || dst.cols != b.cols {
		panic(fmt.Errorf("matrix: MulInto destination %dx%d, want %dx%d: %w",
			dst.rows, dst.cols, a.rows, b.cols, ErrShape))
	}
	mulFloat64(dst.data, a.data, b.data, a.rows, a.cols, b.cols)
	return dst
}

// MulT returns a·bᵀ without materializing the transpose.
// (M, K) · (N, K)ᵀ -> (M, N)
//
// Backpropagation uses it for the outer product of a layer's error column
// and its input column.
//
// Panics with ErrShape if a.Cols() != b.Cols().
func MulT(a, b *Matrix) *Matrix {
	if a.cols != b.cols {
		panic(shapeErrorf("MulT", a, b))
	}
	out := New(a.rows, b.rows)
	mulTFloat64(out.data, a.data, b.data, a.rows, a.cols, b.rows)
	return out
}

// MulTInto writes a·bᵀ into dst and returns dst.
// dst must already have shape (a.Rows(), b.Rows()).
func MulTInto(dst, a, b *Matrix) *Matrix {
	if a.cols != b.cols {
		panic(shapeErrorf("MulT", a, b))
	}
	if dst.rows != a.rows || dst.cols != b.rows {
		panic(fmt.Errorf("matrix: MulTInto destination %dx%d, want %dx%d: %w",
			dst.rows, dst.cols, a.rows, b.rows, ErrShape))
	}
	mulTFloat64(dst.data, a.data, b.data, a.rows, a.cols, b.rows)
	return dst
}

// TMul returns aᵀ·b without materializing the transpose.
// (K, M)ᵀ · (K, N) -> (M, N)
//
// Backpropagation uses it to push a layer's error back through its
// weights. Results are bit-identical to Mul(Transpose(a), b).
//
// Panics with ErrShape if a.Rows() != b.Rows().
func TMul(a, b *Matrix) *Matrix {
	if a.rows != b.rows {
		panic(shapeErrorf("TMul", a, b))
	}
	out := New(a.cols, b.cols)
	tMulFloat64(out.data, a.data, b.data, a.cols, a.rows, b.cols)
	return out
}

// mulFloat64 computes C[i,j] = sum_k A[i,k] * B[k,j].
func mulFloat64(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// mulTFloat64 computes C[i,j] = sum_k A[i,k] * B[j,k].
// Both operands are walked along contiguous rows.
func mulTFloat64(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		aRow := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			bRow := b[j*k : (j+1)*k]
			sum := float64(0)
			for kIdx, v := range aRow {
				sum += v * bRow[kIdx]
			}
			c[i*n+j] = sum
		}
	}
}

// tMulFloat64 computes C[i,j] = sum_k A[k,i] * B[k,j], A stored as (k, m).
func tMulFloat64(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[kIdx*m+i] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
