// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/densenet/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a fixed-shape dense matrix of float64 in row-major order.
type Matrix = matrix.Matrix

// Errors carried by shape and index panics.
var (
	ErrShape     = matrix.ErrShape
	ErrBounds    = matrix.ErrBounds
	ErrNotColumn = matrix.ErrNotColumn
)

// Construction

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) *Matrix { return matrix.New(rows, cols) }

// Filled creates a rows×cols matrix with every element set to v.
func Filled(rows, cols int, v float64) *Matrix { return matrix.Filled(rows, cols, v) }

// FromSlice builds a matrix with the given column count from row-major values.
//
// Example:
//
//	m, err := matrix.FromSlice(2, []float64{1, 2, 3, 4}) // 2×2
func FromSlice(cols int, values []float64) (*Matrix, error) {
	return matrix.FromSlice(cols, values)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(cols int, values []float64) *Matrix {
	return matrix.MustFromSlice(cols, values)
}

// Column builds an n×1 column vector.
func Column(values ...float64) *Matrix { return matrix.Column(values...) }

// FromDense copies a gonum matrix.
func FromDense(d mat.Matrix) *Matrix { return matrix.FromDense(d) }

// Arithmetic

// Add returns a + b.
func Add(a, b *Matrix) *Matrix { return matrix.Add(a, b) }

// Sub returns a − b.
func Sub(a, b *Matrix) *Matrix { return matrix.Sub(a, b) }

// Scale returns a·s.
func Scale(a *Matrix, s float64) *Matrix { return matrix.Scale(a, s) }

// Hadamard returns the elementwise product of a and b.
func Hadamard(a, b *Matrix) *Matrix { return matrix.Hadamard(a, b) }

// Mul returns the matrix product a·b.
func Mul(a, b *Matrix) *Matrix { return matrix.Mul(a, b) }

// MulT returns a·bᵀ.
func MulT(a, b *Matrix) *Matrix { return matrix.MulT(a, b) }

// Transpose returns aᵀ.
func Transpose(a *Matrix) *Matrix { return matrix.Transpose(a) }

// Apply returns fn applied to every element of a.
func Apply(a *Matrix, fn func(float64) float64) *Matrix { return matrix.Apply(a, fn) }

// Comparison and formatting

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Matrix) bool { return matrix.SameShape(a, b) }

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *Matrix) bool { return matrix.Equal(a, b) }

// FormatRow renders the elements of m as "[ a, b, c ]".
func FormatRow(m *Matrix) string { return matrix.FormatRow(m) }
