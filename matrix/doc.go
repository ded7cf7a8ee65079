// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix networks compute with.
//
// # Overview
//
// A Matrix is row-major with a fixed shape. Value-returning functions
// (Add, Mul, Transpose, ...) allocate a new result; the in-place methods
// (AddInPlace, SubInPlace, ScaleInPlace, AddCol) mutate the receiver and
// return it for chaining.
//
// # Basic Usage
//
//	a := matrix.MustFromSlice(2, []float64{
//	    1, 2,
//	    3, 4,
//	})
//	x := matrix.Column(1, -1)
//
//	y := matrix.Mul(a, x).AddCol(matrix.Column(0.5, 0.5))
//	fmt.Print(y)
//
// # Errors
//
// Mismatched shapes and out-of-range indices are programmer errors and
// panic. The panic value is an error wrapping ErrShape, ErrBounds or
// ErrNotColumn.
//
// # gonum Interop
//
// Matrix.Dense and FromDense convert to and from gonum's mat package for
// anything beyond what this package offers.
package matrix
