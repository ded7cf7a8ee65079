package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomDyadic fills an r×c matrix with small multiples of 1/8 so sums and
// differences stay exact in float64.
func randomDyadic(rng *rand.Rand, r, c int) *matrix.Matrix {
	m := matrix.New(r, c)
	for i := range m.Data() {
		m.Data()[i] = float64(rng.IntN(129)-64) / 8
	}
	return m
}

// randomNormal fills an r×c matrix with N(0, 1) draws.
func randomNormal(rng *rand.Rand, r, c int) *matrix.Matrix {
	m := matrix.New(r, c)
	for i := range m.Data() {
		m.Data()[i] = rng.NormFloat64()
	}
	return m
}

func TestAddSub_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 20; trial++ {
		r, c := 1+rng.IntN(6), 1+rng.IntN(6)
		a := randomDyadic(rng, r, c)
		b := randomDyadic(rng, r, c)

		got := matrix.Sub(matrix.Add(a, b), b)
		require.True(t, matrix.Equal(a, got), "(A+B)-B != A for %dx%d", r, c)
	}
}

func TestAdd_DoesNotMutateOperands(t *testing.T) {
	a := matrix.MustFromSlice(2, []float64{1, 2, 3, 4})
	b := matrix.MustFromSlice(2, []float64{10, 20, 30, 40})

	sum := matrix.Add(a, b)
	diff := matrix.Sub(a, b)
	scaled := matrix.Scale(a, 2)

	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())
	assert.Equal(t, []float64{-9, -18, -27, -36}, diff.Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, scaled.Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float64{10, 20, 30, 40}, b.Data())
}

func TestInPlaceOps(t *testing.T) {
	m := matrix.MustFromSlice(2, []float64{1, 2, 3, 4})
	m.AddInPlace(matrix.Filled(2, 2, 1)).ScaleInPlace(2).SubInPlace(matrix.Filled(2, 2, 4))
	assert.Equal(t, []float64{0, 2, 4, 6}, m.Data())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := matrix.New(2, 3)
	b := matrix.New(3, 2)

	tests := map[string]func(){
		"Add":        func() { matrix.Add(a, b) },
		"Sub":        func() { matrix.Sub(a, b) },
		"AddInPlace": func() { a.AddInPlace(b) },
		"SubInPlace": func() { a.SubInPlace(b) },
		"Hadamard":   func() { matrix.Hadamard(a, b) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			requirePanicIs(t, matrix.ErrShape, fn)
		})
	}
}

func TestHadamard(t *testing.T) {
	a := matrix.MustFromSlice(2, []float64{1, 2, 3, 4})
	b := matrix.MustFromSlice(2, []float64{-1, 0.5, 2, 0})
	assert.Equal(t, []float64{-1, 1, 6, 0}, matrix.Hadamard(a, b).Data())
}

func TestHadamard_Commutes(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 20; trial++ {
		r, c := 1+rng.IntN(5), 1+rng.IntN(5)
		a := randomNormal(rng, r, c)
		b := randomNormal(rng, r, c)
		assert.True(t, matrix.Equal(matrix.Hadamard(a, b), matrix.Hadamard(b, a)))
	}
}

func TestTranspose(t *testing.T) {
	a := matrix.MustFromSlice(3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	tr := matrix.Transpose(a)

	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.True(t, matrix.Equal(a, matrix.Transpose(tr)))
}

func TestAddCol(t *testing.T) {
	m := matrix.MustFromSlice(3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	m.AddCol(matrix.Column(10, -1))
	assert.Equal(t, []float64{11, 12, 13, 3, 4, 5}, m.Data())
}

func TestAddCol_Errors(t *testing.T) {
	m := matrix.New(2, 3)

	t.Run("multi-column", func(t *testing.T) {
		requirePanicIs(t, matrix.ErrNotColumn, func() { m.AddCol(matrix.New(2, 2)) })
		requirePanicIs(t, matrix.ErrShape, func() { m.AddCol(matrix.New(2, 2)) })
	})
	t.Run("row mismatch", func(t *testing.T) {
		requirePanicIs(t, matrix.ErrShape, func() { m.AddCol(matrix.Column(1, 2, 3)) })
	})
}

func TestApply(t *testing.T) {
	a := matrix.Column(1, -2, 3)
	got := matrix.Apply(a, func(v float64) float64 { return v * v })
	assert.Equal(t, []float64{1, 4, 9}, got.Data())
	assert.Equal(t, []float64{1, -2, 3}, a.Data())
}
