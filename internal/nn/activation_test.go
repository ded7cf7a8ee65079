package nn

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicIs runs fn and checks that it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

func TestSigmoid(t *testing.T) {
	in := matrix.Column(-2, 0, 3)
	out := Sigmoid(in)

	for i, x := range in.Data() {
		assert.InDelta(t, 1/(1+math.Exp(-x)), out.Data()[i], 1e-15)
	}
	assert.Equal(t, 0.5, out.At(1, 0))
}

func TestSigmoidPrime_TakesInput(t *testing.T) {
	in := matrix.Column(-1, 0, 2)
	got := SigmoidPrime(in)

	assert.Equal(t, 0.25, got.At(1, 0))
	for i, x := range in.Data() {
		s := 1 / (1 + math.Exp(-x))
		assert.InDelta(t, s*(1-s), got.Data()[i], 1e-15)
	}
}

func TestReLU(t *testing.T) {
	in := matrix.MustFromSlice(2, []float64{-1, 0, 0.5, 3})
	assert.Equal(t, []float64{0, 0, 0.5, 3}, ReLU(in).Data())
	assert.Equal(t, []float64{0, 0, 1, 1}, ReLUPrime(in).Data(), "derivative at 0 is 0")
}

func TestIdentity(t *testing.T) {
	in := matrix.Column(-1, 2)
	out := Identity(in)
	assert.True(t, matrix.Equal(in, out))

	out.Set(0, 0, 5)
	assert.Equal(t, -1.0, in.At(0, 0))
	assert.Equal(t, []float64{1, 1}, identityPrime(in).Data())
}

func TestSoftmax_SumsToOne(t *testing.T) {
	tests := []*matrix.Matrix{
		matrix.Column(1, 2, 3),
		matrix.Column(-5, 0, 5, 10),
		matrix.Column(1000, 1001, 1002), // would overflow without max subtraction
		matrix.Column(7),
	}

	for _, in := range tests {
		out := Softmax(in)
		sum := 0.0
		for _, v := range out.Data() {
			assert.True(t, v > 0 && v <= 1, "softmax entry %v out of (0, 1]", v)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestSoftmax_ShiftInvariant(t *testing.T) {
	in := matrix.Column(0.5, -1.25, 2, 0)
	shifted := matrix.Apply(in, func(v float64) float64 { return v + 37 })

	assert.InDeltaSlice(t, Softmax(in).Data(), Softmax(shifted).Data(), 1e-12)
}

func TestSoftmax_Known(t *testing.T) {
	out := Softmax(matrix.Column(0, math.Log(3)))
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, out.Data(), 1e-12)
}

func TestSoftmax_Empty(t *testing.T) {
	assert.Equal(t, 0, Softmax(matrix.New(0, 1)).Size())
}

func TestColumnOnlyFunctions_Panic(t *testing.T) {
	wide := matrix.New(3, 2)
	col := matrix.Column(1, 2, 3)

	tests := map[string]func(){
		"Softmax":          func() { Softmax(wide) },
		"Argmax":           func() { Argmax(wide) },
		"CrossEntropy":     func() { CrossEntropy(wide, col) },
		"CrossEntropyGrad": func() { CrossEntropyGrad(col, wide) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			requirePanicIs(t, ErrPrecondition, fn)
			requirePanicIs(t, matrix.ErrNotColumn, fn)
		})
	}
}

func TestArgmax(t *testing.T) {
	tests := []struct {
		name string
		in   *matrix.Matrix
		want int
	}{
		{"single", matrix.Column(4), 0},
		{"first", matrix.Column(9, 1, 2), 0},
		{"last", matrix.Column(-3, -2, -1), 2},
		{"tie takes last", matrix.Column(1, 3, 3, 2), 2},
		{"all equal", matrix.Column(5, 5, 5), 2},
		{"negative infinity", matrix.Column(math.Inf(-1), math.Inf(-1)), 1},
		{"empty", matrix.New(0, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Argmax(tt.in))
		})
	}
}

func TestActivation_String(t *testing.T) {
	assert.Equal(t, "none", ActNone.String())
	assert.Equal(t, "sigmoid", ActSigmoid.String())
	assert.Equal(t, "relu", ActReLU.String())
	assert.Equal(t, "softmax", ActSoftmax.String())
	assert.Equal(t, "Activation(9)", Activation(9).String())
}

func TestLayer_ActivationTable(t *testing.T) {
	z := matrix.Column(-1, 0.5)

	tests := []struct {
		act        Activation
		forward    *matrix.Matrix
		derivative *matrix.Matrix
	}{
		{ActNone, z, matrix.Filled(2, 1, 1)},
		{ActSigmoid, Sigmoid(z), SigmoidPrime(z)},
		{ActReLU, ReLU(z), ReLUPrime(z)},
		{ActSoftmax, Softmax(z), z},
	}

	for _, tt := range tests {
		t.Run(tt.act.String(), func(t *testing.T) {
			layer := Layer{Params: NewLayerParams(2, 2), Activation: tt.act}
			assert.True(t, matrix.Equal(tt.forward, layer.Activate(z)))
			assert.True(t, matrix.Equal(tt.derivative, layer.Derivative(z)))
		})
	}
}
