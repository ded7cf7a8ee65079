package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/densenet/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// Activation selects the nonlinearity applied after a layer's affine
// transform.
type Activation uint8

const (
	// ActNone applies no nonlinearity (identity). On the first LayerDef it
	// only marks the input width.
	ActNone Activation = iota
	// ActSigmoid applies σ(x) = 1 / (1 + e^-x) elementwise.
	ActSigmoid
	// ActReLU applies max(x, 0) elementwise.
	ActReLU
	// ActSoftmax normalizes a column vector into a distribution.
	// Only valid on the output layer with CostCrossEntropy and
	// OutputDistribution.
	ActSoftmax
)

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case ActNone:
		return "none"
	case ActSigmoid:
		return "sigmoid"
	case ActReLU:
		return "relu"
	case ActSoftmax:
		return "softmax"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

func (a Activation) valid() bool { return a <= ActSoftmax }

type matrixFunc func(*matrix.Matrix) *matrix.Matrix

// activationPair is a forward function and its derivative, both taking the
// pre-activation values z.
type activationPair struct {
	forward    matrixFunc
	derivative matrixFunc
}

var activationTable = [...]activationPair{
	ActNone:    {forward: Identity, derivative: identityPrime},
	ActSigmoid: {forward: Sigmoid, derivative: SigmoidPrime},
	ActReLU:    {forward: ReLU, derivative: ReLUPrime},
	ActSoftmax: {forward: Softmax, derivative: softmaxPrime},
}

// Identity returns a copy of m.
func Identity(m *matrix.Matrix) *matrix.Matrix {
	return m.Clone()
}

func identityPrime(m *matrix.Matrix) *matrix.Matrix {
	return matrix.Filled(m.Rows(), m.Cols(), 1)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Sigmoid applies σ(x) = 1 / (1 + e^-x) elementwise.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix {
	return matrix.Apply(m, sigmoid)
}

// SigmoidPrime returns σ(x)·(1−σ(x)) elementwise, where x is the
// pre-activation input (not the sigmoid output).
func SigmoidPrime(m *matrix.Matrix) *matrix.Matrix {
	return matrix.Apply(m, func(x float64) float64 {
		s := sigmoid(x)
		return s * (1 - s)
	})
}

// ReLU applies max(x, 0) elementwise.
func ReLU(m *matrix.Matrix) *matrix.Matrix {
	return matrix.Apply(m, func(x float64) float64 {
		return math.Max(x, 0)
	})
}

// ReLUPrime returns 1 where x > 0 and 0 elsewhere, including at 0.
func ReLUPrime(m *matrix.Matrix) *matrix.Matrix {
	return matrix.Apply(m, func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// Softmax normalizes a column vector: exp(vᵢ − max) / Σ exp(vⱼ − max).
//
// Subtracting the maximum keeps exp from overflowing and makes the result
// invariant to adding a constant to every entry.
//
// Panics with ErrPrecondition if m has more than one column.
func Softmax(m *matrix.Matrix) *matrix.Matrix {
	requireColumn("Softmax", m)
	out := matrix.New(m.Rows(), 1)
	if m.Size() == 0 {
		return out
	}

	in, res := m.Data(), out.Data()
	maxVal := floats.Max(in)
	sum := 0.0
	for i, v := range in {
		res[i] = math.Exp(v - maxVal)
		sum += res[i]
	}
	for i := range res {
		res[i] /= sum
	}
	return out
}

// softmaxPrime is never evaluated: a softmax output layer always uses the
// fused softmax+cross-entropy error, which bypasses the derivative.
func softmaxPrime(m *matrix.Matrix) *matrix.Matrix {
	return m.Clone()
}

// Argmax returns the index of the largest entry of a column vector.
//
// Entries are compared with >=, so among exactly equal maxima the last one
// wins: Argmax of [1, 3, 3, 2] is 2. An empty vector yields 0.
//
// Panics with ErrPrecondition if m has more than one column.
func Argmax(m *matrix.Matrix) int {
	requireColumn("Argmax", m)
	best := math.Inf(-1)
	idx := 0
	for i, v := range m.Data() {
		if v >= best {
			best = v
			idx = i
		}
	}
	return idx
}

func requireColumn(op string, m *matrix.Matrix) {
	if !m.IsColumn() {
		panic(fmt.Errorf("nn: %s on %dx%d matrix: %w: %w",
			op, m.Rows(), m.Cols(), ErrPrecondition, matrix.ErrNotColumn))
	}
}
