package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/densenet/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// crossEntropyEps keeps cross-entropy away from log(0) and division by zero.
const crossEntropyEps = 1e-9

// Cost selects the scalar loss minimized during training.
type Cost uint8

const (
	// CostSquaredError is Σ (pred − target)².
	CostSquaredError Cost = iota
	// CostCrossEntropy is −Σ target·ln(pred), for distribution outputs.
	CostCrossEntropy
)

// String returns the cost name.
func (c Cost) String() string {
	switch c {
	case CostSquaredError:
		return "squared-error"
	case CostCrossEntropy:
		return "cross-entropy"
	default:
		return fmt.Sprintf("Cost(%d)", uint8(c))
	}
}

func (c Cost) valid() bool { return c <= CostCrossEntropy }

// costPair is a loss and its gradient with respect to the prediction.
type costPair struct {
	loss func(pred, target *matrix.Matrix) float64
	grad func(pred, target *matrix.Matrix) *matrix.Matrix
}

var costTable = [...]costPair{
	CostSquaredError: {loss: SquaredError, grad: SquaredErrorGrad},
	CostCrossEntropy: {loss: CrossEntropy, grad: CrossEntropyGrad},
}

// SquaredError computes Σ (predᵢ − targetᵢ)².
//
// Panics with matrix.ErrShape if the shapes differ.
func SquaredError(pred, target *matrix.Matrix) float64 {
	diff := matrix.Sub(pred, target).Data()
	return floats.Dot(diff, diff)
}

// SquaredErrorGrad returns 2·(pred − target).
func SquaredErrorGrad(pred, target *matrix.Matrix) *matrix.Matrix {
	return matrix.Sub(pred, target).ScaleInPlace(2)
}

// CrossEntropy computes −Σ targetᵢ·ln(predᵢ) over two column vectors of
// equal length. Predictions below 1e-9 are clamped before the log.
//
// With a one-hot target this is −ln(pred[hot]).
//
// Panics with ErrPrecondition if either operand has more than one column,
// and with matrix.ErrShape if their lengths differ.
func CrossEntropy(pred, target *matrix.Matrix) float64 {
	requireColumnPair("CrossEntropy", pred, target)

	t := target.Data()
	sum := 0.0
	for i, p := range pred.Data() {
		sum -= t[i] * math.Log(math.Max(p, crossEntropyEps))
	}
	return sum
}

// CrossEntropyGrad returns −targetᵢ / (predᵢ + 1e-9) elementwise.
func CrossEntropyGrad(pred, target *matrix.Matrix) *matrix.Matrix {
	requireColumnPair("CrossEntropyGrad", pred, target)

	out := matrix.New(pred.Rows(), 1)
	res, t := out.Data(), target.Data()
	for i, p := range pred.Data() {
		res[i] = -t[i] / (p + crossEntropyEps)
	}
	return out
}

func requireColumnPair(op string, pred, target *matrix.Matrix) {
	requireColumn(op, pred)
	requireColumn(op, target)
	if pred.Rows() != target.Rows() {
		panic(fmt.Errorf("nn: %s of %d and %d entries: %w", op, pred.Rows(), target.Rows(), matrix.ErrShape))
	}
}
