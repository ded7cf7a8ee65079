package nn

import (
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/matrix"
)

// LayerParams holds the affine parameters of one layer transition.
//
// Weights has shape [out, in] and Bias has shape [out, 1], so a layer maps a
// column vector x to Weights·x + Bias.
type LayerParams struct {
	Weights *matrix.Matrix
	Bias    *matrix.Matrix
}

// NewLayerParams allocates zeroed parameters for an in → out transition.
func NewLayerParams(in, out int) LayerParams {
	return LayerParams{
		Weights: matrix.New(out, in),
		Bias:    matrix.New(out, 1),
	}
}

// Clone returns a deep copy of p.
func (p LayerParams) Clone() LayerParams {
	return LayerParams{Weights: p.Weights.Clone(), Bias: p.Bias.Clone()}
}

// Layer is one fully connected transition: an affine transform followed by
// an activation.
//
// Example:
//
//	layer := nn.NewLayer(4, 8, nn.ActReLU, nil)
//	z := matrix.Mul(layer.Params.Weights, x).AddCol(layer.Params.Bias)
//	a := layer.Activate(z)
type Layer struct {
	Params     LayerParams
	Activation Activation
}

// NewLayer creates an in → out layer whose weights and bias are drawn with
// GlorotNormal from src (nil means the global source).
func NewLayer(in, out int, act Activation, src rand.Source) Layer {
	params := NewLayerParams(in, out)
	GlorotNormal(params.Weights, in, out, src)
	GlorotNormal(params.Bias, in, out, src)

	return Layer{Params: params, Activation: act}
}

// InFeatures returns the width of the layer's input.
func (l *Layer) InFeatures() int {
	return l.Params.Weights.Cols()
}

// OutFeatures returns the width of the layer's output.
func (l *Layer) OutFeatures() int {
	return l.Params.Weights.Rows()
}

// Activate applies the layer's activation to the pre-activation z.
func (l *Layer) Activate(z *matrix.Matrix) *matrix.Matrix {
	return activationTable[l.Activation].forward(z)
}

// Derivative evaluates the activation derivative at the pre-activation z.
func (l *Layer) Derivative(z *matrix.Matrix) *matrix.Matrix {
	return activationTable[l.Activation].derivative(z)
}
