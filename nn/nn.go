// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
)

// Network is a stack of fully connected layers trained by mini-batch SGD.
type Network = nn.Network

// Example pairs one input column with its target column.
type Example = nn.Example

// Optimizer applies a batch update to parameters; see Network.TrainWith.
type Optimizer = nn.Optimizer

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter wraps value as a trainable parameter with a zeroed gradient.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return nn.NewParameter(name, value)
}

// Building networks

// Config holds the configuration for Define.
type Config = nn.Config

// LayerDef declares one layer width and the activation feeding into it.
type LayerDef = nn.LayerDef

// Output describes what the network output represents.
type Output = nn.Output

// Output kinds.
const (
	OutputDistribution = nn.OutputDistribution
	OutputGeneral      = nn.OutputGeneral
)

// ErrPrecondition is wrapped by every error Define returns.
var ErrPrecondition = nn.ErrPrecondition

// Define validates cfg and builds a randomly initialized Network.
//
// Example:
//
//	network, err := nn.Define(nn.Config{
//	    Layers: []nn.LayerDef{
//	        {Nodes: 4},
//	        {Nodes: 8, Activation: nn.ActReLU},
//	        {Nodes: 16, Activation: nn.ActSoftmax},
//	    },
//	    Cost:   nn.CostCrossEntropy,
//	    Output: nn.OutputDistribution,
//	})
func Define(cfg Config) (*Network, error) {
	return nn.Define(cfg)
}

// MustDefine is like Define but panics on error.
func MustDefine(cfg Config) *Network {
	return nn.MustDefine(cfg)
}

// Layers

// Layer is one fully connected transition followed by an activation.
type Layer = nn.Layer

// LayerParams holds the weights and bias of one layer.
type LayerParams = nn.LayerParams

// NewLayer creates an in → out layer with Glorot-normal weights and bias.
// A nil src draws from the global math/rand/v2 source.
func NewLayer(in, out int, act Activation, src rand.Source) Layer {
	return nn.NewLayer(in, out, act, src)
}

// GlorotNormal fills m with samples from N(0, sqrt(2/(fanIn+fanOut))).
func GlorotNormal(m *matrix.Matrix, fanIn, fanOut int, src rand.Source) {
	nn.GlorotNormal(m, fanIn, fanOut, src)
}

// Activations

// Activation selects an elementwise (or softmax) nonlinearity.
type Activation = nn.Activation

// Activation kinds.
const (
	ActNone    = nn.ActNone
	ActSigmoid = nn.ActSigmoid
	ActReLU    = nn.ActReLU
	ActSoftmax = nn.ActSoftmax
)

// Sigmoid returns 1/(1+e^-x) elementwise.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix { return nn.Sigmoid(m) }

// SigmoidPrime returns σ(x)(1−σ(x)) elementwise, taking the pre-activation.
func SigmoidPrime(m *matrix.Matrix) *matrix.Matrix { return nn.SigmoidPrime(m) }

// ReLU returns max(0, x) elementwise.
func ReLU(m *matrix.Matrix) *matrix.Matrix { return nn.ReLU(m) }

// ReLUPrime returns 1 where x > 0 and 0 elsewhere.
func ReLUPrime(m *matrix.Matrix) *matrix.Matrix { return nn.ReLUPrime(m) }

// Softmax returns the numerically stable softmax of a column vector.
func Softmax(m *matrix.Matrix) *matrix.Matrix { return nn.Softmax(m) }

// Argmax returns the row index of the largest entry of a column vector.
// Ties resolve to the last maximal index.
func Argmax(m *matrix.Matrix) int { return nn.Argmax(m) }

// Costs

// Cost selects the cost function a network is trained against.
type Cost = nn.Cost

// Cost kinds.
const (
	CostSquaredError = nn.CostSquaredError
	CostCrossEntropy = nn.CostCrossEntropy
)

// SquaredError returns Σ(pred−target)².
func SquaredError(pred, target *matrix.Matrix) float64 { return nn.SquaredError(pred, target) }

// CrossEntropy returns −Σ target·ln(max(pred, 1e-9)).
func CrossEntropy(pred, target *matrix.Matrix) float64 { return nn.CrossEntropy(pred, target) }
