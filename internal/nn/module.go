// Package nn implements the feed-forward network and its training loop.
//
// This package provides:
//   - Activations: Identity, Sigmoid, ReLU, Softmax (+ derivatives), Argmax
//   - Costs: SquaredError, CrossEntropy (+ gradients)
//   - Layer / LayerParams: one affine transform plus an activation
//   - Parameter: a trainable matrix with its batch gradient accumulator
//   - Network: forward propagation, backpropagation, mini-batch SGD
//   - Define: validates a layer specification and builds a Network
//
// Every value flowing through the network is a column vector
// (*matrix.Matrix with one column).
package nn

import "github.com/born-ml/densenet/internal/matrix"

// Example is one training pair.
//
// Input must have as many rows as the first layer, Target as many as the
// last. Both are read only.
type Example struct {
	Input  *matrix.Matrix
	Target *matrix.Matrix
}

// Optimizer applies a parameter update after a batch has been accumulated.
//
// Step receives every parameter of the network with Grad holding the sum
// of per-example gradients over batchSize examples. Implementations update
// Value in place. See package optim for SGD and Adam.
type Optimizer interface {
	Step(params []*Parameter, batchSize int)
}
