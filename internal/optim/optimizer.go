// Package optim implements update rules for training a network.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Network.Train already performs plain SGD on its own; optimizers plug in
// through Network.TrainWith, which hands them the summed batch gradients.
//
// Example usage:
//
//	network := nn.MustDefine(cfg)
//	adam := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	network.TrainWith(500, examples, adam)
package optim

import (
	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply the batch update to parameters (see nn.Optimizer)
//   - GetLR / SetLR: Read and change the learning rate
type Optimizer interface {
	nn.Optimizer

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, e.g. for scheduling.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// meanGradient returns the batch-averaged gradient of param.
func meanGradient(param *nn.Parameter, batchSize int) *matrix.Matrix {
	return matrix.Scale(param.Grad(), 1/float64(batchSize))
}
