// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides update rules for training networks built with
// package nn.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Network.Train performs plain SGD by itself. An optimizer is used through
// Network.TrainWith, which accumulates the batch gradients exactly like
// Train and then calls Step once per iteration.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/densenet/nn"
//	    "github.com/born-ml/densenet/optim"
//	)
//
//	func main() {
//	    network := nn.MustDefine(cfg)
//
//	    optimizer := optim.NewAdam(optim.AdamConfig{
//	        LR:    0.01,
//	        Betas: [2]float64{0.9, 0.999},
//	    })
//
//	    network.TrainWith(500, examples, optimizer)
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.5,
//	    Momentum: 0.9,
//	})
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
//
// # Learning Rate Schedules
//
// Every Optimizer exposes GetLR and SetLR, so a schedule can run between
// TrainWith calls:
//
//	for epoch := range 10 {
//	    network.TrainWith(100, examples, optimizer)
//	    optimizer.SetLR(optimizer.GetLR() * 0.5)
//	}
package optim
