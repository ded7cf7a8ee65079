// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fully connected feed-forward networks trained by
// backpropagation and mini-batch gradient descent.
//
// # Overview
//
// This package contains:
//   - Network: forward propagation, backpropagation, Train and TrainWith
//   - Builder: Define / MustDefine from a Config of LayerDefs
//   - Activations: ActNone, ActSigmoid, ActReLU, ActSoftmax
//   - Costs: CostSquaredError, CostCrossEntropy
//   - Initialization: GlorotNormal
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/densenet/matrix"
//	    "github.com/born-ml/densenet/nn"
//	)
//
//	func main() {
//	    network := nn.MustDefine(nn.Config{
//	        Layers: []nn.LayerDef{
//	            {Nodes: 4},
//	            {Nodes: 8, Activation: nn.ActReLU},
//	            {Nodes: 16, Activation: nn.ActSoftmax},
//	        },
//	        Cost:   nn.CostCrossEntropy,
//	        Output: nn.OutputDistribution,
//	    })
//
//	    network.Train(50, examples, 3.35)
//	    class := network.Predict(matrix.Column(1, 0, 1, 1))
//	}
//
// # Layers
//
// Config.Layers lists the width of every layer, input first. Each entry
// after the first also names the activation applied to that layer, so
//
//	[]nn.LayerDef{{Nodes: 4}, {Nodes: 8, Activation: nn.ActReLU}, {Nodes: 2}}
//
// builds a 4→8 ReLU layer followed by an 8→2 identity layer.
//
// # Softmax Output
//
// Softmax is accepted only on the last layer, together with
// CostCrossEntropy and OutputDistribution. The output error then becomes
// prediction − target instead of the generic derivative product.
//
// # Buffers
//
// Forward returns a matrix owned by the network; the next Forward
// overwrites it. Clone it to keep a result.
package nn
