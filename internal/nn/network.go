package nn

import (
	"log/slog"

	"github.com/born-ml/densenet/internal/matrix"
)

// outputRule selects how the output-layer error is computed.
type outputRule uint8

const (
	// ruleGeneric is act'(z_last) ⊙ dcost(a_last, target).
	ruleGeneric outputRule = iota
	// ruleFusedSoftmaxCrossEntropy is a_last − target, the closed form of
	// softmax followed by cross-entropy.
	ruleFusedSoftmaxCrossEntropy
)

func (r outputRule) String() string {
	if r == ruleFusedSoftmaxCrossEntropy {
		return "fused-softmax-cross-entropy"
	}
	return "generic"
}

// Network is a stack of fully connected layers trained by mini-batch SGD.
//
// The network owns every buffer it computes into: pre-activations, activations
// and per-layer gradients are overwritten on each Forward/Backward call.
// Callers that keep a returned matrix across calls must Clone it.
//
// A Network is not safe for concurrent use.
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
//	if err != nil {
//	    return err
//	}
//	network.Train(50, examples, 3.35)
//	class := network.Predict(input)
type Network struct {
	layers      []Layer
	zValues     []*matrix.Matrix // len(layers)+1; [0] holds the last input
	activations []*matrix.Matrix // len(layers)+1; [0] holds the last input
	deltas      []LayerParams    // per-example gradients, one per layer
	params      []*Parameter     // 0.weight, 0.bias, 1.weight, ...
	cost        Cost
	rule        outputRule
	logger      *slog.Logger
}

// Forward propagates input through every layer and returns the output
// activation.
//
// input is copied into the network. For each layer l:
//
//	z[l] = W[l-1]·a[l-1] + b[l-1]
//	a[l] = act[l-1](z[l])
//
// The returned matrix is owned by the network and overwritten by the next
// call. Panics with matrix.ErrShape if input is not a column vector of the
// first layer's width.
func (n *Network) Forward(input *matrix.Matrix) *matrix.Matrix {
	n.activations[0].CopyFrom(input)
	n.zValues[0].CopyFrom(input)

	for l := 1; l < len(n.zValues); l++ {
		layer := &n.layers[l-1]
		z := matrix.MulInto(n.zValues[l], layer.Params.Weights, n.activations[l-1])
		z.AddCol(layer.Params.Bias)
		n.activations[l].CopyFrom(layer.Activate(z))
	}

	return n.output()
}

// Predict returns Argmax(Forward(input)).
func (n *Network) Predict(input *matrix.Matrix) int {
	return Argmax(n.Forward(input))
}

// Backward computes the per-layer weight and bias gradients for target,
// back to front, into the buffers returned by Gradients.
//
// It reads the pre-activations and activations of the immediately
// preceding Forward call; calling it without a Forward on the matching
// input yields stale gradients. This is not checked.
func (n *Network) Backward(target *matrix.Matrix) {
	l := len(n.layers) - 1
	grad := n.outputError(target)
	n.storeDelta(l, grad)

	for l--; l >= 0; l-- {
		back := matrix.TMul(n.layers[l+1].Params.Weights, grad)
		grad = matrix.Hadamard(n.layers[l].Derivative(n.zValues[l+1]), back)
		n.storeDelta(l, grad)
	}
}

// outputError returns the error of the output layer's pre-activation.
func (n *Network) outputError(target *matrix.Matrix) *matrix.Matrix {
	if n.rule == ruleFusedSoftmaxCrossEntropy {
		return matrix.Sub(n.output(), target)
	}

	last := &n.layers[len(n.layers)-1]
	dcost := costTable[n.cost].grad(n.output(), target)
	return matrix.Hadamard(last.Derivative(n.zValues[len(n.zValues)-1]), dcost)
}

// storeDelta records grad as layer l's bias gradient and grad·a[l]ᵀ as its
// weight gradient.
func (n *Network) storeDelta(l int, grad *matrix.Matrix) {
	n.deltas[l].Bias.CopyFrom(grad)
	matrix.MulTInto(n.deltas[l].Weights, grad, n.activations[l])
}

func (n *Network) output() *matrix.Matrix {
	return n.activations[len(n.activations)-1]
}

// Cost evaluates the configured cost of the last Forward output against
// target.
func (n *Network) Cost(target *matrix.Matrix) float64 {
	return costTable[n.cost].loss(n.output(), target)
}

// Layers returns the network's layers. The slice is shared: changing a
// layer's parameters changes the network.
func (n *Network) Layers() []Layer {
	return n.layers
}

// Parameters returns every trainable parameter in layer order
// (0.weight, 0.bias, 1.weight, 1.bias, ...).
func (n *Network) Parameters() []*Parameter {
	return n.params
}

// Gradients returns the per-layer gradients of the last Backward call.
// The buffers are owned by the network.
func (n *Network) Gradients() []LayerParams {
	return n.deltas
}

// CostKind returns the cost the network was built with.
func (n *Network) CostKind() Cost {
	return n.cost
}
