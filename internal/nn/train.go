package nn

import (
	"context"
	"log/slog"

	"github.com/born-ml/densenet/internal/matrix"
)

// Train runs mini-batch gradient descent for the given number of
// iterations.
//
// Each iteration runs Forward and Backward on every example of batch in
// the given order, sums the gradients, then updates every weight and bias:
//
//	param -= sum · (eta / len(batch))
//
// There is no shuffling, momentum or validation of iterations and eta.
// An empty batch leaves the parameters untouched.
//
// Parameters:
//   - iterations: Number of full passes over batch
//   - batch: Training examples
//   - eta: Learning rate
func (n *Network) Train(iterations int, batch []Example, eta float64) {
	for iter := 0; iter < iterations; iter++ {
		n.accumulate(batch)
		if len(batch) == 0 {
			continue
		}

		scale := eta / float64(len(batch))
		for _, p := range n.params {
			p.value.SubInPlace(matrix.Scale(p.grad, scale))
		}
		n.logIteration(iter, batch)
	}
}

// TrainWith is Train with the parameter update delegated to opt.
//
// The accumulation is identical to Train; after each batch opt.Step
// receives the parameters with their summed gradients.
func (n *Network) TrainWith(iterations int, batch []Example, opt Optimizer) {
	for iter := 0; iter < iterations; iter++ {
		n.accumulate(batch)
		if len(batch) == 0 {
			continue
		}

		opt.Step(n.params, len(batch))
		n.logIteration(iter, batch)
	}
}

// accumulate zeroes every gradient accumulator and sums the per-example
// gradients of batch into them.
func (n *Network) accumulate(batch []Example) {
	for _, p := range n.params {
		p.ZeroGrad()
	}

	for _, ex := range batch {
		n.Forward(ex.Input)
		n.Backward(ex.Target)
		for i := range n.deltas {
			n.params[2*i].grad.AddInPlace(n.deltas[i].Weights)
			n.params[2*i+1].grad.AddInPlace(n.deltas[i].Bias)
		}
	}
}

// logIteration reports the cost of the last example's forward pass.
func (n *Network) logIteration(iter int, batch []Example) {
	if !n.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	n.logger.Debug("train iteration",
		slog.Int("iteration", iter),
		slog.Float64("cost", n.Cost(batch[len(batch)-1].Target)),
	)
}
