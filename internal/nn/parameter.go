package nn

import "github.com/born-ml/densenet/internal/matrix"

// Parameter is a trainable matrix of a network together with its batch
// gradient accumulator.
//
// The value aliases the layer's weights or bias, so optimizers update the
// network in place through it.
//
// Example:
//
//	for _, p := range network.Parameters() {
//	    fmt.Println(p.Name(), p.Value().Rows(), p.Value().Cols())
//	}
type Parameter struct {
	name  string         // e.g. "0.weight", "1.bias"
	value *matrix.Matrix // the parameter itself (shared with the layer)
	grad  *matrix.Matrix // summed gradient over the current batch
}

// NewParameter creates a parameter over value with a zeroed gradient of
// the same shape.
//
// Parameters:
//   - name: Descriptive name (e.g., "0.weight")
//   - value: The initialized matrix; it is not copied
//
// Returns a new Parameter.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
		grad:  matrix.New(value.Rows(), value.Cols()),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Grad returns the gradient accumulator.
//
// After a training batch it holds the sum of per-example gradients; divide
// by the batch size for the mean.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// ZeroGrad resets the gradient accumulator to zero.
func (p *Parameter) ZeroGrad() {
	p.grad.Zero()
}
