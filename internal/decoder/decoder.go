// Package decoder builds the 4-bit one-hot decoding task used by the
// example drivers and the CLI.
//
// Input i is its 4-bit binary encoding as a 4×1 column, most significant
// bit first; the target is the 16×1 one-hot column with a 1 at row i.
package decoder

import (
	"fmt"
	"io"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
)

// Bits is the input width; Classes is the output width.
const (
	Bits    = 4
	Classes = 1 << Bits
)

// Training defaults for the two decoder networks.
const (
	SoftmaxIterations = 50
	SoftmaxEta        = 3.35
	SigmoidIterations = 5000
	SigmoidEta        = 0.78
)

// SoftmaxLayers returns the 4-8-16 ReLU/softmax architecture, trained with
// cross-entropy.
func SoftmaxLayers() []nn.LayerDef {
	return []nn.LayerDef{
		{Nodes: Bits},
		{Nodes: 8, Activation: nn.ActReLU},
		{Nodes: Classes, Activation: nn.ActSoftmax},
	}
}

// SigmoidLayers returns the 4-8-30-16-16 ReLU/sigmoid architecture,
// trained with squared error.
func SigmoidLayers() []nn.LayerDef {
	return []nn.LayerDef{
		{Nodes: Bits},
		{Nodes: 8, Activation: nn.ActReLU},
		{Nodes: 30, Activation: nn.ActReLU},
		{Nodes: 16, Activation: nn.ActSigmoid},
		{Nodes: Classes, Activation: nn.ActSigmoid},
	}
}

// Input encodes v as a Bits×1 column of 0/1 values, e.g. 3 -> [0, 0, 1, 1].
func Input(v int) *matrix.Matrix {
	in := matrix.New(Bits, 1)
	for j := Bits - 1; j >= 0; j-- {
		in.Set(Bits-1-j, 0, float64((v>>j)&1))
	}
	return in
}

// Target returns the Classes×1 one-hot column for v.
func Target(v int) *matrix.Matrix {
	out := matrix.New(Classes, 1)
	out.Set(v, 0, 1)
	return out
}

// Examples returns the full training set, ordered 0..Classes-1.
func Examples() []nn.Example {
	examples := make([]nn.Example, 0, Classes)
	for i := 0; i < Classes; i++ {
		examples = append(examples, nn.Example{Input: Input(i), Target: Target(i)})
	}
	return examples
}

// Report decodes every input with network and writes, per input:
//
//	Input = 3
//	Output = [ 0.00, 0.01, ... ]
//	Output argmax = 3
//
// It returns how many inputs decoded to their own value.
func Report(w io.Writer, network *nn.Network) (int, error) {
	correct := 0
	for i := 0; i < Classes; i++ {
		output := network.Forward(Input(i))
		idx := nn.Argmax(output)
		if idx == i {
			correct++
		}

		_, err := fmt.Fprintf(w, "Input = %d\nOutput = %s\nOutput argmax = %d\n",
			i, matrix.FormatRow(matrix.Transpose(output)), idx)
		if err != nil {
			return correct, fmt.Errorf("failed to write report: %w", err)
		}
	}
	return correct, nil
}
