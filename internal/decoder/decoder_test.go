package decoder

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	tests := []struct {
		v    int
		want []float64
	}{
		{0, []float64{0, 0, 0, 0}},
		{3, []float64{0, 0, 1, 1}},
		{8, []float64{1, 0, 0, 0}},
		{15, []float64{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Input(tt.v).Data(), "input %d", tt.v)
	}
}

func TestExamples(t *testing.T) {
	examples := Examples()
	require.Len(t, examples, Classes)

	for i, ex := range examples {
		assert.Equal(t, Bits, ex.Input.Rows())
		assert.Equal(t, Classes, ex.Target.Rows())
		assert.Equal(t, i, nn.Argmax(ex.Target))
		assert.Equal(t, 1.0, ex.Target.At(i, 0))
	}
}

func TestReport(t *testing.T) {
	network := nn.MustDefine(nn.Config{
		Layers: []nn.LayerDef{{Nodes: Bits}, {Nodes: Classes, Activation: nn.ActSigmoid}},
		Source: rand.NewPCG(1, 2),
	})

	var buf bytes.Buffer
	correct, err := Report(&buf, network)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, correct, 0)
	assert.LessOrEqual(t, correct, Classes)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3*Classes)
	assert.Equal(t, "Input = 0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Output = [ "))
	assert.True(t, strings.HasPrefix(lines[2], "Output argmax = "))
	assert.Equal(t, "Input = 15", lines[45])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReport_WriteError(t *testing.T) {
	network := nn.MustDefine(nn.Config{
		Layers: []nn.LayerDef{{Nodes: Bits}, {Nodes: Classes}},
	})

	_, err := Report(failingWriter{}, network)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}

func TestLayers_Define(t *testing.T) {
	tests := []struct {
		name   string
		layers []nn.LayerDef
		cost   nn.Cost
	}{
		{"softmax", SoftmaxLayers(), nn.CostCrossEntropy},
		{"sigmoid", SigmoidLayers(), nn.CostSquaredError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Bits, tt.layers[0].Nodes)
			assert.Equal(t, Classes, tt.layers[len(tt.layers)-1].Nodes)

			_, err := nn.Define(nn.Config{Layers: tt.layers, Cost: tt.cost, Output: nn.OutputDistribution})
			require.NoError(t, err)
		})
	}

	// Each call returns a fresh slice.
	a := SoftmaxLayers()
	a[1].Nodes = 99
	assert.Equal(t, 8, SoftmaxLayers()[1].Nodes)
}
