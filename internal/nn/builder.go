package nn

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/matrix"
)

// Output describes what the network's output vector represents.
type Output uint8

const (
	// OutputDistribution is a probability distribution over classes.
	OutputDistribution Output = iota
	// OutputGeneral is an unconstrained vector.
	OutputGeneral
)

// String returns the output kind name.
func (o Output) String() string {
	switch o {
	case OutputDistribution:
		return "distribution"
	case OutputGeneral:
		return "general"
	default:
		return fmt.Sprintf("Output(%d)", uint8(o))
	}
}

func (o Output) valid() bool { return o <= OutputGeneral }

// LayerDef declares one layer width and the activation feeding into it.
// The activation of the first LayerDef is ignored: it only sets the input
// width.
type LayerDef struct {
	Nodes      int
	Activation Activation
}

// Config holds the configuration for Define.
type Config struct {
	Layers []LayerDef   // At least two: input width first, output last
	Cost   Cost         // Default: CostSquaredError
	Output Output       // Default: OutputDistribution
	Source rand.Source  // Weight initialization source (default: global math/rand/v2)
	Logger *slog.Logger // Default: discard
}

// Define validates cfg and builds a Network with randomly initialized
// parameters.
//
// Each adjacent pair of LayerDefs becomes a Layer whose weights and bias are
// drawn from N(0, sqrt(2/(in+out))). Softmax is only accepted on the last
// layer with CostCrossEntropy and OutputDistribution; that combination
// switches the output error to the fused form pred − target.
//
// Returns an error wrapping ErrPrecondition when:
//   - fewer than two layers are given
//   - a layer has a non-positive node count
//   - an activation, cost or output kind is unknown
//   - softmax is used anywhere else or with another cost or output kind
func Define(cfg Config) (*Network, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	count := len(cfg.Layers) - 1
	n := &Network{
		layers:      make([]Layer, 0, count),
		zValues:     make([]*matrix.Matrix, 0, count+1),
		activations: make([]*matrix.Matrix, 0, count+1),
		deltas:      make([]LayerParams, 0, count),
		params:      make([]*Parameter, 0, 2*count),
		cost:        cfg.Cost,
		rule:        ruleGeneric,
		logger:      logger,
	}

	input := cfg.Layers[0].Nodes
	n.zValues = append(n.zValues, matrix.New(input, 1))
	n.activations = append(n.activations, matrix.New(input, 1))

	for i := 0; i < count; i++ {
		in, out := cfg.Layers[i].Nodes, cfg.Layers[i+1].Nodes
		act := cfg.Layers[i+1].Activation
		if act == ActSoftmax {
			n.rule = ruleFusedSoftmaxCrossEntropy
		}

		layer := NewLayer(in, out, act, cfg.Source)
		n.layers = append(n.layers, layer)
		n.deltas = append(n.deltas, NewLayerParams(in, out))
		n.zValues = append(n.zValues, matrix.New(out, 1))
		n.activations = append(n.activations, matrix.New(out, 1))
		n.params = append(n.params,
			NewParameter(fmt.Sprintf("%d.weight", i), layer.Params.Weights),
			NewParameter(fmt.Sprintf("%d.bias", i), layer.Params.Bias),
		)
	}

	logger.Debug("network defined",
		slog.Any("layers", cfg.Layers),
		slog.String("cost", cfg.Cost.String()),
		slog.String("output", cfg.Output.String()),
		slog.String("rule", n.rule.String()),
	)

	return n, nil
}

// MustDefine is like Define but panics on error.
func MustDefine(cfg Config) *Network {
	n, err := Define(cfg)
	if err != nil {
		panic(err)
	}
	return n
}

func (cfg *Config) validate() error {
	if len(cfg.Layers) < 2 {
		return fmt.Errorf("nn: at least 2 layers must be specified, got %d: %w", len(cfg.Layers), ErrPrecondition)
	}
	if !cfg.Cost.valid() {
		return fmt.Errorf("nn: unknown cost %v: %w", cfg.Cost, ErrPrecondition)
	}
	if !cfg.Output.valid() {
		return fmt.Errorf("nn: unknown output %v: %w", cfg.Output, ErrPrecondition)
	}

	last := len(cfg.Layers) - 1
	for i, def := range cfg.Layers {
		if def.Nodes <= 0 {
			return fmt.Errorf("nn: layer %d has %d nodes: %w", i, def.Nodes, ErrPrecondition)
		}
		if i == 0 {
			continue
		}
		if !def.Activation.valid() {
			return fmt.Errorf("nn: layer %d: unknown activation %v: %w", i, def.Activation, ErrPrecondition)
		}
		if def.Activation != ActSoftmax {
			continue
		}
		if i != last || cfg.Cost != CostCrossEntropy || cfg.Output != OutputDistribution {
			return fmt.Errorf("nn: softmax is only supported on the output layer with %v cost and %v output (layer %d of %d, %v, %v): %w",
				CostCrossEntropy, OutputDistribution, i, last, cfg.Cost, cfg.Output, ErrPrecondition)
		}
	}

	return nil
}
