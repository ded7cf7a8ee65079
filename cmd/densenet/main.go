// Package main provides the densenet CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/born-ml/densenet/internal/decoder"
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/optim"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "densenet %s\n", version)
		return nil
	case "decode":
		return runTask(args[0], args[1:], stdout, stderr, decoder.SoftmaxLayers(), nn.CostCrossEntropy,
			decoder.SoftmaxIterations, decoder.SoftmaxEta)
	case "race":
		return runTask(args[0], args[1:], stdout, stderr, decoder.SigmoidLayers(), nn.CostSquaredError,
			decoder.SigmoidIterations, decoder.SigmoidEta)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "densenet - feed-forward networks on dense matrices")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  decode     Train the 4-8-16 softmax decoder and print its outputs")
	fmt.Fprintln(w, "  race       Time the 4-8-30-16-16 sigmoid decoder")
}

// runTask trains a decoder network with the given defaults, overridable by
// flags, and reports its outputs.
func runTask(name string, args []string, stdout, stderr io.Writer,
	layers []nn.LayerDef, cost nn.Cost, iterations int, eta float64,
) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&iterations, "iterations", iterations, "Number of training iterations")
	fs.Float64Var(&eta, "eta", eta, "Learning rate")
	seed := fs.Uint64("seed", 0, "Weight initialization seed (0 = random)")
	optimizer := fs.String("optim", "", "Optimizer: empty for plain SGD, sgd-momentum or adam")
	verbose := fs.Bool("v", false, "Log per-iteration cost")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	cfg := nn.Config{
		Layers: layers,
		Cost:   cost,
		Output: nn.OutputDistribution,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	if *seed != 0 {
		cfg.Source = rand.NewPCG(*seed, *seed)
	}

	network, err := nn.Define(cfg)
	if err != nil {
		return fmt.Errorf("failed to define network: %w", err)
	}

	examples := decoder.Examples()
	start := time.Now()
	switch *optimizer {
	case "":
		network.Train(iterations, examples, eta)
	case "sgd-momentum":
		network.TrainWith(iterations, examples, optim.NewSGD(optim.SGDConfig{LR: eta, Momentum: 0.9}))
	case "adam":
		network.TrainWith(iterations, examples, optim.NewAdam(optim.AdamConfig{LR: eta}))
	default:
		return fmt.Errorf("unknown optimizer %q", *optimizer)
	}
	fmt.Fprintf(stdout, "Training done in %d us\n", time.Since(start).Microseconds())

	correct, err := decoder.Report(stdout, network)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Decoded %d/%d inputs\n", correct, decoder.Classes)
	return nil
}
