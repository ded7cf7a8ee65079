package optim

import (
	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// With g the summed gradient over a batch of size n:
//
// Update rule without momentum (identical to Network.Train):
//
//	param = param - g * (lr / n)
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + g / n
//	param = param - lr * velocity
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.9})
//	network.TrainWith(1000, examples, sgd)
type SGD struct {
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*matrix.Matrix
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*matrix.Matrix),
	}
}

// Step applies one update to every parameter from its summed gradient.
func (s *SGD) Step(params []*nn.Parameter, batchSize int) {
	if batchSize <= 0 {
		return
	}

	for _, param := range params {
		if s.momentum == 0 {
			param.Value().SubInPlace(matrix.Scale(param.Grad(), s.lr/float64(batchSize)))
			continue
		}
		s.updateWithMomentum(param, batchSize)
	}
}

func (s *SGD) updateWithMomentum(param *nn.Parameter, batchSize int) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = matrix.New(param.Value().Rows(), param.Value().Cols())
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + mean grad
	velocity.ScaleInPlace(s.momentum).AddInPlace(meanGradient(param, batchSize))

	// param -= lr * velocity
	param.Value().SubInPlace(matrix.Scale(velocity, s.lr))
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
