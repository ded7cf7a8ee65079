package optim

import (
	"math"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule, with g the batch-averaged gradient:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * g
//	v_t = beta2 * v_{t-1} + (1-beta2) * g²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Moments are kept per parameter and created on first use.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	adam := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	network.TrainWith(500, examples, adam)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int                              // Timestep for bias correction
	m     map[*nn.Parameter]*matrix.Matrix // First moment estimates
	v     map[*nn.Parameter]*matrix.Matrix // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset hyperparameters with
// their defaults.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     make(map[*nn.Parameter]*matrix.Matrix),
		v:     make(map[*nn.Parameter]*matrix.Matrix),
	}
}

// Step performs one Adam update on every parameter.
func (a *Adam) Step(params []*nn.Parameter, batchSize int) {
	if batchSize <= 0 {
		return
	}
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, param := range params {
		rows, cols := param.Value().Rows(), param.Value().Cols()
		m, ok := a.m[param]
		if !ok {
			m = matrix.New(rows, cols)
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = matrix.New(rows, cols)
			a.v[param] = v
		}

		a.updateParameter(param, meanGradient(param, batchSize), m, v, biasCorrection1, biasCorrection2)
	}
}

func (a *Adam) updateParameter(
	param *nn.Parameter,
	grad, m, v *matrix.Matrix,
	biasCorrection1, biasCorrection2 float64,
) {
	gradData := grad.Data()
	mData := m.Data()
	vData := v.Data()
	paramData := param.Value().Data()

	for i := range paramData {
		g := gradData[i]

		mData[i] = a.beta1*mData[i] + (1.0-a.beta1)*g
		vData[i] = a.beta2*vData[i] + (1.0-a.beta2)*g*g

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2

		paramData[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken so far.
func (a *Adam) GetTimestep() int {
	return a.t
}
