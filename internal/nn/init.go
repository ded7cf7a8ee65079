package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// GlorotNormal fills m with draws from N(0, sqrt(2 / (fanIn + fanOut))).
//
// A nil src draws from the global math/rand/v2 source.
//
// Parameters:
//   - m: Matrix to fill in place
//   - fanIn: Number of input units of the layer
//   - fanOut: Number of output units of the layer
//   - src: Random source
func GlorotNormal(m *matrix.Matrix, fanIn, fanOut int, src rand.Source) {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(2.0 / float64(fanIn+fanOut)),
		Src:   src,
	}

	data := m.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
}
