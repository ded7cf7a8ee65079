package matrix

import "gonum.org/v1/gonum/mat"

// Dense returns a copy of m as a gonum *mat.Dense.
// An empty matrix yields nil: gonum rejects zero dimensions.
func (m *Matrix) Dense() *mat.Dense {
	if len(m.data) == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense copies any gonum matrix into a new Matrix.
func FromDense(d mat.Matrix) *Matrix {
	r, c := d.Dims()
	out := New(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = d.At(i, j)
		}
	}
	return out
}
