package lipschitz_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

func mustTensor(t testing.TB, shape []int, data []float64) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(shape, data)
	require.NoError(t, err)

	return x
}

func randTensor(t testing.TB, seed int64, shape ...int) *tensor.Tensor {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mustTensor(t, shape, data)
}

func mustDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return d
}

// rotation returns the 2×2 rotation by theta radians.
func rotation(t testing.TB, theta float64) *matrix.Dense {
	c, s := math.Cos(theta), math.Sin(theta)

	return mustDense(t, 2, 2, []float64{c, -s, s, c})
}

func mul(t testing.TB, ms ...matrix.Matrix) matrix.Matrix {
	t.Helper()
	out := ms[0]
	for _, m := range ms[1:] {
		var err error
		out, err = matrix.Mul(out, m)
		require.NoError(t, err)
	}

	return out
}

// toGonum copies any matrix.Matrix into gonum storage.
func toGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			g.Set(i, j, v)
		}
	}

	return g
}

// singularValues is the reference oracle (gonum SVD), descending.
func singularValues(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	var svd mat.SVD
	require.True(t, svd.Factorize(toGonum(t, m), mat.SVDNone))

	return svd.Values(nil)
}

func rowNorm(t testing.TB, m matrix.Matrix) float64 {
	t.Helper()
	require.Equal(t, 1, m.Rows())
	var sq float64
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(0, j)
		require.NoError(t, err)
		sq += v * v
	}

	return math.Sqrt(sq)
}

func values(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}

func requireMatrixClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	require.InDeltaSlice(t, values(t, want), values(t, got), tol)
}
