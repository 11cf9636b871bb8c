package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lipnorm/matrix"
)

func TestDense_StringAndShape(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, 3, 4})
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
	r, c := m.Shape()
	require.Equal(t, [2]int{2, 2}, [2]int{r, c})
}

func TestValidators(t *testing.T) {
	wide := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateShape(wide, 2, 3))
	require.ErrorIs(t, matrix.ValidateShape(wide, 3, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 3, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, wide), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateFinite(wide))

	MustSet(t, wide, 1, 2, math.Inf(-1))
	require.ErrorIs(t, matrix.ValidateFinite(hide{wide}), matrix.ErrNaNInf)
}
