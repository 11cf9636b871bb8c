package kernelio_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lipnorm/internal/kernelio"
	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

func TestReadKernel_YAMLAndJSON(t *testing.T) {
	for name, doc := range map[string]string{
		"yaml": "shape: [2, 1, 2]\ndata: [1, 2, 3, 4]\n",
		"json": `{"shape": [2, 1, 2], "data": [1, 2, 3, 4]}`,
	} {
		t.Run(name, func(t *testing.T) {
			k, err := kernelio.ReadKernel(strings.NewReader(doc))
			require.NoError(t, err)
			require.Equal(t, []int{2, 1, 2}, k.Shape())
			require.Equal(t, []float64{1, 2, 3, 4}, k.Data())
		})
	}
}

func TestReadKernel_Invalid(t *testing.T) {
	_, err := kernelio.ReadKernel(strings.NewReader("shape: [2, 2]\ndata: [1, 2, 3]\n"))
	require.ErrorIs(t, err, tensor.ErrSizeMismatch)

	_, err = kernelio.ReadKernel(strings.NewReader("shape: {a: 1}\n"))
	require.Error(t, err)
}

func TestKernelRoundTrip(t *testing.T) {
	k, err := tensor.New([]int{3, 2}, []float64{0.5, -1, 2.25, 3, -4, 1e-9})
	require.NoError(t, err)

	for _, name := range []string{"k.yaml", "k.json"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			require.NoError(t, kernelio.SaveKernel(p, k))
			got, err := kernelio.LoadKernel(p)
			require.NoError(t, err)
			require.Equal(t, k.Shape(), got.Shape())
			require.Equal(t, k.Data(), got.Data())
		})
	}
}

// A zero kernel projects to NaN; both formats must carry that through.
func TestKernelRoundTrip_NonFinite(t *testing.T) {
	k, err := tensor.New([]int{2, 2}, []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1.5})
	require.NoError(t, err)

	for _, name := range []string{"k.yaml", "k.json", "K.JSON"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			require.NoError(t, kernelio.SaveKernel(p, k))
			got, err := kernelio.LoadKernel(p)
			require.NoError(t, err)
			d := got.Data()
			require.True(t, math.IsNaN(d[0]))
			require.True(t, math.IsInf(d[1], 1))
			require.True(t, math.IsInf(d[2], -1))
			require.Equal(t, 1.5, d[3])
			require.ErrorIs(t, kernelio.CheckFinite(got), matrix.ErrNaNInf)
		})
	}
}

func TestSaveKernel_JSONSpelling(t *testing.T) {
	k, err := tensor.New([]int{1, 3}, []float64{math.NaN(), math.Inf(-1), 0.25})
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "k.json")
	require.NoError(t, kernelio.SaveKernel(p, k))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"NaN"`)
	require.Contains(t, string(raw), `"-Inf"`)
	require.Contains(t, string(raw), "0.25")
}

func TestReadKernel_QuotedScalars(t *testing.T) {
	k, err := kernelio.ReadKernel(strings.NewReader(`{"shape": [1, 2], "data": ["+Inf", "nan"]}`))
	require.NoError(t, err)
	require.True(t, math.IsInf(k.Data()[0], 1))
	require.True(t, math.IsNaN(k.Data()[1]))

	_, err = kernelio.ReadKernel(strings.NewReader(`{"shape": [1, 2], "data": ["1.5", 2]}`))
	require.Error(t, err, "quoted finite values are not numbers")
	_, err = kernelio.ReadKernel(strings.NewReader(`{"shape": [1, 1], "data": ["abc"]}`))
	require.Error(t, err)
}

func TestCheckFinite(t *testing.T) {
	k, err := tensor.New([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, kernelio.CheckFinite(k))
	require.ErrorIs(t, kernelio.CheckFinite(nil), tensor.ErrNilTensor)
}

func TestLoadKernel_Missing(t *testing.T) {
	_, err := kernelio.LoadKernel(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "u.yaml")

	u, sigma, found, err := kernelio.LoadState(p)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, u)
	require.Zero(t, sigma)

	row, err := matrix.NewRowVector([]float64{0.6, 0.8})
	require.NoError(t, err)
	require.NoError(t, kernelio.SaveState(p, row, 2.5))

	u, sigma, found, err = kernelio.LoadState(p)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []float64{0.6, 0.8}, u.RawData())
	require.Equal(t, 2.5, sigma)
}

func TestStateRoundTrip_NaNSigmaJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "u.json")
	row, err := matrix.NewRowVector([]float64{math.NaN(), 1})
	require.NoError(t, err)
	require.NoError(t, kernelio.SaveState(p, row, math.NaN()))

	u, sigma, found, err := kernelio.LoadState(p)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, math.IsNaN(sigma))
	require.True(t, math.IsNaN(u.RawData()[0]))
}

func TestSaveState_RejectsNonRow(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	err = kernelio.SaveState(filepath.Join(t.TempDir(), "u.yaml"), m, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	err = kernelio.SaveState(filepath.Join(t.TempDir(), "u.yaml"), nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
