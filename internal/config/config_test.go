package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lipnorm.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 3, cfg.NiterSpectral)
	require.Equal(t, 10, cfg.NiterSpectralInit)
	require.Equal(t, 15, cfg.NiterBjorck)
	require.Equal(t, 1.0, cfg.AdjustmentCoef)
	require.Equal(t, "native", cfg.Backend)
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, lvl)
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Nil(t, cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	p := writeFile(t, "niter_bjorck: 20\nbackend: gonum\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.NiterBjorck)
	require.Equal(t, 3, cfg.NiterSpectral, "unset keys keep defaults")

	b, err := cfg.ResolveBackend()
	require.NoError(t, err)
	require.Equal(t, backend.NameGonum, b.Name())
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key":     "niter_spectra: 3\n",
		"bad yaml":        "niter_spectral: [\n",
		"zero spectral":   "niter_spectral: 0\n",
		"negative bjorck": "niter_bjorck: -1\n",
		"bad backend":     "backend: cuda\n",
		"bad level":       "log_level: loud\n",
		"nan coef":        "adjustment_coef: .nan\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.Error(t, err)
		})
	}
}

func TestValidate_Sentinel(t *testing.T) {
	cfg := config.Default()
	cfg.NiterSpectralInit = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestLoad_RequireFinite(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "require_finite: true\n"))
	require.NoError(t, err)
	require.True(t, cfg.RequireFinite)
	require.False(t, config.Default().RequireFinite)
}
