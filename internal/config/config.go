// SPDX-License-Identifier: MIT

// Package config loads the lipnorm run configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/lipschitz"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds iteration budgets and runtime selections for the CLI.
type Config struct {
	NiterSpectral     int     `yaml:"niter_spectral"`      // power-iteration steps per projection
	NiterSpectralInit int     `yaml:"niter_spectral_init"` // steps for warmup
	NiterBjorck       int     `yaml:"niter_bjorck"`        // Björck steps per projection
	AdjustmentCoef    float64 `yaml:"adjustment_coef"`     // final scale factor
	Backend           string  `yaml:"backend"`             // native | gonum
	LogLevel          string  `yaml:"log_level"`           // zerolog level name
	RequireFinite     bool    `yaml:"require_finite"`      // reject NaN/±Inf in loaded kernels and state
}

// Default returns the configuration Lipschitz layers use out of the box.
func Default() *Config {
	return &Config{
		NiterSpectral:     lipschitz.DefaultNiterSpectral,
		NiterSpectralInit: lipschitz.DefaultNiterSpectralInit,
		NiterBjorck:       lipschitz.DefaultNiterBjorck,
		AdjustmentCoef:    1.0,
		Backend:           backend.NameNative,
		LogLevel:          zerolog.InfoLevel.String(),
	}
}

// Load reads path over the defaults. An empty path yields Default(); a path
// that does not exist is an error wrapping os.ErrNotExist. Unknown keys are
// rejected. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.NiterSpectral < 1:
		return fmt.Errorf("%w: niter_spectral must be >= 1, got %d", ErrInvalidConfig, c.NiterSpectral)
	case c.NiterSpectralInit < 1:
		return fmt.Errorf("%w: niter_spectral_init must be >= 1, got %d", ErrInvalidConfig, c.NiterSpectralInit)
	case c.NiterBjorck < 0:
		return fmt.Errorf("%w: niter_bjorck must be >= 0, got %d", ErrInvalidConfig, c.NiterBjorck)
	case math.IsNaN(c.AdjustmentCoef) || math.IsInf(c.AdjustmentCoef, 0):
		return fmt.Errorf("%w: adjustment_coef must be finite", ErrInvalidConfig)
	}
	if _, err := backend.ByName(c.Backend); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ResolveBackend returns the configured backend.
func (c *Config) ResolveBackend() (backend.Backend, error) {
	return backend.ByName(c.Backend)
}

// Level returns the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
