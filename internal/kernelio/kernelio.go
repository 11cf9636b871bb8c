// SPDX-License-Identifier: MIT

// Package kernelio reads and writes kernel tensors and power-iteration state.
//
// Both file kinds are YAML documents; JSON input is accepted because YAML is
// a superset of it. Output is JSON when the path ends in ".json", YAML otherwise.
//
// NaN and ±Inf round-trip in both formats: YAML writes .nan/.inf, JSON writes
// the strings "NaN", "+Inf" and "-Inf". Use CheckFinite to reject them.
//
//	kernel: {shape: [3, 3, 2, 4], data: [...]}   # row-major
//	state:  {u: [...], sigma: 2.71}
package kernelio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

// kernelFile is the on-disk form of a kernel.
type kernelFile struct {
	Shape []int    `yaml:"shape" json:"shape"`
	Data  []number `yaml:"data" json:"data"`
}

// stateFile is the on-disk form of the persisted power vector.
type stateFile struct {
	U     []number `yaml:"u" json:"u"`
	Sigma number   `yaml:"sigma" json:"sigma"`
}

// number is a float64 whose JSON form spells non-finite values as strings.
type number float64

// MarshalJSON implements json.Marshaler.
func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(f, 'g', -1, 64))), nil
	}

	return json.Marshal(f)
}

// UnmarshalYAML implements yaml.Unmarshaler. Plain numbers and .nan/.inf
// decode as usual; quoted scalars must spell NaN or an infinity.
func (n *number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!str" {
		f, err := strconv.ParseFloat(value.Value, 64)
		if err != nil || !(math.IsNaN(f) || math.IsInf(f, 0)) {
			return fmt.Errorf("line %d: %q is not a number", value.Line, value.Value)
		}
		*n = number(f)

		return nil
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return err
	}
	*n = number(f)

	return nil
}

func toNumbers(xs []float64) []number {
	out := make([]number, len(xs))
	for i, x := range xs {
		out[i] = number(x)
	}

	return out
}

func toFloats(ns []number) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = float64(n)
	}

	return out
}

// ReadKernel decodes a kernel document from r.
func ReadKernel(r io.Reader) (*tensor.Tensor, error) {
	var kf kernelFile
	if err := yaml.NewDecoder(r).Decode(&kf); err != nil {
		return nil, fmt.Errorf("failed to parse kernel: %w", err)
	}
	t, err := tensor.New(kf.Shape, toFloats(kf.Data))
	if err != nil {
		return nil, fmt.Errorf("invalid kernel: %w", err)
	}

	return t, nil
}

// LoadKernel reads a kernel file.
func LoadKernel(path string) (*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open kernel: %w", err)
	}
	defer f.Close()

	return ReadKernel(f)
}

// SaveKernel writes t to path.
func SaveKernel(path string, t *tensor.Tensor) error {
	if t == nil {
		return tensor.ErrNilTensor
	}

	return writeDoc(path, kernelFile{Shape: t.Shape(), Data: toNumbers(t.Data())})
}

// CheckFinite returns an error wrapping matrix.ErrNaNInf when t holds NaN or ±Inf.
func CheckFinite(t *tensor.Tensor) error {
	if t == nil {
		return tensor.ErrNilTensor
	}
	row, err := matrix.NewRowVector(t.Data())
	if err != nil {
		return fmt.Errorf("invalid kernel: %w", err)
	}
	if err = matrix.ValidateFinite(row); err != nil {
		return fmt.Errorf("kernel %v: %w", t.Shape(), err)
	}

	return nil
}

// LoadState reads a state file. A missing file returns (nil, 0, false, nil),
// meaning the next projection cold-starts.
func LoadState(path string) (u *matrix.Dense, sigma float64, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to read state: %w", err)
	}

	var sf stateFile
	if err = yaml.Unmarshal(data, &sf); err != nil {
		return nil, 0, false, fmt.Errorf("failed to parse state: %w", err)
	}
	if len(sf.U) == 0 { // empty document
		return nil, 0, false, nil
	}
	if u, err = matrix.NewRowVector(toFloats(sf.U)); err != nil {
		return nil, 0, false, fmt.Errorf("invalid state: %w", err)
	}

	return u, float64(sf.Sigma), true, nil
}

// SaveState writes the 1×n vector u and sigma to path.
func SaveState(path string, u matrix.Matrix, sigma float64) error {
	if err := matrix.ValidateNotNil(u); err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}
	if u.Rows() != 1 {
		return fmt.Errorf("invalid state: %w: u is %dx%d, want a row", matrix.ErrDimensionMismatch, u.Rows(), u.Cols())
	}
	row := make([]float64, u.Cols())
	var err error
	for j := range row {
		if row[j], err = u.At(0, j); err != nil {
			return fmt.Errorf("invalid state: %w", err)
		}
	}

	return writeDoc(path, stateFile{U: toNumbers(row), Sigma: number(sigma)})
}

func writeDoc(path string, doc any) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	return nil
}
