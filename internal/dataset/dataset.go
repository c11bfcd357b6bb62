// Package dataset loads the scalar samples whose distribution backs the
// editor: their range spans the x axis and their histogram shapes the
// background.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"coedit/internal/node"
)

// Supported reports whether Load understands files with extension ext.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".csv", ".json":
		return true
	}
	return false
}

// Load reads samples from path, choosing the format by extension.
// column selects a CSV column or a JSON object key.
func Load(path, column string) ([]float64, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path, column)
	case ".json":
		return LoadJSON(path, column)
	}
	return nil, fmt.Errorf("unsupported file: %s", ext)
}

// LoadJSON accepts either a bare array of numbers or an object holding one
// under key (default "values").
func LoadJSON(path, key string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if key == "" {
		key = "values"
	}
	if obj, ok := raw.(map[string]any); ok {
		raw = obj[key]
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, errors.New("json: no array of values found")
	}
	values := make([]float64, 0, len(arr))
	for _, el := range arr {
		if v, ok := el.(float64); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, errors.New("json: no numeric values")
	}
	return values, nil
}

// Range returns the extent of samples, ignoring NaN.
func Range(samples []float64) node.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo > hi {
		return node.Range{}
	}
	return node.Range{Min: lo, Max: hi}
}

// Synthetic returns n samples in [0, 255] drawn from two overlapping
// peaks, for running without a data file.
func Synthetic(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		var v float64
		if rng.IntN(3) == 0 {
			v = 180 + 20*rng.NormFloat64()
		} else {
			v = 60 + 30*rng.NormFloat64()
		}
		out[i] = math.Round(math.Min(math.Max(v, 0), 255))
	}
	return out
}
