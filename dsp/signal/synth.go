// Package signal synthesizes sampled waveforms from harmonic descriptor sets.
package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonics/dsp/core"
	"github.com/cwbudde/algo-harmonics/dsp/harmonic"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrNoHarmonics is returned when Synthesize receives an empty descriptor set.
	ErrNoHarmonics = errors.New("signal: no harmonics")
	// ErrNotPowerOfTwo is returned when the sample count is not a power of two.
	ErrNotPowerOfTwo = errors.New("signal: sample count must be a power of two")
)

// Point is one sample of a waveform table.
type Point struct {
	X float64
	Y float64
}

// Table is a waveform sampled over one normalized period.
type Table []Point

// Len returns the number of samples.
func (t Table) Len() int { return len(t) }

// Values returns a copy of the Y column.
func (t Table) Values() []float64 {
	out := make([]float64, len(t))
	for i, p := range t {
		out[i] = p.Y
	}
	return out
}

// Abscissae returns a copy of the X column.
func (t Table) Abscissae() []float64 {
	out := make([]float64, len(t))
	for i, p := range t {
		out[i] = p.X
	}
	return out
}

// Synthesize evaluates the sum of harmonics h at n uniformly spaced points
// X_i = i/(n-1) covering [0, 1]. For n == 1 the only point is X_0 = 0.
//
// Each sample is
//
//	Y_i = sum_j A_j * sin(2*pi*(X_i*k_j - phi_j))
//
// evaluated directly in O(n*len(h)). Harmonics are accumulated in slice
// order, so identical inputs give bit-identical tables.
func Synthesize(h []harmonic.Descriptor, n int) (Table, error) {
	if len(h) == 0 {
		return nil, ErrNoHarmonics
	}
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	x := make([]float64, n)
	if n > 1 {
		last := float64(n - 1)
		for i := range x {
			x[i] = float64(i) / last
		}
	}

	y := make([]float64, n)
	row := make([]float64, n)
	scaled := make([]float64, n)
	for _, d := range h {
		k := float64(d.FrequencyIndex)
		for i, xi := range x {
			row[i] = math.Sin(2 * math.Pi * (xi*k - d.Phase))
		}
		vecmath.ScaleBlock(scaled, row, d.Amplitude)
		vecmath.AddBlockInPlace(y, scaled)
	}

	table := make(Table, n)
	for i := range table {
		table[i] = Point{X: x[i], Y: y[i]}
	}
	return table, nil
}
