package harmonic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-harmonics/dsp/core"
	"gonum.org/v1/gonum/floats"
)

const (
	// MaxFrequencyIndex is the largest frequency index Generate draws.
	MaxFrequencyIndex = 256
	// RawAmplitudeScale is the upper bound of raw amplitudes before normalization.
	RawAmplitudeScale = 100.0
	// SumTolerance bounds |sum(Amplitude) - 1| for a valid set.
	SumTolerance = 1e-9
)

var (
	// ErrInvalidCount is returned when fewer than one harmonic is requested.
	ErrInvalidCount = errors.New("harmonic: count must be >= 1")
	// ErrZeroAmplitudeSum is returned when the raw amplitudes cannot be normalized.
	ErrZeroAmplitudeSum = errors.New("harmonic: raw amplitudes sum to zero")
	// ErrInvalidDescriptor is returned by Validate for out-of-range fields.
	ErrInvalidDescriptor = errors.New("harmonic: invalid descriptor")
	// ErrUnnormalizedAmplitudes is returned by Validate when amplitudes do not sum to 1.
	ErrUnnormalizedAmplitudes = errors.New("harmonic: amplitudes do not sum to 1")
	// ErrNilSource is returned when Generate has no random source.
	ErrNilSource = errors.New("harmonic: nil random source")
)

// Descriptor describes one sinusoidal component.
type Descriptor struct {
	// Amplitude is the normalized weight of the component.
	Amplitude float64
	// FrequencyIndex is the number of cycles per period, in [1, MaxFrequencyIndex].
	FrequencyIndex int
	// Phase is a fractional-cycle offset in [0, 1).
	Phase float64
}

// Generate draws m descriptors from rng and rescales their amplitudes so
// they sum to 1.
//
// Per descriptor the raw amplitude, the frequency index and the phase are
// drawn in that order, each uniformly from its range.
func Generate(rng *rand.Rand, m int) ([]Descriptor, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, m)
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	out := make([]Descriptor, m)
	amps := make([]float64, m)
	for i := range out {
		amps[i] = RawAmplitudeScale * rng.Float64()
		out[i].FrequencyIndex = 1 + rng.Intn(MaxFrequencyIndex)
		out[i].Phase = rng.Float64()
	}

	if err := normalize(amps); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Amplitude = amps[i]
	}

	return out, nil
}

// normalize scales amps in place to unit sum.
func normalize(amps []float64) error {
	sum := floats.Sum(amps)
	if sum == 0 {
		return ErrZeroAmplitudeSum
	}
	floats.Scale(1/sum, amps)
	return nil
}

// AmplitudeSum returns the total weight of h.
func AmplitudeSum(h []Descriptor) float64 {
	sum := 0.0
	for _, d := range h {
		sum += d.Amplitude
	}
	return sum
}

// Validate checks a caller-built descriptor set: field ranges first, then
// the unit amplitude sum that Generate guarantees.
func Validate(h []Descriptor) error {
	if len(h) == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, 0)
	}
	for i, d := range h {
		switch {
		case d.Amplitude < 0:
			return fmt.Errorf("%w: [%d] amplitude %g < 0", ErrInvalidDescriptor, i, d.Amplitude)
		case d.FrequencyIndex < 1 || d.FrequencyIndex > MaxFrequencyIndex:
			return fmt.Errorf("%w: [%d] frequency index %d outside [1, %d]", ErrInvalidDescriptor, i, d.FrequencyIndex, MaxFrequencyIndex)
		case d.Phase < 0 || d.Phase >= 1:
			return fmt.Errorf("%w: [%d] phase %g outside [0, 1)", ErrInvalidDescriptor, i, d.Phase)
		}
	}

	sum := AmplitudeSum(h)
	if sum == 0 {
		return ErrZeroAmplitudeSum
	}
	if !core.NearlyEqual(sum, 1, SumTolerance) {
		return fmt.Errorf("%w: got %.17g", ErrUnnormalizedAmplitudes, sum)
	}
	return nil
}
