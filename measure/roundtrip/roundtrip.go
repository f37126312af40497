package roundtrip

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonics/dsp/core"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyInput is returned for an empty sample sequence.
	ErrEmptyInput = errors.New("roundtrip: input must not be empty")
	// ErrNotPowerOfTwo is returned when the input length is not a power of two.
	ErrNotPowerOfTwo = errors.New("roundtrip: input length must be a power of two")
)

// ErrorMode selects how squared reconstruction differences are reduced.
type ErrorMode int

const (
	// ErrorSum reports the raw sum of squared differences.
	ErrorSum ErrorMode = iota
	// ErrorMean reports the sum divided by the sample count.
	ErrorMean
)

func (m ErrorMode) String() string {
	switch m {
	case ErrorSum:
		return "sum"
	case ErrorMean:
		return "mean"
	default:
		return fmt.Sprintf("ErrorMode(%d)", int(m))
	}
}

type options struct {
	backend Backend
	mode    ErrorMode
}

// Option configures Verify.
type Option func(*options)

// WithBackend selects the transform implementation.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithErrorMode selects the error reduction.
func WithErrorMode(m ErrorMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// Result holds the outcome of a round trip.
type Result struct {
	// Spectrum is the forward transform of the input, bin i at index i.
	Spectrum []complex128
	// Reconstructed is the real part of the inverse transform.
	Reconstructed []float64
	// Error is the reduced squared difference (see ErrorMode).
	Error float64
	// MaxAbsError is the largest absolute per-sample difference.
	MaxAbsError float64
	// Mode records how Error was reduced.
	Mode ErrorMode
}

// Verify runs values through a forward and an inverse transform and
// measures how well the real part of the reconstruction matches values.
func Verify(values []float64, opts ...Option) (Result, error) {
	cfg := options{backend: BackendAlgoFFT, mode: ErrorSum}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(values)
	if n == 0 {
		return Result{}, ErrEmptyInput
	}
	if !core.IsPowerOfTwo(n) {
		return Result{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	if cfg.mode != ErrorSum && cfg.mode != ErrorMean {
		return Result{}, fmt.Errorf("roundtrip: unknown error mode %v", cfg.mode)
	}

	tr, err := NewTransformer(cfg.backend, n)
	if err != nil {
		return Result{}, err
	}

	in := make([]complex128, n)
	for i, v := range values {
		in[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)
	if err := tr.Forward(spectrum, in); err != nil {
		return Result{}, fmt.Errorf("roundtrip: forward transform: %w", err)
	}

	back := make([]complex128, n)
	if err := tr.Inverse(back, spectrum); err != nil {
		return Result{}, fmt.Errorf("roundtrip: inverse transform: %w", err)
	}

	recon := make([]float64, n)
	for i, c := range back {
		recon[i] = real(c)
	}

	diff := make([]float64, n)
	floats.SubTo(diff, values, recon)

	res := Result{
		Spectrum:      spectrum,
		Reconstructed: recon,
		Error:         floats.Dot(diff, diff),
		MaxAbsError:   floats.Norm(diff, math.Inf(1)),
		Mode:          cfg.mode,
	}
	if cfg.mode == ErrorMean {
		res.Error /= float64(n)
	}
	return res, nil
}
