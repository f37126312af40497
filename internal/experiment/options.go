package experiment

import (
	"math/rand"
	"time"

	"github.com/cwbudde/algo-harmonics/dsp/harmonic"
	"github.com/cwbudde/algo-harmonics/measure/roundtrip"
	"go.uber.org/zap"
)

type options struct {
	fixed   []harmonic.Descriptor
	rng     *rand.Rand
	backend roundtrip.Backend
	mode    roundtrip.ErrorMode
	logger  *zap.Logger
}

// Option configures Run.
type Option func(*options)

// WithSeed seeds the harmonic generator deterministically.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithHarmonics replaces random generation with a fixed descriptor set.
// Config.Harmonics is then taken from len(h). An empty h keeps random
// generation.
func WithHarmonics(h []harmonic.Descriptor) Option {
	return func(o *options) {
		o.fixed = append([]harmonic.Descriptor(nil), h...)
	}
}

// WithBackend selects the FFT backend used for the round trip.
func WithBackend(b roundtrip.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithErrorMode selects the reported error reduction.
func WithErrorMode(m roundtrip.ErrorMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithLogger sets the logger for stage diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts ...Option) options {
	o := options{
		backend: roundtrip.BackendAlgoFFT,
		mode:    roundtrip.ErrorSum,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
