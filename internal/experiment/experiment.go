// Package experiment wires harmonic generation, synthesis, the FFT round
// trip and the record writer into one run.
package experiment

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-harmonics/dsp/core"
	"github.com/cwbudde/algo-harmonics/dsp/harmonic"
	"github.com/cwbudde/algo-harmonics/dsp/signal"
	"github.com/cwbudde/algo-harmonics/dsp/spectrum"
	"github.com/cwbudde/algo-harmonics/internal/datfile"
	"github.com/cwbudde/algo-harmonics/measure/roundtrip"
	"go.uber.org/zap"
)

// ErrInvalidConfig marks configuration errors. No output is produced.
var ErrInvalidConfig = errors.New("experiment: invalid configuration")

// Config holds the three run parameters.
type Config struct {
	// Output is the destination file path.
	Output string
	// Harmonics is the number of harmonics M.
	Harmonics int
	// Samples is the requested sample count N before normalization.
	Samples int
}

// Validate reports configuration errors wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	case c.Harmonics < 1:
		return fmt.Errorf("%w: harmonic count must be >= 1, got %d", ErrInvalidConfig, c.Harmonics)
	case c.Samples < 1:
		return fmt.Errorf("%w: sample count must be >= 1, got %d", ErrInvalidConfig, c.Samples)
	}
	return nil
}

// Report summarizes a completed run.
type Report struct {
	RequestedSamples int
	Samples          int
	Harmonics        []harmonic.Descriptor
	Table            signal.Table
	Error            float64
	MaxAbsError      float64
	Mode             roundtrip.ErrorMode
	// DominantBins are the len(Harmonics) strongest non-negative frequency bins.
	DominantBins []spectrum.Bin
}

// Run executes one experiment. Every stage failure aborts the run; the
// output file is only created once all computation has succeeded.
func Run(cfg Config, opts ...Option) (Report, error) {
	o := applyOptions(opts...)
	log := o.logger

	if o.fixed != nil {
		cfg.Harmonics = len(o.fixed)
		if err := harmonic.Validate(o.fixed); err != nil {
			return Report{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	n, err := core.NextPowerOfTwo(cfg.Samples)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if n != cfg.Samples {
		log.Debug("sample count adjusted to power of two",
			zap.Int("requested", cfg.Samples), zap.Int("samples", n))
	}

	h := o.fixed
	if h == nil {
		h, err = harmonic.Generate(o.rng, cfg.Harmonics)
		if err != nil {
			return Report{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	log.Debug("harmonics generated",
		zap.Int("count", len(h)), zap.Float64("amplitude_sum", harmonic.AmplitudeSum(h)))

	table, err := signal.Synthesize(h, n)
	if err != nil {
		return Report{}, fmt.Errorf("experiment: synthesize: %w", err)
	}
	log.Debug("waveform synthesized", zap.Int("samples", table.Len()))

	res, err := roundtrip.Verify(table.Values(),
		roundtrip.WithBackend(o.backend), roundtrip.WithErrorMode(o.mode))
	if err != nil {
		return Report{}, fmt.Errorf("experiment: round trip: %w", err)
	}
	log.Debug("round trip complete",
		zap.Stringer("backend", o.backend),
		zap.Stringer("mode", res.Mode),
		zap.Float64("error", res.Error),
		zap.Float64("max_abs_error", res.MaxAbsError))

	peaks, err := spectrum.DominantBins(res.Spectrum, len(h))
	if err != nil {
		return Report{}, fmt.Errorf("experiment: spectrum peaks: %w", err)
	}
	if len(peaks) > 0 {
		log.Debug("dominant bin",
			zap.Int("index", peaks[0].Index), zap.Float64("magnitude", peaks[0].Magnitude))
	}

	if err := datfile.WriteFile(cfg.Output, table, res.Spectrum); err != nil {
		return Report{}, err
	}
	log.Info("experiment written",
		zap.String("output", cfg.Output),
		zap.Int("harmonics", cfg.Harmonics),
		zap.Int("samples", n),
		zap.Float64("error", res.Error))

	return Report{
		RequestedSamples: cfg.Samples,
		Samples:          n,
		Harmonics:        h,
		Table:            table,
		Error:            res.Error,
		MaxAbsError:      res.MaxAbsError,
		Mode:             res.Mode,
		DominantBins:     peaks,
	}, nil
}
