// Command harmonics synthesizes a random multi-harmonic waveform, checks an
// FFT round trip on it and writes samples plus spectrum to a text file.
//
// Usage:
//
//	harmonics [flags] output.dat M N
//
// M is the number of harmonics and N the number of samples. N is rounded
// up to the next power of two.
//
// Examples:
//
//	harmonics out.dat 8 1000
//	harmonics -seed 42 -backend gonum out.dat 3 256
//	harmonics -values out.dat 1 64 | gnuplot -p -e "plot '-' with lines"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-harmonics/internal/experiment"
	"github.com/cwbudde/algo-harmonics/measure/roundtrip"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("harmonics", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "random seed (0 seeds from the clock)")
	backendName := fs.String("backend", roundtrip.BackendAlgoFFT.String(), "FFT backend: algofft, godsp or gonum")
	mean := fs.Bool("mean", false, "report the error divided by N instead of the raw sum")
	values := fs.Bool("values", false, "print the synthesized y values to stdout, one per line")
	verbose := fs.Bool("v", false, "log every pipeline stage and print the dominant spectrum bins")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: harmonics [flags] output.dat M N\n\n")
		fmt.Fprintf(stderr, "  output.dat - output data file\n")
		fmt.Fprintf(stderr, "  M          - number of harmonics\n")
		fmt.Fprintf(stderr, "  N          - number of samples\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return 1
	}

	out := fs.Arg(0)
	m, errM := strconv.Atoi(fs.Arg(1))
	n, errN := strconv.Atoi(fs.Arg(2))
	if errM != nil || errN != nil {
		fmt.Fprintf(stderr, "error: %s and %s must both be integers\n", fs.Arg(1), fs.Arg(2))
		return 1
	}

	backend, err := roundtrip.ParseBackend(*backendName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, *verbose)
	defer func() { _ = logger.Sync() }()

	opts := []experiment.Option{
		experiment.WithBackend(backend),
		experiment.WithLogger(logger),
	}
	if *seed != 0 {
		opts = append(opts, experiment.WithSeed(*seed))
	}
	if *mean {
		opts = append(opts, experiment.WithErrorMode(roundtrip.ErrorMean))
	}

	rep, err := experiment.Run(experiment.Config{Output: out, Harmonics: m, Samples: n}, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *values {
		for _, y := range rep.Table.Values() {
			fmt.Fprintf(stdout, "%.16e\n", y)
		}
	}
	fmt.Fprintf(stdout, "MSE = %g\n", rep.Error)
	if *verbose {
		for _, b := range rep.DominantBins {
			fmt.Fprintf(stdout, "bin %4d |F| = %g\n", b.Index, b.Magnitude)
		}
	}

	return 0
}

// newLogger writes console-encoded entries to w. Only warnings and above
// are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	encCfg := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
