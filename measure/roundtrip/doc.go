// Package roundtrip checks the fidelity of a forward/inverse discrete
// Fourier transform pair on a real-valued sample sequence.
//
// The input is embedded as a complex sequence with zero imaginary part,
// transformed to the frequency domain, transformed back and compared with
// the original:
//
//	res, err := roundtrip.Verify(table.Values())
//	// res.Spectrum holds the forward coefficients
//	// res.Error is the sum of squared reconstruction differences
//
// # Backends
//
// Any correct transform pair is acceptable. The default backend is
// algo-fft; go-dsp and gonum's dsp/fourier are available through
// [WithBackend] for cross-checking. The forward transform is unnormalized
// on every backend and the inverse carries the 1/N factor.
//
// # Error statistic
//
// By default Error is the raw sum of squared differences between the input
// and the real part of the reconstruction. [WithErrorMode] with [ErrorMean]
// divides that sum by N.
package roundtrip
