package roundtrip

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-harmonics/internal/testutil"
)

func naiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k*j) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func TestVerifyRoundTripAllBackends(t *testing.T) {
	for _, b := range Backends() {
		for _, n := range []int{1, 2, 8, 64, 1024, 4096} {
			in := testutil.DeterministicNoise(int64(n), 1, n)
			res, err := Verify(in, WithBackend(b))
			if err != nil {
				t.Fatalf("%v n=%d: Verify() error = %v", b, n, err)
			}
			if res.Error >= 1e-9 {
				t.Fatalf("%v n=%d: error = %g, want < 1e-9", b, n, res.Error)
			}
			if res.MaxAbsError > 1e-9 {
				t.Fatalf("%v n=%d: max abs error = %g", b, n, res.MaxAbsError)
			}
			if len(res.Spectrum) != n || len(res.Reconstructed) != n {
				t.Fatalf("%v n=%d: lengths spectrum=%d recon=%d", b, n, len(res.Spectrum), len(res.Reconstructed))
			}
			testutil.RequireSliceNearlyEqual(t, res.Reconstructed, in, 1e-9)

			maxDiff, err := testutil.MaxAbsDiff(in, res.Reconstructed)
			if err != nil {
				t.Fatalf("%v n=%d: MaxAbsDiff() error = %v", b, n, err)
			}
			if maxDiff != res.MaxAbsError {
				t.Fatalf("%v n=%d: MaxAbsError = %g, independent max diff = %g", b, n, res.MaxAbsError, maxDiff)
			}
		}
	}
}

func TestVerifySpectrumMatchesDFT(t *testing.T) {
	in := testutil.DeterministicNoise(9, 1, 16)
	want := naiveDFT(in)
	for _, b := range Backends() {
		res, err := Verify(in, WithBackend(b))
		if err != nil {
			t.Fatalf("%v: Verify() error = %v", b, err)
		}
		testutil.RequireComplexNearlyEqual(t, res.Spectrum, want, 1e-9)
	}
}

func TestVerifyPureToneBins(t *testing.T) {
	const n = 64
	res, err := Verify(testutil.PeriodSine(3, 1, n))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	for k, c := range res.Spectrum {
		var want complex128
		switch k {
		case 3:
			want = complex(0, -n/2)
		case n - 3:
			want = complex(0, n/2)
		}
		if cmplx.Abs(c-want) > 1e-9 {
			t.Fatalf("bin %d = %v, want %v", k, c, want)
		}
	}
}

func TestVerifyImpulse(t *testing.T) {
	res, err := Verify(testutil.Impulse(8, 0))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	for k, c := range res.Spectrum {
		if cmplx.Abs(c-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", k, c)
		}
	}
}

func TestVerifyErrorMode(t *testing.T) {
	in := testutil.DeterministicNoise(3, 1, 256)
	sum, err := Verify(in, WithBackend(BackendGonum))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	mean, err := Verify(in, WithBackend(BackendGonum), WithErrorMode(ErrorMean))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if sum.Mode != ErrorSum || mean.Mode != ErrorMean {
		t.Fatalf("modes = %v, %v", sum.Mode, mean.Mode)
	}
	if math.Abs(mean.Error-sum.Error/256) > 1e-30 {
		t.Fatalf("mean = %g, want %g", mean.Error, sum.Error/256)
	}
}

func TestVerifyErrors(t *testing.T) {
	if _, err := Verify(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want %v", err, ErrEmptyInput)
	}
	if _, err := Verify(make([]float64, 6)); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("error = %v, want %v", err, ErrNotPowerOfTwo)
	}
	if _, err := Verify(make([]float64, 8), WithBackend(Backend(42))); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownBackend)
	}
	if _, err := Verify(make([]float64, 8), WithErrorMode(ErrorMode(7))); err == nil {
		t.Fatal("expected error for unknown error mode")
	}
}

func TestParseBackend(t *testing.T) {
	for _, b := range Backends() {
		got, err := ParseBackend(" " + b.String() + " ")
		if err != nil {
			t.Fatalf("ParseBackend(%q) error = %v", b.String(), err)
		}
		if got != b {
			t.Fatalf("ParseBackend(%q) = %v, want %v", b.String(), got, b)
		}
	}
	if _, err := ParseBackend("fftw"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownBackend)
	}
}

func TestTransformerLengthMismatch(t *testing.T) {
	for _, b := range Backends() {
		tr, err := NewTransformer(b, 8)
		if err != nil {
			t.Fatalf("%v: NewTransformer() error = %v", b, err)
		}
		if tr.Len() != 8 {
			t.Fatalf("%v: Len() = %d, want 8", b, tr.Len())
		}
		if err := tr.Forward(make([]complex128, 8), make([]complex128, 4)); err == nil {
			t.Fatalf("%v: expected length mismatch error", b)
		}
	}
	if _, err := NewTransformer(BackendAlgoFFT, 0); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want %v", err, ErrEmptyInput)
	}
}
