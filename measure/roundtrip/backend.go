package roundtrip

import (
	"errors"
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrUnknownBackend is returned for an unrecognized Backend value or name.
var ErrUnknownBackend = errors.New("roundtrip: unknown transform backend")

var errLengthMismatch = errors.New("roundtrip: transform buffer length mismatch")

// Backend selects the FFT implementation.
type Backend int

const (
	// BackendAlgoFFT uses a precomputed algo-fft plan.
	BackendAlgoFFT Backend = iota
	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
)

var backendNames = map[Backend]string{
	BackendAlgoFFT: "algofft",
	BackendGoDSP:   "godsp",
	BackendGonum:   "gonum",
}

// Backends lists every supported backend.
func Backends() []Backend {
	return []Backend{BackendAlgoFFT, BackendGoDSP, BackendGonum}
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps a backend name (as returned by String) to a Backend.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Transformer is a fixed-length complex DFT pair. Forward is unnormalized;
// Inverse scales by 1/Len so that Inverse(Forward(x)) == x.
type Transformer interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// NewTransformer returns a Transformer of length n for backend b.
// Length 1 is the identity transform on every backend.
func NewTransformer(b Backend, n int) (Transformer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrEmptyInput, n)
	}
	if _, ok := backendNames[b]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}
	if n == 1 {
		return identity{}, nil
	}

	switch b {
	case BackendGoDSP:
		return goDSP{n: n}, nil
	case BackendGonum:
		return &gonumFFT{plan: fourier.NewCmplxFFT(n), n: n}, nil
	default:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("roundtrip: algo-fft plan for %d points: %w", n, err)
		}
		return algoFFT{plan: plan, n: n}, nil
	}
}

func checkLen(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: want %d, got dst=%d src=%d", errLengthMismatch, n, len(dst), len(src))
	}
	return nil
}

type identity struct{}

func (identity) Len() int { return 1 }

func (identity) Forward(dst, src []complex128) error {
	if err := checkLen(1, dst, src); err != nil {
		return err
	}
	dst[0] = src[0]
	return nil
}

func (t identity) Inverse(dst, src []complex128) error { return t.Forward(dst, src) }

type algoFFT struct {
	plan *algofft.Plan[complex128]
	n    int
}

func (t algoFFT) Len() int { return t.n }

func (t algoFFT) Forward(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	return t.plan.Forward(dst, src)
}

func (t algoFFT) Inverse(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	return t.plan.Inverse(dst, src)
}

type goDSP struct {
	n int
}

func (t goDSP) Len() int { return t.n }

func (t goDSP) Forward(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	copy(dst, fft.FFT(src))
	return nil
}

func (t goDSP) Inverse(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	copy(dst, fft.IFFT(src))
	return nil
}

type gonumFFT struct {
	plan *fourier.CmplxFFT
	n    int
}

func (t *gonumFFT) Len() int { return t.n }

func (t *gonumFFT) Forward(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	t.plan.Coefficients(dst, src)
	return nil
}

// Inverse rescales gonum's unnormalized Sequence by 1/n.
func (t *gonumFFT) Inverse(dst, src []complex128) error {
	n := t.n
	if err := checkLen(n, dst, src); err != nil {
		return err
	}
	t.plan.Sequence(dst, src)
	scale := complex(1/float64(n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}
