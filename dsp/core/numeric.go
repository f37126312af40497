package core

import (
	"errors"
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

var (
	// ErrNonPositiveLength is returned when a requested sample count is < 1.
	ErrNonPositiveLength = errors.New("core: length must be > 0")
	// ErrLengthOverflow is returned when the next power of two does not fit in an int.
	ErrLengthOverflow = errors.New("core: next power of two overflows int")
)

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsPowerOfTwo reports whether n is an exact power of two (1, 2, 4, ...).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is >= n.
// A length that already is a power of two is returned unchanged, so
// NextPowerOfTwo(1) == 1 and NextPowerOfTwo(8) == 8.
func NextPowerOfTwo(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNonPositiveLength
	}
	if IsPowerOfTwo(n) {
		return n, nil
	}

	// floor(log2(n)) + 1
	p := bits.Len(uint(n))
	if p >= bits.UintSize-1 {
		return 0, ErrLengthOverflow
	}

	return 1 << p, nil
}
