package spectrum

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Bin is a spectrum index with its magnitude.
type Bin struct {
	Index     int
	Magnitude float64
}

// DominantBins returns the count strongest bins among the non-negative
// frequencies [0, N/2] of a real-input spectrum, strongest first. Ties keep
// the lower index first.
func DominantBins(in []complex128, count int) ([]Bin, error) {
	if count < 0 {
		return nil, fmt.Errorf("dominant bin count must be >= 0: %d", count)
	}
	if len(in) == 0 || count == 0 {
		return nil, nil
	}

	half := in[:len(in)/2+1]
	mag := Magnitude(half)
	bins := make([]Bin, len(mag))
	for i, m := range mag {
		bins[i] = Bin{Index: i, Magnitude: m}
	}
	sort.SliceStable(bins, func(a, b int) bool {
		return bins[a].Magnitude > bins[b].Magnitude
	})

	if count > len(bins) {
		count = len(bins)
	}
	return bins[:count], nil
}
