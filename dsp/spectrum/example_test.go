package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-harmonics/dsp/spectrum"
)

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{complex(3, 4), complex(0, -2)})
	fmt.Printf("%.0f %.0f\n", mag[0], mag[1])

	// Output:
	// 5 2
}

func ExampleDominantBins() {
	bins, err := spectrum.DominantBins([]complex128{0, complex(0, -4), 1, 0}, 2)
	if err != nil {
		panic(err)
	}
	for _, b := range bins {
		fmt.Printf("bin %d: %.0f\n", b.Index, b.Magnitude)
	}

	// Output:
	// bin 1: 4
	// bin 2: 1
}
