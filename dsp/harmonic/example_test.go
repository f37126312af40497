package harmonic_test

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-harmonics/dsp/harmonic"
)

func ExampleGenerate() {
	h, err := harmonic.Generate(rand.New(rand.NewSource(3)), 5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d harmonics, total weight %.6f\n", len(h), harmonic.AmplitudeSum(h))

	// Output:
	// 5 harmonics, total weight 1.000000
}
