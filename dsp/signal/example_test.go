package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonics/dsp/harmonic"
	"github.com/cwbudde/algo-harmonics/dsp/signal"
)

func ExampleSynthesize() {
	h := []harmonic.Descriptor{{Amplitude: 1, FrequencyIndex: 1}}
	table, err := signal.Synthesize(h, 4)
	if err != nil {
		panic(err)
	}
	for _, p := range table {
		y := p.Y
		if math.Abs(y) < 1e-12 {
			y = 0
		}
		fmt.Printf("%.4f %.4f\n", p.X, y)
	}

	// Output:
	// 0.0000 0.0000
	// 0.3333 0.8660
	// 0.6667 -0.8660
	// 1.0000 0.0000
}
