// Package harmonic generates random, amplitude-normalized sets of
// sinusoidal harmonic descriptors.
//
// A descriptor set is a pure function of the random source handed to
// [Generate]. Seeding the source replays the same set:
//
//	rng := rand.New(rand.NewSource(42))
//	h, err := harmonic.Generate(rng, 8)
//
// The amplitudes of a generated set always sum to 1.
package harmonic
