// Package spectrum provides helpers over complex spectrum bins produced by
// an external FFT backend: magnitude, power and dominant-bin extraction.
//
// The package does not implement an FFT itself.
package spectrum
