package testutil

import "math"

// Ramp returns the affine sequence a + b*i for i in [0, n).
func Ramp(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + b*float64(i)
	}
	return out
}

// Constant returns a length-n sequence filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// DriftingSine returns n samples of amplitude*sin over cycles full periods
// riding on a linear drift. Deterministic; intended as a trend-plus-
// oscillation fixture.
func DriftingSine(amplitude, drift float64, cycles, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		phase := 2 * math.Pi * float64(cycles) * float64(i) / float64(n-1)
		out[i] = amplitude*math.Sin(phase) + drift*float64(i)
	}
	return out
}

// NoisySine is DriftingSine plus a deterministic pseudo-noise term built
// from an incommensurate high-frequency sinusoid, so tests stay
// reproducible without seeding a generator.
func NoisySine(amplitude, drift, noise float64, cycles, n int) []float64 {
	out := DriftingSine(amplitude, drift, cycles, n)
	for i := range out {
		out[i] += noise * math.Sin(137.3*float64(i)+0.71)
	}
	return out
}

// UnitSteps returns the coordinates 0, 1, ..., n-1.
func UnitSteps(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
