package residual

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmpty          = errors.New("residual: signal is empty")
	ErrLengthMismatch = errors.New("residual: signal and residual must have the same length")
)

// Stats holds time-domain statistics of a residual signal.
//
//nolint:revive
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	RMS_dB        float64
	Peak          float64 // max |value|
	Peak_dB       float64
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// Analyze computes all residual statistics in a single pass.
func Analyze(diff []float64) Stats {
	n := len(diff)
	if n == 0 {
		return Stats{RMS_dB: math.Inf(-1), Peak_dB: math.Inf(-1)}
	}

	var (
		sum           float64
		sumSq         float64
		peak          float64
		zeroCrossings int
	)

	for i, x := range diff {
		sum += x
		sumSq += x * x

		if a := math.Abs(x); a > peak {
			peak = a
		}

		if i > 0 && diff[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	rms := math.Sqrt(sumSq / float64(n))

	return Stats{
		Length:        n,
		Mean:          sum / float64(n),
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		Energy:        sumSq,
		ZeroCrossings: zeroCrossings,
	}
}

// TrendRatio returns the residual-to-signal RMS ratio. A well-behaved
// extraction on a drift-dominated signal leaves a ratio well below one.
// Returns +Inf when the signal is identically zero but the residual is
// not, and zero when both are.
func TrendRatio(ys, diff []float64) (float64, error) {
	if len(ys) == 0 {
		return 0, ErrEmpty
	}

	if len(diff) != len(ys) {
		return 0, ErrLengthMismatch
	}

	signalRMS := Analyze(ys).RMS
	residRMS := Analyze(diff).RMS

	if signalRMS == 0 {
		if residRMS == 0 {
			return 0, nil
		}
		return math.Inf(1), nil
	}

	return residRMS / signalRMS, nil
}

// Spectrum returns the one-sided magnitude spectrum of the residual:
// Hann windowed, zero-padded to the next power of two, bins 0..N/2.
func Spectrum(diff []float64) ([]float64, error) {
	n := len(diff)
	if n < 2 {
		return nil, ErrEmpty
	}

	fftSize := nextPowerOf2(n)

	in := make([]complex128, fftSize)
	for i, x := range diff {
		in[i] = complex(x*hann(i, n), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("residual: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("residual: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, binCount)
	vecmath.Magnitude(mags, re, im)

	return mags, nil
}

// hann evaluates the symmetric Hann window of length n at index i.
func hann(i, n int) float64 {
	if n == 1 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

// ampTodB converts an amplitude to decibels, -Inf for zero.
func ampTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(value)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
