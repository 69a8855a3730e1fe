// Package residual quantifies the residual left after trend extraction.
//
// [Analyze] computes time-domain statistics of the residual in a single
// pass; [TrendRatio] relates its energy to the original signal; and
// [Spectrum] returns the one-sided magnitude spectrum of the residual
// (Hann windowed, zero-padded to a power of two), which is the usual way
// to check that a detrending step removed the drift without eating into
// the oscillatory content.
package residual
