// Package calculus provides discrete calculus primitives over sampled
// sequences: first and second finite-difference derivatives and the
// cumulative trapezoidal integral.
//
// Every operator comes in two forms:
//
//   - [Deriv], [Deriv2], [Integral]:       unit-step coordinates x[i] = i
//   - [DerivXY], [Deriv2XY], [IntegralXY]: explicit, strictly increasing
//     coordinates
//
// Boundary policy differs per operator and is part of the contract:
//
//   - Deriv uses one-sided first differences at both ends. In unit-step
//     mode the boundary values are plain differences, deliberately not
//     scaled by the 0.5 factor applied at interior points.
//   - Deriv2 copies the nearest interior value to both ends (flat
//     extrapolation) instead of applying a one-sided formula.
//   - Integral starts at exactly zero.
//
// All functions are pure and total for sequences of length >= 2. Shorter
// input or mismatched slice lengths are programmer errors and panic,
// mirroring the vecmath block-operation contract.
package calculus
