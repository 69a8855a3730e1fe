package calculus

const minLength = 2

func validate(ys []float64) {
	if len(ys) < minLength {
		panic("calculus: sequence must have at least 2 samples")
	}
}

func validateXY(xs, ys []float64) {
	validate(ys)
	if len(xs) != len(ys) {
		panic("calculus: xs and ys must have the same length")
	}
}

// Deriv computes the first derivative of ys over unit-step coordinates.
//
// Interior points use the central difference 0.5*(ys[i+1]-ys[i-1]); the
// boundary points use plain one-sided differences without the 0.5 factor.
func Deriv(ys []float64) []float64 {
	validate(ys)

	n := len(ys)
	out := make([]float64, n)

	out[0] = ys[1] - ys[0]
	for i := 1; i < n-1; i++ {
		out[i] = 0.5 * (ys[i+1] - ys[i-1])
	}
	out[n-1] = ys[n-1] - ys[n-2]

	return out
}

// DerivXY computes the first derivative of ys over the coordinates xs.
//
// Interior points use the central difference across the two-step gap; the
// boundary points use one-sided differences over a single step.
func DerivXY(xs, ys []float64) []float64 {
	validateXY(xs, ys)

	n := len(ys)
	out := make([]float64, n)

	out[0] = (ys[1] - ys[0]) / (xs[1] - xs[0])
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	out[n-1] = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])

	return out
}

// Deriv2 computes the second derivative of ys over unit-step coordinates.
//
// Interior points use the three-point second difference; the two boundary
// values are copied from the nearest interior value rather than computed.
func Deriv2(ys []float64) []float64 {
	validate(ys)

	n := len(ys)
	out := make([]float64, n)

	for i := 1; i < n-1; i++ {
		out[i] = ys[i+1] - 2*ys[i] + ys[i-1]
	}
	copyBoundaries(out)

	return out
}

// Deriv2XY computes the second derivative of ys over the coordinates xs
// using the non-uniform three-point second difference at interior points.
// Boundary values are copied from the nearest interior value.
func Deriv2XY(xs, ys []float64) []float64 {
	validateXY(xs, ys)

	n := len(ys)
	out := make([]float64, n)

	for i := 1; i < n-1; i++ {
		hl := xs[i] - xs[i-1]
		hr := xs[i+1] - xs[i]
		out[i] = 2 * (hl*ys[i+1] - (hl+hr)*ys[i] + hr*ys[i-1]) / (hl * hr * (hl + hr))
	}
	copyBoundaries(out)

	return out
}

// copyBoundaries flat-extrapolates the second derivative to both ends.
// For n == 2 both interior neighbors are absent and the result stays zero.
func copyBoundaries(out []float64) {
	n := len(out)
	if n < 3 {
		return
	}

	out[0] = out[1]
	out[n-1] = out[n-2]
}

// Integral computes the cumulative trapezoidal integral of ys over
// unit-step coordinates. The first element is exactly zero.
func Integral(ys []float64) []float64 {
	validate(ys)

	out := make([]float64, len(ys))
	for i := 1; i < len(ys); i++ {
		out[i] = out[i-1] + 0.5*(ys[i-1]+ys[i])
	}

	return out
}

// IntegralXY computes the cumulative trapezoidal integral of ys over the
// coordinates xs. The first element is exactly zero.
func IntegralXY(xs, ys []float64) []float64 {
	validateXY(xs, ys)

	out := make([]float64, len(ys))
	for i := 1; i < len(ys); i++ {
		out[i] = out[i-1] + 0.5*(ys[i-1]+ys[i])*(xs[i]-xs[i-1])
	}

	return out
}
