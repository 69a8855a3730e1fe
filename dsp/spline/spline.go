package spline

import "math"

const (
	// MinDegree and MaxDegree bound the supported spline degrees.
	MinDegree = 1
	MaxDegree = 5
)

// Curve is a B-spline curve in one variable.
//
// A Curve is immutable after construction and safe for concurrent reads.
type Curve struct {
	degree int
	knots  []float64 // len(coeffs) + degree + 1
	coeffs []float64
}

// Fit constructs the interpolating B-spline of the given degree through
// the points (xs[i], ys[i]).
//
// xs must be strictly increasing and contain at least degree+1 points.
// The knot vector is clamped at both ends with interior knots chosen by
// the coordinate-averaging rule, which keeps the collocation system
// nonsingular for strictly increasing coordinates.
func Fit(xs, ys []float64, degree int) (*Curve, error) {
	if degree < MinDegree || degree > MaxDegree {
		return nil, ErrDegree
	}

	m := len(xs)
	if len(ys) != m {
		return nil, ErrBadCoordinates
	}

	if m < degree+1 {
		return nil, ErrTooFewPoints
	}

	for i := 1; i < m; i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrBadCoordinates
		}
	}

	knots := averagedKnots(xs, degree)

	// Collocation matrix: row i holds the degree+1 basis functions that
	// are non-zero at xs[i].
	a := make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, m)
		span := findSpan(knots, degree, m, xs[i])
		basis := basisFuncs(knots, span, degree, xs[i])
		for j := 0; j <= degree; j++ {
			a[i][span-degree+j] = basis[j]
		}
	}

	coeffs, err := solve(a, ys)
	if err != nil {
		return nil, err
	}

	return &Curve{degree: degree, knots: knots, coeffs: coeffs}, nil
}

// Degree returns the polynomial degree of the curve.
func (c *Curve) Degree() int { return c.degree }

// Domain returns the coordinate interval the curve was fitted over.
func (c *Curve) Domain() (lo, hi float64) {
	return c.knots[c.degree], c.knots[len(c.coeffs)]
}

// Eval evaluates the curve at x. Queries outside the fitted domain are
// clamped to the nearest domain edge.
func (c *Curve) Eval(x float64) float64 {
	n := len(c.coeffs)

	lo, hi := c.Domain()
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}

	span := findSpan(c.knots, c.degree, n, x)
	basis := basisFuncs(c.knots, span, c.degree, x)

	sum := 0.0
	for j := 0; j <= c.degree; j++ {
		sum += basis[j] * c.coeffs[span-c.degree+j]
	}

	return sum
}

// EvalAll evaluates the curve at every coordinate in xs.
func (c *Curve) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.Eval(x)
	}

	return out
}

// Derivative returns the exact first derivative of the curve as a new
// Curve of one degree lower. Differentiating a degree-1 curve yields a
// piecewise-constant degree-0 curve.
func (c *Curve) Derivative() *Curve {
	n := len(c.coeffs)
	k := c.degree

	coeffs := make([]float64, n-1)
	for i := range coeffs {
		span := c.knots[i+k+1] - c.knots[i+1]
		coeffs[i] = float64(k) * (c.coeffs[i+1] - c.coeffs[i]) / span
	}

	knots := make([]float64, len(c.knots)-2)
	copy(knots, c.knots[1:len(c.knots)-1])

	return &Curve{degree: k - 1, knots: knots, coeffs: coeffs}
}

// averagedKnots builds a clamped knot vector for interpolation at xs:
// degree+1 copies of each end coordinate, interior knots as running
// averages of degree consecutive interior coordinates.
func averagedKnots(xs []float64, degree int) []float64 {
	m := len(xs)
	knots := make([]float64, m+degree+1)

	for i := 0; i <= degree; i++ {
		knots[i] = xs[0]
		knots[m+i] = xs[m-1]
	}

	for j := 1; j < m-degree; j++ {
		sum := 0.0
		for i := j; i < j+degree; i++ {
			sum += xs[i]
		}
		knots[degree+j] = sum / float64(degree)
	}

	return knots
}

// findSpan returns the knot span index i in [degree, n-1] such that
// knots[i] <= x < knots[i+1], with x == knots[n] mapping to the last span.
func findSpan(knots []float64, degree, n int, x float64) int {
	if x >= knots[n] {
		return n - 1
	}

	if x <= knots[degree] {
		return degree
	}

	lo, hi := degree, n
	for {
		mid := (lo + hi) / 2
		switch {
		case x < knots[mid]:
			hi = mid
		case x >= knots[mid+1]:
			lo = mid
		default:
			return mid
		}
	}
}

// basisFuncs computes the degree+1 non-vanishing B-spline basis functions
// at x for the given span (Cox-de Boor recurrence).
func basisFuncs(knots []float64, span, degree int, x float64) []float64 {
	basis := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)

	basis[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = x - knots[span+1-j]
		right[j] = knots[span+j] - x

		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := basis[r] / (right[r+1] + left[j-r])
			basis[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}

		basis[j] = saved
	}

	return basis
}

// solve performs in-place Gaussian elimination with partial pivoting on
// the banded-but-dense collocation system.
func solve(a [][]float64, rhs []float64) ([]float64, error) {
	n := len(a)

	b := make([]float64, n)
	copy(b, rhs)

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}

		if math.Abs(a[pivot][col]) < 1e-14 {
			return nil, ErrSingular
		}

		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		inv := 1 / a[col][col]
		for row := col + 1; row < n; row++ {
			f := a[row][col] * inv
			if f == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}

	out := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for col := row + 1; col < n; col++ {
			sum -= a[row][col] * out[col]
		}
		out[row] = sum / a[row][row]
	}

	return out, nil
}
