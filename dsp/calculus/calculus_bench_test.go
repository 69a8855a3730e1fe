package calculus

import (
	"testing"

	"github.com/cwbudde/algo-trend/internal/testutil"
)

func BenchmarkDeriv(b *testing.B) {
	ys := testutil.NoisySine(1, 0.001, 0.05, 8, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Deriv(ys)
	}
}

func BenchmarkIntegralXY(b *testing.B) {
	n := 4096
	xs := testutil.UnitSteps(n)
	ys := testutil.NoisySine(1, 0.001, 0.05, 8, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IntegralXY(xs, ys)
	}
}
