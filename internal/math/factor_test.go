package math

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-dft/internal/fftypes"
)

func TestSplitFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, p, q int
	}{
		{4, 2, 2},
		{6, 3, 2},
		{9, 3, 3},
		{12, 6, 2},
		{15, 5, 3},
		{25, 5, 5},
		{35, 7, 5},
		{100, 50, 2},
		{360, 180, 2},
	}

	for _, tc := range tests {
		p, q, err := SplitFactor(tc.n)
		if err != nil {
			t.Fatalf("SplitFactor(%d) failed: %v", tc.n, err)
		}

		if p != tc.p || q != tc.q {
			t.Errorf("SplitFactor(%d) = (%d, %d), want (%d, %d)", tc.n, p, q, tc.p, tc.q)
		}

		if p*q != tc.n {
			t.Errorf("SplitFactor(%d): p*q = %d", tc.n, p*q)
		}
	}
}

// TestSplitFactorSmallestDivisor checks the ascending-search rule: q is the
// smallest divisor >= 2, so q is always prime and p carries the rest.
func TestSplitFactorSmallestDivisor(t *testing.T) {
	t.Parallel()

	for n := 4; n <= 1000; n++ {
		p, q, err := SplitFactor(n)
		if errors.Is(err, fftypes.ErrNotDecomposable) {
			continue
		}

		if err != nil {
			t.Fatalf("SplitFactor(%d) failed: %v", n, err)
		}

		for d := 2; d < q; d++ {
			if n%d == 0 {
				t.Fatalf("SplitFactor(%d) picked q=%d but %d divides %d", n, q, d, n)
			}
		}

		if p < 2 || q < 2 {
			t.Fatalf("SplitFactor(%d) = (%d, %d): factors must be >= 2", n, p, q)
		}
	}
}

func TestSplitFactorPrime(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 7, 11, 13, 101, 997} {
		_, _, err := SplitFactor(n)
		if !errors.Is(err, fftypes.ErrNotDecomposable) {
			t.Errorf("SplitFactor(%d) = %v, want ErrNotDecomposable", n, err)
		}
	}
}

func TestSplitFactorInvalid(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-4, -1, 0, 1} {
		_, _, err := SplitFactor(n)
		if !errors.Is(err, fftypes.ErrInvalidSize) {
			t.Errorf("SplitFactor(%d) = %v, want ErrInvalidSize", n, err)
		}
	}
}
