package math

import "github.com/cwbudde/algo-dft/internal/fftypes"

// SplitFactor finds the smallest divisor q of n in [2, n) and returns
// p = n/q alongside it, so that p*q == n with both factors >= 2.
//
// The ascending search is deliberate: it biases toward a small q (many
// short inner transforms) and a large p, which shapes the recursion and
// the output ordering of the mixed-radix decomposition. Callers relying on
// reproducible plan shapes depend on this rule staying put.
//
// Sizes below 2 are invalid; primes have no such divisor and fail with
// ErrNotDecomposable, leaving the caller free to pick another strategy.
func SplitFactor(n int) (p, q int, err error) {
	if n < 2 {
		return 0, 0, fftypes.ErrInvalidSize
	}

	for d := 2; d < n; d++ {
		if n%d == 0 {
			return n / d, d, nil
		}
	}

	return 0, 0, fftypes.ErrNotDecomposable
}
