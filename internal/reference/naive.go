// Package reference provides a direct O(N^2) DFT used as the correctness
// oracle in tests. It is deliberately simple and slow.
package reference

import (
	"github.com/cwbudde/algo-dft/internal/fftypes"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// NaiveDFT computes the unnormalized DFT of src by direct summation:
// dst[k] = sum_j src[j] * exp(sign*2*pi*i*j*k/n). No scaling is applied in
// either direction, matching the plan convention.
func NaiveDFT[T fftypes.Complex](src []T, dir fftypes.Direction) []T {
	n := len(src)
	dst := make([]T, n)

	if n == 0 {
		return dst
	}

	twiddle := m.TwiddleTable[T](n, dir)

	for k := 0; k < n; k++ {
		var sum T
		for j := 0; j < n; j++ {
			sum += src[j] * twiddle[(j*k)%n]
		}

		dst[k] = sum
	}

	return dst
}
