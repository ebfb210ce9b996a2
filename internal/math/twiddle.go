package math

import (
	"math"

	"github.com/cwbudde/algo-dft/internal/fftypes"
)

// TwiddleTable returns the twiddle factors for a size-n transform:
// W_n^k = exp(sign*2*pi*i*k/n) for k = 0..n-1, where sign is -1 for the
// forward transform and +1 for the inverse. The table is computed once at
// plan construction and never mutated afterwards.
func TwiddleTable[T fftypes.Complex](n int, dir fftypes.Direction) []T {
	if n <= 0 {
		return nil
	}

	sign := dir.Sign()
	twiddle := make([]T, n)

	for k := 0; k < n; k++ {
		angle := sign * 2 * math.Pi * float64(k) / float64(n)
		twiddle[k] = FromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// FromFloat64 creates a complex number of type T from float64 components.
func FromFloat64[T fftypes.Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}
