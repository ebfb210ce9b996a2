package codelet

import (
	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/fftypes"
)

// Sizes lists the registered terminal-kernel sizes in ascending order.
func Sizes() []int {
	return []int{2, 3, 4, 5, 8}
}

// lookup returns the kernel for size n, or false when none is registered.
// Architecture-specific variants take precedence over the portable kernels
// unless ForceGeneric is set.
func lookup[T fftypes.Complex](n int, features cpu.Features) (fftypes.CodeletFunc[T], bool) {
	if !features.ForceGeneric {
		if fn, ok := vectorized[T](n, features); ok {
			return fn, true
		}
	}

	return generic[T](n)
}

// vectorized returns an architecture-specific kernel for size n, or false
// when none matches the detected feature set. No assembly variants are
// registered yet, so every size falls through to the portable kernels.
func vectorized[T fftypes.Complex](n int, features cpu.Features) (fftypes.CodeletFunc[T], bool) {
	return nil, false
}

// generic returns the portable kernel for size n.
func generic[T fftypes.Complex](n int) (fftypes.CodeletFunc[T], bool) {
	switch n {
	case 2:
		return dft2[T], true
	case 3:
		return dft3[T], true
	case 4:
		return dft4[T], true
	case 5:
		return dft5[T], true
	case 8:
		return dft8[T], true
	default:
		return nil, false
	}
}
