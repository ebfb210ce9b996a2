package codelet

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Unrolled direct DFT kernels for sizes 2-5. The twiddle table already
// carries the direction sign, so one body serves forward and inverse.
// All inputs are loaded before the first store, keeping the kernels safe
// for aliased src/dst.

func dft2[T fftypes.Complex](dst, src, twiddle []T) {
	_ = twiddle

	x0, x1 := src[0], src[1]

	dst[0] = x0 + x1
	dst[1] = x0 - x1
}

func dft3[T fftypes.Complex](dst, src, twiddle []T) {
	x0, x1, x2 := src[0], src[1], src[2]
	w1, w2 := twiddle[1], twiddle[2]

	dst[0] = x0 + x1 + x2
	dst[1] = x0 + w1*x1 + w2*x2
	dst[2] = x0 + w2*x1 + w1*x2
}

func dft4[T fftypes.Complex](dst, src, twiddle []T) {
	x0, x1, x2, x3 := src[0], src[1], src[2], src[3]

	// w1 is -i forward, +i inverse; a single radix-4 butterfly needs no
	// other twiddle.
	w1 := twiddle[1]

	t0 := x0 + x2
	t1 := x0 - x2
	t2 := x1 + x3
	t3 := w1 * (x1 - x3)

	dst[0] = t0 + t2
	dst[1] = t1 + t3
	dst[2] = t0 - t2
	dst[3] = t1 - t3
}

func dft5[T fftypes.Complex](dst, src, twiddle []T) {
	x0, x1, x2, x3, x4 := src[0], src[1], src[2], src[3], src[4]
	w1, w2, w3, w4 := twiddle[1], twiddle[2], twiddle[3], twiddle[4]

	dst[0] = x0 + x1 + x2 + x3 + x4
	dst[1] = x0 + w1*x1 + w2*x2 + w3*x3 + w4*x4
	dst[2] = x0 + w2*x1 + w4*x2 + w1*x3 + w3*x4
	dst[3] = x0 + w3*x1 + w1*x2 + w4*x3 + w2*x4
	dst[4] = x0 + w4*x1 + w3*x2 + w2*x3 + w1*x4
}
