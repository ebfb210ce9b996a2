package codelet

import "github.com/cwbudde/algo-dft/internal/fftypes"

// dft8 computes an 8-point DFT as three radix-2 stages with the
// bit-reversal baked into the stage-1 loads. The signed twiddle table makes
// the body direction-agnostic: w1..w3 are conjugated for the inverse by
// construction.
func dft8[T fftypes.Complex](dst, src, twiddle []T) {
	w1, w2, w3 := twiddle[1], twiddle[2], twiddle[3]

	// Stage 1 (size 2) - loads in bit-reversed order 0,4,2,6,1,5,3,7.
	x0 := src[0]
	x1 := src[4]
	a0, a1 := x0+x1, x0-x1
	x0 = src[2]
	x1 = src[6]
	a2, a3 := x0+x1, x0-x1
	x0 = src[1]
	x1 = src[5]
	a4, a5 := x0+x1, x0-x1
	x0 = src[3]
	x1 = src[7]
	a6, a7 := x0+x1, x0-x1

	// Stage 2 (size 4)
	b0, b2 := a0+a2, a0-a2
	t := w2 * a3
	b1, b3 := a1+t, a1-t
	b4, b6 := a4+a6, a4-a6
	t = w2 * a7
	b5, b7 := a5+t, a5-t

	// Stage 3 (size 8)
	dst[0], dst[4] = b0+b4, b0-b4
	t = w1 * b5
	dst[1], dst[5] = b1+t, b1-t
	t = w2 * b6
	dst[2], dst[6] = b2+t, b2-t
	t = w3 * b7
	dst[3], dst[7] = b3+t, b3-t
}
