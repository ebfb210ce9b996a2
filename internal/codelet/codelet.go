// Package codelet provides terminal fixed-size DFT kernels. A codelet is
// the leaf of a recursive decomposition: a fully unrolled transform for one
// specific small size, bound at construction to its input and output
// buffers so it can execute with zero per-call setup.
package codelet

import (
	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/fftypes"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// Codelet is a terminal transform for one fixed size. It owns its twiddle
// table and borrows the src/dst buffers supplied at construction.
type Codelet[T fftypes.Complex] struct {
	n       int
	dir     fftypes.Direction
	src     []T
	dst     []T
	twiddle []T
	fn      fftypes.CodeletFunc[T]
}

// New builds a codelet of size n reading src and writing dst. It returns
// ErrNotDecomposable when no kernel is registered for n, so the caller can
// fall through to a decomposition strategy.
func New[T fftypes.Complex](n int, src, dst []T, dir fftypes.Direction, features cpu.Features) (*Codelet[T], error) {
	fn, ok := lookup[T](n, features)
	if !ok {
		return nil, fftypes.ErrNotDecomposable
	}

	return &Codelet[T]{
		n:       n,
		dir:     dir,
		src:     src,
		dst:     dst,
		twiddle: m.TwiddleTable[T](n, dir),
		fn:      fn,
	}, nil
}

// Available reports whether a kernel is registered for size n under the
// given CPU features.
func Available(n int, features cpu.Features) bool {
	_, ok := lookup[complex128](n, features)
	return ok
}

// Len returns the transform size.
func (c *Codelet[T]) Len() int {
	return c.n
}

// Execute runs the bound kernel. Kernels load every input sample before the
// first store, so src and dst may alias.
func (c *Codelet[T]) Execute() {
	c.fn(c.dst, c.src, c.twiddle)
}

// Destroy releases the owned twiddle table. The codelet is invalid
// afterwards.
func (c *Codelet[T]) Destroy() {
	c.src = nil
	c.dst = nil
	c.twiddle = nil
	c.fn = nil
}
