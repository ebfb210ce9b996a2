// Package algodft computes discrete Fourier transforms of arbitrary
// composite sizes. A size N = P*Q is decomposed recursively with the
// Cooley-Tukey mixed-radix scheme until terminal fixed-size kernels take
// over; prime sizes without a kernel are rejected with ErrNotDecomposable
// so the caller can fall back to another algorithm.
//
// Plans bind their input and output buffers at construction and may be
// executed any number of times. No 1/N scaling is applied in either
// direction.
package algodft

import (
	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/fftypes"
	"github.com/cwbudde/algo-dft/internal/planner"
)

// Plan is a built transform of one fixed size and direction. It reads the
// buffer bound as input and writes the buffer bound as output; both are
// borrowed from the caller and must outlive every Execute call.
//
// A Plan must not be executed concurrently with itself: its scratch state
// is mutated in place without synchronization. Build independent plans (or
// serialize externally) for concurrent transforms of the same size.
type Plan[T Complex] struct {
	n   int
	dir Direction
	tr  fftypes.Transform[T]
}

// NewPlan builds a plan of size n reading src and writing dst in the given
// direction. src and dst may alias for an in-place transform.
//
// Construction fails with ErrInvalidSize for n < 2, ErrNilBuffer or
// ErrLengthMismatch for unusable buffers, and ErrNotDecomposable when n (or
// a prime factor reached by the decomposition) has no terminal kernel.
// Failures leave no partially built state behind.
func NewPlan[T Complex](n int, src, dst []T, dir Direction, opts *Options) (*Plan[T], error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}

	if src == nil || dst == nil {
		return nil, ErrNilBuffer
	}

	if len(src) < n || len(dst) < n {
		return nil, ErrLengthMismatch
	}

	tr, err := planner.Build(n, src, dst, dir, planner.Config{
		Trace:    opts.trace(),
		Wisdom:   opts.wisdom(),
		Features: cpu.DetectFeatures(),
	})
	if err != nil {
		return nil, err
	}

	return &Plan[T]{n: n, dir: dir, tr: tr}, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// Direction returns the transform direction fixed at construction.
func (p *Plan[T]) Direction() Direction {
	return p.dir
}

// Execute reads the current contents of the bound input buffer and writes
// the transform to the bound output buffer. It allocates nothing, performs
// no I/O, and has no failure path. Calls are independent: each one fully
// overwrites the scratch state, so changing the input contents between
// calls cannot contaminate results.
func (p *Plan[T]) Execute() {
	p.tr.Execute()
}

// Destroy releases all owned state recursively. The plan is invalid
// afterwards; a subsequent Execute panics.
func (p *Plan[T]) Destroy() {
	if p.tr != nil {
		p.tr.Destroy()
		p.tr = nil
	}
}
