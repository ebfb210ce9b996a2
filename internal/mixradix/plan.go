// Package mixradix implements the general-size Cooley-Tukey decomposition.
// A size n = p*q is computed as q DFTs of size p followed by p DFTs of
// size q, with a twiddle correction between the passes and a transpose on
// output. Sub-transforms of sizes p and q are built through an externally
// supplied factory, so the decomposition recurses until terminal kernels
// take over.
package mixradix

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dft/internal/fftypes"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// Plan is a mixed-radix transform of one fixed size and direction.
//
// Ownership: the plan owns its scratch buffers, working buffer, twiddle
// table, and both children. The children borrow scratchA/scratchB as their
// bound input/output, which is how sub-transform results flow without extra
// copies. src and dst are borrowed from the caller and must outlive the
// plan.
//
// A Plan must not be executed concurrently with itself: the scratch and
// working buffers are mutated in place without synchronization. Programs
// needing concurrent transforms of one size build independent plans.
type Plan[T fftypes.Complex] struct {
	n   int
	p   int // n/q, size of the phase-1 sub-transform
	q   int // smallest divisor of n, number of phase-1 columns
	dir fftypes.Direction

	src []T // borrowed
	dst []T // borrowed

	work     []T // owned, length n; working copy mutated by phase 1
	scratchA []T // owned, length max(p,q); children read from here
	scratchB []T // owned, length max(p,q); children write here
	twiddle  []T // owned, length n; immutable after construction

	childP fftypes.Transform[T]
	childQ fftypes.Transform[T]

	trace zerolog.Logger
}

// New builds a mixed-radix plan of size n reading src and writing dst.
// Sizes below 2 fail with ErrInvalidSize and primes with
// ErrNotDecomposable, both before any allocation. A child build failure
// propagates unchanged after every already-built child has been destroyed,
// so no partially wired tree escapes.
func New[T fftypes.Complex](n int, src, dst []T, dir fftypes.Direction, build fftypes.Factory[T], trace zerolog.Logger) (*Plan[T], error) {
	p, q, err := m.SplitFactor(n)
	if err != nil {
		return nil, err
	}

	scratchLen := p
	if q > p {
		scratchLen = q
	}

	plan := &Plan[T]{
		n:        n,
		p:        p,
		q:        q,
		dir:      dir,
		src:      src,
		dst:      dst,
		work:     make([]T, n),
		scratchA: make([]T, scratchLen),
		scratchB: make([]T, scratchLen),
		twiddle:  m.TwiddleTable[T](n, dir),
		trace:    trace,
	}

	plan.childP, err = build(p, plan.scratchA, plan.scratchB, dir)
	if err != nil {
		return nil, fmt.Errorf("mixradix: size %d child of size %d: %w", p, n, err)
	}

	plan.childQ, err = build(q, plan.scratchA, plan.scratchB, dir)
	if err != nil {
		plan.childP.Destroy()
		return nil, fmt.Errorf("mixradix: size %d child of size %d: %w", q, n, err)
	}

	trace.Debug().
		Int("n", n).
		Int("p", p).
		Int("q", q).
		Str("direction", dir.String()).
		Msg("mixed-radix plan built")

	return plan, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// Factors returns the decomposition pair (p, q) with p*q == Len().
func (p *Plan[T]) Factors() (int, int) {
	return p.p, p.q
}

// Destroy releases the owned buffers and recursively destroys both
// children. The plan is invalid afterwards.
func (p *Plan[T]) Destroy() {
	if p.childP != nil {
		p.childP.Destroy()
		p.childP = nil
	}

	if p.childQ != nil {
		p.childQ.Destroy()
		p.childQ = nil
	}

	p.src = nil
	p.dst = nil
	p.work = nil
	p.scratchA = nil
	p.scratchB = nil
	p.twiddle = nil
}
