package mixradix

// Execute runs the two-pass recombination. It reads the current contents of
// the bound input buffer and overwrites the bound output buffer, leaving
// the plan reusable for a subsequent call. No allocation, no error path.
// Each pass emits one debug event through the plan's trace logger.
//
// The n-point sequence is viewed as a p x q grid, row-major with
// index = q*row + col.
func (pl *Plan[T]) Execute() {
	p := pl.p
	q := pl.q

	scratchA := pl.scratchA
	scratchB := pl.scratchB
	work := pl.work
	twiddle := pl.twiddle

	copy(work, pl.src[:pl.n])

	// Phase 1: q DFTs of size p down the columns, twiddle-corrected in
	// place. col*row < p*q = n, so the twiddle index never wraps.
	for col := 0; col < q; col++ {
		for row := 0; row < p; row++ {
			scratchA[row] = work[q*row+col]
		}

		pl.childP.Execute()

		for row := 0; row < p; row++ {
			work[q*row+col] = scratchB[row] * twiddle[col*row]
		}
	}

	pl.trace.Debug().
		Int("n", pl.n).
		Int("size", p).
		Int("count", q).
		Msg("phase 1 column pass done")

	// Phase 2: p DFTs of size q along the rows, scattered transposed into
	// the output. dst[col*p+row] is already in natural frequency order for
	// this decomposition; no digit-reversal pass is needed.
	for row := 0; row < p; row++ {
		for col := 0; col < q; col++ {
			scratchA[col] = work[q*row+col]
		}

		pl.childQ.Execute()

		for col := 0; col < q; col++ {
			pl.dst[col*p+row] = scratchB[col]
		}
	}

	pl.trace.Debug().
		Int("n", pl.n).
		Int("size", q).
		Int("count", p).
		Msg("phase 2 row pass done")
}
