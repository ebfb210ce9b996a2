// Package planner is the general plan factory: for a requested size it
// decides which strategy serves the transform: a terminal codelet, the
// mixed-radix decomposition, or nothing at all. The same decision runs for
// every child size of a decomposition, so a mixed-radix plan can itself be
// the child of another mixed-radix plan.
package planner

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dft/internal/codelet"
	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/fftypes"
	"github.com/cwbudde/algo-dft/internal/mixradix"
	"github.com/cwbudde/algo-dft/internal/wisdom"
)

// Config carries the cross-cutting collaborators of a recursive build.
type Config struct {
	// Trace receives build and selection events. Use zerolog.Nop() to
	// disable.
	Trace zerolog.Logger

	// Wisdom, when non-nil, is consulted for per-size strategy pins and
	// updated with the decisions actually taken.
	Wisdom *wisdom.Store

	// Features gates kernel selection. Zero value means "detect".
	Features cpu.Features
}

// Build constructs a transform of size n reading src and writing dst.
//
// Selection order: a wisdom pin for mixed-radix skips the codelet lookup;
// otherwise a registered codelet wins, then the mixed-radix decomposition,
// and a prime size without a kernel fails with ErrNotDecomposable. Sizes
// below 2 fail with ErrInvalidSize.
func Build[T fftypes.Complex](n int, src, dst []T, dir fftypes.Direction, cfg Config) (fftypes.Transform[T], error) {
	if n < 2 {
		return nil, fftypes.ErrInvalidSize
	}

	pinned, hasPin := fftypes.StrategyAuto, false
	if cfg.Wisdom != nil {
		pinned, hasPin = cfg.Wisdom.Lookup(n)
	}

	if !(hasPin && pinned == fftypes.StrategyMixedRadix) {
		if c, err := codelet.New(n, src, dst, dir, cfg.Features); err == nil {
			record(cfg, n, fftypes.StrategyCodelet)
			return c, nil
		}
	}

	plan, err := mixradix.New(n, src, dst, dir, factory[T](cfg), cfg.Trace)
	if err != nil {
		// A mixed-radix pin on a prime codelet size (2, 3, 5) cannot be
		// honored; fall back to the codelet rather than failing the build.
		if hasPin && pinned == fftypes.StrategyMixedRadix {
			if c, cerr := codelet.New(n, src, dst, dir, cfg.Features); cerr == nil {
				record(cfg, n, fftypes.StrategyCodelet)
				return c, nil
			}
		}

		return nil, err
	}

	record(cfg, n, fftypes.StrategyMixedRadix)

	return plan, nil
}

// factory adapts Build to the fftypes.Factory signature for child builds,
// carrying the config down the recursion.
func factory[T fftypes.Complex](cfg Config) fftypes.Factory[T] {
	return func(n int, src, dst []T, dir fftypes.Direction) (fftypes.Transform[T], error) {
		return Build(n, src, dst, dir, cfg)
	}
}

func record(cfg Config, n int, strategy fftypes.Strategy) {
	if cfg.Wisdom != nil {
		cfg.Wisdom.Record(n, strategy)
	}
}
