package algodft

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Complex is a type constraint for complex number types supported by the
// transforms. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Direction selects between the forward and inverse transform.
// The canonical definition is in internal/fftypes.
type Direction = fftypes.Direction

// Transform directions. The direction only flips the sign of the twiddle
// angles; no 1/N normalization is applied in either direction, so scaling
// the inverse is the caller's convention.
const (
	Forward = fftypes.Forward
	Inverse = fftypes.Inverse
)

// Strategy identifies how a plan for a given size was built.
// The canonical definition is in internal/fftypes.
type Strategy = fftypes.Strategy

// Plan-construction strategies, as recorded in wisdom.
const (
	StrategyAuto       = fftypes.StrategyAuto
	StrategyCodelet    = fftypes.StrategyCodelet
	StrategyMixedRadix = fftypes.StrategyMixedRadix
)
