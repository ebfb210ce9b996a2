package algodft

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Sentinel errors returned by plan construction. Internal packages return
// the same values, so errors.Is reaches the root cause of a recursive build
// failure through any number of wrapping levels.
var (
	// ErrInvalidSize is returned when the transform size is 0, 1, or
	// negative. Such sizes are rejected before any allocation.
	ErrInvalidSize = fftypes.ErrInvalidSize

	// ErrNotDecomposable is returned when the size (or a factor reached by
	// the recursive decomposition) is prime and no terminal kernel is
	// registered for it. Callers may route such sizes to another strategy;
	// construction leaves no partial state behind.
	ErrNotDecomposable = fftypes.ErrNotDecomposable

	// ErrNilBuffer is returned when a nil input or output buffer is passed
	// to NewPlan.
	ErrNilBuffer = fftypes.ErrNilBuffer

	// ErrLengthMismatch is returned when an input or output buffer is
	// shorter than the transform size.
	ErrLengthMismatch = fftypes.ErrLengthMismatch
)
