package fftypes

import "errors"

// Sentinel errors shared by the plan builders. The public package re-exports
// them; internal packages return them directly so errors.Is works across the
// whole recursive build.
var (
	// ErrInvalidSize is returned when the transform size is 0, 1, or
	// negative. Such sizes are rejected before any allocation.
	ErrInvalidSize = errors.New("algodft: invalid transform size")

	// ErrNotDecomposable is returned when a size is prime and no terminal
	// kernel is registered for it. The caller may route the size to a
	// different strategy; this is a recoverable construction error.
	ErrNotDecomposable = errors.New("algodft: size not decomposable by this strategy")

	// ErrNilBuffer is returned when a nil input or output buffer is passed
	// to a plan constructor.
	ErrNilBuffer = errors.New("algodft: nil buffer")

	// ErrLengthMismatch is returned when a bound buffer is shorter than the
	// transform size.
	ErrLengthMismatch = errors.New("algodft: buffer length mismatch")
)
