package fftypes

// Transform is the capability a built plan exposes, regardless of the
// strategy behind it: a mixed-radix decomposition, a terminal fixed-size
// codelet, or any future variant. Input and output buffers are bound at
// construction, so a Transform can serve as the child of a larger
// decomposition without any per-call wiring.
type Transform[T Complex] interface {
	// Len returns the transform size.
	Len() int

	// Execute reads the bound input buffer and writes the bound output
	// buffer. It allocates nothing and has no failure path. A Transform
	// must not be executed concurrently with itself.
	Execute()

	// Destroy releases owned resources recursively. The Transform and all
	// of its children are invalid afterwards.
	Destroy()
}

// Factory builds a transform of the given size reading src and writing dst.
// A decomposition plan calls the factory for each of its child sizes; the
// factory decides which strategy serves that size, or fails with a
// construction error that propagates up through the recursive build.
type Factory[T Complex] func(n int, src, dst []T, dir Direction) (Transform[T], error)

// CodeletFunc is a kernel for a specific fixed size. Codelets have a
// hardcoded size and perform no runtime checks; the caller guarantees that
// dst, src, and twiddle hold at least that many elements. The twiddle table
// carries the direction sign, so the same kernel body serves forward and
// inverse transforms.
type CodeletFunc[T Complex] func(dst, src, twiddle []T)
