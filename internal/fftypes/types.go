package fftypes

// Complex is the type constraint for complex sample types supported by the
// transform planners and kernels.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for the floating-point component types
// matching the supported complex types.
type Float interface {
	float32 | float64
}
