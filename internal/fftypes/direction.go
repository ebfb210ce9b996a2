package fftypes

// Direction selects between the forward and inverse transform. It is fixed
// at plan construction and determines the sign of the twiddle-factor angles.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// Sign returns the angle sign used when computing twiddle factors:
// -1 for the forward transform, +1 for the inverse.
func (d Direction) Sign() float64 {
	if d == Inverse {
		return 1
	}

	return -1
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}

	return "forward"
}
