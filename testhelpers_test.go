package algodft

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

const (
	testTol64  = 1e-3
	testTol128 = 1e-10
)

func randomComplex128(n int, seed int64) []complex128 {
	rnd := rand.New(rand.NewSource(seed))
	data := make([]complex128, n)

	for i := range data {
		data[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return data
}

func randomComplex64(n int, seed int64) []complex64 {
	rnd := rand.New(rand.NewSource(seed))
	data := make([]complex64, n)

	for i := range data {
		data[i] = complex(float32(rnd.Float64()*2-1), float32(rnd.Float64()*2-1))
	}

	return data
}

func assertApproxComplex128Slice(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v want %v (diff=%v)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]))
		}
	}
}
