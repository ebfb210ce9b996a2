package mixradix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/fftypes"
	"github.com/cwbudde/algo-dft/internal/mixradix"
	"github.com/cwbudde/algo-dft/internal/planner"
)

// buildFactory wires child builds through the general planner, the way the
// public package does it.
func buildFactory[T fftypes.Complex]() fftypes.Factory[T] {
	cfg := planner.Config{
		Trace:    zerolog.Nop(),
		Features: cpu.DetectFeatures(),
	}

	return func(n int, src, dst []T, dir fftypes.Direction) (fftypes.Transform[T], error) {
		return planner.Build(n, src, dst, dir, cfg)
	}
}

func TestNewFactorPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, p, q int
	}{
		{6, 3, 2},
		{12, 6, 2},
		{15, 5, 3},
		{100, 50, 2},
	}

	for _, tc := range tests {
		src := make([]complex128, tc.n)
		dst := make([]complex128, tc.n)

		plan, err := mixradix.New(tc.n, src, dst, fftypes.Forward, buildFactory[complex128](), zerolog.Nop())
		if err != nil {
			t.Fatalf("New(%d) failed: %v", tc.n, err)
		}

		p, q := plan.Factors()
		if p != tc.p || q != tc.q {
			t.Errorf("New(%d) factors = (%d, %d), want (%d, %d)", tc.n, p, q, tc.p, tc.q)
		}

		if plan.Len() != tc.n {
			t.Errorf("New(%d).Len() = %d", tc.n, plan.Len())
		}

		plan.Destroy()
	}
}

func TestNewPrimeSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{7, 13, 101} {
		src := make([]complex128, n)
		dst := make([]complex128, n)

		_, err := mixradix.New(n, src, dst, fftypes.Forward, buildFactory[complex128](), zerolog.Nop())
		if !errors.Is(err, fftypes.ErrNotDecomposable) {
			t.Errorf("New(%d) = %v, want ErrNotDecomposable", n, err)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1} {
		_, err := mixradix.New(n, nil, nil, fftypes.Forward, buildFactory[complex128](), zerolog.Nop())
		if !errors.Is(err, fftypes.ErrInvalidSize) {
			t.Errorf("New(%d) = %v, want ErrInvalidSize", n, err)
		}
	}
}

// fakeChild records lifecycle calls so build-failure cleanup is observable.
type fakeChild struct {
	n         int
	destroyed *int
}

func (f *fakeChild) Len() int { return f.n }
func (f *fakeChild) Execute() {}
func (f *fakeChild) Destroy() { *f.destroyed++ }

// TestNewChildFailureDestroysPartialState builds a size whose second child
// fails and checks that the first child was destroyed before the error
// surfaced.
func TestNewChildFailureDestroysPartialState(t *testing.T) {
	t.Parallel()

	destroyed := 0
	childErr := errors.New("child build failed")

	calls := 0
	factory := func(n int, src, dst []complex128, dir fftypes.Direction) (fftypes.Transform[complex128], error) {
		calls++
		if calls == 1 {
			return &fakeChild{n: n, destroyed: &destroyed}, nil
		}

		return nil, childErr
	}

	src := make([]complex128, 6)
	dst := make([]complex128, 6)

	_, err := mixradix.New(6, src, dst, fftypes.Forward, factory, zerolog.Nop())
	if !errors.Is(err, childErr) {
		t.Fatalf("New(6) = %v, want wrapped child error", err)
	}

	if destroyed != 1 {
		t.Errorf("first child destroyed %d times, want 1", destroyed)
	}
}

// TestNewChildFailurePropagatesKind checks that a prime child size deep in
// the recursion surfaces as ErrNotDecomposable at the top-level build.
func TestNewChildFailurePropagatesKind(t *testing.T) {
	t.Parallel()

	// 26 = 2 * 13; no kernel for 13, and 13 is prime.
	src := make([]complex128, 26)
	dst := make([]complex128, 26)

	_, err := mixradix.New(26, src, dst, fftypes.Forward, buildFactory[complex128](), zerolog.Nop())
	if !errors.Is(err, fftypes.ErrNotDecomposable) {
		t.Fatalf("New(26) = %v, want ErrNotDecomposable through the recursion", err)
	}
}

func TestDestroyRecursive(t *testing.T) {
	t.Parallel()

	destroyed := 0
	factory := func(n int, src, dst []complex128, dir fftypes.Direction) (fftypes.Transform[complex128], error) {
		return &fakeChild{n: n, destroyed: &destroyed}, nil
	}

	src := make([]complex128, 6)
	dst := make([]complex128, 6)

	plan, err := mixradix.New(6, src, dst, fftypes.Forward, factory, zerolog.Nop())
	if err != nil {
		t.Fatalf("New(6) failed: %v", err)
	}

	plan.Destroy()

	if destroyed != 2 {
		t.Errorf("children destroyed %d times, want 2", destroyed)
	}
}

// TestBuildDestroyCycles exercises the lifecycle contract across many
// build/destroy rounds.
func TestBuildDestroyCycles(t *testing.T) {
	t.Parallel()

	src := make([]complex128, 360)
	dst := make([]complex128, 360)

	for i := 0; i < 200; i++ {
		plan, err := mixradix.New(360, src, dst, fftypes.Forward, buildFactory[complex128](), zerolog.Nop())
		if err != nil {
			t.Fatalf("New(360) failed: %v", err)
		}

		plan.Execute()
		plan.Destroy()
	}
}

func ExamplePlan_Factors() {
	src := make([]complex128, 6)
	dst := make([]complex128, 6)

	plan, _ := mixradix.New(6, src, dst, fftypes.Forward, buildFactory[complex128](), zerolog.Nop())
	defer plan.Destroy()

	p, q := plan.Factors()
	fmt.Println(p, q)
	// Output: 3 2
}
