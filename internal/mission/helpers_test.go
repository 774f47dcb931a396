package mission

import "testing"

// fixedRand returns the same draw every time. Intn clamps i into [0,n).
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

// countingRand records how often each draw was made.
type countingRand struct {
	fixedRand
	floats int
	ints   int
}

func (r *countingRand) Float64() float64 {
	r.floats++
	return r.fixedRand.Float64()
}

func (r *countingRand) Intn(n int) int {
	r.ints++
	return r.fixedRand.Intn(n)
}

// alwaysFail is high enough that no hack or spot check below 0.999 passes.
var alwaysFail = fixedRand{f: 0.999}

// alwaysPass makes every probabilistic check succeed.
var alwaysPass = fixedRand{f: 0}

func newPlaying(t *testing.T, cfg Config, rng Rand) *Session {
	t.Helper()
	s, err := NewSession(cfg, rng, NewSimLog(true))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !s.Start() {
		t.Fatal("expected Start to succeed from the menu")
	}
	return s
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
