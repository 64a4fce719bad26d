package retry

import (
	"slices"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Apply
// ---------------------------------------------------------------------------

func TestApplyIncrementsIterations(t *testing.T) {
	p := ConstantDelay(time.Second)

	s := Apply(p, Status{})
	if s.Iterations != 1 {
		t.Fatalf("Iterations = %d, want 1", s.Iterations)
	}

	s = Apply(p, s)
	if s.Iterations != 2 {
		t.Fatalf("Iterations = %d, want 2", s.Iterations)
	}
}

func TestApplyRecordsDecision(t *testing.T) {
	s := Apply(ConstantDelay(time.Second), Status{})
	if s.Previous != After(time.Second) {
		t.Fatalf("Previous = %v, want %v", s.Previous, After(time.Second))
	}

	s = Apply(stopPolicy, Status{})
	if s.Previous != Stop() {
		t.Fatalf("Previous = %v, want stop", s.Previous)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := Status{Iterations: 2, Previous: After(time.Second)}
	in := before

	Apply(ConstantDelay(time.Minute), in)

	if in != before {
		t.Fatalf("input status changed: %v, want %v", in, before)
	}
}

func TestApplyEvaluatesPolicyOnInputStatus(t *testing.T) {
	// The decision is made against the pre-step status, not the incremented
	// one: on the status with 4 iterations, LimitRetries(5) still retries.
	p := LimitRetries(5)

	s := Apply(p, Status{Iterations: 4})
	if s.Previous != After(0) {
		t.Fatalf("Previous = %v, want %v", s.Previous, After(0))
	}

	s = Apply(p, s)
	if s.Previous != Stop() {
		t.Fatalf("Previous = %v, want stop", s.Previous)
	}
}

// ---------------------------------------------------------------------------
// DryRun
// ---------------------------------------------------------------------------

func TestDryRunIterationsAreSequential(t *testing.T) {
	trace := DryRun(Merge(ConstantDelay(time.Second), LimitRetries(4)))

	if len(trace) != 5 {
		t.Fatalf("len(trace) = %d, want 5", len(trace))
	}

	for i, s := range trace {
		if s.Iterations != i+1 {
			t.Fatalf("trace[%d].Iterations = %d, want %d", i, s.Iterations, i+1)
		}
	}
}

func TestDryRunEndsWithTerminalStop(t *testing.T) {
	trace := DryRun(Merge(ConstantDelay(time.Second), LimitRetries(3)))

	last := trace[len(trace)-1]
	if last.Previous != Stop() {
		t.Fatalf("terminal Previous = %v, want stop", last.Previous)
	}

	for _, s := range trace[:len(trace)-1] {
		if !s.Previous.Continue() {
			t.Fatalf("non-terminal status %v carries a stop decision", s)
		}
	}
}

func TestDryRunImmediateStop(t *testing.T) {
	trace := DryRun(LimitRetries(0))

	want := []Status{{Iterations: 1, Previous: Stop()}}
	if !slices.Equal(trace, want) {
		t.Fatalf("DryRun() = %v, want %v", trace, want)
	}
}

// ---------------------------------------------------------------------------
// Simulate
// ---------------------------------------------------------------------------

func TestSimulateIsLazy(t *testing.T) {
	// Breaking out of the loop stops the unfold even for a policy that
	// never gives up.
	var seen []Status
	for s := range Simulate(ConstantDelay(time.Second)) {
		seen = append(seen, s)
		if len(seen) == 3 {
			break
		}
	}

	want := []Status{
		{Iterations: 1, Previous: After(time.Second)},
		{Iterations: 2, Previous: After(time.Second)},
		{Iterations: 3, Previous: After(time.Second)},
	}
	if !slices.Equal(seen, want) {
		t.Fatalf("Simulate() prefix = %v, want %v", seen, want)
	}
}

func TestSimulateStopsEvaluatingAfterTerminalStatus(t *testing.T) {
	// The policy must not be consulted again once it has said stop.
	calls := 0
	p := PolicyFunc(func(s Status) Decision {
		calls++
		if s.Iterations >= 2 {
			return Stop()
		}

		return After(time.Second)
	})

	for range Simulate(p) {
	}

	if calls != 3 {
		t.Fatalf("policy evaluated %d times, want 3", calls)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkDryRun(b *testing.B) {
	p := Merge(ExponentialBackoff(time.Millisecond), LimitRetries(10))
	for b.Loop() {
		DryRun(p)
	}
}
