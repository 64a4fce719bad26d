package retry

import "iter"

// Apply performs one step of a retry sequence: it evaluates the policy
// against the current status and folds the decision into the next status.
// The returned status has Iterations incremented by one and Previous set to
// the policy's decision. Apply never waits; recording the decision is all
// it does.
func Apply(p Policy, s Status) Status {
	return Status{
		Iterations: s.Iterations + 1,
		Previous:   p.Decide(s),
	}
}

// Simulate returns the sequence of statuses a policy produces when applied
// repeatedly from the initial status. The sequence is generated lazily: each
// status is derived from the previous one by [Apply], and the sequence ends
// after the first status whose decision is Stop (that terminal status is
// included).
//
// A policy that never stops yields an unbounded sequence; callers iterating
// such a policy must break out of the loop themselves.
func Simulate(p Policy) iter.Seq[Status] {
	return func(yield func(Status) bool) {
		var s Status
		for {
			s = Apply(p, s)
			if !yield(s) {
				return
			}
			if !s.Previous.Continue() {
				return
			}
		}
	}
}

// DryRun collects the full [Simulate] sequence into a slice, oldest status
// first, ending with the terminal stop status. It exercises a policy without
// performing real waits or retries.
//
// DryRun does not return for a policy that never stops (ConstantDelay alone,
// for example); it is the caller's responsibility to dry-run only policies
// that eventually give up. Use [Simulate] to inspect a prefix of an
// unbounded policy.
func DryRun(p Policy) []Status {
	var trace []Status
	for s := range Simulate(p) {
		trace = append(trace, s)
	}

	return trace
}
