package retry

import "fmt"

// Status is the state of a retry sequence at a decision point. It is the
// only state a policy sees; policies themselves carry none.
//
// The zero value is the initial status: no attempts made, no decision
// recorded. All later statuses are derived from it by [Apply]; Iterations
// grows by exactly one per step and never decreases.
type Status struct {
	// Iterations counts the decisions made so far. It is zero before the
	// first attempt.
	Iterations int

	// Previous is the decision recorded by the preceding step. On the
	// initial status no decision has been made yet and Previous reports
	// Stop; every status produced by Apply carries the policy's actual
	// decision.
	Previous Decision
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s.Iterations == 0 {
		return "iteration 0: initial"
	}

	return fmt.Sprintf("iteration %d: %v", s.Iterations, s.Previous)
}
