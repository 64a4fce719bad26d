package retry

import (
	"fmt"
	"time"
)

// Decision is the outcome of evaluating a policy at one point of a retry
// sequence: either retry after a delay, or stop. The zero value is Stop().
// Decisions are immutable and comparable.
type Decision struct {
	delay time.Duration
	retry bool
}

// After returns a Decision to retry after waiting d.
// d should be non-negative; negative delays are a caller error and are
// passed through unvalidated.
func After(d time.Duration) Decision {
	return Decision{delay: d, retry: true}
}

// Stop returns the Decision to give up retrying.
func Stop() Decision {
	return Decision{}
}

// Continue reports whether the decision is to keep retrying.
func (d Decision) Continue() bool { return d.retry }

// Delay returns the wait before the next attempt. It is zero when the
// decision is Stop; check Continue to tell a zero delay from a stop.
func (d Decision) Delay() time.Duration { return d.delay }

// String implements fmt.Stringer.
func (d Decision) String() string {
	if !d.retry {
		return "stop"
	}

	return fmt.Sprintf("retry in %v", d.delay)
}
