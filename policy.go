package retry

// Policy decides whether and how long to wait before retrying a failing
// operation. Implementations must be pure: the same Status always yields
// the same Decision (ExponentialJitter is the deliberate exception), and
// Decide must not mutate anything.
//
// Pattern: Strategy — swap retry strategies (constant, exponential,
// attempt-limited, merged) without changing the caller's loop.
type Policy interface {
	// Decide returns the delay before the next attempt, or Stop() to
	// give up.
	Decide(s Status) Decision
}

// PolicyFunc adapts an ordinary function into a [Policy].
// This allows callers to provide ad-hoc decision logic without defining a
// type.
type PolicyFunc func(s Status) Decision

// Decide calls the underlying function.
func (f PolicyFunc) Decide(s Status) Decision { return f(s) }
