package retry

import "time"

// Pattern: Decorator — each combinator wraps one or more policies, forming
// composable decision logic where the wrapped policies stay untouched.

// ---------------------------------------------------------------------------
// Merge
// ---------------------------------------------------------------------------

// mergePolicy evaluates every constituent policy and combines the results.
type mergePolicy struct {
	policies []Policy
}

func (m *mergePolicy) Decide(s Status) Decision {
	var delay time.Duration
	for _, p := range m.policies {
		d := p.Decide(s)
		if !d.Continue() {
			return Stop()
		}
		delay = max(delay, d.Delay())
	}

	return After(delay)
}

// Merge combines policies into one that satisfies all of them at once.
// For a given status it evaluates every constituent independently: if any
// says stop, the merged policy stops; if all continue, the merged delay is
// the maximum of the individual delays, so the longer wait satisfies every
// constraint.
//
// The merge is associative and commutative — grouping and argument order
// never change the per-status decision. Merge() with zero policies returns
// the merge identity, a policy that always retries immediately.
func Merge(policies ...Policy) Policy {
	return &mergePolicy{policies: policies}
}

// ---------------------------------------------------------------------------
// CapDelay
// ---------------------------------------------------------------------------

// capDelay clamps the inner policy's delay to max.
type capDelay struct {
	inner Policy
	max   time.Duration
}

func (p *capDelay) Decide(s Status) Decision {
	d := p.inner.Decide(s)
	if !d.Continue() {
		return Stop()
	}

	return After(min(p.max, d.Delay()))
}

// ---------------------------------------------------------------------------
// GiveUpAfter
// ---------------------------------------------------------------------------

// giveUpAfter stops once the inner policy's delay exceeds threshold.
type giveUpAfter struct {
	inner     Policy
	threshold time.Duration
}

func (p *giveUpAfter) Decide(s Status) Decision {
	d := p.inner.Decide(s)
	if !d.Continue() || d.Delay() > p.threshold {
		return Stop()
	}

	return d
}

// ---------------------------------------------------------------------------
// Combinator and Pipe — left-to-right composition
// ---------------------------------------------------------------------------

// Combinator transforms one policy into another. Combinators are applied
// left to right by [Pipe]: each consumes the previous result as its input.
type Combinator func(Policy) Policy

// Pipe applies combinators to base from left to right and returns the
// resulting policy.
//
// Pipe(base, a, b, c) produces c(b(a(base))) — a modifies base first, c
// modifies last. Pipe(base) with zero combinators returns base unchanged.
func Pipe(base Policy, combinators ...Combinator) Policy {
	p := base
	for _, c := range combinators {
		p = c(p)
	}

	return p
}

// MergeWith returns a [Combinator] that merges the piped policy with other
// under [Merge] semantics.
func MergeWith(other Policy) Combinator {
	return func(p Policy) Policy {
		return Merge(p, other)
	}
}

// CapDelay returns a [Combinator] that clamps the piped policy's delay to
// at most maxDelay. A stop decision passes through unchanged: the cap never
// resurrects a policy that has given up. Capping twice with the same
// maxDelay is the same as capping once.
func CapDelay(maxDelay time.Duration) Combinator {
	return func(p Policy) Policy {
		return &capDelay{inner: p, max: maxDelay}
	}
}

// GiveUpAfter returns a [Combinator] that stops retrying as soon as the
// piped policy asks for a delay longer than threshold. It is the cutoff
// counterpart of [CapDelay]: where the cap clamps an excessive delay, this
// treats it as the signal to give up.
func GiveUpAfter(threshold time.Duration) Combinator {
	return func(p Policy) Policy {
		return &giveUpAfter{inner: p, threshold: threshold}
	}
}
