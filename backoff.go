package retry

import (
	"math"
	"math/rand/v2"
	"time"
)

// ---------------------------------------------------------------------------
// ConstantDelay
// ---------------------------------------------------------------------------

// constantDelay yields the same delay for every status.
type constantDelay struct {
	d time.Duration
}

func (p *constantDelay) Decide(_ Status) Decision { return After(p.d) }

// ConstantDelay returns a [Policy] that retries forever, spacing every
// attempt by the fixed delay d. It never stops on its own; combine it with
// [LimitRetries] (or break out of [Simulate]) before dry-running it.
// d should be non-negative.
func ConstantDelay(d time.Duration) Policy {
	return &constantDelay{d: d}
}

// ---------------------------------------------------------------------------
// ExponentialBackoff
// ---------------------------------------------------------------------------

// exponentialBackoff yields base * 2^iterations.
type exponentialBackoff struct {
	base time.Duration
}

func (p *exponentialBackoff) Decide(s Status) Decision {
	return After(time.Duration(float64(p.base) * math.Pow(2, float64(s.Iterations))))
}

// ExponentialBackoff returns a [Policy] whose delay doubles with each
// iteration: base * 2^iterations, starting at base for iteration 0. It never
// stops on its own and its growth is unbounded unless capped with
// [CapDelay].
func ExponentialBackoff(base time.Duration) Policy {
	return &exponentialBackoff{base: base}
}

// ---------------------------------------------------------------------------
// LinearBackoff
// ---------------------------------------------------------------------------

// linearBackoff yields step * (iterations + 1).
type linearBackoff struct {
	step time.Duration
}

func (p *linearBackoff) Decide(s Status) Decision {
	return After(p.step * time.Duration(s.Iterations+1))
}

// LinearBackoff returns a [Policy] whose delay grows linearly:
// step * (iterations + 1). It never stops on its own.
func LinearBackoff(step time.Duration) Policy {
	return &linearBackoff{step: step}
}

// ---------------------------------------------------------------------------
// ExponentialJitter
// ---------------------------------------------------------------------------

// exponentialJitter yields a random delay in [0, base * 2^iterations].
type exponentialJitter struct {
	base time.Duration
}

func (p *exponentialJitter) Decide(s Status) Decision {
	max := int64(float64(p.base) * math.Pow(2, float64(s.Iterations)))
	if max <= 0 {
		return After(0)
	}

	return After(time.Duration(rand.Int64N(max + 1)))
}

// ExponentialJitter returns a [Policy] whose delay is a random duration
// uniformly distributed in [0, base * 2^iterations]. This prevents
// thundering-herd problems by spreading retries across time. It never stops
// on its own.
func ExponentialJitter(base time.Duration) Policy {
	return &exponentialJitter{base: base}
}
