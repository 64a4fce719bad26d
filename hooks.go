package retry

import "time"

// Hooks holds optional callback functions for policy decision events. All
// fields are nil by default; callers set only the hooks they care about.
// Once constructed, a Hooks value must not be mutated — emit methods read
// the function fields without synchronisation, which is safe as long as the
// struct is read-only after initialisation.
//
// Pattern: Observer — decouples decision events from consumers (logging,
// metrics, alerting) without policies knowing about observers.
type Hooks struct {
	// OnRetry fires when an observed policy decides to retry, with the
	// status it decided on and the delay it chose.
	OnRetry func(s Status, delay time.Duration)
	// OnGiveUp fires when an observed policy decides to stop.
	OnGiveUp func(s Status)
}

func (h *Hooks) emitRetry(s Status, delay time.Duration) {
	if h.OnRetry != nil {
		h.OnRetry(s, delay)
	}
}

func (h *Hooks) emitGiveUp(s Status) {
	if h.OnGiveUp != nil {
		h.OnGiveUp(s)
	}
}

// observed wraps a policy and emits a hook for every decision.
type observed struct {
	inner Policy
	hooks *Hooks
}

func (o *observed) Decide(s Status) Decision {
	d := o.inner.Decide(s)
	if d.Continue() {
		o.hooks.emitRetry(s, d.Delay())
	} else {
		o.hooks.emitGiveUp(s)
	}

	return d
}

// Observe wraps p so that every decision is reported through hooks before
// being returned unchanged. Observe(p, nil) returns p as-is.
func Observe(p Policy, hooks *Hooks) Policy {
	if hooks == nil {
		return p
	}

	return &observed{inner: p, hooks: hooks}
}
