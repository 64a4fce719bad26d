package retry

// limitRetries stops once the attempt count reaches max.
type limitRetries struct {
	max int
}

func (p *limitRetries) Decide(s Status) Decision {
	if s.Iterations >= p.max {
		return Stop()
	}

	return After(0)
}

// LimitRetries returns a [Policy] that allows up to maxAttempts attempts:
// it yields a zero delay while fewer than maxAttempts attempts have been
// made and Stop() afterwards. It is a pure attempt-count gate and imposes
// no delay of its own; merge it with a backoff policy to add spacing.
func LimitRetries(maxAttempts int) Policy {
	return &limitRetries{max: maxAttempts}
}
