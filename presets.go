package retry

import "time"

// Pattern: Factory Function — each preset produces a ready-made policy for
// a common use case, avoiding boilerplate composition.

// StandardHTTPRetry returns a policy suitable for a typical HTTP client:
// 3 attempts with 100ms exponential backoff capped at 5s.
func StandardHTTPRetry() Policy {
	return Pipe(
		ExponentialBackoff(100*time.Millisecond),
		MergeWith(LimitRetries(3)),
		CapDelay(5*time.Second),
	)
}

// AggressiveHTTPRetry returns a policy for latency-sensitive HTTP clients:
// 5 attempts with jittered 50ms exponential backoff, at least 10ms between
// attempts, capped at 2s.
func AggressiveHTTPRetry() Policy {
	return Pipe(
		ExponentialJitter(50*time.Millisecond),
		MergeWith(ConstantDelay(10*time.Millisecond)),
		MergeWith(LimitRetries(5)),
		CapDelay(2*time.Second),
	)
}

// PatientBatchRetry returns a policy for background batch work: 10 attempts
// with 1s linear backoff, giving up early if the computed delay ever
// exceeds 30s.
func PatientBatchRetry() Policy {
	return Pipe(
		LinearBackoff(time.Second),
		MergeWith(LimitRetries(10)),
		GiveUpAfter(30*time.Second),
	)
}
