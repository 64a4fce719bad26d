package retry

// policyError is the concrete type backing all sentinel errors.
type policyError string

// Sentinel configuration errors. The decision core itself is total and
// never returns an error; these surface only from [LoadConfig] and
// [BuildPolicy].
var (
	// ErrMissingBackoff is returned when a policy config has no backoff
	// strategy name.
	ErrMissingBackoff error = policyError("missing backoff strategy")
	// ErrUnknownBackoff is returned when the backoff strategy name is not
	// recognised.
	ErrUnknownBackoff error = policyError("unknown backoff strategy")
	// ErrMissingBaseDelay is returned when a policy config has no base
	// delay.
	ErrMissingBaseDelay error = policyError("missing base_delay")
	// ErrInvalidMaxAttempts is returned when max_attempts is zero or
	// negative.
	ErrInvalidMaxAttempts error = policyError("max_attempts must be positive")
)

func (e policyError) Error() string { return string(e) }
