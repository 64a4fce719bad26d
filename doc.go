// Package retry provides a small combinator algebra for retry policies.
//
// A Policy is a pure decision function: given the Status of a retry
// sequence it returns a Decision, either After(d) (retry after delay d)
// or Stop(). Primitives like ConstantDelay, ExponentialBackoff and
// LimitRetries build simple policies; combinators like Merge, CapDelay
// and Pipe build complex ones from simple ones. DryRun and Simulate
// exercise a policy without performing real waits, producing the exact
// sequence of decisions it would make.
//
// The package never sleeps and never runs the guarded operation: a caller
// owning the retry loop applies the policy each iteration, waits for the
// returned delay, and stops when the policy returns Stop.
package retry
