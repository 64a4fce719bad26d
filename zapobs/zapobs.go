// Package zapobs adapts a zap logger into retry.Hooks, so that every policy
// decision is emitted as a structured log entry.
package zapobs

import (
	"time"

	"go.uber.org/zap"

	"github.com/budokans/retry"
)

// Hooks returns retry.Hooks that log every decision through logger.
// Retry decisions log at debug level with the iteration and chosen delay;
// give-up decisions log at warn level.
//
// Wrap a policy with retry.Observe to attach them:
//
//	p := retry.Observe(policy, zapobs.Hooks(logger))
func Hooks(logger *zap.Logger) *retry.Hooks {
	return &retry.Hooks{
		OnRetry: func(s retry.Status, delay time.Duration) {
			logger.Debug("retrying",
				zap.Int("iteration", s.Iterations),
				zap.Duration("delay", delay),
			)
		},
		OnGiveUp: func(s retry.Status) {
			logger.Warn("giving up",
				zap.Int("iteration", s.Iterations),
			)
		},
	}
}
