package zapobs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/budokans/retry"
	"github.com/budokans/retry/zapobs"
)

func TestHooksLogRetries(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	hooks := zapobs.Hooks(zap.New(core))

	p := retry.Observe(retry.Pipe(
		retry.ConstantDelay(time.Second),
		retry.MergeWith(retry.LimitRetries(2)),
	), hooks)

	retry.DryRun(p)

	retries := logs.FilterMessage("retrying").All()
	require.Len(t, retries, 2)
	require.Equal(t, zapcore.DebugLevel, retries[0].Level)
	require.Equal(t, int64(0), retries[0].ContextMap()["iteration"])
	require.Equal(t, time.Second, retries[0].ContextMap()["delay"])
	require.Equal(t, int64(1), retries[1].ContextMap()["iteration"])
}

func TestHooksLogGiveUp(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	hooks := zapobs.Hooks(zap.New(core))

	p := retry.Observe(retry.LimitRetries(0), hooks)

	retry.DryRun(p)

	giveUps := logs.FilterMessage("giving up").All()
	require.Len(t, giveUps, 1)
	require.Equal(t, zapcore.WarnLevel, giveUps[0].Level)
	require.Equal(t, int64(0), giveUps[0].ContextMap()["iteration"])
}

func TestHooksReturnsNonNil(t *testing.T) {
	t.Parallel()

	require.NotNil(t, zapobs.Hooks(zap.NewNop()))
}
