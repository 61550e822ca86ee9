package jobcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fast = Options{MaxRetries: 3, InitialInterval: time.Millisecond}

func TestBegin_SetsMetadata(t *testing.T) {
	ctx, cancel := Begin(context.Background(), "rsvp_digest", time.Minute)
	defer cancel()

	meta, ok := FromContext(ctx)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, meta.JobID)
	assert.Equal(t, "rsvp_digest", meta.JobType)
	assert.Len(t, Fields(ctx), 3)

	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)

	assert.Nil(t, Fields(context.Background()))
}

func TestRun_RetriesTransientErrors(t *testing.T) {
	ctx, cancel := Begin(context.Background(), "test", time.Minute)
	defer cancel()

	calls := 0
	err := Run(ctx, fast, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	meta, _ := FromContext(ctx)
	assert.Equal(t, 2, meta.Attempt)
}

func TestRun_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := Run(context.Background(), fast, func(context.Context) error {
		calls++
		return errors.New("invalid rsvp digest schedule")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRun_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := Run(context.Background(), fast, func(context.Context) error {
		calls++
		return errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
	assert.Equal(t, 4, calls)
}

func TestRun_RecoversPanics(t *testing.T) {
	err := Run(context.Background(), fast, func(context.Context) error {
		panic("boom")
	})
	assert.ErrorContains(t, err, "panic recovered: boom")
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.True(t, IsRetryableError(errors.New("read: connection reset by peer")))
	assert.True(t, IsRetryableError(errors.New("FATAL: sorry, too many clients already (SQLSTATE 53300)")))
	assert.False(t, IsRetryableError(errors.New("record not found")))
}
