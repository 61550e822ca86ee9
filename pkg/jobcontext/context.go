package jobcontext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type keyContext string

const keyJob keyContext = "job"

// Metadata describes one run of a background job
type Metadata struct {
	JobID     uuid.UUID
	JobType   string
	Attempt   int
	StartTime time.Time
}

// Options tunes retries of a job run
type Options struct {
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
}

// Begin derives a job context carrying fresh metadata and a timeout
func Begin(parent context.Context, jobType string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	meta := &Metadata{
		JobID:     uuid.New(),
		JobType:   jobType,
		StartTime: time.Now(),
	}
	return context.WithValue(ctx, keyJob, meta), cancel
}

// FromContext returns the metadata set by Begin
func FromContext(ctx context.Context) (*Metadata, bool) {
	meta, ok := ctx.Value(keyJob).(*Metadata)
	return meta, ok
}

// Fields returns the log fields of the job in ctx
func Fields(ctx context.Context) []zap.Field {
	meta, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("job_id", meta.JobID.String()),
		zap.String("job_type", meta.JobType),
		zap.Int("attempt", meta.Attempt),
	}
}

// Run executes fn, retrying transient failures with exponential backoff.
// Panics are turned into errors. Errors IsRetryableError rejects stop the loop immediately.
func Run(ctx context.Context, opts Options, fn func(context.Context) error) error {
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 5 * time.Second
	}

	meta, _ := FromContext(ctx)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = opts.InitialInterval
	policy.MaxInterval = time.Minute
	policy.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		if meta != nil {
			meta.Attempt = attempt
		}
		attempt++

		err := safeCall(ctx, fn)
		if err == nil {
			return nil
		}
		if !IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, opts.MaxRetries), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return fmt.Errorf("job failed after %d attempt(s): %w", attempt, err)
	}
	return nil
}

func safeCall(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()
	return fn(ctx)
}

// IsRetryableError checks if an error looks transient: network, timeout or lock contention
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	for _, marker := range []string{
		// network
		"connection refused",
		"connection reset",
		"network unreachable",
		"no such host",
		"i/o timeout",
		"broken pipe",
		// postgres serialization_failure, deadlock_detected, too_many_connections
		"deadlock",
		"40001",
		"40p01",
		"53300",
		"temporary failure",
		"try again",
	} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}
