package extract

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/llmring/registry/pkg/constants"
	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/reconcile"
)

// RetryPolicy bounds retries around a single document extraction. The
// policy is decoupled from the pipeline so it can be exercised with a fake
// sleeper and a canned engine.
//
// Rate-limited calls are never retried; hammering a throttled API only
// extends the ban. Everything else gets exactly one more attempt after a
// short fixed backoff, then the document is skipped.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, first try included.
	MaxAttempts int

	// Timeout is the per-call budget.
	Timeout time.Duration

	// TimeoutBackoff is the pause after a timed-out attempt.
	TimeoutBackoff time.Duration

	// ErrorBackoff is the pause after any other failed attempt.
	ErrorBackoff time.Duration

	// Sleep pauses between attempts. Nil uses a context-aware sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the standard document retry budget.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    constants.MaxExtractionAttempts,
		Timeout:        constants.ExtractionTimeout,
		TimeoutBackoff: constants.TimeoutRetryBackoff,
		ErrorBackoff:   constants.ErrorRetryBackoff,
	}
}

func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs one document extraction under the policy and returns the records
// from the first successful attempt.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) ([]reconcile.CandidateRecord, error)) ([]reconcile.CandidateRecord, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		records, err := p.attempt(ctx, fn)
		if err == nil {
			return records, nil
		}
		lastErr = err

		if errors.IsRateLimited(err) {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if attempt == attempts {
			break
		}

		backoff := p.ErrorBackoff
		if isTimeout(err) {
			backoff = p.TimeoutBackoff
		}
		if err := p.sleep(ctx, backoff); err != nil {
			break
		}
	}
	return nil, lastErr
}

func (p RetryPolicy) attempt(ctx context.Context, fn func(ctx context.Context) ([]reconcile.CandidateRecord, error)) ([]reconcile.CandidateRecord, error) {
	if p.Timeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return fn(callCtx)
}

func isTimeout(err error) bool {
	return errors.IsTimeout(err) || stderrors.Is(err, context.DeadlineExceeded)
}
