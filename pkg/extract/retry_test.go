package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/reconcile"
)

// fakeSleeper records requested pauses without waiting.
type fakeSleeper struct {
	pauses []time.Duration
}

func (s *fakeSleeper) sleep(_ context.Context, d time.Duration) error {
	s.pauses = append(s.pauses, d)
	return nil
}

func testPolicy(sleeper *fakeSleeper) RetryPolicy {
	policy := DefaultRetryPolicy()
	policy.Timeout = 0 // no real deadlines in tests
	policy.Sleep = sleeper.sleep
	return policy
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	sleeper := &fakeSleeper{}
	calls := 0

	records, err := testPolicy(sleeper).Do(context.Background(), func(context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		return []reconcile.CandidateRecord{{"model_id": "gpt-4o"}}, nil
	})

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.pauses)
}

func TestRetryOnceThenSucceed(t *testing.T) {
	sleeper := &fakeSleeper{}
	calls := 0

	records, err := testPolicy(sleeper).Do(context.Background(), func(context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient failure")
		}
		return []reconcile.CandidateRecord{{"model_id": "gpt-4o"}}, nil
	})

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, calls)
	require.Len(t, sleeper.pauses, 1)
	assert.Equal(t, DefaultRetryPolicy().ErrorBackoff, sleeper.pauses[0])
}

func TestRetryBudgetExhausted(t *testing.T) {
	sleeper := &fakeSleeper{}
	calls := 0
	boom := errors.New("still broken")

	_, err := testPolicy(sleeper).Do(context.Background(), func(context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	// Two attempts total, one backoff between them, no pause after the last.
	assert.Equal(t, 2, calls)
	assert.Len(t, sleeper.pauses, 1)
}

func TestRetryTimeoutUsesTimeoutBackoff(t *testing.T) {
	sleeper := &fakeSleeper{}
	calls := 0

	_, err := testPolicy(sleeper).Do(context.Background(), func(context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		return nil, context.DeadlineExceeded
	})

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, sleeper.pauses, 1)
	assert.Equal(t, DefaultRetryPolicy().TimeoutBackoff, sleeper.pauses[0])
}

func TestRetryNeverRetriesRateLimits(t *testing.T) {
	sleeper := &fakeSleeper{}
	calls := 0

	_, err := testPolicy(sleeper).Do(context.Background(), func(context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		return nil, errors.NewAPIError("openai", 429, "slow down")
	})

	assert.True(t, errors.IsRateLimited(err))
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.pauses)
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sleeper := &fakeSleeper{}
	calls := 0

	_, err := testPolicy(sleeper).Do(ctx, func(context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		cancel()
		return nil, errors.New("failed")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryAppliesPerCallTimeout(t *testing.T) {
	policy := DefaultRetryPolicy()
	policy.Timeout = 10 * time.Millisecond
	policy.Sleep = (&fakeSleeper{}).sleep

	calls := 0
	_, err := policy.Do(context.Background(), func(ctx context.Context) ([]reconcile.CandidateRecord, error) {
		calls++
		<-ctx.Done()
		return nil, ctx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, calls)
}
