package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/circulationstore"
	"github.com/bookhive/circulation-go/lending/shared/shell"
)

var errPermanent = errors.New("a permanent failure")

func Test_RetryWithExponentialBackoff_SucceedsOnFirstAttempt(t *testing.T) {
	// arrange
	calls := 0

	// act
	metrics, err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		calls++
		return nil
	})

	// assert
	assert.NoError(t, err, "Should succeed without retries")
	assert.Equal(t, 1, calls, "Function should run exactly once")
	assert.Equal(t, 1, metrics.Attempts, "Metrics should report one attempt")
	assert.Equal(t, "none", metrics.LastErrorType, "No error type should be recorded")
	assert.Zero(t, metrics.TotalDelay, "No backoff delay should accumulate")
}

func Test_RetryWithExponentialBackoff_RetriesConcurrencyConflicts(t *testing.T) {
	// arrange
	calls := 0

	// act
	metrics, err := shell.RetryWithExponentialBackoff(
		context.Background(),
		func(_ context.Context) error {
			calls++
			if calls < 3 {
				return circulationstore.ErrConcurrencyConflict
			}
			return nil
		},
		shell.WithBaseDelay(time.Millisecond),
		shell.WithJitterFactor(0),
	)

	// assert
	assert.NoError(t, err, "Should succeed after retries")
	assert.Equal(t, 3, calls, "Function should run until it succeeds")
	assert.Equal(t, 3, metrics.Attempts, "Metrics should count every attempt")
	assert.False(t, metrics.RetriesExhausted, "Retries should not be exhausted")
	assert.Positive(t, metrics.TotalDelay, "Backoff delay should accumulate")
}

func Test_RetryWithExponentialBackoff_FailsFast_OnNonRetryableError(t *testing.T) {
	// arrange
	calls := 0

	// act
	metrics, err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		calls++
		return errPermanent
	})

	// assert
	assert.ErrorIs(t, err, errPermanent, "The permanent error should surface")
	assert.Equal(t, 1, calls, "A non-retryable error must not be retried")
	assert.Equal(t, "other", metrics.LastErrorType, "Error type should be classified")
}

func Test_RetryWithExponentialBackoff_NeverRetriesInventoryInconsistency(t *testing.T) {
	// arrange
	calls := 0

	// act
	metrics, err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
		calls++
		return circulationstore.ErrInventoryInconsistent
	})

	// assert
	assert.ErrorIs(t, err, circulationstore.ErrInventoryInconsistent, "The inconsistency should surface")
	assert.Equal(t, 1, calls, "An inconsistency must fail fast")
	assert.Equal(t, "inventory_inconsistent", metrics.LastErrorType, "Error type should be classified")
	assert.False(t, metrics.RetriesExhausted, "Failing fast is not retry exhaustion")
}

func Test_RetryWithExponentialBackoff_ReportsExhaustion_WhenConflictPersists(t *testing.T) {
	// arrange
	calls := 0

	// act
	metrics, err := shell.RetryWithExponentialBackoff(
		context.Background(),
		func(_ context.Context) error {
			calls++
			return circulationstore.ErrConcurrencyConflict
		},
		shell.WithMaxAttempts(3),
		shell.WithBaseDelay(time.Millisecond),
		shell.WithJitterFactor(0),
	)

	// assert
	assert.ErrorIs(t, err, circulationstore.ErrConcurrencyConflict, "The final conflict should surface")
	assert.Equal(t, 3, calls, "Every configured attempt should be used")
	assert.Equal(t, 3, metrics.Attempts, "Metrics should count every attempt")
	assert.True(t, metrics.RetriesExhausted, "Exhaustion should be reported")
	assert.Equal(t, "concurrency_conflict", metrics.LastErrorType, "Error type should be classified")
}

func Test_RetryWithExponentialBackoff_StopsWaiting_WhenContextIsCanceled(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	// act
	_, err := shell.RetryWithExponentialBackoff(
		ctx,
		func(_ context.Context) error {
			calls++
			cancel() // cancel while the retry loop would back off
			return circulationstore.ErrConcurrencyConflict
		},
		shell.WithBaseDelay(time.Second),
	)

	// assert
	assert.ErrorIs(t, err, context.Canceled, "Cancellation should surface instead of the conflict")
	assert.Equal(t, 1, calls, "No further attempt should run after cancellation")
}

func Test_RetryWithExponentialBackoff_RejectsInvalidOptions(t *testing.T) {
	testCases := []struct {
		name        string
		option      shell.RetryOption
		expectedErr error
	}{
		{
			name:        "zero max attempts",
			option:      shell.WithMaxAttempts(0),
			expectedErr: shell.ErrInvalidMaxAttempts,
		},
		{
			name:        "negative base delay",
			option:      shell.WithBaseDelay(-time.Millisecond),
			expectedErr: shell.ErrNegativeBaseDelay,
		},
		{
			name:        "jitter factor above one",
			option:      shell.WithJitterFactor(1.5),
			expectedErr: shell.ErrInvalidJitterFactor,
		},
		{
			name:        "nil metrics collector",
			option:      shell.WithMetrics(nil, "SomeCommand"),
			expectedErr: shell.ErrNilMetricsCollector,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := shell.RetryWithExponentialBackoff(context.Background(), func(_ context.Context) error {
				return nil
			}, tc.option)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr, "Invalid option should be rejected")
		})
	}
}
