package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
		RetryableFunc: func(err error) bool {
			return errors.Is(err, errTransient)
		},
	}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := New(fastConfig(3)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_StopsOnNonRetryable(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := New(fastConfig(3)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := New(fastConfig(2)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	})

	var limitErr *RetryLimitError
	assert.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 3, limitErr.Attempts)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(fastConfig(2)).Execute(ctx, func(ctx context.Context) error {
		t.Fatal("function should not run")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CappedByMaxDelay(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2})

	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
