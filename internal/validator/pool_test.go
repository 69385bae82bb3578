package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leocth/labrinth/internal/validator"
)

func TestPool_ReturnsOutcome(t *testing.T) {
	pool := validator.NewPool(2)

	res, err := pool.Do(context.Background(), func() (validator.Result, error) {
		return validator.Warning("careful"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, validator.Warning("careful"), res)

	want := validator.InvalidInput("nope")
	_, err = pool.Do(context.Background(), func() (validator.Result, error) {
		return validator.Result{}, want
	})
	assert.Same(t, want, err)
}

func TestPool_SchedulingFailure(t *testing.T) {
	pool := validator.NewPool(1)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = pool.Do(context.Background(), func() (validator.Result, error) {
			close(started)
			<-release
			return validator.Pass(), nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pool.Do(ctx, func() (validator.Result, error) {
		t.Fatal("must not run without a worker")
		return validator.Pass(), nil
	})
	verr := requireKind(t, err, validator.KindBlocking)
	assert.True(t, verr.Retryable())
	assert.True(t, errors.Is(err, context.Canceled))

	close(release)
	<-done

	res, err := pool.Do(context.Background(), func() (validator.Result, error) {
		return validator.Pass(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, validator.Pass(), res)
}

func TestPool_PanicIsBlockingError(t *testing.T) {
	pool := validator.NewPool(1)

	_, err := pool.Do(context.Background(), func() (validator.Result, error) {
		panic("boom")
	})
	requireKind(t, err, validator.KindBlocking)

	// The worker slot is released after a panic.
	res, err := pool.Do(context.Background(), func() (validator.Result, error) {
		return validator.Pass(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, validator.Pass(), res)
}
