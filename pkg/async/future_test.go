package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtckit/pkg/async"
)

func TestAsync_Await(t *testing.T) {
	future := async.Async(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	value, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.True(t, future.IsComplete())
}

func TestAsync_Error(t *testing.T) {
	wantErr := errors.New("boom")
	future := async.Async(context.Background(), func(ctx context.Context) (string, error) {
		return "", wantErr
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, wantErr)
}

func TestAsync_PreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	future := async.Async(ctx, func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAwaitWithTimeout(t *testing.T) {
	release := make(chan struct{})
	future := async.Async(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	})

	_, err := future.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, future.IsComplete())

	// The computation keeps running; a later Await still yields the result.
	close(release)
	value, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestWaitAll(t *testing.T) {
	fn := func(n int) *async.Future[int] {
		return async.Async(context.Background(), func(ctx context.Context) (int, error) {
			return n * n, nil
		})
	}

	results, err := async.WaitAll(fn(1), fn(2), fn(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, results)
}

func TestWaitAll_FirstError(t *testing.T) {
	wantErr := errors.New("second failed")

	ok := async.Async(context.Background(), func(ctx context.Context) (int, error) {
		return 1, nil
	})
	failing := async.Async(context.Background(), func(ctx context.Context) (int, error) {
		return 0, wantErr
	})

	_, err := async.WaitAll(ok, failing)
	assert.ErrorIs(t, err, wantErr)
}
