package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/async"
)

func TestAsyncAwait(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), 6, func(_ context.Context, n int) (int, error) {
		return n * 7, nil
	})

	result, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.True(t, future.IsComplete())
}

func TestAsyncPropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	future := async.Async(context.Background(), "in", func(_ context.Context, s string) (string, error) {
		return "", boom
	})

	_, err := future.Await()
	require.ErrorIs(t, err, boom)
}

func TestAsyncPreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	future := async.Async(ctx, 0, func(context.Context, int) (int, error) {
		ran = true
		return 1, nil
	})

	_, err := future.Await()
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran, "function must not run under a pre-cancelled context")
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 1, nil
	})

	_, err := future.AwaitWithTimeout(20 * time.Millisecond)
	require.ErrorIs(t, err, async.ErrTimeout)

	close(release)
	result, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	futures := make([]*async.Future[int], 5)
	for i := range futures {
		futures[i] = async.Async(context.Background(), i, func(_ context.Context, n int) (int, error) {
			return n * n, nil
		})
	}

	results, err := async.WaitAll(futures...)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, results)
}

func TestWaitAllFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ok := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		return 1, nil
	})
	failing := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		return 0, boom
	})

	_, err := async.WaitAll(ok, failing)
	require.ErrorIs(t, err, boom)
}
