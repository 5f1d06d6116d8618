package dirsize

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedSize(size int64) SizeFunc {
	return func(ctx context.Context, path string) (int64, error) {
		return size, nil
	}
}

func TestNewWorkerPool(t *testing.T) {
	t.Run("creates_pool_with_specified_workers", func(t *testing.T) {
		pool := NewWorkerPool(3, fixedSize(0))
		defer pool.Close()
		assert.NotNil(t, pool)
		assert.Equal(t, 3, pool.workers)
	})

	t.Run("defaults_to_2_workers_for_invalid_input", func(t *testing.T) {
		pool := NewWorkerPool(0, fixedSize(0))
		defer pool.Close()
		assert.Equal(t, 2, pool.workers)
	})
}

func TestWorkerPool_Submit(t *testing.T) {
	t.Run("delivers_result", func(t *testing.T) {
		pool := NewWorkerPool(2, fixedSize(42))
		defer pool.Close()

		results := make(chan Result, 1)
		ok := pool.Submit(context.Background(), "/data", func(r Result) {
			results <- r
		})
		assert.True(t, ok)

		select {
		case r := <-results:
			assert.Equal(t, "/data", r.Path)
			assert.Equal(t, int64(42), r.Size)
			assert.NoError(t, r.Err)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for result")
		}
	})

	t.Run("propagates_errors", func(t *testing.T) {
		expected := errors.New("boom")
		pool := NewWorkerPool(1, func(ctx context.Context, path string) (int64, error) {
			return 0, expected
		})
		defer pool.Close()

		results := make(chan Result, 1)
		assert.True(t, pool.Submit(context.Background(), "/x", func(r Result) { results <- r }))
		r := <-results
		assert.True(t, errors.Is(r.Err, expected))
	})

	t.Run("cancelled_request_is_not_computed", func(t *testing.T) {
		var calls atomic.Int32
		pool := NewWorkerPool(1, func(ctx context.Context, path string) (int64, error) {
			calls.Add(1)
			return 1, nil
		})
		defer pool.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		results := make(chan Result, 1)
		assert.True(t, pool.Submit(ctx, "/x", func(r Result) { results <- r }))
		r := <-results
		assert.True(t, errors.Is(r.Err, context.Canceled))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("returns_false_after_close", func(t *testing.T) {
		pool := NewWorkerPool(2, fixedSize(0))
		pool.Close()
		assert.False(t, pool.Submit(context.Background(), "/test", nil))
	})

	t.Run("handles_concurrent_submissions", func(t *testing.T) {
		pool := NewWorkerPool(4, fixedSize(1))
		defer pool.Close()

		var callbackCount atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pool.Submit(context.Background(), "/test", func(r Result) {
					callbackCount.Add(1)
				})
			}()
		}

		wg.Wait()
		time.Sleep(200 * time.Millisecond)

		// Some requests may be dropped when the queue is full.
		assert.Greater(t, callbackCount.Load(), int32(0))
	})
}

func TestWorkerPool_Close(t *testing.T) {
	t.Run("cancels_running_calculation", func(t *testing.T) {
		started := make(chan struct{})
		pool := NewWorkerPool(1, func(ctx context.Context, path string) (int64, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})

		results := make(chan Result, 1)
		assert.True(t, pool.Submit(context.Background(), "/slow", func(r Result) { results <- r }))
		<-started

		pool.Close()

		r := <-results
		assert.True(t, errors.Is(r.Err, context.Canceled))
	})

	t.Run("is_idempotent", func(t *testing.T) {
		pool := NewWorkerPool(1, fixedSize(0))
		pool.Close()
		pool.Close()
	})
}
