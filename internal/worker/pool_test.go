package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context) error { return nil }

func TestPool_RunsEveryJob(t *testing.T) {
	pool := NewPool(3, 8)
	pool.Start()
	defer pool.Stop()

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		require.True(t, pool.Enqueue(JobFunc(func(context.Context) error {
			defer wg.Done()
			ran.Add(1)
			return nil
		})))
	}
	wg.Wait()
	assert.EqualValues(t, 20, ran.Load())
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1).WithJobTimeout(20 * time.Millisecond)
	pool.Start()
	defer pool.Stop()

	done := make(chan error, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job context never expired")
	}
}

func TestPool_WorkerSurvivesFailures(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	after := make(chan struct{})
	pool.Enqueue(JobFunc(func(context.Context) error { panic("cleanup exploded") }))
	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("sample failed") }))
	pool.Enqueue(JobFunc(func(context.Context) error {
		close(after)
		return nil
	}))

	select {
	case <-after:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after a failing job")
	}
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	assert.NotPanics(t, pool.Stop)

	assert.False(t, pool.Enqueue(JobFunc(noop)))
	assert.False(t, pool.TryEnqueue(JobFunc(noop)))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	// not started, so nothing drains the queue
	pool := NewPool(1, 1)

	assert.True(t, pool.TryEnqueue(JobFunc(noop)))
	assert.False(t, pool.TryEnqueue(JobFunc(noop)))
}

func TestNewPool_ClampsWorkers(t *testing.T) {
	assert.Equal(t, 1, NewPool(0, 1).workers)
}
