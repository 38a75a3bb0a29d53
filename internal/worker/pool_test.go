package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPool_SameKeyKeepsOrder(t *testing.T) {
	pool := NewPool(zap.NewNop(), 4, 0)
	pool.Start(context.Background())

	var mu sync.Mutex
	seen := map[string][]int{}

	keys := []string{"local", "remote", "audit"}
	for i := 0; i < 200; i++ {
		for _, key := range keys {
			key, i := key, i
			require.True(t, pool.Submit(key, func(ctx context.Context) {
				mu.Lock()
				seen[key] = append(seen[key], i)
				mu.Unlock()
			}))
		}
	}
	pool.Stop()

	for _, key := range keys {
		got := seen[key]
		require.Len(t, got, 200, key)
		for i, v := range got {
			assert.Equal(t, i, v, "key %s out of order", key)
		}
	}
}

func TestPool_StopDrainsQueue(t *testing.T) {
	pool := NewPool(zap.NewNop(), 2, 100)
	pool.Start(context.Background())

	var done atomic.Int32
	for i := 0; i < 50; i++ {
		pool.Submit(fmt.Sprintf("k%d", i%5), func(ctx context.Context) {
			time.Sleep(time.Millisecond)
			done.Add(1)
		})
	}

	pool.Stop()
	assert.Equal(t, int32(50), done.Load())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := NewPool(zap.NewNop(), 1, 1)
	pool.Start(context.Background())
	pool.Stop()

	ran := false
	assert.False(t, pool.Submit("local", func(ctx context.Context) { ran = true }))
	assert.False(t, ran)

	assert.NotPanics(t, pool.Stop)
}

func TestPool_PanicDoesNotKillWorker(t *testing.T) {
	pool := NewPool(zap.NewNop(), 1, 0)
	pool.Start(context.Background())

	var ran atomic.Bool
	pool.Submit("k", func(ctx context.Context) { panic("boom") })
	pool.Submit("k", func(ctx context.Context) { ran.Store(true) })
	pool.Stop()

	assert.True(t, ran.Load())
}

func TestPool_JobsSeeContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(zap.NewNop(), 1, 0)
	pool.Start(ctx)
	cancel()

	var sawCancel atomic.Bool
	pool.Submit("k", func(ctx context.Context) { sawCancel.Store(ctx.Err() != nil) })
	pool.Stop()

	assert.True(t, sawCancel.Load())
}

func TestPool_TrySubmit(t *testing.T) {
	pool := NewPool(zap.NewNop(), 1, 1)

	noop := func(ctx context.Context) {}
	require.NoError(t, pool.TrySubmit("k", noop))
	assert.ErrorIs(t, pool.TrySubmit("k", noop), ErrQueueFull)

	pool.Start(context.Background())
	pool.Stop()
	assert.ErrorIs(t, pool.TrySubmit("k", noop), ErrStopped)
}
