package dispatch

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsInSubmissionOrder(t *testing.T) {
	loop := NewLoop(4)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 50; i++ {
		require.NoError(t, loop.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}

	require.NoError(t, loop.Stop(context.Background()))

	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestLoopRunsWorkOneAtATime(t *testing.T) {
	loop := NewLoop(8)

	var running, maxRunning int
	var mu sync.Mutex
	for i := 0; i < 20; i++ {
		require.NoError(t, loop.Submit(func() {
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			runtime.Gosched()

			mu.Lock()
			running--
			mu.Unlock()
		}))
	}

	require.NoError(t, loop.Stop(context.Background()))
	assert.Equal(t, 1, maxRunning)
}

func TestLoopSubmitAfterStop(t *testing.T) {
	loop := NewLoop(1)
	require.NoError(t, loop.Stop(context.Background()))

	err := loop.Submit(func() {})
	assert.ErrorIs(t, err, ErrLoopStopped)

	assert.NoError(t, loop.Stop(context.Background()), "stop is idempotent")
}

func TestLoopStopHonoursContext(t *testing.T) {
	loop := NewLoop(1)
	release := make(chan struct{})
	require.NoError(t, loop.Submit(func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := loop.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	assert.NoError(t, loop.Stop(context.Background()))
}

func TestInline(t *testing.T) {
	ran := false
	require.NoError(t, Inline{}.Submit(func() { ran = true }))
	assert.True(t, ran)
	assert.NoError(t, Inline{}.Submit(nil))
}
