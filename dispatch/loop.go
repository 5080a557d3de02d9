// Package dispatch provides the execution contexts that cell notifications
// are delivered on.
package dispatch

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopStopped is returned when work is submitted to a stopped loop
var ErrLoopStopped = errors.New("event loop is stopped")

// Scheduler runs work on a particular execution context
type Scheduler interface {
	// Submit schedules work; it may run before or after Submit returns
	Submit(work func()) error
}

// Loop runs submitted work one item at a time, in submission order, on a
// single goroutine. It plays the role of a UI main thread.
type Loop struct {
	workChan chan func()
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
	done     chan struct{}
}

// NewLoop starts a loop with the given queue capacity
func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}

	loop := &Loop{
		workChan: make(chan func(), buffer),
		done:     make(chan struct{}),
	}

	go loop.run()

	return loop
}

// run processes work from the channel until it is closed
func (l *Loop) run() {
	defer close(l.done)

	for work := range l.workChan {
		if work != nil {
			work()
		}
	}
}

// Submit queues work. It blocks while the queue is full. Work submitted from
// inside the loop itself must not fill the queue, or the loop deadlocks.
func (l *Loop) Submit(work func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.stopped {
		return ErrLoopStopped
	}

	l.workChan <- work
	return nil
}

// Stop refuses new work, drains what is already queued and waits for the
// loop goroutine to exit or ctx to end.
func (l *Loop) Stop(ctx context.Context) error {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		close(l.workChan)
		l.mu.Unlock()
	})

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inline runs work immediately on the submitting goroutine. It suits callers
// that already serialize their own access, and tests.
type Inline struct{}

// Submit runs work before returning
func (Inline) Submit(work func()) error {
	if work != nil {
		work()
	}
	return nil
}
