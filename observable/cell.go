// Package observable provides a replay-latest value container with
// multi-observer fan-out.
package observable

import (
	"sync"
	"sync/atomic"

	"github.com/samber/mo"
)

// Observer receives every value pushed into a Cell
type Observer[T any] func(T)

// Cell holds the most recent value pushed into it and delivers it to every
// current and future observer until replaced.
//
// Deliveries of one cell never overlap: push rounds and subscribe replays are
// queued in the order the cell's value changed and drained by one goroutine
// at a time, in registration order within a round. Every observer therefore
// ends on the value the cell holds. A Push or Subscribe made while another
// goroutine is delivering returns once its deliveries are queued; that
// goroutine delivers them. Observers may subscribe, unsubscribe or read the
// cell while being notified.
type Cell[T any] struct {
	mu        sync.Mutex
	value     mo.Option[T]
	observers []*Subscription
	handlers  map[*Subscription]Observer[T]

	pending  []delivery[T]
	draining bool
}

// NewCell creates an empty cell
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{
		handlers: make(map[*Subscription]Observer[T]),
	}
}

// Push replaces the held value and notifies every registered observer
func (c *Cell[T]) Push(value T) {
	c.mu.Lock()
	c.value = mo.Some(value)
	for _, sub := range c.observers {
		c.pending = append(c.pending, delivery[T]{sub: sub, fn: c.handlers[sub], value: value})
	}
	c.drain()
}

// Subscribe registers fn. If the cell already holds a value, fn receives it
// before any later push; unless another goroutine is delivering, that
// happens before Subscribe returns.
func (c *Cell[T]) Subscribe(fn Observer[T]) *Subscription {
	sub := &Subscription{}
	sub.active.Store(true)
	sub.cancel = func() { c.remove(sub) }

	c.mu.Lock()
	c.observers = append(c.observers, sub)
	c.handlers[sub] = fn
	if value, ok := c.value.Get(); ok {
		c.pending = append(c.pending, delivery[T]{sub: sub, fn: fn, value: value})
	}
	c.drain()

	return sub
}

// Value returns the held value, if any value has been pushed
func (c *Cell[T]) Value() mo.Option[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Len returns the number of registered observers
func (c *Cell[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.observers)
}

type delivery[T any] struct {
	sub   *Subscription
	fn    Observer[T]
	value T
}

// drain must be called with mu held and returns with it released. Only the
// first caller delivers; re-entrant and concurrent callers leave their
// deliveries queued for it.
func (c *Cell[T]) drain() {
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true

	for len(c.pending) > 0 {
		d := c.pending[0]
		c.pending[0] = delivery[T]{}
		c.pending = c.pending[1:]
		c.mu.Unlock()

		if d.sub.Active() {
			d.fn(d.value)
		}

		c.mu.Lock()
	}

	c.pending = nil
	c.draining = false
	c.mu.Unlock()
}

func (c *Cell[T]) remove(sub *Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.observers {
		if s == sub {
			c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
			break
		}
	}
	delete(c.handlers, sub)
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	active atomic.Bool
	once   sync.Once
	cancel func()
}

// Unsubscribe stops delivery. It is safe to call more than once and from
// inside an observer.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.active.Store(false)
		s.cancel()
	})
}

// Active reports whether the subscription still receives values
func (s *Subscription) Active() bool {
	return s.active.Load()
}
