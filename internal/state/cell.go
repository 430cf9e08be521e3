// Package state provides an observable value with replay-latest broadcast.
package state

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Cell holds a value and broadcasts every change to its subscribers.
//
// A new subscriber first receives the latest value, then every later change exactly once, in
// the order the changes were made. Deliveries are serialized: whichever goroutine finds the
// cell idle drains all queued events, so Set and Subscribe may be called from inside an
// observer without deadlocking. When another goroutine is already draining, Set returns after
// queueing and the draining goroutine performs the delivery.
type Cell[T any] struct {
	mu       sync.Mutex
	value    T
	current  T
	pending  []event[T]
	draining bool
	subs     []*subscription[T]
}

type event[T any] struct {
	value T
	// replay is set for a subscription request; value is ignored then.
	replay *subscription[T]
}

type subscription[T any] struct {
	fn       func(T)
	canceled atomic.Bool
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, current: initial}
}

// Get returns the most recently set value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.pending = append(c.pending, event[T]{value: v})
	c.drain()
}

// Update applies fn to the latest value and sets the result atomically with respect to other writers.
func (c *Cell[T]) Update(fn func(T) T) T {
	v, _ := c.UpdateIf(func(cur T) (T, bool) {
		return fn(cur), true
	})
	return v
}

// UpdateIf is Update where fn may decline the change. Nothing is broadcast when it does,
// and the unchanged latest value is returned.
func (c *Cell[T]) UpdateIf(fn func(T) (T, bool)) (T, bool) {
	c.mu.Lock()
	v, ok := fn(c.value)
	if !ok {
		cur := c.value
		c.mu.Unlock()
		return cur, false
	}

	c.value = v
	c.pending = append(c.pending, event[T]{value: v})
	c.drain()
	return v, true
}

// Subscribe registers fn and replays the latest value to it. The returned function
// unsubscribes; it is idempotent and safe to call from inside fn.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscription[T]{fn: fn}

	c.mu.Lock()
	c.pending = append(c.pending, event[T]{replay: sub})
	c.drain()

	return func() {
		if sub.canceled.Swap(true) {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subs = slices.DeleteFunc(c.subs, func(s *subscription[T]) bool { return s == sub })
	}
}

// Subscribers returns the number of live subscriptions.
func (c *Cell[T]) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.subs)
}

// drain must be called with c.mu held; it returns with c.mu released.
func (c *Cell[T]) drain() {
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true

	defer func() {
		if r := recover(); r != nil {
			c.mu.Lock()
			c.draining = false
			c.mu.Unlock()
			panic(r)
		}
	}()

	for len(c.pending) > 0 {
		ev := c.pending[0]
		c.pending = c.pending[1:]

		var (
			targets []*subscription[T]
			value   T
		)
		if ev.replay != nil {
			if ev.replay.canceled.Load() {
				continue
			}
			c.subs = append(c.subs, ev.replay)
			targets = []*subscription[T]{ev.replay}
			value = c.current
		} else {
			c.current = ev.value
			targets = slices.Clone(c.subs)
			value = ev.value
		}

		c.mu.Unlock()
		for _, s := range targets {
			if !s.canceled.Load() {
				s.fn(value)
			}
		}
		c.mu.Lock()
	}

	c.pending = nil
	c.draining = false
	c.mu.Unlock()
}
