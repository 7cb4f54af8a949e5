package queue

import "sync"

var _ Queue[int] = (*Chan[int])(nil)

// Chan is a channel-based implementation of the same blocking contract as
// Bounded: a buffered channel carries the items and a separate done channel
// carries the shutdown signal, so blocked senders and receivers wake without
// the queue ever closing the item channel under a concurrent sender.
type Chan[T any] struct {
	ch   chan T
	done chan struct{}
	once sync.Once
}

// NewChan creates a channel-backed queue with exactly the given capacity.
// It panics if capacity < 1.
func NewChan[T any](capacity int) *Chan[T] {
	if capacity < 1 {
		panic("queue: capacity must be positive")
	}

	return &Chan[T]{
		ch:   make(chan T, capacity),
		done: make(chan struct{}),
	}
}

// Enqueue adds an item, blocking while the queue is full.
// Returns false without storing the item if the queue is shutting down.
func (c *Chan[T]) Enqueue(item T) bool {
	// Reject before attempting the send so an already-shut-down queue does
	// not admit new items just because a slot happens to be free.
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.ch <- item:
		return true
	case <-c.done:
		return false
	}
}

// Dequeue removes the oldest item, blocking while the queue is empty.
// After Shutdown it keeps draining buffered items and reports (zero, false)
// only once the channel is empty.
func (c *Chan[T]) Dequeue() (T, bool) {
	select {
	case item := <-c.ch:
		return item, true
	default:
	}

	select {
	case item := <-c.ch:
		return item, true
	case <-c.done:
		// Drain anything that raced in between the fast path and the wake.
		select {
		case item := <-c.ch:
			return item, true
		default:
			var zero T
			return zero, false
		}
	}
}

// TryEnqueue adds an item only if a slot is free right now.
func (c *Chan[T]) TryEnqueue(item T) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.ch <- item:
		return true
	default:
		return false
	}
}

// TryDequeue removes the oldest item only if one is buffered right now.
func (c *Chan[T]) TryDequeue() (T, bool) {
	select {
	case item := <-c.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Shutdown marks the queue as shutting down and wakes every blocked caller.
// Idempotent. Buffered items are untouched and remain drainable.
func (c *Chan[T]) Shutdown() {
	c.once.Do(func() { close(c.done) })
}

// IsEmpty reports whether the queue held no items at the time of the call.
func (c *Chan[T]) IsEmpty() bool {
	return len(c.ch) == 0
}

// IsShutdown reports whether Shutdown has been called.
func (c *Chan[T]) IsShutdown() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Len returns the number of buffered items at the time of the call.
func (c *Chan[T]) Len() int {
	return len(c.ch)
}

// Capacity returns the fixed capacity set at construction.
func (c *Chan[T]) Capacity() int {
	return cap(c.ch)
}

// Close shuts the queue down and wakes any remaining waiters. The channel
// buffer is garbage collected once the last reference drops; operations
// after Close are undefined.
func (c *Chan[T]) Close() {
	c.Shutdown()
}
