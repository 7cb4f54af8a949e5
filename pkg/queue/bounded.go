package queue

import "sync"

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a monitor-style bounded blocking queue.
//
// All state lives behind one mutex with two condition variables: notFull
// wakes blocked producers, notEmpty wakes blocked consumers. Successful
// operations wake a single waiter; Shutdown broadcasts to both conditions so
// every blocked caller can re-check the shutdown flag and exit.
type Bounded[T any] struct {
	buf      []T // ring buffer, len == capacity
	capacity int
	count    int // occupied slots, 0 <= count <= capacity
	head     int // oldest occupied slot, valid while count > 0

	shutdown bool // monotonic, never reset once true

	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
}

// NewBounded creates a bounded queue with exactly the given capacity.
// It panics if capacity < 1; an unusable capacity is a programming error,
// not a runtime condition.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		panic("queue: capacity must be positive")
	}

	b := &Bounded[T]{
		buf:      make([]T, capacity),
		capacity: capacity,
	}
	b.notFull = sync.NewCond(&b.mu)
	b.notEmpty = sync.NewCond(&b.mu)
	return b
}

// Enqueue adds an item, blocking while the queue is full.
// Returns false without storing the item if the queue is shutting down.
func (b *Bounded[T]) Enqueue(item T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.count == b.capacity && !b.shutdown {
		b.notFull.Wait()
	}

	if b.shutdown {
		return false
	}

	b.buf[(b.head+b.count)%b.capacity] = item
	b.count++

	b.notEmpty.Signal()
	return true
}

// Dequeue removes the oldest item, blocking while the queue is empty.
// After Shutdown it keeps returning buffered items in FIFO order and reports
// (zero, false) only once the buffer is drained.
func (b *Bounded[T]) Dequeue() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.count == 0 && !b.shutdown {
		b.notEmpty.Wait()
	}

	if b.count == 0 {
		var zero T
		return zero, false
	}

	item := b.pop()
	b.notFull.Signal()
	return item, true
}

// TryEnqueue adds an item only if a slot is free right now.
func (b *Bounded[T]) TryEnqueue(item T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shutdown || b.count == b.capacity {
		return false
	}

	b.buf[(b.head+b.count)%b.capacity] = item
	b.count++

	b.notEmpty.Signal()
	return true
}

// TryDequeue removes the oldest item only if one is buffered right now.
func (b *Bounded[T]) TryDequeue() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		var zero T
		return zero, false
	}

	item := b.pop()
	b.notFull.Signal()
	return item, true
}

// pop removes the head slot. Caller must hold b.mu and guarantee count > 0.
func (b *Bounded[T]) pop() T {
	var zero T
	item := b.buf[b.head]
	b.buf[b.head] = zero // drop the reference, ownership moves to the caller
	b.head = (b.head + 1) % b.capacity
	b.count--
	return item
}

// Shutdown marks the queue as shutting down and wakes every blocked caller.
// Idempotent. Buffered items are untouched and remain drainable.
func (b *Bounded[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shutdown = true
	b.notEmpty.Broadcast()
	b.notFull.Broadcast()
}

// IsEmpty reports whether the queue held no items at the time of the call.
func (b *Bounded[T]) IsEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count == 0
}

// IsShutdown reports whether Shutdown has been called.
func (b *Bounded[T]) IsShutdown() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown
}

// Len returns the number of buffered items at the time of the call.
func (b *Bounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Capacity returns the fixed capacity set at construction.
func (b *Bounded[T]) Capacity() int {
	return b.capacity
}

// Close shuts the queue down, wakes any straggling waiters once more and
// releases the buffer. The caller must ensure no goroutine touches the queue
// afterwards; any operation after Close is undefined.
func (b *Bounded[T]) Close() {
	b.Shutdown()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.notEmpty.Broadcast()
	b.notFull.Broadcast()

	b.buf = nil
	b.count = 0
	b.head = 0
}
