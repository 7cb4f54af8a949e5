package queue

// Queue is a generic interface for fixed-capacity blocking FIFO queues.
//
// A queue hands items from producer goroutines to consumer goroutines and
// supports a cooperative shutdown protocol: Shutdown releases every blocked
// caller, producers stop being admitted, and consumers keep draining whatever
// was already buffered before receiving the terminal empty result.
type Queue[T any] interface {
	// Enqueue adds an item to the queue, blocking while the queue is full.
	// Returns true if the item was stored, false if the queue was shutting
	// down. On false the item was NOT stored and the caller keeps ownership.
	Enqueue(item T) bool

	// Dequeue removes and returns the oldest item, blocking while the queue
	// is empty. Returns (zero, false) only after Shutdown once the buffer is
	// fully drained; consumers treat that as the no-more-work signal.
	Dequeue() (T, bool)

	// TryEnqueue adds an item without blocking.
	// Returns false if the queue is full or shutting down.
	TryEnqueue(item T) bool

	// TryDequeue removes an item without blocking.
	// Returns (zero, false) if the queue is empty.
	TryDequeue() (T, bool)

	// Shutdown marks the queue as shutting down and wakes all blocked
	// callers. Idempotent. Buffered items stay available to Dequeue.
	Shutdown()

	// IsEmpty reports whether the queue held no items at the time of the
	// call. Another goroutine may change that before the result is used.
	IsEmpty() bool

	// IsShutdown reports whether Shutdown has been called. Same snapshot
	// caveat as IsEmpty.
	IsShutdown() bool

	// Len returns the number of buffered items at the time of the call.
	Len() int

	// Capacity returns the fixed capacity set at construction.
	Capacity() int
}
