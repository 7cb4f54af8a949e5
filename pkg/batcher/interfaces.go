package batcher

import "time"

// Consumer is the interface that must be implemented by users of the Batcher.
// It is responsible for processing a batch of items.
type Consumer[T any] interface {
	// Consume processes a batch of items. The batch is owned by the
	// consumer; the batcher never touches it again after the call.
	// Returns an error if processing fails.
	Consume(batch []T) error
}

// Config holds configuration for the Batcher.
type Config struct {
	// BatchSize is the number of items that forces a flush.
	BatchSize int

	// MaxBatchAge flushes a partial batch once its oldest item has waited
	// this long. Zero disables age-based flushing.
	MaxBatchAge time.Duration
}
