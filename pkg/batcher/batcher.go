package batcher

import (
	"time"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-queue/pkg/queue"
)

const defaultBatchSize = 512

// Batcher drains a bounded queue and delivers items to a Consumer in
// batches.
//
// A batch is flushed when it reaches BatchSize, when the queue goes
// momentarily idle, or when its oldest item has aged past MaxBatchAge. The
// queue's shutdown protocol ends the run: once the terminal empty result
// arrives, the remaining partial batch is flushed and Run returns.
type Batcher[T any] struct {
	queue queue.Queue[T]
	cons  Consumer[T]
	cfg   Config
}

// New creates a Batcher draining q into cons.
func New[T any](q queue.Queue[T], cons Consumer[T], cfg Config) *Batcher[T] {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	return &Batcher[T]{
		queue: q,
		cons:  cons,
		cfg:   cfg,
	}
}

// Run consumes the queue until shutdown has drained it. It returns the
// first consumer error, or nil after the final flush.
func (b *Batcher[T]) Run() error {
	batch := make([]T, 0, b.cfg.BatchSize)
	var batchStart time.Time

	for {
		item, ok := b.queue.Dequeue()
		if !ok {
			// Terminal empty: deliver whatever is left and stop.
			if len(batch) > 0 {
				return b.flush(batch)
			}
			return nil
		}

		if len(batch) == 0 {
			batchStart = time.Now()
		}
		batch = append(batch, item)

		// Opportunistically top the batch up without blocking.
		for len(batch) < b.cfg.BatchSize {
			v, ok := b.queue.TryDequeue()
			if !ok {
				break
			}
			batch = append(batch, v)
		}

		aged := b.cfg.MaxBatchAge > 0 && time.Since(batchStart) >= b.cfg.MaxBatchAge
		if len(batch) >= b.cfg.BatchSize || aged || b.queue.IsEmpty() {
			if err := b.flush(batch); err != nil {
				return err
			}
			// The consumer owns the flushed slice.
			batch = make([]T, 0, b.cfg.BatchSize)
		}
	}
}

func (b *Batcher[T]) flush(batch []T) error {
	if err := b.cons.Consume(batch); err != nil {
		return errors.Wrapf(err, "batcher: consume batch of %d", len(batch))
	}
	return nil
}
