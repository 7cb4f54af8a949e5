package workerpool

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-queue/pkg/queue"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

// Handler processes a single item taken from the pool's queue.
type Handler[T any] func(item T) error

// Pool runs a fixed number of workers that drain a bounded queue until its
// shutdown protocol reports no more work.
//
// A handler error does not stop the pool: it is logged, remembered as the
// first failure, and the worker moves on to the next item. The queue stays
// the single handoff point, so producers simply Submit and call Shutdown
// when they are done.
type Pool[T any] struct {
	queue   queue.Queue[T]
	handler Handler[T]
	workers int
	log     *zap.Logger

	group     errgroup.Group
	processed atomic.Int64

	errOnce  sync.Once
	firstErr error
}

// New creates a pool over the given queue. Workers defaults to 1 when the
// configured count is not positive; a nil logger is replaced by a no-op one.
func New[T any](q queue.Queue[T], handler Handler[T], cfg settings.Pool, log *zap.Logger) *Pool[T] {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Pool[T]{
		queue:   q,
		handler: handler,
		workers: workers,
		log:     log,
	}
}

// Start launches the workers. Call it once, before any Wait.
func (p *Pool[T]) Start() {
	for i := 0; i < p.workers; i++ {
		id := i
		p.group.Go(func() error {
			p.run(id)
			return nil
		})
	}
}

// run is the consumer loop: drain until the queue reports terminal empty.
func (p *Pool[T]) run(id int) {
	for {
		item, ok := p.queue.Dequeue()
		if !ok {
			p.log.Debug("worker exiting, queue drained", zap.Int("worker", id))
			return
		}

		if err := p.handler(item); err != nil {
			err = errors.Wrapf(err, "workerpool: worker %d", id)
			p.log.Error("handler failed", zap.Int("worker", id), zap.Error(err))
			p.errOnce.Do(func() { p.firstErr = err })
			continue
		}
		p.processed.Add(1)
	}
}

// Submit hands an item to the pool, blocking while the queue is full.
// Returns false if the queue was shutting down; the item was not accepted.
func (p *Pool[T]) Submit(item T) bool {
	return p.queue.Enqueue(item)
}

// Shutdown stops intake and lets the workers drain whatever is buffered.
func (p *Pool[T]) Shutdown() {
	p.queue.Shutdown()
}

// Wait blocks until every worker has exited and returns the first handler
// error, if any. Callers must Shutdown (directly or via the queue) first,
// otherwise the workers never exit.
func (p *Pool[T]) Wait() error {
	_ = p.group.Wait()
	return p.firstErr
}

// Processed returns the number of items handled without error so far.
func (p *Pool[T]) Processed() int64 {
	return p.processed.Load()
}
