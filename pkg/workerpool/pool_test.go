package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/huynhanx03/go-queue/pkg/queue"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

func TestPool_ProcessesEverySubmittedItem(t *testing.T) {
	const (
		producers        = 4
		itemsPerProducer = 250
		workers          = 3
	)

	q := queue.NewBounded[int](8)
	var sum atomic.Int64
	pool := New(q, func(item int) error {
		sum.Add(int64(item))
		return nil
	}, settings.Pool{Workers: workers}, nil)
	pool.Start()

	var wg sync.WaitGroup
	var want int64
	var wantMu sync.Mutex
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			local := int64(0)
			for i := 0; i < itemsPerProducer; i++ {
				v := id*itemsPerProducer + i
				if pool.Submit(v) {
					local += int64(v)
				}
			}
			wantMu.Lock()
			want += local
			wantMu.Unlock()
		}(p)
	}

	wg.Wait()
	pool.Shutdown()
	err := pool.Wait()

	assert.NoError(t, err)
	assert.Equal(t, int64(producers*itemsPerProducer), pool.Processed())
	assert.Equal(t, want, sum.Load())
}

func TestPool_SurfacesFirstHandlerError(t *testing.T) {
	q := queue.NewBounded[int](4)
	boom := errors.New("boom")
	pool := New(q, func(item int) error {
		if item == 3 {
			return boom
		}
		return nil
	}, settings.Pool{Workers: 1}, nil)
	pool.Start()

	for i := 0; i < 6; i++ {
		pool.Submit(i)
	}
	pool.Shutdown()
	err := pool.Wait()

	// The failing item is reported but does not stop the drain.
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(5), pool.Processed())
}

func TestPool_SubmitAfterShutdownRejected(t *testing.T) {
	q := queue.NewBounded[int](4)
	pool := New(q, func(int) error { return nil }, settings.Pool{Workers: 2}, nil)
	pool.Start()

	pool.Shutdown()
	assert.False(t, pool.Submit(1), "Submit after Shutdown should be rejected")
	assert.NoError(t, pool.Wait())
	assert.Equal(t, int64(0), pool.Processed())
}

func TestPool_DefaultsToOneWorker(t *testing.T) {
	q := queue.NewBounded[int](2)
	pool := New(q, func(int) error { return nil }, settings.Pool{}, nil)
	assert.Equal(t, 1, pool.workers)
}
