package buffer

import (
	"testing"

	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/require"
)

// Exercises the buffer pool under concurrent new/unpin traffic using a
// bounded worker pool for fan-out, without hand-rolled
// goroutine/waitgroup bookkeeping.
func TestPool_ConcurrentNewPageAndUnpin(t *testing.T) {
	bp := newTestPool(t, 32, 2)

	p := pool.New().WithMaxGoroutines(16)
	const perWorker = 50
	for w := 0; w < 16; w++ {
		p.Go(func() {
			for i := 0; i < perWorker; i++ {
				pg, err := bp.NewPage()
				if err != nil {
					continue
				}
				pg.Data()[0] = 0x1
				bp.UnpinPage(pg.ID(), true)
			}
		})
	}
	p.Wait()
}

func TestPool_ConcurrentFetchSamePage(t *testing.T) {
	bp := newTestPool(t, 8, 2)
	pg, err := bp.NewPage()
	require.NoError(t, err)
	pid := pg.ID()
	require.True(t, bp.UnpinPage(pid, false))

	p := pool.New().WithMaxGoroutines(8)
	for w := 0; w < 8; w++ {
		p.Go(func() {
			for i := 0; i < 100; i++ {
				fetched, err := bp.FetchPage(pid)
				if err != nil {
					continue
				}
				bp.UnpinPage(fetched.ID(), false)
			}
		})
	}
	p.Wait()
}
