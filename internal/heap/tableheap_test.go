package heap

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graindb/graindb/internal/buffer"
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/types"
)

func newTestHeapPool(t *testing.T, poolSize, k int) *buffer.Pool {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.data")
	disk, err := storage.OpenDiskStore(path)
	require.NoError(t, err)
	sched := storage.NewScheduler(disk)
	t.Cleanup(func() {
		sched.Shutdown()
		disk.Close()
	})
	return buffer.NewPool(poolSize, k, sched, nil)
}

func TestTableHeap_InsertGetTuple(t *testing.T) {
	bp := newTestHeapPool(t, 8, 2)
	h, err := NewTableHeap(bp)
	require.NoError(t, err)

	meta := TupleMeta{InsertTxn: 1, DeleteTxn: -1}
	rid, err := h.InsertTuple(meta, []byte("payload"))
	require.NoError(t, err)

	gotMeta, tup, err := h.GetTuple(rid)
	require.NoError(t, err)
	require.Equal(t, meta, gotMeta)
	require.Equal(t, []byte("payload"), tup.Data)
}

func TestTableHeap_InsertAcrossManyPages(t *testing.T) {
	bp := newTestHeapPool(t, 4, 2)
	h, err := NewTableHeap(bp)
	require.NoError(t, err)

	schema := types.NewSchema([]types.Column{
		types.NewVarcharColumn("a", 20),
		types.NewIntegerColumn("b"),
		types.NewIntegerColumn("c"),
		types.NewVarcharColumn("e", 16),
	})
	meta := TupleMeta{InsertTxn: 1, DeleteTxn: -1}

	const n = 2000
	rids := make([]types.RID, 0, n)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		tup := types.BuildTuple([]types.Value{
			types.NewVarchar(fmt.Sprintf("a%d", rng.Intn(1_000_000))),
			types.NewInteger(rng.Int31()),
			types.NewInteger(rng.Int31()),
			types.NewVarchar(fmt.Sprintf("e%d", rng.Intn(1_000_000))),
		}, schema)
		rid, err := h.InsertTuple(meta, tup.Data)
		require.NoError(t, err)
		rids = append(rids, rid)
	}

	require.NotEqual(t, h.FirstPageID(), h.LastPageID())

	it, err := h.MakeIterator()
	require.NoError(t, err)
	count := 0
	for {
		_, _, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, n, count)

	for _, rid := range rids[:10] {
		_, _, err := h.GetTuple(rid)
		require.NoError(t, err)
	}
}

func TestTableHeap_IteratorSkipsDeletedViaExecutorSemantics(t *testing.T) {
	bp := newTestHeapPool(t, 4, 2)
	h, err := NewTableHeap(bp)
	require.NoError(t, err)

	meta := TupleMeta{InsertTxn: 1, DeleteTxn: -1}
	rid1, err := h.InsertTuple(meta, []byte("keep"))
	require.NoError(t, err)
	rid2, err := h.InsertTuple(meta, []byte("gone"))
	require.NoError(t, err)

	require.NoError(t, h.UpdateTupleMeta(rid2, TupleMeta{InsertTxn: 1, DeleteTxn: 2, IsDeleted: true}))

	it, err := h.MakeIterator()
	require.NoError(t, err)

	var live [][]byte
	for {
		m, tup, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		if !m.IsDeleted {
			live = append(live, tup.Data)
		}
	}
	require.Len(t, live, 1)
	require.Equal(t, []byte("keep"), live[0])

	gotMeta, err := h.GetTupleMeta(rid1)
	require.NoError(t, err)
	require.False(t, gotMeta.IsDeleted)
}

func TestTableHeap_OpenTableHeapFindsLastPage(t *testing.T) {
	bp := newTestHeapPool(t, 4, 2)
	h, err := NewTableHeap(bp)
	require.NoError(t, err)

	meta := TupleMeta{InsertTxn: 1, DeleteTxn: -1}
	payload := make([]byte, 3000)
	for i := 0; i < 5; i++ {
		_, err := h.InsertTuple(meta, payload)
		require.NoError(t, err)
	}

	reopened, err := OpenTableHeap(bp, h.FirstPageID())
	require.NoError(t, err)
	require.Equal(t, h.LastPageID(), reopened.LastPageID())
}
