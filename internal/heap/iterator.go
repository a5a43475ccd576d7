package heap

import (
	"github.com/graindb/graindb/internal/buffer"
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/types"
)

// TableIter is a sequential cursor over a table heap snapshot. It
// follows next_page_id to move between pages — page identifiers are
// not guaranteed to be allocated contiguously for a single table.
type TableIter struct {
	bp      *buffer.Pool
	current types.RID
	stop    types.RID
}

func newTableIter(bp *buffer.Pool, start, stop types.RID) *TableIter {
	return &TableIter{bp: bp, current: start, stop: stop}
}

// Next returns the current tuple (with meta) and advances the cursor.
// ok is false once the cursor has passed the snapshotted end.
func (it *TableIter) Next() (TupleMeta, types.Tuple, bool, error) {
	if !it.current.IsValid() || it.current == it.stop {
		return TupleMeta{}, types.Tuple{}, false, nil
	}

	g, err := it.bp.FetchPageRead(it.current.PageID)
	if err != nil {
		return TupleMeta{}, types.Tuple{}, false, err
	}
	tp := NewTablePage(g.Data())
	meta, tup, ok := tp.GetTuple(int(it.current.Slot))
	if !ok {
		g.Drop()
		it.current = types.RID{PageID: storage.InvalidPageID}
		return TupleMeta{}, types.Tuple{}, false, nil
	}
	tup.RID = it.current

	numSlots := tp.NumTuples()
	nextPageID := tp.NextPageID()
	g.Drop()

	if int(it.current.Slot)+1 < numSlots {
		it.current.Slot++
	} else if it.current.PageID == it.stop.PageID {
		it.current = types.RID{PageID: storage.InvalidPageID}
	} else {
		it.current = types.RID{PageID: nextPageID, Slot: 0}
	}

	return meta, tup, true, nil
}
