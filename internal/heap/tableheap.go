package heap

import (
	"fmt"
	"sync"

	"github.com/graindb/graindb/internal/buffer"
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/types"
)

// TableHeap owns a (first_page_id, last_page_id) pair under a mutex,
// plus a buffer-pool handle.
type TableHeap struct {
	mu sync.Mutex

	bp        *buffer.Pool
	firstPage int32
	lastPage  int32
}

// NewTableHeap allocates a fresh first page and initializes its header.
func NewTableHeap(bp *buffer.Pool) (*TableHeap, error) {
	g, err := bp.NewPageGuarded()
	if err != nil {
		return nil, err
	}
	wg := g.UpgradeWrite()
	NewTablePage(wg.GetMut()).Init()
	pid := wg.PageID()
	wg.Drop()

	return &TableHeap{bp: bp, firstPage: pid, lastPage: pid}, nil
}

// OpenTableHeap attaches to an existing chain starting at firstPageID,
// scanning forward to find the current last page. Database.Open does not
// call it: the catalog is held in memory only and is not persisted.
func OpenTableHeap(bp *buffer.Pool, firstPageID int32) (*TableHeap, error) {
	last := firstPageID
	for {
		g, err := bp.FetchPageRead(last)
		if err != nil {
			return nil, err
		}
		next := NewTablePage(g.Data()).NextPageID()
		g.Drop()
		if next == storage.InvalidPageID {
			break
		}
		last = next
	}
	return &TableHeap{bp: bp, firstPage: firstPageID, lastPage: last}, nil
}

func (h *TableHeap) FirstPageID() int32 { return h.firstPage }
func (h *TableHeap) LastPageID() int32  { return h.lastPage }

// InsertTuple inserts tup under meta, allocating new pages and chaining
// them as needed.
func (h *TableHeap) InsertTuple(meta TupleMeta, tup []byte) (types.RID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for {
		wg, err := h.bp.FetchPageWrite(h.lastPage)
		if err != nil {
			return types.RID{}, err
		}
		tp := NewTablePage(wg.GetMut())
		wasEmpty := tp.NumTuples() == 0
		slot, ok := tp.InsertTuple(meta, tup)
		if ok {
			pid := wg.PageID()
			wg.Drop()
			return types.RID{PageID: pid, Slot: uint16(slot)}, nil
		}
		if wasEmpty {
			wg.Drop()
			return types.RID{}, fmt.Errorf("heap: tuple of %d bytes does not fit in an empty page", len(tup))
		}
		wg.Drop()

		ng, err := h.bp.NewPageGuarded()
		if err != nil {
			return types.RID{}, err
		}
		nwg := ng.UpgradeWrite()
		NewTablePage(nwg.GetMut()).Init()
		newPid := nwg.PageID()
		nwg.Drop()

		oldWG, err := h.bp.FetchPageWrite(h.lastPage)
		if err != nil {
			return types.RID{}, err
		}
		NewTablePage(oldWG.GetMut()).SetNextPageID(newPid)
		oldWG.Drop()

		h.lastPage = newPid
	}
}

// GetTuple fetches a read guard on rid.PageID and delegates to the table page.
func (h *TableHeap) GetTuple(rid types.RID) (TupleMeta, types.Tuple, error) {
	g, err := h.bp.FetchPageRead(rid.PageID)
	if err != nil {
		return TupleMeta{}, types.Tuple{}, err
	}
	defer g.Drop()
	meta, tup, ok := NewTablePage(g.Data()).GetTuple(int(rid.Slot))
	if !ok {
		return TupleMeta{}, types.Tuple{}, fmt.Errorf("heap: no such tuple %+v", rid)
	}
	tup.RID = rid
	return meta, tup, nil
}

// GetTupleMeta reads only the metadata for rid.
func (h *TableHeap) GetTupleMeta(rid types.RID) (TupleMeta, error) {
	g, err := h.bp.FetchPageRead(rid.PageID)
	if err != nil {
		return TupleMeta{}, err
	}
	defer g.Drop()
	meta, ok := NewTablePage(g.Data()).GetTupleMeta(int(rid.Slot))
	if !ok {
		return TupleMeta{}, fmt.Errorf("heap: no such tuple %+v", rid)
	}
	return meta, nil
}

// UpdateTupleMeta writes new metadata for rid (e.g. marking it deleted).
func (h *TableHeap) UpdateTupleMeta(rid types.RID, meta TupleMeta) error {
	g, err := h.bp.FetchPageWrite(rid.PageID)
	if err != nil {
		return err
	}
	defer g.Drop()
	if !NewTablePage(g.GetMut()).UpdateTupleMeta(int(rid.Slot), meta) {
		return fmt.Errorf("heap: no such tuple %+v", rid)
	}
	return nil
}

// MakeIterator snapshots (first, last, last_page_num_tuples) and
// constructs a TableIter.
func (h *TableHeap) MakeIterator() (*TableIter, error) {
	h.mu.Lock()
	first, last := h.firstPage, h.lastPage
	h.mu.Unlock()

	g, err := h.bp.FetchPageRead(last)
	if err != nil {
		return nil, err
	}
	lastNumTuples := NewTablePage(g.Data()).NumTuples()
	g.Drop()

	start := types.RID{PageID: first, Slot: 0}
	stop := types.RID{PageID: last, Slot: uint16(lastNumTuples)}
	return newTableIter(h.bp, start, stop), nil
}
