package buffer

import "github.com/graindb/graindb/internal/storage"

// BasicGuard is a scoped handle to a pinned frame: constructing one
// establishes the pin, and Drop releases it with exactly one Unpin
// call.
type BasicGuard struct {
	pool    *Pool
	page    *storage.Page
	dirty   bool
	dropped bool
}

func newBasicGuard(pool *Pool, page *storage.Page) *BasicGuard {
	return &BasicGuard{pool: pool, page: page}
}

// Page exposes the underlying frame for callers that only need the page
// identity (e.g. reading PageID before acquiring a latch-bearing guard).
func (g *BasicGuard) Page() *storage.Page { return g.page }

func (g *BasicGuard) PageID() int32 { return g.page.ID() }

// MarkDirty records that this guard's holder wrote to the page; the
// dirty flag is only actually ORed into the frame on Drop.
func (g *BasicGuard) MarkDirty() { g.dirty = true }

// Drop releases the pin exactly once. Safe to call more than once; only
// the first call has effect.
func (g *BasicGuard) Drop() {
	if g.dropped {
		return
	}
	g.dropped = true
	g.pool.UnpinPage(g.page.ID(), g.dirty)
}

// UpgradeRead consumes the basic guard and returns a ReadGuard holding the
// page's shared latch, acquired after the pin (already established).
func (g *BasicGuard) UpgradeRead() *ReadGuard {
	g.page.Latch.RLock()
	rg := &ReadGuard{BasicGuard: *g}
	g.dropped = true // ownership transferred
	return rg
}

// UpgradeWrite consumes the basic guard and returns a WriteGuard holding
// the page's exclusive latch.
func (g *BasicGuard) UpgradeWrite() *WriteGuard {
	g.page.Latch.Lock()
	wg := &WriteGuard{BasicGuard: *g}
	g.dropped = true
	return wg
}

// ReadGuard is a BasicGuard plus a held shared latch.
type ReadGuard struct {
	BasicGuard
	unlatched bool
}

func (g *ReadGuard) Data() *[storage.PageSize]byte { return g.page.Data() }

func (g *ReadGuard) Drop() {
	if !g.unlatched {
		g.unlatched = true
		g.page.Latch.RUnlock()
	}
	g.BasicGuard.Drop()
}

// WriteGuard is a BasicGuard plus a held exclusive latch. Any mutation
// through GetMut implicitly marks the guard dirty.
type WriteGuard struct {
	BasicGuard
	unlatched bool
}

// GetMut returns the mutable page payload and marks the guard dirty:
// any GetMut access sets the guard's internal dirty flag to true.
func (g *WriteGuard) GetMut() *[storage.PageSize]byte {
	g.MarkDirty()
	return g.page.Data()
}

// Data returns the page payload without marking dirty, for callers that
// only read through a write guard they already hold.
func (g *WriteGuard) Data() *[storage.PageSize]byte { return g.page.Data() }

func (g *WriteGuard) Drop() {
	if !g.unlatched {
		g.unlatched = true
		g.page.Latch.Unlock()
	}
	g.BasicGuard.Drop()
}

// NewPageGuarded allocates a fresh page and returns it wrapped in a
// BasicGuard.
func (p *Pool) NewPageGuarded() (*BasicGuard, error) {
	pg, err := p.NewPage()
	if err != nil {
		return nil, err
	}
	return newBasicGuard(p, pg), nil
}

// FetchPageBasic fetches pid wrapped in a BasicGuard.
func (p *Pool) FetchPageBasic(pid int32) (*BasicGuard, error) {
	pg, err := p.FetchPage(pid)
	if err != nil {
		return nil, err
	}
	return newBasicGuard(p, pg), nil
}

// FetchPageRead fetches pid and acquires its shared latch, after the pin.
func (p *Pool) FetchPageRead(pid int32) (*ReadGuard, error) {
	bg, err := p.FetchPageBasic(pid)
	if err != nil {
		return nil, err
	}
	return bg.UpgradeRead(), nil
}

// FetchPageWrite fetches pid and acquires its exclusive latch, after the pin.
func (p *Pool) FetchPageWrite(pid int32) (*WriteGuard, error) {
	bg, err := p.FetchPageBasic(pid)
	if err != nil {
		return nil, err
	}
	return bg.UpgradeWrite(), nil
}
