package storage

import (
	"sync"

	"go.uber.org/atomic"
)

// Page is the in-memory representation of a frame's contents: a fixed
// PageSize byte buffer plus the bookkeeping the buffer pool needs to
// decide eviction and write-back. The reader/writer latch is orthogonal
// to the buffer pool's own mutex and is acquired only by page guards,
// strictly after the pin is established.
type Page struct {
	Latch sync.RWMutex

	id     atomic.Int32
	pinCnt atomic.Int32
	dirty  atomic.Bool
	data   [PageSize]byte
}

// NewPage returns a fresh, zeroed page tagged with InvalidPageID.
func NewPage() *Page {
	p := &Page{}
	p.id.Store(InvalidPageID)
	return p
}

func (p *Page) ID() int32      { return p.id.Load() }
func (p *Page) setID(id int32) { p.id.Store(id) }

func (p *Page) PinCount() int32 { return p.pinCnt.Load() }
func (p *Page) Pin()            { p.pinCnt.Inc() }

// Unpin decrements the pin count and reports the value after decrementing.
func (p *Page) Unpin() int32 { return p.pinCnt.Dec() }

func (p *Page) IsDirty() bool { return p.dirty.Load() }
func (p *Page) MarkDirty()    { p.dirty.Store(true) }
func (p *Page) ClearDirty()   { p.dirty.Store(false) }

// Data returns the raw page payload. Callers holding a WriteGuard may
// mutate it; callers holding a ReadGuard must treat it as read-only.
func (p *Page) Data() *[PageSize]byte { return &p.data }

// Reset clears the page to host a new identity, as done by NewPage/FetchPage
// before reuse.
func (p *Page) Reset(id int32) {
	p.id.Store(id)
	p.pinCnt.Store(0)
	p.dirty.Store(false)
	p.data = [PageSize]byte{}
}
