// Package buffer implements the buffer pool manager: frame table, page
// table, free list, page-id generator, and an LRU-K replacer, all
// protected by one mutex. I/O through the disk scheduler is issued
// while that mutex is held — an accepted serialization trade-off for
// an educational target.
package buffer

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/graindb/graindb/internal/replacer"
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/wal"
)

// ErrBufferFull is returned when new_page/fetch_page cannot find an
// evictable frame.
var ErrBufferFull = errors.New("buffer: no evictable frame available")

// Pool is the buffer pool manager.
type Pool struct {
	mu sync.Mutex

	sched *storage.Scheduler
	rep   *replacer.LRUK
	wal   *wal.Manager // optional; nil means no WAL wiring

	frames    []*storage.Page
	pageTable map[int32]int // page id -> frame index
	freeList  []int

	nextPageID int32
}

// NewPool constructs a pool of poolSize frames backed by sched, evicting
// via an LRU-K replacer with history depth k. wal may be nil.
func NewPool(poolSize int, k int, sched *storage.Scheduler, walMgr *wal.Manager) *Pool {
	p := &Pool{
		sched:     sched,
		rep:       replacer.New(k),
		wal:       walMgr,
		frames:    make([]*storage.Page, poolSize),
		pageTable: make(map[int32]int, poolSize),
		freeList:  make([]int, poolSize),
	}
	for i := 0; i < poolSize; i++ {
		p.frames[i] = storage.NewPage()
		p.freeList[i] = i
	}
	return p
}

// Size returns the pool's frame capacity.
func (p *Pool) Size() int { return len(p.frames) }

// pickVictim returns a frame index to host a new page: from the free
// list first, else from the replacer. Caller holds p.mu.
func (p *Pool) pickVictim() (int, bool) {
	if n := len(p.freeList); n > 0 {
		f := p.freeList[0]
		p.freeList = p.freeList[1:]
		return f, true
	}
	return p.rep.Evict()
}

// flushFrameLocked writes frame's bytes to disk if dirty and clears the
// dirty flag. Caller holds p.mu.
func (p *Pool) flushFrameLocked(frame int) error {
	pg := p.frames[frame]
	if !pg.IsDirty() {
		return nil
	}
	if p.wal != nil {
		if _, err := p.wal.AppendPageImage(pg.ID(), pg.Data()[:]); err != nil {
			return fmt.Errorf("buffer: wal append for page %d: %w", pg.ID(), err)
		}
	}
	if err := p.sched.WritePage(pg.ID(), pg.Data()); err != nil {
		return err
	}
	pg.ClearDirty()
	return nil
}

// NewPage allocates a fresh page and returns its pinned frame.
func (p *Pool) NewPage() (*storage.Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	frame, ok := p.pickVictim()
	if !ok {
		return nil, ErrBufferFull
	}

	victim := p.frames[frame]
	if oldID := victim.ID(); oldID != storage.InvalidPageID {
		if err := p.flushFrameLocked(frame); err != nil {
			return nil, err
		}
		delete(p.pageTable, oldID)
	}

	pid := p.nextPageID
	p.nextPageID++

	victim.Reset(pid)
	victim.Pin()

	p.rep.RecordAccess(frame)
	p.rep.SetEvictable(frame, false)

	p.pageTable[pid] = frame
	return victim, nil
}

// FetchPage pins and returns the frame hosting pid, loading it from disk
// if it is not resident.
func (p *Pool) FetchPage(pid int32) (*storage.Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if frame, ok := p.pageTable[pid]; ok {
		pg := p.frames[frame]
		pg.Pin()
		p.rep.SetEvictable(frame, false)
		p.rep.RecordAccess(frame)
		return pg, nil
	}

	frame, ok := p.pickVictim()
	if !ok {
		return nil, ErrBufferFull
	}

	victim := p.frames[frame]
	if oldID := victim.ID(); oldID != storage.InvalidPageID {
		if err := p.flushFrameLocked(frame); err != nil {
			return nil, err
		}
		delete(p.pageTable, oldID)
	}

	victim.Reset(pid)
	if err := p.sched.ReadPage(pid, victim.Data()); err != nil {
		return nil, err
	}

	victim.Pin()
	p.pageTable[pid] = frame
	p.rep.RecordAccess(frame)
	p.rep.SetEvictable(frame, false)
	return victim, nil
}

// UnpinPage decrements pid's pin count, ORing in isDirty. Returns false
// if pid is not resident or already unpinned.
func (p *Pool) UnpinPage(pid int32, isDirty bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	frame, ok := p.pageTable[pid]
	if !ok {
		return false
	}
	pg := p.frames[frame]
	if pg.PinCount() <= 0 {
		return false
	}
	if isDirty {
		pg.MarkDirty()
	}
	if pg.Unpin() == 0 {
		p.rep.SetEvictable(frame, true)
	}
	return true
}

// FlushPage writes pid's bytes to disk and clears its dirty flag.
// Returns whether pid was resident.
func (p *Pool) FlushPage(pid int32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	frame, ok := p.pageTable[pid]
	if !ok {
		return false
	}
	_ = p.flushFrameLocked(frame)
	return true
}

// FlushAll flushes every resident dirty page, collecting every
// independent failure with multierr rather than stopping at the first.
func (p *Pool) FlushAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var errs error
	for _, frame := range p.pageTable {
		if err := p.flushFrameLocked(frame); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// DeletePage removes pid from the pool. Returns true if pid was not
// resident (nothing to do) or was removed; false if it is resident and
// pinned.
func (p *Pool) DeletePage(pid int32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	frame, ok := p.pageTable[pid]
	if !ok {
		return true
	}
	pg := p.frames[frame]
	if pg.PinCount() > 0 {
		return false
	}
	delete(p.pageTable, pid)
	p.rep.Remove(frame)
	pg.Reset(storage.InvalidPageID)
	p.freeList = append(p.freeList, frame)
	return true
}
