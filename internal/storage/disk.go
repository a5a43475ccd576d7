package storage

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DiskStore binds a single backing file holding every page of the
// database in one global page-id space. All reads and writes serialize
// at mu, matching the "exclusive lock across a read or
// write so multiple callers serialize at the file."
type DiskStore struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// OpenDiskStore opens (creating if absent) the backing file at path.
func OpenDiskStore(path string) (*DiskStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	return &DiskStore{f: f, path: path}, nil
}

func (d *DiskStore) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}

// ReadPage reads exactly PageSize bytes for pid into buf. Reading a page
// beyond the current end-of-file returns a zero-filled buffer rather than
// failing: the buffer pool's NewPage does not write to disk, so a page
// evicted while clean has never been written and reads back as zeros.
func (d *DiskStore) ReadPage(pid int32, buf *[PageSize]byte) error {
	if pid < 0 {
		return fmt.Errorf("%w: read of invalid page id %d", ErrIO, pid)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	off := int64(pid) * int64(PageSize)
	n, err := d.f.ReadAt(buf[:], off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w: read page %d: %v", ErrIO, pid, err)
	}
	for i := n; i < PageSize; i++ {
		buf[i] = 0
	}
	return nil
}

// WritePage writes exactly PageSize bytes for pid and flushes to the OS.
func (d *DiskStore) WritePage(pid int32, buf *[PageSize]byte) error {
	if pid < 0 {
		return fmt.Errorf("%w: write of invalid page id %d", ErrIO, pid)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	off := int64(pid) * int64(PageSize)
	n, err := d.f.WriteAt(buf[:], off)
	if err != nil {
		return fmt.Errorf("%w: write page %d: %v", ErrIO, pid, err)
	}
	if n != PageSize {
		return fmt.Errorf("%w: short write on page %d (%d/%d bytes)", ErrIO, pid, n, PageSize)
	}
	if err := d.f.Sync(); err != nil {
		return fmt.Errorf("%w: sync page %d: %v", ErrIO, pid, err)
	}
	return nil
}
