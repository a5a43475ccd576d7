package storage

import "errors"

// ErrIO is the wrapped sentinel for every disk read/write failure, including
// short writes. A short read is not an error: DiskStore.ReadPage zero-fills
// the bytes past end-of-file. Callers use errors.Is against it.
var ErrIO = errors.New("storage: io error")

// InvalidPageID is the sentinel page identifier; -1 never names a real page.
const InvalidPageID int32 = -1

// PageSize is the fixed on-disk and in-memory page size, per spec.
const PageSize = 4096
