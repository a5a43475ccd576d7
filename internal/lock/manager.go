// Package lock is a stubbed transaction/lock manager: it consumes a
// transaction identity but makes no isolation decisions. It exists
// purely as a seam — every call always grants — so the table heap and
// executors have somewhere real to call through when a genuine lock
// manager is substituted later.
package lock

import (
	"go.uber.org/atomic"

	"github.com/graindb/graindb/internal/txn"
)

// Manager grants every request unconditionally. It holds no state that
// needs protecting beyond a grant counter, kept for observability.
type Manager struct {
	grants atomic.Int64
}

func NewManager() *Manager {
	return &Manager{}
}

// LockShared always grants a shared lock on the tuple (pageID, slot) to txn.
func (m *Manager) LockShared(id txn.ID, pageID int32, slot uint16) error {
	m.grants.Inc()
	return nil
}

// LockExclusive always grants an exclusive lock on the tuple (pageID, slot) to txn.
func (m *Manager) LockExclusive(id txn.ID, pageID int32, slot uint16) error {
	m.grants.Inc()
	return nil
}

// Unlock always succeeds; there is nothing to release.
func (m *Manager) Unlock(id txn.ID, pageID int32, slot uint16) error {
	return nil
}

// Grants reports the number of locks granted so far (monotonic, for tests).
func (m *Manager) Grants() int64 { return m.grants.Load() }
