package lock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graindb/graindb/internal/txn"
)

func TestManager_AlwaysGrants(t *testing.T) {
	m := NewManager()
	id := txn.New()

	require.NoError(t, m.LockShared(id, 1, 0))
	require.NoError(t, m.LockExclusive(id, 1, 0))
	require.NoError(t, m.Unlock(id, 1, 0))
	require.Equal(t, int64(2), m.Grants())
}
