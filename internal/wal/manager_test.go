package wal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	pages map[int32][]byte
}

func (f *fakeWriter) WritePage(pageID int32, page []byte) error {
	if f.pages == nil {
		f.pages = make(map[int32][]byte)
	}
	cp := make([]byte, len(page))
	copy(cp, page)
	f.pages[pageID] = cp
	return nil
}

func TestManager_AppendAndRecover(t *testing.T) {
	dir := t.TempDir()
	m, err := Open(dir)
	require.NoError(t, err)

	img1 := make([]byte, PageSize)
	img1[0] = 1
	img2 := make([]byte, PageSize)
	img2[0] = 2

	lsn1, err := m.AppendPageImage(7, img1)
	require.NoError(t, err)
	lsn2, err := m.AppendPageImage(9, img2)
	require.NoError(t, err)
	require.Greater(t, lsn2, lsn1)

	require.NoError(t, m.Flush(lsn2))
	require.NoError(t, m.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	w := &fakeWriter{}
	require.NoError(t, reopened.Recover(w))
	require.Equal(t, img1, w.pages[7])
	require.Equal(t, img2, w.pages[9])
}

func TestManager_AppendRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	m, err := Open(dir)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.AppendPageImage(1, make([]byte, 10))
	require.ErrorIs(t, err, ErrBadRecord)
}

func TestManager_RecoverWithoutWALFileIsNoOp(t *testing.T) {
	dir := t.TempDir()
	m, err := Open(dir)
	require.NoError(t, err)
	defer m.Close()
	require.NoError(t, os.Remove(filepath.Join(dir, "wal.log")))
	require.NoError(t, m.Recover(&fakeWriter{}))
}
