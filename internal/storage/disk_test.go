package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStore_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.data")
	d, err := OpenDiskStore(path)
	require.NoError(t, err)
	defer d.Close()

	var want [PageSize]byte
	for i := range want {
		want[i] = byte(i % 251)
	}
	require.NoError(t, d.WritePage(3, &want))

	var got [PageSize]byte
	require.NoError(t, d.ReadPage(3, &got))
	require.Equal(t, want, got)
}

func TestDiskStore_ReadBeyondEOFIsZeroFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.data")
	d, err := OpenDiskStore(path)
	require.NoError(t, err)
	defer d.Close()

	var buf [PageSize]byte
	for i := range buf {
		buf[i] = 0xFF
	}
	require.NoError(t, d.ReadPage(7, &buf))

	var zero [PageSize]byte
	require.Equal(t, zero, buf)
}

func TestDiskStore_NegativePageIDFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.data")
	d, err := OpenDiskStore(path)
	require.NoError(t, err)
	defer d.Close()

	var buf [PageSize]byte
	require.Error(t, d.ReadPage(-1, &buf))
	require.Error(t, d.WritePage(-1, &buf))
}
