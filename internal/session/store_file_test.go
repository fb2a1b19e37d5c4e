package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_RoundTrip verifies that a written slot reads back with
// millisecond precision.
func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s := NewFileStore(path)

	startedAt := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Write(startedAt))

	got, ok, err := s.Read()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, startedAt.UnixMilli(), got.UnixMilli())
}

// TestFileStore_Read_Absent verifies that a missing slot is ok=false, not an
// error.
func TestFileStore_Read_Absent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session"))

	_, ok, err := s.Read()
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestFileStore_Read_Corrupt verifies that a non-numeric slot is treated as
// absent.
func TestFileStore_Read_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	require.NoError(t, os.WriteFile(path, []byte("not-a-timestamp"), 0o600))

	s := NewFileStore(path)
	_, ok, err := s.Read()
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestFileStore_Write_CreatesParentDir verifies that Write creates missing
// parent directories.
func TestFileStore_Write_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "session")
	s := NewFileStore(path)

	require.NoError(t, s.Write(time.Now()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// TestFileStore_Write_Overwrites verifies last-writer-wins semantics.
func TestFileStore_Write_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s := NewFileStore(path)

	first := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, s.Write(first))
	require.NoError(t, s.Write(second))

	got, ok, err := s.Read()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.UnixMilli(), got.UnixMilli())
}

// TestFileStore_Clear verifies removal, including the no-slot case.
func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s := NewFileStore(path)

	require.NoError(t, s.Write(time.Now()))
	require.NoError(t, s.Clear())

	_, ok, err := s.Read()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing again must not fail.
	assert.NoError(t, s.Clear())
}
