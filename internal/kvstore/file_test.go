package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	return s, path
}

func TestFileSetGetDelete(t *testing.T) {
	s, _ := tempStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("a", "1"))
	v, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	require.NoError(t, s.Delete("a"))
	_, err = s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.Set("session.token", "tok-1"))
	require.NoError(t, s.Set("session.role", "admin"))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	v, err := reopened.Get("session.token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)
}

func TestFileDeletePersists(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Delete("a"))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, err = reopened.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileCorruptContentFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json {"), 0o600))

	s, err := NewFile(path)
	require.NoError(t, err)
	_, err = s.Get("anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileCreatesMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileRequiresPath(t *testing.T) {
	_, err := NewFile("   ")
	assert.Error(t, err)
}
