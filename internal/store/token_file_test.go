package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduzo/traduzo/internal/config"
	"github.com/traduzo/traduzo/internal/logger"
)

func newFileStore(t *testing.T, path string) TokenStore {
	t.Helper()
	s, err := NewTokenStore(config.ClientStorage{TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestTokenStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := newFileStore(t, path)

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, s.Save("token-123"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-123", got)

	require.NoError(t, s.Clear())

	_, err = s.Load()
	assert.ErrorIs(t, err, ErrTokenNotFound)
	assert.NoFileExists(t, path)
}

func TestTokenStore_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := newFileStore(t, path)
	require.NoError(t, first.Save("token-123"))

	// A brand-new store over the same file sees the persisted token.
	second := newFileStore(t, path)
	got, err := second.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-123", got)
}

func TestTokenStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	s := newFileStore(t, path)

	require.NoError(t, s.Save("token-123"))
	assert.FileExists(t, path)
}

func TestTokenStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewTokenStore(config.ClientStorage{TokenFile: path}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode token file")
}

func TestTokenStore_InMemory(t *testing.T) {
	s, err := NewTokenStore(config.ClientStorage{TokenFile: ":memory:"}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Save("token-123"))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-123", got)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenStore_ClearWithoutSave(t *testing.T) {
	s := newFileStore(t, filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, s.Clear())
}
