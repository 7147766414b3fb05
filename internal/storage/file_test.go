package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobvie/gearlist/internal/filesystem"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	backend := NewFileBackend(fs, "/store")

	require.NoError(t, backend.Write(KeyState, []byte(`{"a":1}`)))

	data, err := backend.Read(KeyState)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestFileBackend_ReadMissingKey(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	backend := NewFileBackend(fs, "/store")

	_, err := backend.Read(KeyState)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackend_KeysAreIndependentFiles(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	backend := NewFileBackend(fs, "/store")

	require.NoError(t, backend.Write(KeyState, []byte("{}")))
	require.NoError(t, backend.Write(KeyTheme, []byte("dark")))

	assert.True(t, fs.Exists("/store/gearlist.state"))
	assert.True(t, fs.Exists("/store/gearlist.theme"))
}

func TestFileBackend_DeleteMissingKeyIsFine(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	backend := NewFileBackend(fs, "/store")

	assert.NoError(t, backend.Delete(KeyTheme))
}

func TestFileBackend_Delete(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	backend := NewFileBackend(fs, "/store")

	require.NoError(t, backend.Write(KeyTheme, []byte("dark")))
	require.NoError(t, backend.Delete(KeyTheme))

	_, err := backend.Read(KeyTheme)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackend_WriteFailurePropagates(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.FailWrites = errors.New("disk full")
	backend := NewFileBackend(fs, "/store")

	assert.Error(t, backend.Write(KeyState, []byte("{}")))
}
