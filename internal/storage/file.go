package storage

import (
	"fmt"
	"path/filepath"

	"github.com/tobvie/gearlist/internal/filesystem"
)

// FileBackend stores each key as a file under a base directory.
type FileBackend struct {
	fs      filesystem.FileSystem
	baseDir string
}

// NewFileBackend creates a backend rooted at baseDir. The directory is
// created lazily on the first write.
func NewFileBackend(fs filesystem.FileSystem, baseDir string) *FileBackend {
	return &FileBackend{fs: fs, baseDir: baseDir}
}

func (b *FileBackend) keyPath(key string) string {
	return filepath.Join(b.baseDir, key)
}

func (b *FileBackend) Read(key string) ([]byte, error) {
	path := b.keyPath(key)
	if !b.fs.Exists(path) {
		return nil, fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (b *FileBackend) Write(key string, data []byte) error {
	if err := b.fs.MkdirAll(b.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	if err := b.fs.WriteFile(b.keyPath(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Delete(key string) error {
	path := b.keyPath(key)
	if !b.fs.Exists(path) {
		return nil
	}
	if err := b.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// BaseDir returns the directory the backend writes into.
func (b *FileBackend) BaseDir() string {
	return b.baseDir
}
