package storage

import (
	"fmt"
	"io/fs"
)

// Key prefix shared by every durable key so that multiple tools can share a
// storage directory without colliding.
const keyPrefix = "gearlist."

const (
	// KeyState holds the JSON-serialized state tree.
	KeyState = keyPrefix + "state"

	// KeyTheme holds the plain theme string. Kept separate from the state
	// blob for first-run detection; this key is authoritative on conflict.
	KeyTheme = keyPrefix + "theme"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = fs.ErrNotExist

// Backend abstracts the durable key-value storage underneath the state
// store. Implementations must treat keys as opaque strings.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// MockBackend is an in-memory Backend for tests with failure injection.
type MockBackend struct {
	values map[string][]byte

	// FailWrites makes every Write return this error when set.
	FailWrites error

	// FailReads makes every Read return this error when set.
	FailReads error

	// FailDeletes makes every Delete return this error when set.
	FailDeletes error
}

// NewMockBackend creates an empty MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{values: make(map[string][]byte)}
}

func (m *MockBackend) Read(key string) ([]byte, error) {
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	data, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, ErrNotFound)
	}
	return data, nil
}

func (m *MockBackend) Write(key string, data []byte) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.values[key] = data
	return nil
}

func (m *MockBackend) Delete(key string) error {
	if m.FailDeletes != nil {
		return m.FailDeletes
	}
	delete(m.values, key)
	return nil
}

// Set seeds a value without going through Write (ignores FailWrites).
func (m *MockBackend) Set(key string, data []byte) {
	m.values[key] = data
}

// Has reports whether a key currently holds a value.
func (m *MockBackend) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns every key currently holding a value.
func (m *MockBackend) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}
