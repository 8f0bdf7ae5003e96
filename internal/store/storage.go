package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// Record keys. The profile record holds the whole serialized canonical
// profile; the edit-mode flag is consumed once by the wizard entry point and
// cleared on successful submission; tour keys record per-tour onboarding
// status ("done" or "skipped").
const (
	ProfileKey  = "jobSeekerProfile"
	EditModeKey = "profileEditMode"

	tourKeyPrefix = "tourStatus:"
)

// TourKey returns the record key for one onboarding tour's status.
func TourKey(name string) string {
	return tourKeyPrefix + name
}

// ErrNotFound is returned by Storage.Get when a key has no record.
var ErrNotFound = &StorageError{Message: "record not found"}

// Storage is the durable key/value record layer behind the profile store.
// Implementations must treat a missing key as ErrNotFound, not as a failure.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage is an in-process Storage used by tests and by sessions with
// no durable layer configured.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string][]byte)}
}

// Get returns the record for key, or ErrNotFound.
func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores the record for key.
func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes the record for key. Deleting a missing key is a no-op.
func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

// FileStorage keeps one file per record key under a data directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the data directory if needed and returns a storage
// over it.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Message: "failed to create data directory", Cause: err}
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) path(key string) string {
	// Keys may contain separators (tour names); flatten them.
	safe := ""
	for _, r := range key {
		switch r {
		case '/', '\\', ':':
			safe += "_"
		default:
			safe += string(r)
		}
	}
	return filepath.Join(f.dir, safe+".json")
}

// Get returns the record for key, or ErrNotFound.
func (f *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Message: "failed to read record", Cause: err}
	}
	return data, nil
}

// Set stores the record for key.
func (f *FileStorage) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		return &StorageError{Message: "failed to write record", Cause: err}
	}
	return nil
}

// Delete removes the record for key. Deleting a missing key is a no-op.
func (f *FileStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return &StorageError{Message: "failed to delete record", Cause: err}
	}
	return nil
}
