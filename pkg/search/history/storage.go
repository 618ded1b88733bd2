package history

import (
	"os"
	"path/filepath"
	"sync"
)

// FileStorage persists values as files under a directory, one file per
// key. This is the production backing for the history store, rooted at
// the local project directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) Get(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(f.dir, key))
}

func (f *FileStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, key), value, 0644)
}

func (f *FileStorage) Remove(key string) error {
	err := os.Remove(filepath.Join(f.dir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStorage is an in-memory Storage, used in tests and anywhere no
// persistence across runs is wanted.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (m *MemoryStorage) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return value, nil
}

func (m *MemoryStorage) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
