package luminary

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persisted key-value collaborator: string keys, string values,
// synchronous access, surviving process restarts. There is exactly one writer
// (the single user's session) so last write wins is the only ordering needed.
type Store interface {
	// Get returns the value stored under key, or ok=false when the key has
	// never been written.
	Get(key string) (value string, ok bool, err error)
	// Set durably replaces the value stored under key.
	Set(key, value string) error
}

// DirStore persists each key as one file in a directory, in a way that is
// still human readable and git friendly. The whole value is rewritten on
// every Set; there are no partial writes.
type DirStore struct {
	dir string
}

// NewDirStore opens (creating if needed) a directory-backed store.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStore) Get(key string) (string, bool, error) {
	content, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read %q: %w", s.path(key), err)
	}
	return string(content), true, nil
}

func (s *DirStore) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(key), err)
	}
	return nil
}

// MemStore is an in-memory Store, for tests.
type MemStore map[string]string

func (s MemStore) Get(key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s MemStore) Set(key, value string) error {
	s[key] = value
	return nil
}
