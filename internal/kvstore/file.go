package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is a single-JSON-file store. Every Set/Delete rewrites the whole
// file; fine for the handful of keys the console keeps.
type File struct {
	path string

	mu   sync.RWMutex
	data map[string]string
}

func NewFile(path string) (*File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("state file path is required")
	}

	s := &File{path: path, data: make(map[string]string)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *File) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *File) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.persistLocked()
}

func (s *File) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.persistLocked()
}

func (s *File) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}
	if len(b) == 0 {
		return nil
	}

	// Fail closed: a corrupt state file means an empty store, not a crash.
	var decoded map[string]string
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil
	}
	s.data = decoded
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return nil
}

func (s *File) persistLocked() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *File) String() string { return fmt.Sprintf("file(%s)", s.path) }
