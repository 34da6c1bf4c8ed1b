package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage is a string-keyed byte store backed by one file per key under
// BaseDir. Reads and writes are synchronous and mutex-guarded; a missing
// key is reported via Exists/Get, never as a hard failure.
type Storage struct {
	BaseDir string
	mu      sync.Mutex
}

func NewStorage(baseDir string) *Storage {
	// Ensure base directory exists
	os.MkdirAll(filepath.Join(baseDir, "keys"), 0755)
	return &Storage{BaseDir: baseDir}
}

// keyFilePath returns the file backing a given key. Keys are sanitized so
// a hostile key cannot escape the data folder.
func (s *Storage) keyFilePath(key string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '.':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.BaseDir, "keys", clean+".json")
}

// Get reads the value stored under key. The second return is false when the
// key has never been written (or was removed).
func (s *Storage) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.keyFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Storage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.keyFilePath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, value, 0644)
}

// Remove deletes the value stored under key. Removing an absent key is a
// no-op.
func (s *Storage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyFilePath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DeleteAll wipes every stored key. Used by the "erase history" action in
// the config screen.
func (s *Storage) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.BaseDir, "keys")
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// UpdateBaseDir points the storage at a new folder without moving any data.
func (s *Storage) UpdateBaseDir(newDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	os.MkdirAll(filepath.Join(newDir, "keys"), 0755)
	s.BaseDir = newDir
}

// MoveData copies every stored key to the new folder and switches over.
// The old files are left in place so a failed move never loses data.
func (s *Storage) MoveData(newDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	oldKeys := filepath.Join(s.BaseDir, "keys")
	newKeys := filepath.Join(newDir, "keys")
	if err := os.MkdirAll(newKeys, 0755); err != nil {
		return err
	}

	entries, err := os.ReadDir(oldKeys)
	if err != nil {
		if os.IsNotExist(err) {
			s.BaseDir = newDir
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(oldKeys, entry.Name()))
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(newKeys, entry.Name()), data, 0644); err != nil {
			return err
		}
	}

	s.BaseDir = newDir
	return nil
}
