package candidate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultStoreFile is the candidate store filename used when no path is
// configured.
const DefaultStoreFile = "candidates.json"

// CorruptStoreError reports that the store file exists but does not
// decode as a JSON array of profiles. This is distinct from a missing
// file (a fresh empty store) and is never silently repaired: an
// operator has to look at the file.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("candidate store %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// FileStore persists profiles as a single JSON array in one file.
// The write path is read-entire-array, append, write-entire-array; the
// mutex serializes concurrent appenders within this process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultStoreFile
	}
	return &FileStore{path: path}
}

// Path returns the store file location.
func (s *FileStore) Path() string {
	return s.path
}

// Append adds one profile to the store, creating the file (as a
// one-element array) if it does not yet exist.
func (s *FileStore) Append(p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.readAll()
	if err != nil {
		return err
	}

	profiles = append(profiles, p)
	return s.writeAll(profiles)
}

// All returns every stored profile in append order. A missing file is
// an empty store, not an error.
func (s *FileStore) All() ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *FileStore) readAll() ([]Profile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read candidate store: %w", err)
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	return profiles, nil
}

// writeAll replaces the store contents atomically: write a sibling
// temp file, then rename over the original.
func (s *FileStore) writeAll(profiles []Profile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode candidate store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".candidates-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write candidate store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close candidate store: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace candidate store: %w", err)
	}
	return nil
}
