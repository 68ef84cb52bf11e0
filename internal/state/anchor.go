package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/sectionlist/internal/layout"
	"gopkg.in/yaml.v3"
)

// Record is what is remembered about one data set between runs.
type Record struct {
	Anchor  layout.SavedState `yaml:"anchor"`
	Filter  string            `yaml:"filter,omitempty"`
	SavedAt time.Time         `yaml:"saved_at"`
}

// AnchorStore keeps records keyed by data set.
type AnchorStore interface {
	Get(key string) (Record, bool)
	Put(key string, rec Record) error
}

type document struct {
	Entries map[string]Record `yaml:"entries"`
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]Record
}

// NewMemoryStore returns a store that forgets everything on exit.
func NewMemoryStore() AnchorStore {
	return &memoryStore{entries: make(map[string]Record)}
}

func (s *memoryStore) Get(key string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.entries[key]
	return rec, ok
}

func (s *memoryStore) Put(key string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = rec
	return nil
}

type fileStore struct {
	mu   sync.Mutex
	path string
	doc  document
}

// NewFileStore returns a store persisted as YAML at path. A missing file is
// an empty store; an unreadable one is an error.
func NewFileStore(path string) (AnchorStore, error) {
	s := &fileStore{path: path, doc: document{Entries: make(map[string]Record)}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("state: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("state: parse %s: %w", path, err)
	}
	if s.doc.Entries == nil {
		s.doc.Entries = make(map[string]Record)
	}
	return s, nil
}

// Open returns a file store for path, or a memory store when path is empty.
func Open(path string) (AnchorStore, error) {
	if path == "" {
		return NewMemoryStore(), nil
	}
	return NewFileStore(path)
}

func (s *fileStore) Get(key string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.doc.Entries[key]
	return rec, ok
}

func (s *fileStore) Put(key string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Entries[key] = rec
	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("state: marshal: %w", err)
	}
	return writeFileAtomic(s.path, data, 0o644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state: create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".sectionlist-state-*")
	if err != nil {
		return fmt.Errorf("state: create temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("state: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("state: close: %w", err)
	}
	if err := os.Chmod(name, perm); err != nil {
		os.Remove(name)
		return fmt.Errorf("state: chmod: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("state: rename: %w", err)
	}
	return nil
}

// Key returns the store key for a fixture path.
func Key(fixturePath string) string {
	if fixturePath == "" {
		return "sample"
	}
	if abs, err := filepath.Abs(fixturePath); err == nil {
		return abs
	}
	return fixturePath
}
