// Package preferences persists the user's language and theme choices.
package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the preferences file inside the config directory.
const FileName = "preferences.toml"

// Preferences are the persisted picker choices. Empty fields mean "use the
// configured default".
type Preferences struct {
	Locale string `toml:"locale,omitempty"`
	Theme  string `toml:"theme,omitempty"`
}

// IsZero reports whether nothing has been stored.
func (p Preferences) IsZero() bool {
	return p == Preferences{}
}

// Store loads and saves preferences.
type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// FileStore keeps preferences in a TOML file replaced atomically on save.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store for dir/preferences.toml.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, FileName)}
}

// Path returns the file location.
func (s *FileStore) Path() string { return s.path }

// Load reads the file. A missing file yields empty preferences.
func (s *FileStore) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Preferences{}, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	var p Preferences
	if err := toml.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("parse preferences %s: %w", s.path, err)
	}
	return p, nil
}

// Save writes p through a temp file and rename, so readers never see a
// partial file.
func (s *FileStore) Save(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	if err := renameio.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// MemoryStore keeps preferences in memory. SaveErr, when set, is returned
// by Save without storing anything.
type MemoryStore struct {
	mu      sync.Mutex
	prefs   Preferences
	saves   int
	SaveErr error
}

// NewMemoryStore creates a store seeded with initial.
func NewMemoryStore(initial Preferences) *MemoryStore {
	return &MemoryStore{prefs: initial}
}

func (s *MemoryStore) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs, nil
}

func (s *MemoryStore) Save(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.prefs = p
	s.saves++
	return nil
}

// Saves returns how many saves succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Update loads the preferences, applies fn and saves the result.
func Update(s Store, fn func(*Preferences)) error {
	p, err := s.Load()
	if err != nil {
		return err
	}
	fn(&p)
	return s.Save(p)
}
