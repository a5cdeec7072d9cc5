// Package storage selects and opens the persistence backend for
// preferences and mods.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/config"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/preferences"
	"github.com/modkeeper/modkeeper/internal/storage/sqlite"
)

const (
	// BackendFile stores preferences and mods in TOML files.
	BackendFile = "file"
	// BackendSQLite stores both in a SQLite database.
	BackendSQLite = "sqlite"
)

// Backend groups the stores of one backend.
type Backend struct {
	Name        string
	Preferences preferences.Store
	Mods        domain.ModRepository
	close       func() error
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// Dirs are the directories a backend writes to.
type Dirs struct {
	Config string
	State  string
}

// DirsFromConfig reads config_dir and state_dir from the loaded config.
func DirsFromConfig() Dirs {
	return Dirs{
		Config: config.Get("config_dir", ""),
		State:  config.Get("state_dir", ""),
	}
}

// NewFromConfig opens the backend named by storage_backend.
func NewFromConfig() (*Backend, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite), DirsFromConfig())
}

// NewForBackend opens backend in dirs. A SQLite backend that cannot be
// opened falls back to files with a warning.
func NewForBackend(backend string, dirs Dirs) (*Backend, error) {
	if dirs.Config == "" || dirs.State == "" {
		return nil, errors.New("storage: config and state directories are required")
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSQLite:
		b, err := openSQLite(dirs)
		if err == nil {
			return b, nil
		}
		colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to files: %v", err))
		return openFile(dirs)
	case "", BackendFile:
		return openFile(dirs)
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to files", backend))
		return openFile(dirs)
	}
}

func openFile(dirs Dirs) (*Backend, error) {
	mods, err := NewFileModRepository(dirs.State)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Name:        BackendFile,
		Preferences: preferences.NewFileStore(dirs.Config),
		Mods:        mods,
	}, nil
}

func openSQLite(dirs Dirs) (*Backend, error) {
	dbPath := filepath.Join(dirs.State, sqlite.DBFileName)
	fresh, err := isMissing(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if fresh {
		if err := importPreferences(preferences.NewFileStore(dirs.Config), db); err != nil {
			colors.Warning(fmt.Sprintf("could not import preferences into sqlite: %v", err))
		}
	}
	return &Backend{
		Name:        BackendSQLite,
		Preferences: db,
		Mods:        db,
		close:       db.Close,
	}, nil
}

// importPreferences copies file preferences into a new database so that
// switching backends keeps the user's choices.
func importPreferences(from, to preferences.Store) error {
	p, err := from.Load()
	if err != nil {
		return err
	}
	if p.IsZero() {
		return nil
	}
	if err := to.Save(p); err != nil {
		return err
	}
	colors.Debug("imported preferences from file into sqlite")
	return nil
}

func isMissing(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	return false, err
}
