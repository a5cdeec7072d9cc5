package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// ModsFileName is the mod list used by the file backend.
const ModsFileName = "mods.toml"

type modRecord struct {
	ID             int64    `toml:"id"`
	Name           string   `toml:"name"`
	Version        string   `toml:"version,omitempty"`
	Source         string   `toml:"source"`
	RemoteID       string   `toml:"remote_id,omitempty"`
	DescriptorPath string   `toml:"descriptor_path,omitempty"`
	Tags           []string `toml:"tags,omitempty"`
	Enabled        bool     `toml:"enabled"`
}

type modsFile struct {
	NextID int64       `toml:"next_id"`
	Mods   []modRecord `toml:"mod"`
}

// FileModRepository keeps mods in a TOML file. Every operation reads the
// file under a directory lock, so concurrent CLI invocations do not lose
// writes.
type FileModRepository struct {
	path string
	lock string
}

var _ domain.ModRepository = (*FileModRepository)(nil)

// NewFileModRepository stores mods in dir/mods.toml.
func NewFileModRepository(dir string) (*FileModRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file storage: create dir: %w", err)
	}
	return &FileModRepository{
		path: filepath.Join(dir, ModsFileName),
		lock: filepath.Join(dir, ".mods.lock"),
	}, nil
}

func (r *FileModRepository) read() (modsFile, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return modsFile{NextID: 1}, nil
	}
	if err != nil {
		return modsFile{}, fmt.Errorf("file storage: read mods: %w", err)
	}
	var f modsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return modsFile{}, fmt.Errorf("file storage: parse %s: %w", r.path, err)
	}
	if f.NextID < 1 {
		f.NextID = 1
	}
	return f, nil
}

func (r *FileModRepository) write(f modsFile) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("file storage: encode mods: %w", err)
	}
	if err := renameio.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("file storage: write mods: %w", err)
	}
	return nil
}

func (r *FileModRepository) update(fn func(*modsFile) error) error {
	return WithLock(r.lock, func() error {
		f, err := r.read()
		if err != nil {
			return err
		}
		if err := fn(&f); err != nil {
			return err
		}
		return r.write(f)
	})
}

func toDomain(rec modRecord) domain.Mod {
	m := domain.Mod(rec)
	m.Tags = domain.CleanTags(m.Tags)
	return m
}

// ListMods returns every mod ordered by name.
func (r *FileModRepository) ListMods(ctx context.Context) ([]domain.Mod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var f modsFile
	err := WithLock(r.lock, func() error {
		var err error
		f, err = r.read()
		return err
	})
	if err != nil {
		return nil, err
	}
	mods := make([]domain.Mod, 0, len(f.Mods))
	for _, rec := range f.Mods {
		mods = append(mods, toDomain(rec))
	}
	return domain.SortMods(mods), nil
}

// GetMod returns the mod with id.
func (r *FileModRepository) GetMod(ctx context.Context, id int64) (domain.Mod, error) {
	mods, err := r.ListMods(ctx)
	if err != nil {
		return domain.Mod{}, err
	}
	for _, m := range mods {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Mod{}, fmt.Errorf("file storage: get mod: %w: id %d", domain.ErrModNotFound, id)
}

// AddMod appends mod and returns its id.
func (r *FileModRepository) AddMod(ctx context.Context, mod domain.Mod) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := mod.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := r.update(func(f *modsFile) error {
		id = f.NextID
		f.NextID++
		rec := modRecord(mod)
		rec.ID = id
		rec.Name = strings.TrimSpace(rec.Name)
		rec.Tags = domain.CleanTags(rec.Tags)
		if rec.Source == "" {
			rec.Source = domain.SourceLocal
		}
		f.Mods = append(f.Mods, rec)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveMod deletes the mod with id.
func (r *FileModRepository) RemoveMod(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.update(func(f *modsFile) error {
		for i, rec := range f.Mods {
			if rec.ID == id {
				f.Mods = append(f.Mods[:i], f.Mods[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("file storage: remove mod: %w: id %d", domain.ErrModNotFound, id)
	})
}

// SetModEnabled updates the enabled flag of the mod with id.
func (r *FileModRepository) SetModEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.update(func(f *modsFile) error {
		for i := range f.Mods {
			if f.Mods[i].ID == id {
				f.Mods[i].Enabled = enabled
				return nil
			}
		}
		return fmt.Errorf("file storage: set enabled: %w: id %d", domain.ErrModNotFound, id)
	})
}
