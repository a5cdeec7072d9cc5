package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modkeeper/modkeeper/internal/domain"
)

const modColumns = `id, name, version, source, remote_id, descriptor_path, tags, enabled`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMod(r rowScanner) (domain.Mod, error) {
	var (
		m       domain.Mod
		tags    string
		enabled int
	)
	if err := r.Scan(&m.ID, &m.Name, &m.Version, &m.Source, &m.RemoteID, &m.DescriptorPath, &tags, &enabled); err != nil {
		return domain.Mod{}, err
	}
	parsed, err := decodeTags(tags)
	if err != nil {
		return domain.Mod{}, err
	}
	m.Tags = parsed
	m.Enabled = enabled != 0
	return m, nil
}

// ListMods returns every mod ordered by name.
func (s *SQLiteStorage) ListMods(ctx context.Context) ([]domain.Mod, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+modColumns+` FROM mods ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list mods: %w", err)
	}
	defer rows.Close()

	var mods []domain.Mod
	for rows.Next() {
		m, err := scanMod(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: scan mod: %w", err)
		}
		mods = append(mods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list mods: %w", err)
	}
	return mods, nil
}

// GetMod returns the mod with id.
func (s *SQLiteStorage) GetMod(ctx context.Context, id int64) (domain.Mod, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+modColumns+` FROM mods WHERE id = ?`, id)
	m, err := scanMod(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Mod{}, fmt.Errorf("sqlite storage: get mod: %w: id %d", domain.ErrModNotFound, id)
	}
	if err != nil {
		return domain.Mod{}, fmt.Errorf("sqlite storage: get mod: %w", err)
	}
	return m, nil
}

// AddMod inserts mod and returns the generated id. An empty source is
// stored as local.
func (s *SQLiteStorage) AddMod(ctx context.Context, mod domain.Mod) (int64, error) {
	if err := mod.Validate(); err != nil {
		return 0, err
	}
	if mod.Source == "" {
		mod.Source = domain.SourceLocal
	}
	tags, err := encodeTags(mod.Tags)
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: add mod: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO mods
		(name, version, source, remote_id, descriptor_path, tags, enabled, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(mod.Name), mod.Version, mod.Source, mod.RemoteID, mod.DescriptorPath,
		tags, boolToInt(mod.Enabled), utcNow())
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: add mod: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: add mod: %w", err)
	}
	return id, nil
}

// RemoveMod deletes the mod with id.
func (s *SQLiteStorage) RemoveMod(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM mods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: remove mod: %w", err)
	}
	return requireAffected(res, "remove mod", id)
}

// SetModEnabled updates the enabled flag of the mod with id.
func (s *SQLiteStorage) SetModEnabled(ctx context.Context, id int64, enabled bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE mods SET enabled = ?, updated_at = ? WHERE id = ?`,
		boolToInt(enabled), utcNow(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: set enabled: %w", err)
	}
	return requireAffected(res, "set enabled", id)
}

func requireAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: %s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("sqlite storage: %s: %w: id %d", op, domain.ErrModNotFound, id)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Tags are stored as a JSON array; a mod without tags stores "".
func encodeTags(tags []string) (string, error) {
	clean := domain.CleanTags(tags)
	if len(clean) == 0 {
		return "", nil
	}
	data, err := json.Marshal(clean)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("decode tags %q: %w", s, err)
	}
	return domain.CleanTags(tags), nil
}
