package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "state", DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.Error(t, err)
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	p, err := s.Load()
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	require.NoError(t, s.Save(preferences.Preferences{Locale: "ru", Theme: "light"}))
	require.NoError(t, s.Save(preferences.Preferences{Locale: "es", Theme: "light"}))

	p, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, preferences.Preferences{Locale: "es", Theme: "light"}, p)

	require.NoError(t, s.Save(preferences.Preferences{Theme: "dark"}))
	p, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, preferences.Preferences{Theme: "dark"}, p)
}

func TestPreferencesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)
	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(preferences.Preferences{Locale: "fr"}))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStorage(path)
	require.NoError(t, err)
	defer s.Close()
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "fr", p.Locale)
}

func TestAddAndGetMod(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id, err := s.AddMod(ctx, domain.Mod{
		Name:     "  Better UI ",
		Version:  "1.4.0",
		Source:   domain.SourceSteam,
		RemoteID: "2881031511",
		Tags:     []string{"ui", " ", "qol"},
		Enabled:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	m, err := s.GetMod(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Mod{
		ID:       1,
		Name:     "Better UI",
		Version:  "1.4.0",
		Source:   domain.SourceSteam,
		RemoteID: "2881031511",
		Tags:     []string{"ui", "qol"},
		Enabled:  true,
	}, m)
}

func TestTagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{name: "comma inside a tag", tags: []string{"Graphics, UI", "Fixes"}, want: []string{"Graphics, UI", "Fixes"}},
		{name: "quotes and brackets", tags: []string{`say "hi"`, "[wip]"}, want: []string{`say "hi"`, "[wip]"}},
		{name: "blank tags dropped", tags: []string{" ", " maps "}, want: []string{"maps"}},
		{name: "only blanks", tags: []string{"", "  "}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStorage(t)
			ctx := context.Background()

			id, err := s.AddMod(ctx, domain.Mod{Name: "Tagged", Tags: tt.tags})
			require.NoError(t, err)

			m, err := s.GetMod(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Tags)
		})
	}
}

func TestAddModDefaults(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id, err := s.AddMod(ctx, domain.Mod{Name: "Map Pack"})
	require.NoError(t, err)

	m, err := s.GetMod(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceLocal, m.Source)
	assert.Nil(t, m.Tags)
	assert.False(t, m.Enabled)
}

func TestAddModValidation(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.AddMod(context.Background(), domain.Mod{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidModName)
}

func TestListModsOrderedByName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "Alpha", "beta"} {
		_, err := s.AddMod(ctx, domain.Mod{Name: name})
		require.NoError(t, err)
	}

	mods, err := s.ListMods(ctx)
	require.NoError(t, err)
	require.Len(t, mods, 3)
	assert.Equal(t, "Alpha", mods[0].Name)
	assert.Equal(t, "beta", mods[1].Name)
	assert.Equal(t, "zeta", mods[2].Name)
}

func TestRemoveMod(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	id, err := s.AddMod(ctx, domain.Mod{Name: "Old Mod"})
	require.NoError(t, err)

	require.NoError(t, s.RemoveMod(ctx, id))
	assert.ErrorIs(t, s.RemoveMod(ctx, id), domain.ErrModNotFound)

	_, err = s.GetMod(ctx, id)
	assert.ErrorIs(t, err, domain.ErrModNotFound)
}

func TestSetModEnabled(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	id, err := s.AddMod(ctx, domain.Mod{Name: "Toggle", Enabled: true})
	require.NoError(t, err)

	require.NoError(t, s.SetModEnabled(ctx, id, false))
	m, err := s.GetMod(ctx, id)
	require.NoError(t, err)
	assert.False(t, m.Enabled)

	assert.ErrorIs(t, s.SetModEnabled(ctx, 99, true), domain.ErrModNotFound)
}
