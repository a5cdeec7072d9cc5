package domain

import (
	"context"
	"errors"
)

var (
	// ErrModNotFound is returned when a mod is not found.
	ErrModNotFound = errors.New("mod not found")

	// ErrInvalidModName is returned when a mod has no name.
	ErrInvalidModName = errors.New("invalid mod name")

	// ErrUnknownTheme is returned for an unsupported theme type.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrStorageFailed is returned when a storage operation fails.
	ErrStorageFailed = errors.New("storage operation failed")
)

// ModRepository defines the interface for mod persistence.
type ModRepository interface {
	// ListMods returns all mods ordered by name.
	ListMods(ctx context.Context) ([]Mod, error)

	// GetMod retrieves a mod by its ID.
	GetMod(ctx context.Context, id int64) (Mod, error)

	// AddMod stores a new mod and returns its ID.
	AddMod(ctx context.Context, mod Mod) (int64, error)

	// RemoveMod deletes a mod by its ID.
	RemoveMod(ctx context.Context, id int64) error

	// SetModEnabled toggles whether the game loads the mod.
	SetModEnabled(ctx context.Context, id int64, enabled bool) error
}
