package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/format"
)

// ModStore is the mod service surface used by the mods commands.
type ModStore interface {
	List(ctx context.Context) ([]domain.Mod, error)
	Add(ctx context.Context, mod domain.Mod) (int64, error)
	Remove(ctx context.Context, id int64) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	Filter(ctx context.Context, query string) ([]domain.Mod, error)
}

// ModsClient defines dependencies required by the mods commands.
type ModsClient interface {
	ModStore() ModStore
}

// AddModInput represents mods add inputs after flag parsing.
type AddModInput struct {
	Name           string
	Version        string
	Source         string
	RemoteID       string
	DescriptorPath string
	Tags           []string
	Disabled       bool
}

// ModsUseCase coordinates the mods commands.
type ModsUseCase struct {
	client ModsClient
}

// NewModsUseCase creates a mods use-case.
func NewModsUseCase(client ModsClient) *ModsUseCase {
	if client == nil {
		panic("NewModsUseCase: client dependency cannot be nil")
	}
	return &ModsUseCase{client: client}
}

// List prints every mod.
func (u *ModsUseCase) List(ctx context.Context, f format.Formatter, w io.Writer) error {
	mods, err := u.client.ModStore().List(ctx)
	if err != nil {
		return fmt.Errorf("mods list: %w", err)
	}
	return printMods(mods, f, w)
}

// Search prints the mods matching query.
func (u *ModsUseCase) Search(ctx context.Context, query string, f format.Formatter, w io.Writer) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("mods search: query cannot be empty")
	}
	mods, err := u.client.ModStore().Filter(ctx, query)
	if err != nil {
		return fmt.Errorf("mods search: %w", err)
	}
	return printMods(mods, f, w)
}

// Add stores a new mod and returns its id.
func (u *ModsUseCase) Add(ctx context.Context, in AddModInput) (int64, error) {
	var tags []string
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	mod := domain.Mod{
		Name:           strings.TrimSpace(in.Name),
		Version:        strings.TrimSpace(in.Version),
		Source:         strings.ToLower(strings.TrimSpace(in.Source)),
		RemoteID:       strings.TrimSpace(in.RemoteID),
		DescriptorPath: strings.TrimSpace(in.DescriptorPath),
		Tags:           tags,
		Enabled:        !in.Disabled,
	}
	if err := mod.Validate(); err != nil {
		return 0, fmt.Errorf("mods add: %w", err)
	}
	id, err := u.client.ModStore().Add(ctx, mod)
	if err != nil {
		return 0, fmt.Errorf("mods add: %w", err)
	}
	return id, nil
}

// Remove deletes the mod with id.
func (u *ModsUseCase) Remove(ctx context.Context, id int64) error {
	if err := u.client.ModStore().Remove(ctx, id); err != nil {
		return fmt.Errorf("mods remove: %w", err)
	}
	return nil
}

// SetEnabled enables or disables the mod with id.
func (u *ModsUseCase) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := u.client.ModStore().SetEnabled(ctx, id, enabled); err != nil {
		return fmt.Errorf("mods set enabled: %w", err)
	}
	return nil
}

func printMods(mods []domain.Mod, f format.Formatter, w io.Writer) error {
	if len(mods) == 0 {
		if _, ok := f.(*format.JSONFormatter); !ok {
			_, err := fmt.Fprintf(w, "%s%s%s\n", colors.Blue, "No mods found", colors.Reset)
			return err
		}
	}
	return f.FormatMods(mods, w)
}
