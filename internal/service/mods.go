package service

import (
	"context"
	"fmt"

	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/search"
)

// ModService lists, edits and filters installed mods.
type ModService struct {
	repo     domain.ModRepository
	provider search.Provider
}

// NewModService creates a mod service. A nil provider uses token search.
func NewModService(repo domain.ModRepository, provider search.Provider) *ModService {
	if provider == nil {
		provider = search.NewTokenProvider(search.WithCaseInsensitive(true))
	}
	return &ModService{repo: repo, provider: provider}
}

// Provider returns the search provider used by Filter and Matches.
func (s *ModService) Provider() search.Provider { return s.provider }

func (s *ModService) List(ctx context.Context) ([]domain.Mod, error) {
	return s.repo.ListMods(ctx)
}

// Add validates and stores mod. Unknown sources are rejected.
func (s *ModService) Add(ctx context.Context, mod domain.Mod) (int64, error) {
	if mod.Source != "" && !domain.IsValidSource(mod.Source) {
		return 0, fmt.Errorf("unknown mod source %q", mod.Source)
	}
	return s.repo.AddMod(ctx, mod)
}

func (s *ModService) Remove(ctx context.Context, id int64) error {
	return s.repo.RemoveMod(ctx, id)
}

func (s *ModService) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	return s.repo.SetModEnabled(ctx, id, enabled)
}

// Filter returns the stored mods that match query.
func (s *ModService) Filter(ctx context.Context, query string) ([]domain.Mod, error) {
	mods, err := s.repo.ListMods(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(s.provider, mods, query), nil
}

// Matches returns the indices in mods that match query.
func (s *ModService) Matches(mods []domain.Mod, query string) []int {
	return search.Matches(s.provider, mods, query)
}
