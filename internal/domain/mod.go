package domain

import (
	"sort"
	"strings"
)

// Mod sources.
const (
	SourceLocal   = "local"
	SourceSteam   = "steam"
	SourceParadox = "paradox"
)

// Mod is an installed game modification.
type Mod struct {
	ID             int64
	Name           string
	Version        string
	Source         string
	RemoteID       string
	DescriptorPath string
	Tags           []string
	Enabled        bool
}

// Validate checks the fields required to store a mod.
func (m Mod) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrInvalidModName
	}
	return nil
}

// CleanTags trims tags and drops blank ones. It returns nil when no tag
// is left.
func CleanTags(tags []string) []string {
	var clean []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return clean
}

// IsValidSource checks if the source is one of the known mod sources.
func IsValidSource(source string) bool {
	switch source {
	case SourceLocal, SourceSteam, SourceParadox:
		return true
	default:
		return false
	}
}

// SortMods returns a copy of mods ordered by name, case-insensitively,
// with ties broken by ID.
func SortMods(mods []Mod) []Mod {
	sorted := make([]Mod, len(mods))
	copy(sorted, mods)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].Name), strings.ToLower(sorted[j].Name)
		if a != b {
			return a < b
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
