// Package format provides output formatting for CLI commands.
package format

import (
	"fmt"
	"io"

	"github.com/modkeeper/modkeeper/internal/domain"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatMods writes mods to the writer.
	FormatMods(mods []domain.Mod, writer io.Writer) error

	// FormatOptions writes picker options to the writer.
	FormatOptions(options []Option, writer io.Writer) error
}

// Option is a language or theme as printed by list commands.
type Option struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// OptionsOf converts picker options for printing.
func OptionsOf[T domain.Option](options []T) []Option {
	out := make([]Option, 0, len(options))
	for _, o := range options {
		out = append(out, Option{ID: o.ID(), Name: fmt.Sprint(o), Selected: o.IsSelected()})
	}
	return out
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one line per entry with its id.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints entries under column headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeCompact prints names only.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeJSON prints entries as JSON.
	FormatterTypeJSON FormatterType = "json"
)

// ValidTypes lists the accepted --format values.
var ValidTypes = []FormatterType{FormatterTypeSimple, FormatterTypeTable, FormatterTypeCompact, FormatterTypeJSON}

// IsValid reports whether t is a known formatter type.
func (t FormatterType) IsValid() bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeCompact:
		return NewCompactFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}
