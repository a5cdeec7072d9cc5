package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/domain"
)

const (
	selectedMarker   = "*"
	unselectedMarker = " "
)

func marker(selected bool) string {
	if selected {
		return selectedMarker
	}
	return unselectedMarker
}

func enabledText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}

// SimpleFormatter prints one line per entry with its id.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatMods formats mods in simple format.
func (f *SimpleFormatter) FormatMods(mods []domain.Mod, writer io.Writer) error {
	for _, m := range mods {
		line := fmt.Sprintf("%-4d  %s", m.ID, m.Name)
		if m.Version != "" {
			line += " " + m.Version
		}
		if !m.Enabled {
			line += " (" + enabledText(false) + ")"
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatOptions formats options in simple format, marking the selected one.
func (f *SimpleFormatter) FormatOptions(options []Option, writer io.Writer) error {
	for _, o := range options {
		if _, err := fmt.Fprintf(writer, "%s %-14s %s\n", marker(o.Selected), o.ID, o.Name); err != nil {
			return err
		}
	}
	return nil
}

// TableFormatter prints entries under column headers.
type TableFormatter struct{}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// FormatMods formats mods in table format.
func (f *TableFormatter) FormatMods(mods []domain.Mod, writer io.Writer) error {
	if len(mods) == 0 {
		return nil
	}
	headerColor := colors.Blue
	reset := colors.Reset
	_, err := fmt.Fprintf(writer, "%sID    NAME                              VERSION     SOURCE    STATE     TAGS%s\n", headerColor, reset)
	if err != nil {
		return err
	}
	for _, m := range mods {
		_, err := fmt.Fprintf(writer, "%-4d  %-32s  %-10s  %-8s  %-8s  %s\n",
			m.ID, truncate(m.Name, 32), truncate(m.Version, 10), m.Source, enabledText(m.Enabled), strings.Join(m.Tags, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatOptions formats options in table format.
func (f *TableFormatter) FormatOptions(options []Option, writer io.Writer) error {
	if len(options) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(writer, "%s   ID              NAME%s\n", colors.Blue, colors.Reset)
	if err != nil {
		return err
	}
	for _, o := range options {
		if _, err := fmt.Fprintf(writer, "%s  %-14s  %s\n", marker(o.Selected), o.ID, o.Name); err != nil {
			return err
		}
	}
	return nil
}

// CompactFormatter prints names only.
type CompactFormatter struct{}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter() *CompactFormatter {
	return &CompactFormatter{}
}

// FormatMods formats mods in compact format.
func (f *CompactFormatter) FormatMods(mods []domain.Mod, writer io.Writer) error {
	for _, m := range mods {
		if _, err := fmt.Fprintln(writer, m.Name); err != nil {
			return err
		}
	}
	return nil
}

// FormatOptions formats options in compact format.
func (f *CompactFormatter) FormatOptions(options []Option, writer io.Writer) error {
	for _, o := range options {
		if _, err := fmt.Fprintln(writer, o.ID); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats entries as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type modJSON struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Version        string   `json:"version,omitempty"`
	Source         string   `json:"source"`
	RemoteID       string   `json:"remote_id,omitempty"`
	DescriptorPath string   `json:"descriptor_path,omitempty"`
	Tags           []string `json:"tags"`
	Enabled        bool     `json:"enabled"`
}

// FormatMods formats mods as JSON.
func (f *JSONFormatter) FormatMods(mods []domain.Mod, writer io.Writer) error {
	out := make([]modJSON, 0, len(mods))
	for _, m := range mods {
		tags := m.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, modJSON{
			ID:             m.ID,
			Name:           m.Name,
			Version:        m.Version,
			Source:         m.Source,
			RemoteID:       m.RemoteID,
			DescriptorPath: m.DescriptorPath,
			Tags:           tags,
			Enabled:        m.Enabled,
		})
	}
	return writeJSON(writer, out, "mods")
}

// FormatOptions formats options as JSON.
func (f *JSONFormatter) FormatOptions(options []Option, writer io.Writer) error {
	if options == nil {
		options = []Option{}
	}
	return writeJSON(writer, options, "options")
}

func writeJSON(writer io.Writer, v any, what string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s to JSON: %w", what, err)
	}
	if _, err := writer.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}
