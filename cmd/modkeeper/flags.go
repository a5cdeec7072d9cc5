package main

import (
	"fmt"
	"strings"

	"github.com/modkeeper/modkeeper/internal/format"
	"github.com/spf13/cobra"
)

const formatFlagUsage = "Output format: simple, table, compact, json"

func addFormatFlag(c *cobra.Command, target *string) {
	c.Flags().StringVar(target, "format", string(format.FormatterTypeSimple), formatFlagUsage)
}

// formatterFor validates a --format value and returns its formatter.
func formatterFor(value string) (format.Formatter, error) {
	t := format.FormatterType(strings.ToLower(strings.TrimSpace(value)))
	if !t.IsValid() {
		valid := make([]string, len(format.ValidTypes))
		for i, v := range format.ValidTypes {
			valid[i] = string(v)
		}
		return nil, fmt.Errorf("invalid format %q, must be one of: %s", value, strings.Join(valid, ", "))
	}
	return format.NewFormatter(t), nil
}
