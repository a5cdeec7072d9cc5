package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/modkeeper/modkeeper/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHelpText(t *testing.T) {
	root := &cobra.Command{Use: "modkeeper", Version: "1.0.0"}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "mods", Short: "Manage installed mods"},
		&cobra.Command{Use: "hidden", Short: "Not listed"},
	)
	var buf bytes.Buffer
	root.SetOut(&buf)

	printHelpText(root)

	out := buf.String()
	assert.Contains(t, out, "modkeeper 1.0.0")
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "COMMANDS:")
	assert.NotContains(t, out, "hidden")
	assert.Less(t, strings.Index(out, "    mods"), strings.Index(out, "    version"),
		"commands follow the fixed help order")
}

func TestApplyGlobalFlags(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", tmp+"/config")
	t.Setenv("XDG_STATE_HOME", tmp+"/state")
	config.Load()

	cmd := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().Bool("debug", false, "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.Flags().String("locale", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--quiet", "--locale", " de "}))

	applyGlobalFlags(cmd)

	assert.Equal(t, "true", config.Get("quiet", ""))
	assert.Equal(t, "de", config.Get("locale", ""))
	assert.Equal(t, "false", config.Get("debug", ""), "unset flags keep config values")
}
