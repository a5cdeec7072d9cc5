package main

import (
	"time"

	"github.com/modkeeper/modkeeper/cmd"
	"github.com/modkeeper/modkeeper/internal/app"
	"github.com/modkeeper/modkeeper/internal/config"
	tuiapp "github.com/modkeeper/modkeeper/internal/tui/app"
	"github.com/spf13/cobra"
)

const tuiCommandLong = `Open the interactive mod manager.

KEYS:
    tab / shift+tab    Switch between mods, languages and themes
    up/k, down/j       Move the cursor
    enter              Select the language or theme under the cursor
    ctrl+e             Enable or disable the mod under the cursor
    ctrl+n / ctrl+p    Jump to the next or previous search match
    ctrl+u             Clear the search
    ctrl+c             Quit`

// tuiClientFactory builds the TUI client for an opened runtime.
type tuiClientFactory func(rt *app.Runtime) tuiapp.Client

func defaultTUIClient(rt *app.Runtime) tuiapp.Client {
	ttl := time.Duration(config.GetInt("status_clear_seconds", 5)) * time.Second
	return tuiapp.NewDefaultClient(rt, nil, ttl)
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client runtimeProvider, newClient tuiClientFactory) *cobra.Command {
	if client == nil || newClient == nil {
		panic("NewTUICmd: dependencies cannot be nil")
	}
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive mod manager",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			rt, err := client.Runtime()
			if err != nil {
				return err
			}
			ui := newClient(rt)
			model, err := ui.CreateModel()
			if err != nil {
				return err
			}
			return ui.RunProgram(model)
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewTUICmd(runtimes, defaultTUIClient))
}
