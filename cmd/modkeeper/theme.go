package main

import (
	"github.com/modkeeper/modkeeper/cmd"
	"github.com/modkeeper/modkeeper/internal/app"
	"github.com/spf13/cobra"
)

const themeCommandLong = `List or change the color theme.

USAGE:
    modkeeper theme <subcommand>

SUBCOMMANDS:
    list    Show the available themes, marking the selected one
    set     Select a theme: light, dark, material-dark

EXAMPLES:
    modkeeper theme list
    modkeeper theme set material-dark`

// NewThemeCmd creates the theme command with explicit dependencies.
func NewThemeCmd(client runtimeProvider) *cobra.Command {
	if client == nil {
		panic("NewThemeCmd: client dependency cannot be nil")
	}

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "List or change the color theme",
		Long:  themeCommandLong,
	}

	var formatFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the available themes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			f, err := formatterFor(formatFlag)
			if err != nil {
				return err
			}
			rt, err := client.Runtime()
			if err != nil {
				return err
			}
			return app.NewThemeUseCase(rt).List(f, c.OutOrStdout())
		},
	}
	addFormatFlag(listCmd, &formatFlag)

	setCmd := &cobra.Command{
		Use:   "set <theme>",
		Short: "Select a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rt, err := client.Runtime()
			if err != nil {
				return err
			}
			return app.NewThemeUseCase(rt).Set(args[0], c.OutOrStdout())
		},
	}

	themeCmd.AddCommand(listCmd, setCmd)
	return themeCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewThemeCmd(runtimes))
}
