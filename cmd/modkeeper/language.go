package main

import (
	"github.com/modkeeper/modkeeper/cmd"
	"github.com/modkeeper/modkeeper/internal/app"
	"github.com/spf13/cobra"
)

const languageCommandLong = `List or change the UI language.

USAGE:
    modkeeper language <subcommand>

SUBCOMMANDS:
    list    Show the available languages, marking the selected one
    set     Select a language by its tag

EXAMPLES:
    # Show languages as JSON
    modkeeper language list --format=json

    # Switch to German
    modkeeper language set de`

// NewLanguageCmd creates the language command with explicit dependencies.
func NewLanguageCmd(client runtimeProvider) *cobra.Command {
	if client == nil {
		panic("NewLanguageCmd: client dependency cannot be nil")
	}

	languageCmd := &cobra.Command{
		Use:   "language",
		Short: "List or change the UI language",
		Long:  languageCommandLong,
	}

	var formatFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the available languages",
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
			return app.NewLanguageUseCase(rt).List(f, c.OutOrStdout())
		},
	}
	addFormatFlag(listCmd, &formatFlag)

	setCmd := &cobra.Command{
		Use:   "set <tag>",
		Short: "Select a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rt, err := client.Runtime()
			if err != nil {
				return err
			}
			return app.NewLanguageUseCase(rt).Set(args[0], c.OutOrStdout())
		},
	}

	languageCmd.AddCommand(listCmd, setCmd)
	return languageCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewLanguageCmd(runtimes))
}
