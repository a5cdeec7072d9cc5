package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modkeeper/modkeeper/cmd"
	"github.com/modkeeper/modkeeper/internal/app"
	"github.com/modkeeper/modkeeper/internal/config"
	apperrors "github.com/modkeeper/modkeeper/internal/errors"
	"github.com/spf13/cobra"
)

const modsCommandLong = `Manage the installed mods.

USAGE:
    modkeeper mods <subcommand>

SUBCOMMANDS:
    list                 Show every mod
    search <query>       Show mods matching a query
    add <name>           Register a mod
    remove <id>          Forget a mod
    enable <id>          Enable a mod
    disable <id>         Disable a mod

SEARCH QUERIES:
    Words match name, version, source, remote id and tags.
    name:, source: and tags: restrict a word to one field.
    enabled and disabled filter by state.

EXAMPLES:
    modkeeper mods add "Better UI" --version 1.2 --source steam --tag ui
    modkeeper mods search source:steam enabled
    modkeeper mods disable 3`

// NewModsCmd creates the mods command with explicit dependencies.
func NewModsCmd(client runtimeProvider) *cobra.Command {
	if client == nil {
		panic("NewModsCmd: client dependency cannot be nil")
	}

	modsCmd := &cobra.Command{
		Use:   "mods",
		Short: "Manage installed mods",
		Long:  modsCommandLong,
	}
	modsCmd.AddCommand(
		newModsListCmd(client),
		newModsSearchCmd(client),
		newModsAddCmd(client),
		newModsRemoveCmd(client),
		newModsToggleCmd(client, "enable", true),
		newModsToggleCmd(client, "disable", false),
	)
	return modsCmd
}

func modsUseCase(client runtimeProvider) (*app.ModsUseCase, error) {
	rt, err := client.Runtime()
	if err != nil {
		return nil, err
	}
	return app.NewModsUseCase(rt), nil
}

func newModsListCmd(client runtimeProvider) *cobra.Command {
	var formatFlag string
	c := &cobra.Command{
		Use:   "list",
		Short: "Show every mod",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			f, err := formatterFor(formatFlag)
			if err != nil {
				return err
			}
			u, err := modsUseCase(client)
			if err != nil {
				return err
			}
			return u.List(c.Context(), f, c.OutOrStdout())
		},
	}
	addFormatFlag(c, &formatFlag)
	return c
}

func newModsSearchCmd(client runtimeProvider) *cobra.Command {
	var formatFlag string
	c := &cobra.Command{
		Use:   "search <query>",
		Short: "Show mods matching a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			f, err := formatterFor(formatFlag)
			if err != nil {
				return err
			}
			u, err := modsUseCase(client)
			if err != nil {
				return err
			}
			return u.Search(c.Context(), strings.Join(args, " "), f, c.OutOrStdout())
		},
	}
	addFormatFlag(c, &formatFlag)
	return c
}

func newModsAddCmd(client runtimeProvider) *cobra.Command {
	var in app.AddModInput
	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a mod",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			in.Name = strings.Join(args, " ")
			u, err := modsUseCase(client)
			if err != nil {
				return err
			}
			id, err := u.Add(c.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), id)
			return err
		},
	}
	c.Flags().StringVar(&in.Version, "version", "", "Mod version")
	c.Flags().StringVar(&in.Source, "source", "", "Where the mod comes from: local, steam, paradox")
	c.Flags().StringVar(&in.RemoteID, "remote-id", "", "Id of the mod at its source")
	c.Flags().StringVar(&in.DescriptorPath, "descriptor", "", "Path of the mod descriptor file")
	c.Flags().StringSliceVar(&in.Tags, "tag", nil, "Tag to attach (repeatable)")
	c.Flags().BoolVar(&in.Disabled, "disabled", false, "Register the mod disabled")
	return c
}

func newModsRemoveCmd(client runtimeProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Forget a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseModID(args[0])
			if err != nil {
				return err
			}
			u, err := modsUseCase(client)
			if err != nil {
				return err
			}
			if err := u.Remove(c.Context(), id); err != nil {
				return err
			}
			report(fmt.Sprintf("mod %d removed", id))
			return nil
		},
	}
}

func newModsToggleCmd(client runtimeProvider, name string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: strings.ToUpper(name[:1]) + name[1:] + " a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseModID(args[0])
			if err != nil {
				return err
			}
			u, err := modsUseCase(client)
			if err != nil {
				return err
			}
			if err := u.SetEnabled(c.Context(), id, enabled); err != nil {
				return err
			}
			report(fmt.Sprintf("mod %d %sd", id, name))
			return nil
		},
	}
}

func parseModID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid mod id %q", arg)
	}
	return id, nil
}

// report prints a success line unless quiet is set.
func report(msg string) {
	h := apperrors.NewDefaultCLIHandler()
	h.SetQuiet(config.GetBool("quiet", false))
	h.Success(msg)
}

func init() {
	cmd.RootCmd.AddCommand(NewModsCmd(runtimes))
}
