package cmd

import (
	"fmt"
	"strings"

	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/config"
	"github.com/modkeeper/modkeeper/internal/version"
	"github.com/spf13/cobra"
)

const rootShort = "Keep your game mods, language and theme in order."

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "modkeeper",
	Short:         rootShort,
	Long:          rootShort,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyGlobalFlags(cmd)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprint(cmd.OutOrStdout(), cmd.Long+"\n\n"+cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})

	RootCmd.PersistentFlags().Bool("debug", false, "Print debug output")
	RootCmd.PersistentFlags().Bool("quiet", false, "Suppress informational output")
	RootCmd.PersistentFlags().String("locale", "", "Default UI language when none is stored")
}

// applyGlobalFlags pushes explicitly set persistent flags into config so
// they take precedence over file and environment.
func applyGlobalFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		config.Set("debug", fmt.Sprint(debug))
		colors.SetDebug(debug)
	}
	if flags.Changed("quiet") {
		quiet, _ := flags.GetBool("quiet")
		config.Set("quiet", fmt.Sprint(quiet))
	}
	if flags.Changed("locale") {
		locale, _ := flags.GetString("locale")
		config.Set("locale", strings.TrimSpace(locale))
	}
}

func printHelpText(cmd *cobra.Command) {
	// Order of commands in the help output
	commandOrder := []string{
		"tui",
		"mods",
		"language",
		"theme",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`modkeeper %s

%s

USAGE:
    modkeeper [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --debug         Print debug output
    --quiet         Suppress informational output
    --locale <tag>  Default UI language when none is stored
    -h, --help      Show help message
`, cmd.Version, rootShort, strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
