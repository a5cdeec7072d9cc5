package main

import (
	"fmt"

	"github.com/modkeeper/modkeeper/cmd"
	"github.com/modkeeper/modkeeper/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), version.Detailed())
			return err
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd())
}
