package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"termic/internal/version"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termic",
		Short: "A terminal emulator core: PTY sessions, VT decoding, screen state",
		Long:  "termic runs a shell or command behind a pseudo-terminal, decodes its ANSI/VT output into a cell grid, and exposes both a CLI demo renderer and a session registry for inspecting what's running.",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newLsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the termic version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.DisplayVersion())
			return nil
		},
	}
}
