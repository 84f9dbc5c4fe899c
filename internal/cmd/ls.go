package cmd

import (
	"fmt"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"termic/internal/registry"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List running termic sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := registry.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No running sessions.")
				return nil
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].CreatedAt.Before(entries[j].CreatedAt)
			})
			for _, e := range entries {
				printSessionLine(cmd, e)
			}
			return nil
		},
	}
}

func printSessionLine(cmd *cobra.Command, e registry.Entry) {
	symbol, state := "\033[32m●\033[0m", "running"
	if !processAlive(e.Pid) {
		symbol, state = "\033[31m●\033[0m", "dead"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s %s \033[2m(pid %d, %dx%d)\033[0m — %s, up %s\n",
		symbol, e.Label, e.Pid, e.Cols, e.Rows, state, time.Since(e.CreatedAt).Round(time.Second))
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return syscall.Kill(pid, 0) == nil
}
