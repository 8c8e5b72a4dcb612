package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "miniblog",
	Short: "miniblog - snapshot-persisted blogging backend",
	Long: `miniblog is a small blogging backend. It keeps users and posts in
memory, persists them as a single JSON snapshot file rewritten after every
mutation, and serves a JSON API plus a few rendered pages.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
