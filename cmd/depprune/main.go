// Package main provides the command-line interface of depprune.
package main

import (
	"log"

	"github.com/lerenn/dep-pruner/cmd/depprune/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := createPruneCmd()

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "",
		"Specify a custom config file path (default <project>/.depprune.yaml)")
	rootCmd.PersistentFlags().StringVarP(&cli.ProjectDir, "project-dir", "C", "", "Project directory (default current directory)")

	// Add subcommands
	rootCmd.AddCommand(createAnalyzeCmd(), createInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
