package main

import (
	"github.com/lerenn/dep-pruner/cmd/depprune/internal/cli"
	"github.com/lerenn/dep-pruner/pkg/pruner"
	"github.com/lerenn/dep-pruner/pkg/report"
	"github.com/spf13/cobra"
)

func createPruneCmd() *cobra.Command {
	var dryRun bool

	pruneCmd := &cobra.Command{
		Use:   "depprune [--dry-run]",
		Short: "Exclude unused transitive modules from Gradle dependencies",
		Long: `Scan the Java sources of a Gradle project, find the transitive modules of each
declared dependency that are never imported, and add exclusion directives for them
to the build script. Running it again on an up to date build script changes nothing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := cli.NewPruner()
			if err != nil {
				return err
			}

			result, err := p.Prune(pruner.PruneOpts{
				ProjectDir: cli.GetProjectDir(),
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				report.NewPrinter(cmd.OutOrStdout()).PrintResult(result)
			}
			return nil
		},
	}

	pruneCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without writing the build script")

	return pruneCmd
}
