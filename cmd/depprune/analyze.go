package main

import (
	"github.com/lerenn/dep-pruner/cmd/depprune/internal/cli"
	"github.com/lerenn/dep-pruner/pkg/pruner"
	"github.com/lerenn/dep-pruner/pkg/report"
	"github.com/spf13/cobra"
)

func createAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Report unused transitive modules without touching the build script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := cli.NewPruner()
			if err != nil {
				return err
			}

			analysis, err := p.Analyze(pruner.AnalyzeOpts{ProjectDir: cli.GetProjectDir()})
			if err != nil {
				return err
			}

			// --quiet does not apply to the analyze report
			report.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(analysis)
			return nil
		},
	}
}
