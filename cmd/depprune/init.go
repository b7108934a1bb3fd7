package main

import (
	"fmt"

	"github.com/lerenn/dep-pruner/cmd/depprune/internal/cli"
	"github.com/lerenn/dep-pruner/pkg/pruner"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force, nonInteractive bool

	initCmd := &cobra.Command{
		Use:   "init [--force] [--non-interactive]",
		Short: "Write the default depprune configuration",
		Long: `Write the configuration file to <project>/.depprune.yaml, or to the path
given with --config. Each setting is asked interactively.

Flags:
  --force             Overwrite an existing configuration file without asking
  --non-interactive   Write the default configuration without prompting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := cli.NewPruner()
			if err != nil {
				return err
			}

			path, err := p.Init(pruner.InitOpts{
				Force:          force,
				NonInteractive: nonInteractive,
			})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			}
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file without asking")
	initCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Write the default configuration without prompting")

	return initCmd
}
