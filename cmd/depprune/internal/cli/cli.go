// Package cli provides the shared flags and wiring of the depprune CLI.
package cli

import (
	"path/filepath"

	"github.com/lerenn/dep-pruner/pkg/config"
	"github.com/lerenn/dep-pruner/pkg/dependencies"
	"github.com/lerenn/dep-pruner/pkg/logger"
	"github.com/lerenn/dep-pruner/pkg/pruner"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// ProjectDir is the root of the project to prune.
	ProjectDir string
)

// GetConfigPath returns the config file path, defaulting to .depprune.yaml in the project directory.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return filepath.Join(GetProjectDir(), config.FileName)
}

// GetProjectDir returns the project directory, defaulting to the working directory.
func GetProjectDir() string {
	if ProjectDir == "" {
		return "."
	}
	return ProjectDir
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}

// NewPruner creates a new Pruner instance wired with the CLI configuration.
func NewPruner() (pruner.Pruner, error) {
	return pruner.NewPruner(pruner.NewPrunerParams{
		Dependencies: dependencies.New().
			WithConfig(NewConfigManager()).
			WithLogger(NewLogger()),
	})
}
