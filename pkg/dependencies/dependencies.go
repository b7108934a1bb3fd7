// Package dependencies provides a centralized dependency container for depprune.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/dep-pruner/pkg/config"
	"github.com/lerenn/dep-pruner/pkg/fs"
	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/lerenn/dep-pruner/pkg/logger"
	"github.com/lerenn/dep-pruner/pkg/prompt"
	"github.com/lerenn/dep-pruner/pkg/symbols"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing               = errors.New("fs dependency is required but not set")
	ErrConfigMissing           = errors.New("config dependency is required but not set")
	ErrLoggerMissing           = errors.New("logger dependency is required but not set")
	ErrPromptMissing           = errors.New("prompt dependency is required but not set")
	ErrScannerProviderMissing  = errors.New("scanner provider dependency is required but not set")
	ErrResolverProviderMissing = errors.New("resolver provider dependency is required but not set")
)

// ScannerProvider builds the symbol scanner once the configuration is known.
type ScannerProvider func(params symbols.NewScannerParams) symbols.Scanner

// ResolverProvider builds the dependency graph resolver once the configuration is known.
type ResolverProvider func(params graph.NewResolverParams) (graph.Resolver, error)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS               fs.FS
	Config           config.Manager
	Logger           logger.Logger
	Prompt           prompt.Prompter
	ScannerProvider  ScannerProvider
	ResolverProvider ResolverProvider
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:               fs.NewFS(),
		Logger:           logger.NewNoopLogger(),
		Prompt:           prompt.NewPrompt(),
		ScannerProvider:  symbols.NewScanner,
		ResolverProvider: graph.NewResolver,
		// Config depends on the project directory and is set via WithConfig
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithScannerProvider sets the scanner provider and returns the instance for chaining.
func (d *Dependencies) WithScannerProvider(sp ScannerProvider) *Dependencies {
	d.ScannerProvider = sp
	return d
}

// WithResolverProvider sets the resolver provider and returns the instance for chaining.
func (d *Dependencies) WithResolverProvider(rp ResolverProvider) *Dependencies {
	d.ResolverProvider = rp
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Prompt == nil, ErrPromptMissing},
		{d.ScannerProvider == nil, ErrScannerProviderMissing},
		{d.ResolverProvider == nil, ErrResolverProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
