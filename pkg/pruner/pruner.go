// Package pruner runs the whole pipeline: scan the sources, resolve the
// dependency graph, detect unused modules and patch the declaration file.
package pruner

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/dep-pruner/pkg/config"
	"github.com/lerenn/dep-pruner/pkg/dependencies"
	"github.com/lerenn/dep-pruner/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=pruner.go -destination=mocks/pruner.gen.go -package=mocks

// Pruner interface provides the pruning operations of depprune.
type Pruner interface {
	// Prune excludes unused modules in the declaration file of the project.
	Prune(opts PruneOpts) (Result, error)
	// Analyze reports unused modules without reading or touching the declaration file.
	Analyze(opts AnalyzeOpts) (Analysis, error)
	// Init writes the default configuration file.
	Init(opts InitOpts) (string, error)
	// SetLogger sets the logger for this Pruner instance.
	SetLogger(logger logger.Logger)
}

// NewPrunerParams contains parameters for creating a new Pruner instance.
type NewPrunerParams struct {
	Dependencies *dependencies.Dependencies
}

type realPruner struct {
	deps *dependencies.Dependencies
}

// NewPruner creates a new Pruner instance.
func NewPruner(params NewPrunerParams) (Pruner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realPruner{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (p *realPruner) VerbosePrint(msg string, args ...interface{}) {
	if p.deps.Logger != nil {
		p.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Pruner instance.
func (p *realPruner) SetLogger(logger logger.Logger) {
	p.deps.Logger = logger
}

// getConfig gets the configuration from the ConfigManager with fallback.
func (p *realPruner) getConfig() (config.Config, error) {
	cfg, err := p.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// projectPath resolves a configured path against the project directory.
func projectPath(projectDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if projectDir == "" {
		projectDir = "."
	}
	return filepath.Join(projectDir, path)
}
