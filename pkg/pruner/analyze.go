package pruner

import (
	"fmt"

	"github.com/lerenn/dep-pruner/pkg/config"
	"github.com/lerenn/dep-pruner/pkg/detector"
	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/lerenn/dep-pruner/pkg/symbols"
)

// Analyze scans the sources, resolves the dependency graph and detects unused modules.
func (p *realPruner) Analyze(opts AnalyzeOpts) (Analysis, error) {
	cfg, err := p.getConfig()
	if err != nil {
		return Analysis{}, err
	}

	return p.analyze(opts.ProjectDir, cfg)
}

func (p *realPruner) analyze(projectDir string, cfg config.Config) (Analysis, error) {
	analysis := Analysis{SourceDir: projectPath(projectDir, cfg.SourceDir)}

	p.VerbosePrint("Scanning %s files under %s", cfg.SourceExtension, analysis.SourceDir)
	scanner := p.deps.ScannerProvider(symbols.NewScannerParams{
		FS:        p.deps.FS,
		Logger:    p.deps.Logger,
		Extension: cfg.SourceExtension,
	})
	used, stats, err := scanner.Scan(analysis.SourceDir)
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to scan sources: %w", err)
	}
	analysis.Scan = stats
	analysis.Symbols = used.Len()

	if used.Len() == 0 {
		p.deps.Logger.Warnf("No imports found under %s, every module will be reported unused", analysis.SourceDir)
	}

	p.VerbosePrint("Resolving dependencies with the %s resolver", cfg.Resolver)
	resolver, err := p.deps.ResolverProvider(graph.NewResolverParams{
		FS:     p.deps.FS,
		Config: cfg,
	})
	if err != nil {
		return Analysis{}, err
	}
	deps, err := resolver.Resolve(projectPath(projectDir, "."))
	if err != nil {
		return Analysis{}, err
	}
	if len(deps) == 0 {
		p.VerbosePrint("No dependency data, nothing to analyze")
	}
	analysis.Dependencies = deps

	analysis.Unused = detector.Detect(used, deps)
	for _, id := range analysis.Unused.Keys() {
		p.deps.Logger.Debugf("Unused modules of %s: %v", id, analysis.Unused[id])
	}

	return analysis, nil
}
