package pruner

import (
	"github.com/lerenn/dep-pruner/pkg/declaration"
	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/lerenn/dep-pruner/pkg/symbols"
)

// Outcome is the effect of a prune run on the declaration file.
type Outcome string

// Prune outcomes.
const (
	// OutcomeChanged means the declaration file was rewritten.
	OutcomeChanged Outcome = "changed"
	// OutcomeUnchanged means the declaration file already had the wanted content.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeWouldChange means a dry run found edits that were not written.
	OutcomeWouldChange Outcome = "would-change"
)

// AnalyzeOpts contains optional parameters for Analyze.
type AnalyzeOpts struct {
	// ProjectDir is the directory configured paths are relative to. Defaults to the working directory.
	ProjectDir string
}

// PruneOpts contains optional parameters for Prune.
type PruneOpts struct {
	ProjectDir string
	// DryRun computes the edits without writing the declaration file.
	DryRun bool
}

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	// Force overwrites an existing configuration file without asking.
	Force bool
	// NonInteractive writes the default configuration without prompting.
	NonInteractive bool
}

// Analysis is the read-only part of a run.
type Analysis struct {
	SourceDir    string
	Scan         symbols.Stats
	Symbols      int
	Dependencies graph.DependencyModuleMap
	Unused       graph.UnusedModuleMap
}

// Result is the outcome of Prune.
type Result struct {
	Analysis
	Outcome         Outcome
	DeclarationFile string
	Edits           []declaration.Edit
}
