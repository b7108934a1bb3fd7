package pruner

import (
	"fmt"

	"github.com/lerenn/dep-pruner/pkg/declaration"
)

// Prune locates the declaration file, analyzes the project and rewrites the
// declaration file so that every unused module is excluded.
func (p *realPruner) Prune(opts PruneOpts) (Result, error) {
	cfg, err := p.getConfig()
	if err != nil {
		return Result{}, err
	}

	result := Result{DeclarationFile: projectPath(opts.ProjectDir, cfg.DeclarationFile)}

	exists, err := p.deps.FS.Exists(result.DeclarationFile)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check declaration file: %w", err)
	}
	if !exists {
		return Result{}, fmt.Errorf("%w: %s", ErrDeclarationFileNotFound, result.DeclarationFile)
	}

	result.Analysis, err = p.analyze(opts.ProjectDir, cfg)
	if err != nil {
		return Result{}, err
	}

	if len(result.Unused) == 0 {
		p.VerbosePrint("No unused dependencies")
		result.Outcome = OutcomeUnchanged
		return result, nil
	}

	return p.patch(result, opts.DryRun)
}

// patch applies the exclusions to the declaration file of result.
func (p *realPruner) patch(result Result, dryRun bool) (Result, error) {
	path := result.DeclarationFile

	info, err := p.deps.FS.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat declaration file: %w", err)
	}
	data, err := p.deps.FS.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read declaration file: %w", err)
	}

	dialect := declaration.DialectFor(path)
	p.deps.Logger.Debugf("Patching %s as a %s build script", path, dialect)

	original := declaration.Parse(string(data))
	patched := declaration.Patch(original, result.Unused, dialect)
	result.Edits = patched.Edits

	for _, edit := range patched.Edits {
		p.VerbosePrint("%s:%d: excluding %v from %s", path, edit.Line, edit.Modules, edit.Dependency)
	}

	if !patched.Changed(original) {
		p.VerbosePrint("%s is up to date", path)
		result.Outcome = OutcomeUnchanged
		return result, nil
	}

	if dryRun {
		p.VerbosePrint("Dry run, %s not written", path)
		result.Outcome = OutcomeWouldChange
		return result, nil
	}

	if err := p.deps.FS.WriteFileAtomic(path, []byte(patched.Document.String()), info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	p.VerbosePrint("Updated %s", path)
	result.Outcome = OutcomeChanged
	return result, nil
}
