package declaration

import (
	"strings"

	"github.com/lerenn/dep-pruner/pkg/graph"
)

// blockIndent is the extra indentation of directives inside a declaration block.
const blockIndent = "    "

// Edit describes the rewrite of one declaration.
type Edit struct {
	// Line is the 1-based line number of the declaration in the original document.
	Line       int
	Dependency graph.DependencyID
	Modules    []graph.ModuleID
	// Normalized is set when the declaration line itself was rewritten.
	Normalized bool
	// RemovedDirectives counts the previous exclusion directives dropped.
	RemovedDirectives int
}

// Result is the outcome of Patch.
type Result struct {
	Document Document
	Edits    []Edit
}

// Changed reports whether the patched document differs from original.
func (r Result) Changed(original Document) bool {
	return r.Document.String() != original.String()
}

// Patch rewrites every declaration of a dependency of unused so that it is
// followed by one exclusion directive per unused module. Previous exclusion
// directives directly following the declaration are replaced, which makes
// patching idempotent. Every other line is copied unchanged.
func Patch(doc Document, unused graph.UnusedModuleMap, dialect Dialect) Result {
	classifier := NewClassifier(unused)
	out := make([]string, 0, len(doc.Lines))
	var edits []Edit

	for i := 0; i < len(doc.Lines); i++ {
		line := classifier.Classify(doc.Lines[i])
		if line.Kind != KindDeclaration {
			out = append(out, doc.Lines[i])
			continue
		}

		decl := line.decl
		modules := unused[line.Dependency]
		header := decl.header(dialect)
		out = append(out, header)

		// Drop the directives written by a previous run
		next := i + 1
		for next < len(doc.Lines) && classifier.Classify(doc.Lines[next]).Kind == KindExclusion {
			next++
		}

		childIndent := decl.indent + blockIndent
		for _, module := range modules {
			out = append(out, childIndent+dialect.Exclusion(string(module))+decl.eol)
		}
		for _, statement := range decl.inline {
			if !strings.HasPrefix(statement, ExclusionKeyword) {
				out = append(out, childIndent+statement+decl.eol)
			}
		}
		if !decl.opensBlock {
			out = append(out, decl.indent+"}"+decl.eol)
		}

		edits = append(edits, Edit{
			Line:              i + 1,
			Dependency:        line.Dependency,
			Modules:           modules,
			Normalized:        header != doc.Lines[i],
			RemovedDirectives: next - i - 1,
		})
		i = next - 1
	}

	return Result{
		Document: Document{Lines: out},
		Edits:    edits,
	}
}

// header renders the declaration line opening its block. A line that is
// already a parenthesized call opening a block is kept verbatim.
func (d *declaration) header(dialect Dialect) string {
	if d.parenthesized && d.opensBlock && len(d.inline) == 0 {
		return d.raw
	}

	call := d.code
	if !d.parenthesized {
		call = d.indent + dialect.Call(d.name, d.args)
	}

	header := call + " {"
	if d.comment != "" {
		header += " " + d.comment
	}
	return header + d.eol
}
