// Package report renders pruner results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/lerenn/dep-pruner/pkg/pruner"
)

const msgNothingUnused = "No unused modules"

// Printer writes human readable reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintAnalysis writes the scan summary followed by the unused modules table.
func (p *Printer) PrintAnalysis(analysis pruner.Analysis) {
	fmt.Fprintln(p.out, Summary(analysis))

	if len(analysis.Unused) == 0 {
		color.New(color.FgGreen).Fprintln(p.out, msgNothingUnused)
		return
	}
	fmt.Fprintln(p.out, UnusedTable(analysis.Unused))
}

// PrintResult writes the analysis and the outcome of a prune run.
func (p *Printer) PrintResult(result pruner.Result) {
	p.PrintAnalysis(result.Analysis)

	edits := humanize.Comma(int64(len(result.Edits)))
	switch result.Outcome {
	case pruner.OutcomeChanged:
		color.New(color.FgGreen).Fprintf(p.out, "Updated %s (%s declarations)\n", result.DeclarationFile, edits)
	case pruner.OutcomeWouldChange:
		color.New(color.FgYellow).Fprintf(p.out, "Would update %s (%s declarations), dry run\n", result.DeclarationFile, edits)
	default:
		color.New(color.FgCyan).Fprintf(p.out, "%s is up to date\n", result.DeclarationFile)
	}
}

// Summary returns a one-line description of what was scanned and resolved.
func Summary(analysis pruner.Analysis) string {
	return fmt.Sprintf("Scanned %s files (%s skipped), %s imports of %s symbols; %s dependencies bring %s modules, %s unused",
		humanize.Comma(int64(analysis.Scan.FilesScanned)),
		humanize.Comma(int64(analysis.Scan.FilesSkipped)),
		humanize.Comma(int64(analysis.Scan.Imports)),
		humanize.Comma(int64(analysis.Symbols)),
		humanize.Comma(int64(len(analysis.Dependencies))),
		humanize.Comma(int64(analysis.Dependencies.ModuleCount())),
		humanize.Comma(int64(analysis.Unused.ModuleCount())),
	)
}

// UnusedTable renders one row per unused module, grouped by dependency in key order.
func UnusedTable(unused graph.UnusedModuleMap) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Dependency", "Unused module"})

	for _, id := range unused.Keys() {
		for i, module := range unused[id] {
			dependency := string(id)
			if i > 0 {
				dependency = ""
			}
			tbl.AppendRow(table.Row{dependency, string(module)})
		}
	}

	tbl.AppendFooter(table.Row{"Total", humanize.Comma(int64(unused.ModuleCount()))})
	return tbl.Render()
}
