// Package detector computes which transitive modules of each dependency are never referenced.
package detector

import (
	"strings"

	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/lerenn/dep-pruner/pkg/symbols"
)

// Detect returns, for every dependency, the modules no used symbol refers to.
//
// A module is used when at least one symbol contains the module name with
// hyphens replaced by dots, ignoring case (widgets-core matches
// com.acme.widgets.Core).
// This is a containment test: a short module name may match an unrelated
// symbol, and a module only reached through re-exports is never matched.
// Dependencies without unused modules are omitted; module order is preserved.
func Detect(used symbols.Set, deps graph.DependencyModuleMap) graph.UnusedModuleMap {
	unused := graph.UnusedModuleMap{}
	lowered := lower(used)

	for dep, modules := range deps {
		var candidates []graph.ModuleID
		for _, module := range modules {
			if !isUsed(lowered, module) {
				candidates = append(candidates, module)
			}
		}
		if len(candidates) > 0 {
			unused[dep] = candidates
		}
	}

	return unused
}

// IsUsed reports whether any symbol contains the dotted form of the module, ignoring case.
func IsUsed(used symbols.Set, module graph.ModuleID) bool {
	return isUsed(lower(used), module)
}

func isUsed(lowered []string, module graph.ModuleID) bool {
	dotted := strings.ToLower(module.Dotted())
	for _, symbol := range lowered {
		if strings.Contains(symbol, dotted) {
			return true
		}
	}
	return false
}

func lower(used symbols.Set) []string {
	out := make([]string, 0, len(used))
	for symbol := range used {
		out = append(out, strings.ToLower(symbol))
	}
	return out
}
