// Package graph defines the resolved dependency data the pruner works on
// and the resolvers that produce it.
package graph

import (
	"sort"
	"strings"
)

// DependencyID identifies a top-level declared dependency as group:artifact[:version].
type DependencyID string

// Key returns the normalized group:artifact form of the dependency, without version.
func (d DependencyID) Key() string {
	parts := strings.SplitN(string(d), ":", 3)
	if len(parts) < 2 {
		return string(d)
	}
	return parts[0] + ":" + parts[1]
}

// ModuleID identifies a transitive sub-module, hyphen separated (e.g. widgets-core).
type ModuleID string

// Dotted returns the module identifier with hyphens replaced by dots, the
// separator used by symbol names.
func (m ModuleID) Dotted() string {
	return strings.ReplaceAll(string(m), "-", ".")
}

// DependencyModuleMap maps each top-level dependency to its direct transitive modules.
type DependencyModuleMap map[DependencyID][]ModuleID

// Keys returns the dependencies sorted lexicographically.
func (m DependencyModuleMap) Keys() []DependencyID {
	return sortedKeys(m)
}

// ModuleCount returns the total number of modules across all dependencies.
func (m DependencyModuleMap) ModuleCount() int {
	count := 0
	for _, modules := range m {
		count += len(modules)
	}
	return count
}

// UnusedModuleMap maps dependencies to the modules that are never referenced.
// Dependencies without unused modules are absent.
type UnusedModuleMap map[DependencyID][]ModuleID

// Keys returns the dependencies sorted lexicographically.
func (m UnusedModuleMap) Keys() []DependencyID {
	return sortedKeys(m)
}

// ModuleCount returns the total number of unused modules.
func (m UnusedModuleMap) ModuleCount() int {
	return DependencyModuleMap(m).ModuleCount()
}

func sortedKeys(m map[DependencyID][]ModuleID) []DependencyID {
	keys := make([]DependencyID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
