//go:build unit

package detector

import (
	"strings"
	"testing"

	"github.com/lerenn/dep-pruner/pkg/graph"
	"github.com/lerenn/dep-pruner/pkg/symbols"
	"github.com/stretchr/testify/assert"
)

func TestDetect_ScenarioA(t *testing.T) {
	used := symbols.NewSet("com.acme.widgets.Core")
	deps := graph.DependencyModuleMap{
		"com.acme:widgets-lib": {"widgets-core", "widgets-extra"},
	}

	assert.Equal(t, graph.UnusedModuleMap{
		"com.acme:widgets-lib": {"widgets-extra"},
	}, Detect(used, deps))
}

func TestDetect_PreservesModuleOrder(t *testing.T) {
	used := symbols.NewSet("com.acme.widgets.io.Reader")
	deps := graph.DependencyModuleMap{
		"com.acme:widgets-lib": {"widgets-zeta", "widgets-io", "widgets-alpha"},
	}

	assert.Equal(t, []graph.ModuleID{"widgets-zeta", "widgets-alpha"}, Detect(used, deps)["com.acme:widgets-lib"])
}

func TestDetect_OmitsFullyUsedDependencies(t *testing.T) {
	used := symbols.NewSet("org.slf4j.api.Logger", "com.google.common.collect.ImmutableList")
	deps := graph.DependencyModuleMap{
		"org.slf4j:slf4j-simple":         {"slf4j-api"},
		"com.google.guava:guava":         {"failureaccess", "jsr305"},
		"com.fasterxml.jackson:databind": {},
	}

	assert.Equal(t, graph.UnusedModuleMap{
		"com.google.guava:guava": {"failureaccess", "jsr305"},
	}, Detect(used, deps))
}

func TestDetect_EmptySymbolSetMarksEverythingUnused(t *testing.T) {
	deps := graph.DependencyModuleMap{
		"com.acme:widgets-lib":   {"widgets-core", "widgets-extra"},
		"com.google.guava:guava": {"failureaccess"},
	}

	assert.Equal(t, graph.UnusedModuleMap(deps), Detect(symbols.Set{}, deps))
}

func TestDetect_EmptyDependencies(t *testing.T) {
	unused := Detect(symbols.NewSet("a.B"), nil)
	assert.NotNil(t, unused)
	assert.Empty(t, unused)
}

func TestDetect_ContainmentSemantics(t *testing.T) {
	used := symbols.NewSet("com.acme.widgets.Core", "org.example.io.Streams")
	deps := graph.DependencyModuleMap{
		"com.acme:widgets-lib": {"widgets", "acme-widgets", "io", "Streams", "widgets-core", "extra", "acme-io"},
	}

	unused := Detect(used, deps)

	for _, module := range deps["com.acme:widgets-lib"] {
		matched := false
		for symbol := range used {
			if containsDotted(symbol, module) {
				matched = true
			}
		}
		assert.Equal(t, !matched, contains(unused["com.acme:widgets-lib"], module), module)
	}
	assert.Equal(t, []graph.ModuleID{"extra", "acme-io"}, unused["com.acme:widgets-lib"])
}

func TestDetect_SubsetLaw(t *testing.T) {
	used := symbols.NewSet("com.acme.widgets.extra.Thing")
	deps := graph.DependencyModuleMap{
		"com.acme:widgets-lib": {"widgets-core", "widgets-extra", "widgets-io"},
		"org.b:b":              {"b-one"},
	}

	for dep, modules := range Detect(used, deps) {
		for _, module := range modules {
			assert.Contains(t, deps[dep], module)
		}
	}
}

func containsDotted(symbol string, module graph.ModuleID) bool {
	return strings.Contains(strings.ToLower(symbol), strings.ToLower(strings.ReplaceAll(string(module), "-", ".")))
}

func contains(modules []graph.ModuleID, module graph.ModuleID) bool {
	for _, m := range modules {
		if m == module {
			return true
		}
	}
	return false
}
