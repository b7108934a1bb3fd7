package graph

import (
	"fmt"

	"github.com/lerenn/dep-pruner/pkg/gradle"
)

type gradleResolver struct {
	gradle        gradle.Gradle
	configuration string
}

// NewGradleResolver creates a Resolver that asks Gradle for the dependency
// tree of the given configuration (e.g. compileClasspath).
func NewGradleResolver(g gradle.Gradle, configuration string) Resolver {
	return &gradleResolver{
		gradle:        g,
		configuration: configuration,
	}
}

// Resolve runs the Gradle dependencies report and parses its tree.
func (r *gradleResolver) Resolve(projectDir string) (DependencyModuleMap, error) {
	output, err := r.gradle.Dependencies(gradle.DependenciesParams{
		ProjectDir:    projectDir,
		Configuration: r.configuration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies with gradle: %w", err)
	}

	return ParseTree(output), nil
}
