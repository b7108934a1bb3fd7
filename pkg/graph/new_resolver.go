package graph

import (
	"fmt"

	"github.com/lerenn/dep-pruner/pkg/config"
	"github.com/lerenn/dep-pruner/pkg/fs"
	"github.com/lerenn/dep-pruner/pkg/gradle"
)

// NewResolverParams contains parameters for creating the configured Resolver.
type NewResolverParams struct {
	FS     fs.FS
	Config config.Config
}

// NewResolver returns the Resolver selected by the configuration.
func NewResolver(params NewResolverParams) (Resolver, error) {
	switch params.Config.Resolver {
	case config.ResolverFile:
		return NewFileResolver(params.FS, params.Config.ResolvedFile), nil
	case config.ResolverGradle:
		return NewGradleResolver(gradle.NewGradle(params.Config.GradleCommand), params.Config.GradleConfiguration), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrResolverUnknown, params.Config.Resolver)
	}
}
