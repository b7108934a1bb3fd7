package graph

import "errors"

// Error definitions for graph package.
var (
	// ErrResolvedFileParse is returned when the resolved dependencies file is not valid YAML.
	ErrResolvedFileParse = errors.New("failed to parse resolved dependencies file")
	// ErrInvalidDependencyID is returned when a key is not of the form group:artifact.
	ErrInvalidDependencyID = errors.New("invalid dependency identifier")
)
