package pruner

import "errors"

// Error definitions for the pruner package.
var (
	// ErrDeclarationFileNotFound is returned when the project has no declaration file. Nothing is written.
	ErrDeclarationFileNotFound = errors.New("declaration file not found")
	// ErrWriteFailed is returned when the patched declaration file cannot be written.
	// The original file is left untouched.
	ErrWriteFailed = errors.New("failed to write declaration file")
	// ErrConfigAlreadyExists is returned by Init when a configuration file is present and Force is not set.
	ErrConfigAlreadyExists = errors.New("configuration file already exists")
)
