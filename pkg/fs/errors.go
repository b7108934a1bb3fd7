// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrNotADirectory is returned when a walk root is a regular file.
	ErrNotADirectory = errors.New("not a directory")
)
