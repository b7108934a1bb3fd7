package gradle

import "errors"

// Error definitions for gradle package.
var (
	// ErrCommandFailed is returned when the gradle process exits with an error.
	ErrCommandFailed = errors.New("gradle command failed")
)
