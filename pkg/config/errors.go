package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigNotFound  = errors.New("configuration file not found")

	// Configuration validation errors.
	ErrSourceDirEmpty           = errors.New("source_dir cannot be empty")
	ErrSourceExtensionInvalid   = errors.New("source_extension must start with a dot")
	ErrDeclarationFileEmpty     = errors.New("declaration_file cannot be empty")
	ErrResolverUnknown          = errors.New("unknown resolver")
	ErrResolvedFileEmpty        = errors.New("resolved_file is required by the file resolver")
	ErrGradleCommandEmpty       = errors.New("gradle_command is required by the gradle resolver")
	ErrGradleConfigurationEmpty = errors.New("gradle_configuration is required by the gradle resolver")
)
