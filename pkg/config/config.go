package config

import (
	"fmt"
	"strings"
)

// Resolver names accepted in the configuration.
const (
	ResolverGradle = "gradle"
	ResolverFile   = "file"
)

// FileName is the name of the configuration file looked up in the project directory.
const FileName = ".depprune.yaml"

// Config represents the pruner configuration. Relative paths are resolved against the project directory.
type Config struct {
	SourceDir           string `yaml:"source_dir"`
	SourceExtension     string `yaml:"source_extension"`
	DeclarationFile     string `yaml:"declaration_file"`
	Resolver            string `yaml:"resolver"`
	ResolvedFile        string `yaml:"resolved_file,omitempty"`
	GradleCommand       string `yaml:"gradle_command"`
	GradleConfiguration string `yaml:"gradle_configuration"`
}

// Default returns the configuration used when no configuration file is present.
func Default() Config {
	return Config{
		SourceDir:           "src/main/java",
		SourceExtension:     ".java",
		DeclarationFile:     "build.gradle",
		Resolver:            ResolverGradle,
		GradleCommand:       "gradle",
		GradleConfiguration: "compileClasspath",
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SourceDir) == "" {
		return ErrSourceDirEmpty
	}
	if !strings.HasPrefix(c.SourceExtension, ".") {
		return fmt.Errorf("%w: %q", ErrSourceExtensionInvalid, c.SourceExtension)
	}
	if strings.TrimSpace(c.DeclarationFile) == "" {
		return ErrDeclarationFileEmpty
	}

	switch c.Resolver {
	case ResolverFile:
		if strings.TrimSpace(c.ResolvedFile) == "" {
			return ErrResolvedFileEmpty
		}
	case ResolverGradle:
		if strings.TrimSpace(c.GradleCommand) == "" {
			return ErrGradleCommandEmpty
		}
		if strings.TrimSpace(c.GradleConfiguration) == "" {
			return ErrGradleConfigurationEmpty
		}
	default:
		return fmt.Errorf("%w: %q", ErrResolverUnknown, c.Resolver)
	}

	return nil
}
