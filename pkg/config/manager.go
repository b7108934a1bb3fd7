// Package config provides configuration management functionality for the dependency pruner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Keys missing from the file keep their default value.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to default only if the file is missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Default()
}
