// Package configs provides embedded configuration files for depprune.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration file content.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
