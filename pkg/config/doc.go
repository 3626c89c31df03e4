// Package config handles configuration management for codemerge.
// It layers embedded TOML defaults, project and explicit TOML files,
// environment variables and command-line flags using koanf.
package config
