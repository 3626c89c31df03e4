package config

import (
	toml "github.com/pelletier/go-toml/v2"
)

// Marshal renders a configuration as TOML
func Marshal(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
