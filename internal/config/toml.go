// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Output     OutputConfig     `toml:"output"`
	History    HistoryConfig    `toml:"history"`
}

// DictionaryConfig maps dictionary settings.
type DictionaryConfig struct {
	Path *string `toml:"path"`
}

// OutputConfig maps result rendering settings.
type OutputConfig struct {
	Format *string `toml:"format"`
}

// HistoryConfig maps query history settings.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled"`
	Last    *int  `toml:"last"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
