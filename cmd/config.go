package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml"
)

// defaultConfigFile is looked up in the working directory when no -config
// flag is given.
const defaultConfigFile = ".cgs.toml"

// Config holds the optional tool settings. Flags override these values.
type Config struct {
	Currency  string `toml:"currency"`   // reporting currency code
	OutputDir string `toml:"output_dir"` // directory report files are written to
}

// defaultConfig returns the settings used when no configuration file exists.
func defaultConfig() Config {
	return Config{Currency: "USD", OutputDir: "."}
}

// LoadConfig reads the TOML configuration from path. An empty path falls
// back to the default file, and a missing default file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}
