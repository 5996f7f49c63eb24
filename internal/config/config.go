// Package config loads the optional .pyver.yaml configuration file, which
// provides defaults for the CLI flags and extra candidate filenames for
// auto-discovery.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ConfigFile is the conventional configuration filename, looked up in the
// working directory.
const ConfigFile = ".pyver.yaml"

// EnvFilePath is the environment variable overriding the file path; it
// takes priority over both the config file and the flag default.
const EnvFilePath = "PYVER_FILE_PATH"

// Config is the main configuration structure for pyver.
type Config struct {
	// FilePath is the version file to read, or "auto" for discovery.
	FilePath string `yaml:"file-path,omitempty"`

	// FallbackVersion substitutes when no version is resolved.
	FallbackVersion string `yaml:"fallback-version,omitempty"`

	// OutputFile is the key=value destination appended to when set.
	OutputFile string `yaml:"output-file,omitempty"`

	// ExtraFiles lists additional candidate filenames for auto-discovery.
	ExtraFiles []string `yaml:"extra-files,omitempty"`
}

// Default returns a Config carrying the built-in defaults.
func Default() *Config {
	return &Config{
		FilePath:        "auto",
		FallbackVersion: "0.0.0",
	}
}

// LoadConfigFn is a function variable for loading configuration.
// It defaults to loadConfig but can be overridden in tests.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envPath := os.Getenv(EnvFilePath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvFilePath)
		}
		cfg := Default()
		cfg.FilePath = cleanPath
		return cfg, nil
	}

	// Second priority: YAML file
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if cfg.FilePath == "" {
		cfg.FilePath = "auto"
	}
	if cfg.FallbackVersion == "" {
		cfg.FallbackVersion = "0.0.0"
	}

	return &cfg, nil
}
