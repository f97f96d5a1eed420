// Package config handles the global configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in
// ~/.config/citebuild/config.yml.
type GlobalConfig struct {
	DefaultStyle string `yaml:"default_style,omitempty"`
	LibraryPath  string `yaml:"library_path,omitempty"`
	Mailto       string `yaml:"mailto,omitempty"` // contact address sent to the DOI resolver
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "citebuild"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// DefaultStyle is used when the config does not name one.
	DefaultStyle = "apa6"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/citebuild/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandTilde(cfg.LibraryPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// Save writes the config back to the global config file, creating the
// directory if needed, and refreshes the cache.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	globalConfigCache = c
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetDefaultStyle returns the configured citation style, falling back
// to DefaultStyle.
func GetDefaultStyle() string {
	cfg, _ := LoadGlobalConfig()
	if cfg.DefaultStyle != "" {
		return cfg.DefaultStyle
	}
	return DefaultStyle
}

// GetLibraryPath returns the configured library directory, falling
// back to ~/.citebuild.
func GetLibraryPath() string {
	cfg, _ := LoadGlobalConfig()
	if cfg.LibraryPath != "" {
		return cfg.LibraryPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".citebuild"
	}
	return filepath.Join(home, ".citebuild")
}

// GetMailto returns the contact address to send with DOI lookups.
func GetMailto() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.Mailto
}

// ExpandTilde expands a leading ~/ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
