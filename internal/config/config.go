package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrWorkspaceDirNotConfigured is returned when an operation needs the
// workspace directory but none has been configured.
var ErrWorkspaceDirNotConfigured = errors.New(
	"workspace directory not configured: set it with 'nut config --workspace-dir <path>'")

// Config holds the nut configuration
type Config struct {
	WorkspaceDir string `toml:"workspace_dir"` // where workspaces live (required for workspace ops)
	CacheDir     string `toml:"cache_dir"`     // mirror cache root (optional)
}

// Default returns the default configuration
func Default() Config {
	return Config{}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nut", "config.toml"), nil
}

// Load reads config from ~/.config/nut/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validateAndExpand(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func (c *Config) validateAndExpand() error {
	if err := ValidatePath(c.WorkspaceDir, "workspace_dir"); err != nil {
		return err
	}
	if err := ValidatePath(c.CacheDir, "cache_dir"); err != nil {
		return err
	}

	// Expand ~ (shell doesn't expand in config files)
	var err error
	if c.WorkspaceDir, err = expandPath(c.WorkspaceDir); err != nil {
		return fmt.Errorf("expand workspace_dir: %w", err)
	}
	if c.CacheDir, err = expandPath(c.CacheDir); err != nil {
		return fmt.Errorf("expand cache_dir: %w", err)
	}
	return nil
}

// Save writes the config to ~/.config/nut/config.toml, creating the
// directory if needed.
func (c Config) Save() error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
