package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the directory that holds all workspaces, creating it if
// necessary. The returned path has symlinks resolved so that entered-workspace
// detection by path prefix works on platforms like macOS (/var -> /private/var).
func (c Config) DataDir() (string, error) {
	if c.WorkspaceDir == "" {
		return "", ErrWorkspaceDirNotConfigured
	}
	return ensureDir(c.WorkspaceDir)
}

// CacheRoot returns the mirror cache root directory, creating it if
// necessary. Defaults to the user cache directory when not configured.
func (c Config) CacheRoot() (string, error) {
	dir := c.CacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate user cache directory: %w", err)
		}
		dir = filepath.Join(base, "nut")
	}
	return ensureDir(dir)
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	return resolved, nil
}
