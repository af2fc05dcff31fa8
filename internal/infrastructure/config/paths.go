package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "shade"

// GetConfigDir returns the XDG config directory for shade.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetCatalogDir returns the directory searched for user catalogs.
func GetCatalogDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalogs"), nil
}
