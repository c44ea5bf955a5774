// Package storage persists the client's local state under the user's
// config dir: credentials, the last browse snapshot, and a SQLite cache
// of the user's bookings. None of it is canonical; the backend is.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	credsFile    = "credentials.json"
	browseFile   = "browse.json"
	bookingsFile = "bookings.db"
	configFile   = "config.json"
)

func ConfigDir() (string, error) {
	if dir := os.Getenv("DATSAN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "datsan"), nil
}

func CredentialsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credsFile), nil
}

func BrowsePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, browseFile), nil
}

func BookingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, bookingsFile), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

func ensureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}
