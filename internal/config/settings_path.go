package config

import (
	"os"
	"path/filepath"
)

// DefaultSettingsFile is looked up in the working directory when no path is given.
const DefaultSettingsFile = ".dataset.yaml"

// SettingsEnv overrides the settings file location.
const SettingsEnv = "DATASET_SETTINGS"

// ResolveSettingsPath returns the settings file to load.
// Priority order:
//  1. explicit path (the --settings flag)
//  2. DATASET_SETTINGS environment variable
//  3. .dataset.yaml in dir
func ResolveSettingsPath(explicit string, dir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(SettingsEnv); env != "" {
		return env
	}
	return filepath.Join(dir, DefaultSettingsFile)
}
