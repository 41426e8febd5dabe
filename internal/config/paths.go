// ABOUTME: Standard filesystem paths for echostatus configuration
// ABOUTME: Resolves ~/.echostatus/ for the user config file

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".echostatus"

// GlobalDir returns the user config directory (~/.echostatus/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// DefaultConfigFile returns the path of the config file read when none is given.
func DefaultConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}
