package config

import (
	"os"
	"path/filepath"
)

const defaultHome = ".promptvault"

// GetHomePath returns the vault home directory. It holds the .env file and
// the global prompt collection. Relative paths are anchored at the user home.
func GetHomePath() string {
	return resolveHome(os.Getenv("PROMPTVAULT_HOME"))
}

func resolveHome(path string) string {
	if path == "" {
		path = defaultHome
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
