package config

import (
	"os"
	"path/filepath"
)

// SearchPaths returns config file candidates in precedence order.
func SearchPaths(root string) []string {
	paths := make([]string, 0, 2)
	if root != "" {
		paths = append(paths, filepath.Join(root, ".promptlib.yaml"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "promptlib", "config.yaml"))
	}

	return paths
}

func findConfigFile(paths []string) string {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
