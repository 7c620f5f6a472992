// Package pathutil resolves user supplied paths.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves "~" to the home directory and makes relative paths
// absolute against baseDir. Environment variables are not expanded, so a
// '$' in a file name is kept as written.
// An empty baseDir resolves relative paths against the working directory.
func Expand(path, baseDir string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if !filepath.IsAbs(path) {
		if baseDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("failed to resolve working directory: %w", err)
			}
			baseDir = wd
		}
		path = filepath.Join(baseDir, path)
	}

	return filepath.Clean(path), nil
}
