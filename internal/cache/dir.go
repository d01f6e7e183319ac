package cache

import (
	"os"
	"path/filepath"
)

// DefaultDir returns the standard cache location: $XDG_CACHE_HOME/zx,
// falling back to ~/.cache/zx.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "zx"), nil
}
