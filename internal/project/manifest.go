// Package project reads the optional zx.toml project manifest.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the manifest file searched for in ancestor
// directories.
const ManifestName = "zx.toml"

// Manifest is the parsed zx.toml. All sections are optional; CLI flags
// override anything set here.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Cache struct {
		Dir string `toml:"dir"`
	} `toml:"cache"`

	// Dir is the directory the manifest was loaded from, for
	// resolving relative paths. Not part of the TOML.
	Dir string `toml:"-"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// Find walks from dir upward looking for a manifest. The second result
// is false when no ancestor carries one.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// CacheDir resolves the manifest's cache directory relative to the
// manifest location. Empty when unset.
func (m *Manifest) CacheDir() string {
	if m == nil || m.Cache.Dir == "" {
		return ""
	}
	if filepath.IsAbs(m.Cache.Dir) {
		return m.Cache.Dir
	}
	return filepath.Join(m.Dir, m.Cache.Dir)
}
