// Package cache implements the content-addressed parse cache.
//
// Identity is by content, not path: a file's digest is a truncated
// SHA-512 of its bytes, and the serialized tree lives at
// <dir>/<digest>.zxcache. A changed file lands in a different slot, so
// invalidation is implicit and entries are immortal until externally
// deleted. Concurrent writers for the same digest are safe by
// construction — they produce byte-identical payloads and writes go
// through a temp file plus atomic rename, so a crash never leaves a
// truncated entry visible.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"zx/internal/ast"
)

// Ext is the cache file extension.
const Ext = ".zxcache"

// schemaVersion tags the on-disk envelope. Bump on any ast change; a
// stale entry then reads back as ErrSchemaMismatch and the driver
// treats it as a miss instead of a deserialization failure.
const schemaVersion uint16 = 1

// ErrSchemaMismatch reports a cache entry written under a different
// tree schema.
var ErrSchemaMismatch = errors.New("cache: schema version mismatch")

// envelope is the on-disk layout: version tag first, then the tree.
type envelope struct {
	Schema uint16
	Tree   *ast.Tree
}

// PathFor returns the slot path for a digest under dir.
func PathFor(dir, digest string) string {
	return filepath.Join(dir, digest+Ext)
}

// Exists reports whether a cache entry for digest is present under dir.
func Exists(dir, digest string) bool {
	info, err := os.Stat(PathFor(dir, digest))
	return err == nil && !info.IsDir()
}

// Save serializes the whole tree to path. The write is atomic: a temp
// file in the target directory, then rename.
func Save(path string, tree *ast.Tree) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache: create dir: %w", err)
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("cache: create temp: %w", err)
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&envelope{Schema: schemaVersion, Tree: tree}); err != nil {
		f.Close()
		return fmt.Errorf("cache: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cache: close temp: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("cache: rename: %w", err)
	}
	return nil
}

// Load deserializes a whole tree from path. A schema mismatch comes
// back as ErrSchemaMismatch; callers treat any failure as a miss.
func Load(path string) (*ast.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	defer f.Close()

	var env envelope
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("cache: decode: %w", err)
	}
	if env.Schema != schemaVersion {
		return nil, fmt.Errorf("cache: %s: got schema %d, want %d: %w",
			filepath.Base(path), env.Schema, schemaVersion, ErrSchemaMismatch)
	}
	return env.Tree, nil
}
