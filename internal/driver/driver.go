// Package driver runs the per-file front-end pipeline and the
// concurrent multi-file build.
//
// Each file is an independent pipeline: digest, cache probe, then
// either a cached tree or a fresh lex+parse. No mutable state is
// shared between files; the cache directory is the only shared
// resource, and content addressing makes concurrent identical writers
// safe without locking.
package driver

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"zx/internal/ast"
	"zx/internal/cache"
	"zx/internal/lexer"
	"zx/internal/parser"
)

// Result is the outcome of one file's pipeline.
type Result struct {
	Path      string
	Digest    string
	Tree      *ast.Tree
	FromCache bool
	HasErrors bool
}

// CompileFile runs the pipeline for one source file. A cache hit
// short-circuits lexing and parsing entirely; any load failure
// (including a stale schema) counts as a miss and rebuilds. Trees that
// carry errors are returned but never cached.
func CompileFile(path, cacheDir string) (*Result, error) {
	digest, err := cache.Digest(path)
	if err != nil {
		return nil, err
	}
	res := &Result{Path: path, Digest: digest}

	if cache.Exists(cacheDir, digest) {
		tree, err := cache.Load(cache.PathFor(cacheDir, digest))
		if err == nil {
			res.Tree = tree
			res.FromCache = true
			res.HasErrors = tree.HasErrors()
			return res, nil
		}
		// Stale or corrupt entry: fall through and rebuild.
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tokens, lexFailed := lexer.New(string(src)).Lex()
	tree, parseFailed := parser.Parse(tokens)
	res.Tree = tree
	res.HasErrors = lexFailed || parseFailed

	if !res.HasErrors {
		if err := cache.Save(cache.PathFor(cacheDir, digest), tree); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Build compiles every path with up to jobs concurrent workers, one
// worker per file. Results keep the input order.
func Build(paths []string, cacheDir string, jobs int) ([]*Result, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]*Result, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			res, err := CompileFile(path, cacheDir)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
