package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"zx/internal/cache"
	"zx/internal/driver"
	"zx/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] file.zx...",
	Short: "Lex and parse zx sources through the parse cache",
	Long: `Build runs the front-end pipeline for each file: an unchanged file is
served from the content-addressed cache and skips lexing and parsing
entirely`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", runtime.NumCPU(), "maximum concurrent file workers")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cacheDir, err := resolveCacheDir(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	results, err := driver.Build(args, cacheDir, jobs)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	anyErrors := false
	for _, res := range results {
		status := "compiled"
		if res.FromCache {
			status = "cached"
		}
		if res.HasErrors {
			status = "errors"
			anyErrors = true
			reportParseErrors(p, res.Tree)
		}
		fmt.Fprintf(os.Stdout, "%-10s %s\n", status, res.Path)
	}
	if anyErrors {
		return errors.New("build finished with errors")
	}
	return nil
}

// resolveCacheDir picks the cache directory: the --cache-dir flag,
// then the zx.toml manifest, then the user cache location.
func resolveCacheDir(cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Root().PersistentFlags().GetString("cache-dir"); dir != "" {
		return dir, nil
	}
	if wd, err := os.Getwd(); err == nil {
		if path, ok := project.Find(wd); ok {
			manifest, err := project.Load(path)
			if err != nil {
				return "", err
			}
			if dir := manifest.CacheDir(); dir != "" {
				return dir, nil
			}
		}
	}
	return cache.DefaultDir()
}
