package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the parse cache",
	Long:  `Clean removes every cache entry; the next build re-lexes and re-parses from scratch`,
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cacheDir, err := resolveCacheDir(cmd)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(cacheDir); err != nil {
		return fmt.Errorf("failed to remove cache dir: %w", err)
	}
	fmt.Fprintf(os.Stdout, "removed %s\n", cacheDir)
	return nil
}
