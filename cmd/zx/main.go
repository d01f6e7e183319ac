package main

import (
	"os"

	"github.com/spf13/cobra"

	"zx/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "zx",
	Short:         "zx language compiler front end",
	Long:          `zx is a small statically-typed language; this tool lexes, parses, and caches its sources`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("cache-dir", "", "parse cache directory (default: zx.toml [cache].dir, then $XDG_CACHE_HOME/zx)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
