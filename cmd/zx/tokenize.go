package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zx/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.zx",
	Short: "Tokenize a zx source file",
	Long:  `Tokenize breaks a zx source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	tokens, hadErrors, err := driver.Tokenize(args[0])
	if err != nil {
		return err
	}
	reportLexErrors(newPrinter(cmd), tokens)

	switch format {
	case "pretty":
		for _, tok := range tokens {
			fmt.Fprintf(os.Stdout, "Token: %s\n", tok)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if hadErrors {
		return errors.New("tokenization finished with errors")
	}
	return nil
}
