package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zx/internal/driver"
	"zx/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.zx",
	Short: "Parse a zx source file",
	Long:  `Parse builds the syntax tree for a zx source file and reports every embedded diagnostic`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	tokens, lexFailed, err := driver.Tokenize(args[0])
	if err != nil {
		return err
	}
	tree, parseFailed := parser.Parse(tokens)

	p := newPrinter(cmd)
	reportLexErrors(p, tokens)
	reportParseErrors(p, tree)

	for i := range tree.Decls {
		d := &tree.Decls[i]
		name := ""
		switch {
		case d.Fn != nil:
			name = d.Fn.Name.Name()
		case d.Struct != nil:
			name = d.Struct.Name.Name()
		case d.Enum != nil:
			name = d.Enum.Name.Name()
		case d.Intf != nil:
			name = d.Intf.Name.Name()
		}
		fmt.Fprintf(os.Stdout, "%-8s %s\n", d.Kind, name)
	}

	if lexFailed || parseFailed {
		return errors.New("parsing finished with errors")
	}
	return nil
}
