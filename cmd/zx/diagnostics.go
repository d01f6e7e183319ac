package main

import (
	"os"

	"github.com/spf13/cobra"

	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/token"
)

// newPrinter builds a stderr diagnostics printer honoring --color.
func newPrinter(cmd *cobra.Command) *diag.Printer {
	p := diag.NewPrinter(os.Stderr)
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		p.SetColor(true)
	case "off":
		p.SetColor(false)
	}
	return p
}

// reportLexErrors prints every Error token's embedded diagnostic.
func reportLexErrors(p *diag.Printer, tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Err != nil {
			p.LexError(tokens[i].Err)
		}
	}
}

// reportParseErrors prints every syntax error embedded in the tree.
func reportParseErrors(p *diag.Printer, tree *ast.Tree) {
	for _, e := range tree.Errors() {
		p.ParseError(e)
	}
}
