package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/token"
)

// parseIdent parses one name slot. The captured token is the one at
// the pre-advance cursor position; the cursor then moves past it on
// every path except end of input.
func (p *Parser) parseIdent() ast.Ident {
	if p.atEnd() {
		return ast.Ident{
			Err: p.errorAt(diag.ParseUnexpectedEOF, "expected an identifier"),
		}
	}
	cur := p.current()
	if cur.Kind == token.Identifier {
		p.advance()
		return ast.Ident{Tok: &cur}
	}
	err := p.errorAt(diag.ParseInvalidSyntax, cur.Lexeme)
	p.advance()
	return ast.Ident{Err: err}
}
