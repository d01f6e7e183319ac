package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
)

// parseGenericParams parses `<type T, type U impl Bound>`. Nil when
// the construct is absent (no leading '<'). On any structural
// deviation the list records its error and comes back immediately with
// whatever entries were built; diagnostics are best-effort per list,
// not exhaustive.
func (p *Parser) parseGenericParams() *ast.GenericParams {
	if !p.check("<") {
		return nil
	}
	p.advance() // '<'

	gp := &ast.GenericParams{}
	for !p.check(">") {
		if p.atEnd() {
			gp.Err = p.errorAt(diag.ParseUnexpectedEOF, "expected '>' to close the generic parameter list")
			return gp
		}
		if !p.check("type") {
			gp.Err = p.errorAt(diag.ParseInvalidSyntax,
				"Expected a 'type' keyword, found '"+p.current().Lexeme+"'.")
			return gp
		}
		p.advance() // 'type'

		entry := ast.GenericParam{Name: p.parseIdent()}
		if p.check("impl") {
			p.advance()
			bound := p.parseIdent()
			entry.Bound = &bound
		}
		gp.Entries = append(gp.Entries, entry)

		if p.check(",") {
			p.advance()
			continue
		}
		if !p.check(">") {
			gp.Err = p.errorAt(diag.ParseInvalidSyntax,
				"Expected a separator ',' or '>', found '"+p.current().Lexeme+"'.")
			return gp
		}
	}
	p.advance() // '>'
	return gp
}
