package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/token"
)

// parseType parses one type annotation: a built-in data type, a named
// type, or an array form `[elem; size]`.
func (p *Parser) parseType() ast.Type {
	if p.atEnd() {
		return ast.Type{
			Kind: ast.TypeError,
			Err:  p.errorAt(diag.ParseUnexpectedEOF, "expected a type"),
		}
	}

	cur := p.current()
	switch {
	case cur.Kind == token.DataType:
		p.advance()
		return ast.Type{Kind: ast.TypePrimitive, Name: cur.Lexeme}
	case cur.Kind == token.Identifier:
		p.advance()
		return ast.Type{Kind: ast.TypeNamed, Name: cur.Lexeme}
	case cur.Lexeme == "[":
		return p.parseArrayType()
	default:
		err := p.errorAt(diag.ParseInvalidSyntax, cur.Lexeme)
		p.advance()
		return ast.Type{Kind: ast.TypeError, Err: err}
	}
}

func (p *Parser) parseArrayType() ast.Type {
	p.advance() // '['
	elem := p.parseType()
	t := ast.Type{Kind: ast.TypeArray, Elem: &elem}
	if err := p.expect(";"); err != nil {
		t.Err = err
		return t
	}
	t.Size = p.parseExpr()
	if err := p.expect("]"); err != nil {
		t.Err = err
	}
	return t
}
