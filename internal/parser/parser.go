// Package parser turns a token stream into a zx syntax tree.
//
// Recursive descent, one token of lookahead, no backtracking buffer.
// The principle is fail fast per construct: a mismatched construct
// records an embedded error and the cursor still advances, instead of
// retrying unboundedly. Every parse routine leaves the cursor on the
// first unconsumed token on both success and failure paths; the
// top-level loop then advances one extra position per declaration,
// consuming the declaration terminator on success and guaranteeing
// progress after a failure that consumed nothing.
package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/token"
)

// Parser owns an immutable token buffer plus an advancing read cursor.
// Tokens are never mutated.
type Parser struct {
	tokens []token.Token
	index  int
	hasErr bool
}

// Parse consumes the full token sequence, trailing EOF included, and
// produces one tree. The second result reports whether any declaration
// embeds an error; callers must not advance to later compiler stages
// while it is set.
func Parse(tokens []token.Token) (*ast.Tree, bool) {
	p := &Parser{tokens: tokens}
	tree := &ast.Tree{}
	for !p.eof() && !p.current().IsEOF() {
		tree.Decls = append(tree.Decls, p.parseDeclaration())
		// Terminator on success, recovery skip on failure.
		p.advance()
	}
	// Consume the trailing EOF.
	p.advance()
	return tree, p.hasErr
}

// eof reports whether the cursor ran past the buffer. This is a
// recoverable bounds check, never a panic.
func (p *Parser) eof() bool {
	return p.index >= len(p.tokens)
}

// atEnd reports end of input: either past the buffer or sitting on the
// EOF token.
func (p *Parser) atEnd() bool {
	return p.eof() || p.current().IsEOF()
}

// current returns the token under the cursor. Past the buffer it
// returns a synthetic EOF so callers never index out of bounds.
func (p *Parser) current() token.Token {
	if p.eof() {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.index]
}

// next returns the token after the cursor, used for the one-token
// lookahead disambiguations (assignment vs call vs declaration) and
// for operator merging.
func (p *Parser) next() token.Token {
	if p.index+1 >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.index+1]
}

// check compares the current token's lexeme to an expected literal.
func (p *Parser) check(lexeme string) bool {
	return p.current().Lexeme == lexeme
}

// advance moves the cursor forward unconditionally.
func (p *Parser) advance() {
	p.index++
}

// errorAt builds a ParseError at the current token and raises the
// aggregate flag. All embedded errors go through here.
func (p *Parser) errorAt(kind diag.ParseErrorKind, msg string) *diag.ParseError {
	p.hasErr = true
	cur := p.current()
	return &diag.ParseError{
		Kind: kind,
		Line: cur.Line,
		Col:  cur.Col,
		Msg:  msg,
	}
}

// expect consumes the current token when its lexeme matches, otherwise
// returns a missing-token error and leaves the cursor in place.
func (p *Parser) expect(lexeme string) *diag.ParseError {
	if p.check(lexeme) {
		p.advance()
		return nil
	}
	if p.atEnd() {
		return p.errorAt(diag.ParseUnexpectedEOF, "expected '"+lexeme+"'")
	}
	return p.errorAt(diag.ParseMissingToken, "expected '"+lexeme+"', found '"+p.current().Lexeme+"'")
}
