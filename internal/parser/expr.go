package parser

import (
	"strconv"

	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/token"
)

// parseExpr parses one expression by precedence climbing.
func (p *Parser) parseExpr() *ast.Expr {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) *ast.Expr {
	lhs := p.parseUnary()
	for {
		op, ok := p.peekBinaryOp()
		if !ok || op.prec < minPrec {
			return lhs
		}
		for i := 0; i < op.width; i++ {
			p.advance()
		}
		rhs := p.parseBinary(op.prec + 1)
		lhs = &ast.Expr{Kind: ast.ExprBinary, Binary: op.op, X: lhs, Y: rhs}
	}
}

func (p *Parser) parseUnary() *ast.Expr {
	if op, ok := p.peekUnaryOp(); ok {
		p.advance()
		return &ast.Expr{Kind: ast.ExprUnary, Unary: op, X: p.parseUnary()}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() *ast.Expr {
	if p.atEnd() {
		return &ast.Expr{
			Kind: ast.ExprError,
			Err:  p.errorAt(diag.ParseUnexpectedEOF, "expected an expression"),
		}
	}

	cur := p.current()
	switch {
	case cur.IsLiteral(), cur.Lexeme == "true", cur.Lexeme == "false", cur.Lexeme == "null":
		lit, err := p.parseLiteral()
		if err != nil {
			return &ast.Expr{Kind: ast.ExprError, Err: err}
		}
		return &ast.Expr{Kind: ast.ExprLiteral, Lit: &lit}

	case cur.Kind == token.Identifier:
		if p.next().Lexeme == "(" {
			return p.parseCallExpr()
		}
		return &ast.Expr{Kind: ast.ExprIdent, Name: p.parseIdent()}

	case cur.Lexeme == "(":
		p.advance()
		inner := p.parseExpr()
		group := &ast.Expr{Kind: ast.ExprGroup, X: inner}
		if err := p.expect(")"); err != nil {
			group.Err = err
		}
		return group

	default:
		err := p.errorAt(diag.ParseUnexpectedToken, cur.Lexeme)
		p.advance()
		return &ast.Expr{Kind: ast.ExprError, Err: err}
	}
}

func (p *Parser) parseCallExpr() *ast.Expr {
	call := &ast.Expr{Kind: ast.ExprCall, Name: p.parseIdent()}
	args, err := p.parseArgs()
	call.Args = args
	call.Err = err
	return call
}

// parseArgs parses `(expr, ...)`, empty list allowed.
func (p *Parser) parseArgs() ([]ast.Expr, *diag.ParseError) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.check(")") {
		if p.atEnd() {
			return args, p.errorAt(diag.ParseUnexpectedEOF, "expected ')' to close the argument list")
		}
		args = append(args, *p.parseExpr())
		if p.check(",") {
			p.advance()
			continue
		}
		if !p.check(")") {
			return args, p.errorAt(diag.ParseInvalidSyntax,
				"Expected a separator ',' or ')', found '"+p.current().Lexeme+"'.")
		}
	}
	p.advance() // ')'
	return args, nil
}

// parseLiteral converts the current token into a literal value. The
// verbatim lexeme is kept alongside the conversion; the lexer already
// validated numeric forms in their radix.
func (p *Parser) parseLiteral() (ast.Literal, *diag.ParseError) {
	cur := p.current()
	switch {
	case cur.Kind == token.IntLit:
		p.advance()
		v, err := strconv.ParseUint(stripRadixPrefix(cur.Lexeme), radixOf(cur.Lexeme), 64)
		if err != nil {
			return ast.Literal{}, p.errorAt(diag.ParseInvalidSyntax, cur.Lexeme)
		}
		return ast.Literal{Kind: ast.LitInt, Text: cur.Lexeme, Int: v}, nil
	case cur.Kind == token.FloatLit:
		p.advance()
		v, err := strconv.ParseFloat(cur.Lexeme, 64)
		if err != nil {
			return ast.Literal{}, p.errorAt(diag.ParseInvalidSyntax, cur.Lexeme)
		}
		return ast.Literal{Kind: ast.LitFloat, Text: cur.Lexeme, Float: v}, nil
	case cur.Kind == token.StringLit:
		p.advance()
		return ast.Literal{Kind: ast.LitString, Text: cur.Lexeme}, nil
	case cur.Kind == token.CharLit:
		p.advance()
		return ast.Literal{Kind: ast.LitChar, Text: cur.Lexeme}, nil
	case cur.Lexeme == "true", cur.Lexeme == "false":
		p.advance()
		return ast.Literal{Kind: ast.LitBool, Text: cur.Lexeme, Bool: cur.Lexeme == "true"}, nil
	case cur.Lexeme == "null":
		p.advance()
		return ast.Literal{Kind: ast.LitNull, Text: cur.Lexeme}, nil
	default:
		err := p.errorAt(diag.ParseInvalidSyntax, cur.Lexeme)
		p.advance()
		return ast.Literal{}, err
	}
}

func radixOf(lexeme string) int {
	if len(lexeme) > 2 && lexeme[0] == '0' {
		switch lexeme[1] {
		case 'x', 'X':
			return 16
		case 'o', 'O':
			return 8
		case 'b', 'B':
			return 2
		}
	}
	return 10
}

func stripRadixPrefix(lexeme string) string {
	if radixOf(lexeme) != 10 {
		return lexeme[2:]
	}
	return lexeme
}
