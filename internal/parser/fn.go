package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
)

// parseFn parses a full function declaration after the modifiers. On a
// failure the partially built declaration comes back with the error
// embedded; the cursor stays on the first unconsumed token.
func (p *Parser) parseFn(isPub, isConst bool) *ast.FnDecl {
	p.advance() // 'fn'
	fn := &ast.FnDecl{Pub: isPub, Const: isConst}

	fn.Name = p.parseIdent()
	if fn.Name.Err != nil {
		fn.Err = fn.Name.Err
		return fn
	}

	fn.Generics = p.parseGenericParams()
	if fn.Generics != nil && fn.Generics.Err != nil {
		fn.Err = fn.Generics.Err
		return fn
	}

	params, err := p.parseParams()
	fn.Params = params
	if err != nil {
		fn.Err = err
		return fn
	}

	ret, err := p.parseReturnType()
	fn.Ret = ret
	if err != nil {
		fn.Err = err
		return fn
	}

	body, err := p.parseBlock()
	fn.Body = body
	fn.Err = err
	return fn
}

// parseParams parses `(type name, ...)`, empty list allowed.
func (p *Parser) parseParams() ([]ast.Param, *diag.ParseError) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.check(")") {
		if p.atEnd() {
			return params, p.errorAt(diag.ParseUnexpectedEOF, "expected ')' to close the parameter list")
		}
		param := ast.Param{Type: p.parseType(), Name: p.parseIdent()}
		params = append(params, param)
		if p.check(",") {
			p.advance()
			continue
		}
		if !p.check(")") {
			return params, p.errorAt(diag.ParseInvalidSyntax,
				"Expected a separator ',' or ')', found '"+p.current().Lexeme+"'.")
		}
	}
	p.advance() // ')'
	return params, nil
}

// parseReturnType parses the optional `-> type`. The arrow is two
// operator tokens; the dash commits to the arrow form.
func (p *Parser) parseReturnType() (*ast.Type, *diag.ParseError) {
	if !p.check("-") {
		return nil, nil
	}
	p.advance() // '-'
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	t := p.parseType()
	return &t, nil
}

// parseFnSig parses a bodiless signature inside an intf block.
func (p *Parser) parseFnSig() ast.FnSig {
	sig := ast.FnSig{}
	if err := p.expect("fn"); err != nil {
		sig.Err = err
		return sig
	}
	sig.Name = p.parseIdent()
	if sig.Name.Err != nil {
		sig.Err = sig.Name.Err
		return sig
	}
	sig.Generics = p.parseGenericParams()
	if sig.Generics != nil && sig.Generics.Err != nil {
		sig.Err = sig.Generics.Err
		return sig
	}
	params, err := p.parseParams()
	sig.Params = params
	if err != nil {
		sig.Err = err
		return sig
	}
	sig.Ret, sig.Err = p.parseReturnType()
	return sig
}
