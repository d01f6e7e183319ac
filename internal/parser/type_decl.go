package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
)

// parseStruct parses `struct Name [<generics>] { type field; ... }`.
func (p *Parser) parseStruct(isPub bool) *ast.StructDecl {
	p.advance() // 'struct'
	s := &ast.StructDecl{Pub: isPub}

	s.Name = p.parseIdent()
	if s.Name.Err != nil {
		s.Err = s.Name.Err
		return s
	}
	s.Generics = p.parseGenericParams()
	if s.Generics != nil && s.Generics.Err != nil {
		s.Err = s.Generics.Err
		return s
	}
	if err := p.expect("{"); err != nil {
		s.Err = err
		return s
	}
	for !p.check("}") {
		if p.atEnd() {
			s.Err = p.errorAt(diag.ParseUnexpectedEOF, "expected '}' to close the struct body")
			return s
		}
		field := ast.Field{Type: p.parseType(), Name: p.parseIdent()}
		s.Fields = append(s.Fields, field)
		if err := p.expect(";"); err != nil {
			s.Err = err
			return s
		}
	}
	p.advance() // '}'
	return s
}

// parseEnum parses `enum Name [<generics>] { Variant, Variant(type, ...) }`.
func (p *Parser) parseEnum(isPub bool) *ast.EnumDecl {
	p.advance() // 'enum'
	e := &ast.EnumDecl{Pub: isPub}

	e.Name = p.parseIdent()
	if e.Name.Err != nil {
		e.Err = e.Name.Err
		return e
	}
	e.Generics = p.parseGenericParams()
	if e.Generics != nil && e.Generics.Err != nil {
		e.Err = e.Generics.Err
		return e
	}
	if err := p.expect("{"); err != nil {
		e.Err = err
		return e
	}
	for !p.check("}") {
		if p.atEnd() {
			e.Err = p.errorAt(diag.ParseUnexpectedEOF, "expected '}' to close the enum body")
			return e
		}
		variant, err := p.parseEnumVariant()
		e.Variants = append(e.Variants, variant)
		if err != nil {
			e.Err = err
			return e
		}
		if p.check(",") {
			p.advance()
			continue
		}
		if !p.check("}") {
			e.Err = p.errorAt(diag.ParseInvalidSyntax,
				"Expected a separator ',' or '}', found '"+p.current().Lexeme+"'.")
			return e
		}
	}
	p.advance() // '}'
	return e
}

// parseEnumVariant parses a unit variant `Name` or a tuple variant
// `Name(type, ...)`.
func (p *Parser) parseEnumVariant() (ast.EnumVariant, *diag.ParseError) {
	v := ast.EnumVariant{Name: p.parseIdent()}
	if v.Name.Err != nil {
		return v, v.Name.Err
	}
	if !p.check("(") {
		return v, nil
	}
	p.advance() // '('
	for !p.check(")") {
		if p.atEnd() {
			return v, p.errorAt(diag.ParseUnexpectedEOF, "expected ')' to close the variant tuple")
		}
		v.Tuple = append(v.Tuple, p.parseType())
		if p.check(",") {
			p.advance()
			continue
		}
		if !p.check(")") {
			return v, p.errorAt(diag.ParseInvalidSyntax,
				"Expected a separator ',' or ')', found '"+p.current().Lexeme+"'.")
		}
	}
	p.advance() // ')'
	return v, nil
}

// parseIntf parses `intf Name [<generics>] { fn sig; ... }`.
func (p *Parser) parseIntf(isPub bool) *ast.IntfDecl {
	p.advance() // 'intf'
	it := &ast.IntfDecl{Pub: isPub}

	it.Name = p.parseIdent()
	if it.Name.Err != nil {
		it.Err = it.Name.Err
		return it
	}
	it.Generics = p.parseGenericParams()
	if it.Generics != nil && it.Generics.Err != nil {
		it.Err = it.Generics.Err
		return it
	}
	if err := p.expect("{"); err != nil {
		it.Err = err
		return it
	}
	for !p.check("}") {
		if p.atEnd() {
			it.Err = p.errorAt(diag.ParseUnexpectedEOF, "expected '}' to close the intf body")
			return it
		}
		sig := p.parseFnSig()
		it.Methods = append(it.Methods, sig)
		if sig.Err != nil {
			it.Err = sig.Err
			return it
		}
		if err := p.expect(";"); err != nil {
			it.Err = err
			return it
		}
	}
	p.advance() // '}'
	return it
}
