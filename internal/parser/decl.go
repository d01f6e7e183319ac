package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
)

// parseDeclaration parses one top-level attempt: optional pub and
// const modifiers, then dispatch on the leading keyword. Exactly one
// Decl comes back per attempt, success or failure.
func (p *Parser) parseDeclaration() ast.Decl {
	isPub := p.check("pub")
	if isPub {
		p.advance()
	}
	isConst := p.check("const")
	if isConst {
		p.advance()
	}

	switch {
	case p.check("fn"):
		return ast.Decl{Kind: ast.DeclFn, Fn: p.parseFn(isPub, isConst)}
	case p.check("enum"):
		if isConst {
			return p.constModifierError("enum")
		}
		return ast.Decl{Kind: ast.DeclEnum, Enum: p.parseEnum(isPub)}
	case p.check("struct"):
		if isConst {
			return p.constModifierError("struct")
		}
		return ast.Decl{Kind: ast.DeclStruct, Struct: p.parseStruct(isPub)}
	case p.check("intf"):
		if isConst {
			return p.constModifierError("intf")
		}
		return ast.Decl{Kind: ast.DeclIntf, Intf: p.parseIntf(isPub)}
	default:
		return ast.Decl{
			Kind: ast.DeclError,
			Err:  p.errorAt(diag.ParseUnexpectedToken, p.current().Lexeme),
		}
	}
}

// constModifierError models `const` combined with a type declaration.
// The offending keyword is not consumed; the top-level recovery skip
// moves past it.
func (p *Parser) constModifierError(decl string) ast.Decl {
	return ast.Decl{
		Kind: ast.DeclError,
		Err: p.errorAt(diag.ParseInvalidSyntax,
			"The `const` keyword cannot be used with `"+decl+"` types."),
	}
}
