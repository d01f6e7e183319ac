package parser

import (
	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/token"
)

// parseBlock parses `{ stmt* }`. The returned error covers the block
// frame only (missing braces, end of input); statement failures stay
// embedded in their own slots.
func (p *Parser) parseBlock() (ast.Block, *diag.ParseError) {
	var block ast.Block
	if err := p.expect("{"); err != nil {
		return block, err
	}
	for !p.check("}") {
		if p.atEnd() {
			return block, p.errorAt(diag.ParseUnexpectedEOF, "expected '}' to close the block")
		}
		before := p.index
		block.Stmts = append(block.Stmts, p.parseStmt())
		if p.index == before {
			// A statement routine that consumed nothing would loop
			// forever; force progress.
			p.advance()
		}
	}
	p.advance() // '}'
	return block, nil
}

// parseStmt dispatches on the leading token. Every failure produces a
// statement slot with the error embedded, and the cursor always moves.
func (p *Parser) parseStmt() ast.Stmt {
	cur := p.current()
	switch {
	case cur.Lexeme == "if":
		return p.parseIfStmt()
	case cur.Lexeme == "loop":
		p.advance()
		body, err := p.parseBlock()
		return ast.Stmt{Kind: ast.StmtLoop, Loop: &ast.LoopStmt{Body: body}, Err: err}
	case cur.Lexeme == "match":
		return p.parseMatchStmt()
	case cur.Lexeme == "break":
		p.advance()
		return ast.Stmt{Kind: ast.StmtBreak, Err: p.expect(";")}
	case cur.Lexeme == "continue":
		p.advance()
		return ast.Stmt{Kind: ast.StmtContinue, Err: p.expect(";")}
	case cur.Lexeme == "ret":
		return p.parseRetStmt()
	case cur.Lexeme == "asm":
		return p.parseAsmStmt(ast.StmtAsm)
	case cur.Lexeme == "llvm":
		return p.parseAsmStmt(ast.StmtLlvm)
	case cur.Lexeme == "const", cur.Lexeme == "volatile":
		p.advance()
		return p.parseVarDecl(cur.Lexeme)
	case cur.Kind == token.DataType, cur.Lexeme == "[":
		return p.parseVarDecl("")
	case cur.Kind == token.Identifier:
		return p.parseIdentStmt()
	default:
		err := p.errorAt(diag.ParseUnexpectedToken, cur.Lexeme)
		p.advance()
		return ast.Stmt{Kind: ast.StmtError, Err: err}
	}
}

// parseIdentStmt disambiguates the three statements that start with an
// identifier using one token of lookahead: assignment (`x = ...`),
// call (`x(...)`), and a variable declaration with a named type
// (`Point p ...`).
func (p *Parser) parseIdentStmt() ast.Stmt {
	switch p.next().Lexeme {
	case "=":
		target := p.parseIdent()
		p.advance() // '='
		value := p.parseExpr()
		return ast.Stmt{
			Kind:   ast.StmtAssign,
			Assign: &ast.AssignStmt{Target: target, Value: value},
			Err:    p.expect(";"),
		}
	case "(":
		name := p.parseIdent()
		args, err := p.parseArgs()
		st := ast.Stmt{Kind: ast.StmtCall, Call: &ast.CallStmt{Name: name, Args: args}, Err: err}
		if st.Err == nil {
			st.Err = p.expect(";")
		}
		return st
	default:
		if p.next().Kind == token.Identifier {
			return p.parseVarDecl("")
		}
		err := p.errorAt(diag.ParseUnexpectedToken, p.current().Lexeme)
		p.advance()
		return ast.Stmt{Kind: ast.StmtError, Err: err}
	}
}

// parseVarDecl parses `[modifier] type name [= expr];` with the
// modifier already consumed.
func (p *Parser) parseVarDecl(modifier string) ast.Stmt {
	v := &ast.VarDeclStmt{Modifier: modifier}
	v.Type = p.parseType()
	v.Name = p.parseIdent()
	if p.check("=") {
		p.advance()
		v.Value = p.parseExpr()
	}
	return ast.Stmt{Kind: ast.StmtVarDecl, Var: v, Err: p.expect(";")}
}

func (p *Parser) parseRetStmt() ast.Stmt {
	p.advance() // 'ret'
	ret := &ast.RetStmt{}
	if !p.check(";") && !p.atEnd() {
		ret.Value = p.parseExpr()
	}
	return ast.Stmt{Kind: ast.StmtRet, Ret: ret, Err: p.expect(";")}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	p.advance() // 'if'
	st := &ast.IfStmt{Cond: p.parseExpr()}
	then, err := p.parseBlock()
	st.Then = then
	if err != nil {
		return ast.Stmt{Kind: ast.StmtIf, If: st, Err: err}
	}
	for p.check("elif") {
		p.advance()
		arm := ast.ElifArm{Cond: p.parseExpr()}
		body, err := p.parseBlock()
		arm.Body = body
		st.Elifs = append(st.Elifs, arm)
		if err != nil {
			return ast.Stmt{Kind: ast.StmtIf, If: st, Err: err}
		}
	}
	if p.check("else") {
		p.advance()
		body, err := p.parseBlock()
		st.Else = &body
		if err != nil {
			return ast.Stmt{Kind: ast.StmtIf, If: st, Err: err}
		}
	}
	return ast.Stmt{Kind: ast.StmtIf, If: st}
}

// parseMatchStmt parses
//
//	match expr { lit, lit { ... } default { ... } }
//
// Arms are literal pattern groups; default may appear once, last.
func (p *Parser) parseMatchStmt() ast.Stmt {
	p.advance() // 'match'
	m := &ast.MatchStmt{Subject: p.parseExpr()}
	if err := p.expect("{"); err != nil {
		return ast.Stmt{Kind: ast.StmtMatch, Match: m, Err: err}
	}
	for !p.check("}") {
		if p.atEnd() {
			return ast.Stmt{Kind: ast.StmtMatch, Match: m,
				Err: p.errorAt(diag.ParseUnexpectedEOF, "expected '}' to close the match body")}
		}
		if p.check("default") {
			p.advance()
			body, err := p.parseBlock()
			m.Default = &body
			if err != nil {
				return ast.Stmt{Kind: ast.StmtMatch, Match: m, Err: err}
			}
			continue
		}
		arm, err := p.parseMatchArm()
		m.Arms = append(m.Arms, arm)
		if err != nil {
			return ast.Stmt{Kind: ast.StmtMatch, Match: m, Err: err}
		}
	}
	p.advance() // '}'
	return ast.Stmt{Kind: ast.StmtMatch, Match: m}
}

func (p *Parser) parseMatchArm() (ast.MatchArm, *diag.ParseError) {
	var arm ast.MatchArm
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return arm, err
		}
		arm.Patterns = append(arm.Patterns, lit)
		if p.check(",") {
			p.advance()
			continue
		}
		break
	}
	body, err := p.parseBlock()
	arm.Body = body
	return arm, err
}

// parseAsmStmt parses an asm or llvm block: template strings with
// optional operand lists, one instruction per line, ';' terminated.
//
//	asm { "mov {}, {}" (dst, src); "ret"; }
func (p *Parser) parseAsmStmt(kind ast.StmtKind) ast.Stmt {
	p.advance() // 'asm' or 'llvm'
	blk := &ast.AsmBlock{}
	if err := p.expect("{"); err != nil {
		return ast.Stmt{Kind: kind, Asm: blk, Err: err}
	}
	for !p.check("}") {
		if p.atEnd() {
			return ast.Stmt{Kind: kind, Asm: blk,
				Err: p.errorAt(diag.ParseUnexpectedEOF, "expected '}' to close the inline block")}
		}
		instr, err := p.parseAsmInstr()
		blk.Instrs = append(blk.Instrs, instr)
		if err != nil {
			return ast.Stmt{Kind: kind, Asm: blk, Err: err}
		}
	}
	p.advance() // '}'
	return ast.Stmt{Kind: kind, Asm: blk}
}

func (p *Parser) parseAsmInstr() (ast.AsmInstr, *diag.ParseError) {
	var instr ast.AsmInstr
	cur := p.current()
	if cur.Kind != token.StringLit {
		err := p.errorAt(diag.ParseInvalidSyntax,
			"Expected an instruction template string, found '"+cur.Lexeme+"'.")
		p.advance()
		return instr, err
	}
	instr.Template = cur.Lexeme
	p.advance()

	if p.check("(") {
		p.advance()
		for !p.check(")") {
			if p.atEnd() {
				return instr, p.errorAt(diag.ParseUnexpectedEOF, "expected ')' to close the operand list")
			}
			operand := p.parseIdent()
			if operand.Err != nil {
				return instr, operand.Err
			}
			instr.Operands = append(instr.Operands, operand.Name())
			if p.check(",") {
				p.advance()
				continue
			}
			if !p.check(")") {
				return instr, p.errorAt(diag.ParseInvalidSyntax,
					"Expected a separator ',' or ')', found '"+p.current().Lexeme+"'.")
			}
		}
		p.advance() // ')'
	}
	return instr, p.expect(";")
}
