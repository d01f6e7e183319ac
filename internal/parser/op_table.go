package parser

import (
	"zx/internal/ast"
	"zx/internal/token"
)

// The lexer emits single-character operator tokens only. Two-character
// operators are reassembled here, and only when the two tokens are
// adjacent in the source (same line, byte columns touching), so that
// `a = = b` never becomes `a == b`.

type binOp struct {
	op    ast.BinaryOp
	prec  int
	width int // tokens consumed: 1 or 2
}

// Binary precedence, loosest first. Matches C-family grouping except
// that single &, |, ^ sit between comparisons and shifts are tighter
// than comparisons.
const (
	precOr = 1 + iota
	precXor
	precAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

var twoCharOps = map[string]binOp{
	"==": {ast.BinEq, precEquality, 2},
	"!=": {ast.BinNe, precEquality, 2},
	"<=": {ast.BinLe, precRelational, 2},
	">=": {ast.BinGe, precRelational, 2},
	"<<": {ast.BinShl, precShift, 2},
	">>": {ast.BinShr, precShift, 2},
}

var oneCharOps = map[string]binOp{
	"|": {ast.BinOr, precOr, 1},
	"^": {ast.BinXor, precXor, 1},
	"&": {ast.BinAnd, precAnd, 1},
	"<": {ast.BinLt, precRelational, 1},
	">": {ast.BinGt, precRelational, 1},
	"+": {ast.BinAdd, precAdditive, 1},
	"-": {ast.BinSub, precAdditive, 1},
	"*": {ast.BinMul, precMultiplicative, 1},
	"/": {ast.BinDiv, precMultiplicative, 1},
	"%": {ast.BinMod, precMultiplicative, 1},
}

// peekBinaryOp inspects the cursor for a binary operator without
// consuming anything.
func (p *Parser) peekBinaryOp() (binOp, bool) {
	cur := p.current()
	if cur.Kind != token.Operator {
		return binOp{}, false
	}
	next := p.next()
	if next.Kind == token.Operator && next.Line == cur.Line && next.Col == cur.Col+1 {
		if op, ok := twoCharOps[cur.Lexeme+next.Lexeme]; ok {
			return op, true
		}
	}
	op, ok := oneCharOps[cur.Lexeme]
	return op, ok
}

// unaryOps maps prefix lexemes. ref and deref are keywords, the rest
// are operator tokens.
var unaryOps = map[string]ast.UnaryOp{
	"+":     ast.UnaryPlus,
	"-":     ast.UnaryMinus,
	"!":     ast.UnaryNot,
	"~":     ast.UnaryBitNot,
	"ref":   ast.UnaryRef,
	"deref": ast.UnaryDeref,
}

func (p *Parser) peekUnaryOp() (ast.UnaryOp, bool) {
	cur := p.current()
	if cur.Kind != token.Operator && cur.Kind != token.Keyword {
		return 0, false
	}
	op, ok := unaryOps[cur.Lexeme]
	return op, ok
}
