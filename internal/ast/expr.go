package ast

import "zx/internal/diag"

// ExprKind discriminates expressions.
type ExprKind uint8

const (
	// ExprError is an expression slot that failed to parse.
	ExprError ExprKind = iota
	// ExprLiteral is a literal value.
	ExprLiteral
	// ExprIdent is a bare identifier reference.
	ExprIdent
	// ExprUnary is a prefix operation.
	ExprUnary
	// ExprBinary is an infix operation.
	ExprBinary
	// ExprGroup is a parenthesized expression.
	ExprGroup
	// ExprCall is a function call.
	ExprCall
)

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryBitNot
	UnaryRef
	UnaryDeref
)

// BinaryOp enumerates infix operators. Two-character forms are merged
// by the parser from adjacent single-character operator tokens.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinAnd
	BinOr
	BinXor
	BinShl
	BinShr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
)

// Expr is one expression node. X holds the unary/group operand or the
// binary left-hand side; Y holds the binary right-hand side.
type Expr struct {
	Kind   ExprKind
	Lit    *Literal
	Name   Ident
	Unary  UnaryOp
	Binary BinaryOp
	X      *Expr
	Y      *Expr
	Args   []Expr
	Err    *diag.ParseError
}

// LitKind discriminates literal values.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
	LitNull
)

// Literal keeps the verbatim lexeme alongside the converted value, so
// diagnostics can always reproduce the source text.
type Literal struct {
	Kind  LitKind
	Text  string
	Int   uint64
	Float float64
	Bool  bool
}
