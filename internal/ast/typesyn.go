package ast

import "zx/internal/diag"

// TypeKind discriminates type syntax.
type TypeKind uint8

const (
	// TypeError is a type slot that failed to parse.
	TypeError TypeKind = iota
	// TypePrimitive is a built-in data type (u8, f64, bool, ...).
	TypePrimitive
	// TypeNamed is a user type referenced by identifier.
	TypeNamed
	// TypeArray is [elem; size].
	TypeArray
)

// Type is one type annotation. Name carries the primitive or named
// type text; Elem and Size are set for arrays.
type Type struct {
	Kind TypeKind
	Name string
	Elem *Type
	Size *Expr
	Err  *diag.ParseError
}
