package ast

import "zx/internal/diag"

// StructDecl is a struct declaration with its field list.
type StructDecl struct {
	Pub      bool
	Name     Ident
	Generics *GenericParams
	Fields   []Field
	Err      *diag.ParseError
}

// Field is one struct field: type first, then name.
type Field struct {
	Type Type
	Name Ident
}

// EnumDecl is an enum declaration with its variant list.
type EnumDecl struct {
	Pub      bool
	Name     Ident
	Generics *GenericParams
	Variants []EnumVariant
	Err      *diag.ParseError
}

// EnumVariant is a unit variant when Tuple is empty, a tuple variant
// otherwise.
type EnumVariant struct {
	Name  Ident
	Tuple []Type
}

// IntfDecl is an interface declaration: a list of method signatures.
type IntfDecl struct {
	Pub      bool
	Name     Ident
	Generics *GenericParams
	Methods  []FnSig
	Err      *diag.ParseError
}
