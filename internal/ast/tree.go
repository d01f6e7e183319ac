package ast

import "zx/internal/diag"

// DeclKind discriminates top-level declarations.
type DeclKind uint8

const (
	// DeclError is a top-level attempt that failed to parse.
	DeclError DeclKind = iota
	// DeclFn is a function declaration.
	DeclFn
	// DeclStruct is a struct declaration.
	DeclStruct
	// DeclEnum is an enum declaration.
	DeclEnum
	// DeclIntf is an interface declaration.
	DeclIntf
)

func (k DeclKind) String() string {
	switch k {
	case DeclFn:
		return "fn"
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclIntf:
		return "intf"
	case DeclError:
		return "error"
	}
	return "unknown"
}

// Decl is one top-level declaration slot. One Decl is produced per
// parse attempt, success or failure.
type Decl struct {
	Kind   DeclKind
	Fn     *FnDecl
	Struct *StructDecl
	Enum   *EnumDecl
	Intf   *IntfDecl
	Err    *diag.ParseError
}

// Tree is the root of one file's syntax tree: an ordered declaration
// sequence.
type Tree struct {
	Decls []Decl
}
