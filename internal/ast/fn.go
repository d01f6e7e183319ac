package ast

import "zx/internal/diag"

// FnDecl is a function declaration, modifiers included.
type FnDecl struct {
	Pub      bool
	Const    bool
	Name     Ident
	Generics *GenericParams
	Params   []Param
	Ret      *Type
	Body     Block
	Err      *diag.ParseError
}

// Param is one function parameter: type first, then name.
type Param struct {
	Type Type
	Name Ident
}

// FnSig is a bodiless function signature, as declared inside intf
// blocks.
type FnSig struct {
	Name     Ident
	Generics *GenericParams
	Params   []Param
	Ret      *Type
	Err      *diag.ParseError
}

// GenericParams is a generic parameter list <type T, type U impl Bound>.
// On a structural deviation the list keeps the entries parsed so far
// and records the failure in Err; diagnostics are best-effort per list.
type GenericParams struct {
	Entries []GenericParam
	Err     *diag.ParseError
}

// GenericParam is one list entry: a type parameter with an optional
// impl bound.
type GenericParam struct {
	Name  Ident
	Bound *Ident
}
