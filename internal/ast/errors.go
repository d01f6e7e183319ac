package ast

import "zx/internal/diag"

// Errors walks the whole tree and collects every embedded syntax
// error in source order. Traversal relies on the structural-totality
// invariant: every slot is present, so no presence checks beyond the
// variant pointers are needed.
func (t *Tree) Errors() []*diag.ParseError {
	if t == nil {
		return nil
	}
	var w errWalker
	for i := range t.Decls {
		w.decl(&t.Decls[i])
	}
	return w.errs
}

// HasErrors reports whether any node in the tree is poisoned.
func (t *Tree) HasErrors() bool {
	return len(t.Errors()) > 0
}

type errWalker struct {
	errs []*diag.ParseError
}

func (w *errWalker) add(e *diag.ParseError) {
	if e != nil {
		w.errs = append(w.errs, e)
	}
}

func (w *errWalker) decl(d *Decl) {
	w.add(d.Err)
	switch d.Kind {
	case DeclFn:
		w.fn(d.Fn)
	case DeclStruct:
		w.structDecl(d.Struct)
	case DeclEnum:
		w.enumDecl(d.Enum)
	case DeclIntf:
		w.intfDecl(d.Intf)
	}
}

func (w *errWalker) fn(fn *FnDecl) {
	if fn == nil {
		return
	}
	w.add(fn.Err)
	w.ident(&fn.Name)
	w.generics(fn.Generics)
	for i := range fn.Params {
		w.param(&fn.Params[i])
	}
	w.typ(fn.Ret)
	w.block(&fn.Body)
}

func (w *errWalker) sig(sig *FnSig) {
	w.add(sig.Err)
	w.ident(&sig.Name)
	w.generics(sig.Generics)
	for i := range sig.Params {
		w.param(&sig.Params[i])
	}
	w.typ(sig.Ret)
}

func (w *errWalker) structDecl(s *StructDecl) {
	if s == nil {
		return
	}
	w.add(s.Err)
	w.ident(&s.Name)
	w.generics(s.Generics)
	for i := range s.Fields {
		w.typ(&s.Fields[i].Type)
		w.ident(&s.Fields[i].Name)
	}
}

func (w *errWalker) enumDecl(e *EnumDecl) {
	if e == nil {
		return
	}
	w.add(e.Err)
	w.ident(&e.Name)
	w.generics(e.Generics)
	for i := range e.Variants {
		w.ident(&e.Variants[i].Name)
		for j := range e.Variants[i].Tuple {
			w.typ(&e.Variants[i].Tuple[j])
		}
	}
}

func (w *errWalker) intfDecl(it *IntfDecl) {
	if it == nil {
		return
	}
	w.add(it.Err)
	w.ident(&it.Name)
	w.generics(it.Generics)
	for i := range it.Methods {
		w.sig(&it.Methods[i])
	}
}

func (w *errWalker) generics(gp *GenericParams) {
	if gp == nil {
		return
	}
	w.add(gp.Err)
	for i := range gp.Entries {
		w.ident(&gp.Entries[i].Name)
		if gp.Entries[i].Bound != nil {
			w.ident(gp.Entries[i].Bound)
		}
	}
}

func (w *errWalker) ident(id *Ident) {
	w.add(id.Err)
}

func (w *errWalker) param(p *Param) {
	w.typ(&p.Type)
	w.ident(&p.Name)
}

func (w *errWalker) typ(t *Type) {
	if t == nil {
		return
	}
	w.add(t.Err)
	w.typ(t.Elem)
	w.expr(t.Size)
}

func (w *errWalker) block(b *Block) {
	if b == nil {
		return
	}
	for i := range b.Stmts {
		w.stmt(&b.Stmts[i])
	}
}

func (w *errWalker) stmt(s *Stmt) {
	w.add(s.Err)
	switch s.Kind {
	case StmtIf:
		w.expr(s.If.Cond)
		w.block(&s.If.Then)
		for i := range s.If.Elifs {
			w.expr(s.If.Elifs[i].Cond)
			w.block(&s.If.Elifs[i].Body)
		}
		w.block(s.If.Else)
	case StmtLoop:
		w.block(&s.Loop.Body)
	case StmtAssign:
		w.ident(&s.Assign.Target)
		w.expr(s.Assign.Value)
	case StmtVarDecl:
		w.typ(&s.Var.Type)
		w.ident(&s.Var.Name)
		w.expr(s.Var.Value)
	case StmtMatch:
		w.expr(s.Match.Subject)
		for i := range s.Match.Arms {
			w.block(&s.Match.Arms[i].Body)
		}
		w.block(s.Match.Default)
	case StmtCall:
		w.ident(&s.Call.Name)
		for i := range s.Call.Args {
			w.expr(&s.Call.Args[i])
		}
	case StmtRet:
		w.expr(s.Ret.Value)
	}
}

func (w *errWalker) expr(e *Expr) {
	if e == nil {
		return
	}
	w.add(e.Err)
	w.add(e.Name.Err)
	w.expr(e.X)
	w.expr(e.Y)
	for i := range e.Args {
		w.expr(&e.Args[i])
	}
}
