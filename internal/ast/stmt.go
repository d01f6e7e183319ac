package ast

import "zx/internal/diag"

// StmtKind discriminates statements.
type StmtKind uint8

const (
	// StmtError is a statement slot that failed to parse.
	StmtError StmtKind = iota
	// StmtIf is if/elif/else.
	StmtIf
	// StmtLoop is an unconditional loop.
	StmtLoop
	// StmtAssign is an assignment to an existing name.
	StmtAssign
	// StmtVarDecl declares a variable, optionally initialized.
	StmtVarDecl
	// StmtMatch is a match over literal patterns.
	StmtMatch
	// StmtBreak exits the innermost loop.
	StmtBreak
	// StmtContinue restarts the innermost loop.
	StmtContinue
	// StmtCall is a function call in statement position.
	StmtCall
	// StmtRet returns from the enclosing function.
	StmtRet
	// StmtAsm is an inline assembly block.
	StmtAsm
	// StmtLlvm is an inline LLVM IR block.
	StmtLlvm
)

// Stmt is one statement slot. Break and Continue carry no payload.
// Asm serves both StmtAsm and StmtLlvm.
type Stmt struct {
	Kind   StmtKind
	If     *IfStmt
	Loop   *LoopStmt
	Assign *AssignStmt
	Var    *VarDeclStmt
	Match  *MatchStmt
	Call   *CallStmt
	Ret    *RetStmt
	Asm    *AsmBlock
	Err    *diag.ParseError
}

// Block is a braced statement sequence.
type Block struct {
	Stmts []Stmt
}

// IfStmt is the full if/elif/else chain.
type IfStmt struct {
	Cond  *Expr
	Then  Block
	Elifs []ElifArm
	Else  *Block
}

// ElifArm is one elif condition and body.
type ElifArm struct {
	Cond *Expr
	Body Block
}

// LoopStmt is `loop { ... }`.
type LoopStmt struct {
	Body Block
}

// AssignStmt is `name = expr;`.
type AssignStmt struct {
	Target Ident
	Value  *Expr
}

// VarDeclStmt is `[const|volatile] type name [= expr];`. Modifier is
// empty when absent.
type VarDeclStmt struct {
	Modifier string
	Type     Type
	Name     Ident
	Value    *Expr
}

// MatchStmt matches an expression against literal pattern arms with an
// optional default block.
type MatchStmt struct {
	Subject *Expr
	Arms    []MatchArm
	Default *Block
}

// MatchArm is one or more literal patterns sharing a body.
type MatchArm struct {
	Patterns []Literal
	Body     Block
}

// CallStmt is `name(args);` in statement position.
type CallStmt struct {
	Name Ident
	Args []Expr
}

// RetStmt is `ret [expr];`.
type RetStmt struct {
	Value *Expr
}

// AsmBlock is the body of an asm or llvm statement: a sequence of
// template strings with optional operand lists.
type AsmBlock struct {
	Instrs []AsmInstr
}

// AsmInstr is one instruction template plus the names it binds.
type AsmInstr struct {
	Template string
	Operands []string
}
