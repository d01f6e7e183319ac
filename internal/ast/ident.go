package ast

import (
	"zx/internal/diag"
	"zx/internal/token"
)

// Ident is a name slot. A name that failed to parse is "poisoned": Tok
// is nil and Err holds the failure, but the slot still occupies its
// structural position.
type Ident struct {
	Tok *token.Token
	Err *diag.ParseError
}

// Name returns the identifier text, or "" when poisoned.
func (id Ident) Name() string {
	if id.Tok == nil {
		return ""
	}
	return id.Tok.Lexeme
}

// Poisoned reports whether the name slot failed to parse.
func (id Ident) Poisoned() bool { return id.Err != nil }
