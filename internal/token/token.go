package token

import (
	"fmt"

	"zx/internal/diag"
)

// Token is a single source token with its location and verbatim lexeme.
// Err is non-nil exactly when Kind == Error. EOF carries no position.
type Token struct {
	Kind   Kind
	Line   uint32
	Col    uint32
	Lexeme string
	Err    *diag.LexError
}

// IsEOF reports whether the token ends the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsError reports whether the token replaced a malformed construct.
func (t Token) IsError() bool { return t.Kind == Error }

// IsLiteral reports whether the token is a numeric, string, or
// character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "End of File"
	case Error:
		return "Error: " + t.Err.Error()
	default:
		return fmt.Sprintf("%s(line: %d, col: %d, value: %s)", t.Kind, t.Line, t.Col, t.Lexeme)
	}
}
