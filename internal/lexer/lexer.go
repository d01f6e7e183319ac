// Package lexer turns zx source text into an ordered token stream.
//
// The scanner is a single-pass state machine with one character of
// lookahead. Every malformed construct is non-fatal: it becomes one
// Error token carrying the precise line, byte column, and raw text,
// and scanning resumes past it. The stream always ends with exactly
// one EOF token.
package lexer

import (
	"unicode"

	"zx/internal/diag"
	"zx/internal/token"
)

// Lexer scans one source text. Zero reuse: make a new Lexer per input.
type Lexer struct {
	cursor Cursor
	line   uint32
	tokens []token.Token
	hasErr bool
}

// New creates a lexer over input.
func New(input string) *Lexer {
	return &Lexer{
		cursor: NewCursor([]byte(input)),
		line:   1,
	}
}

// Lex scans the whole input and returns the token stream plus an
// aggregate flag reporting whether any error token was emitted.
func (lx *Lexer) Lex() ([]token.Token, bool) {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.Peek()
		switch {
		case r >= '0' && r <= '9':
			lx.scanNumber()
		case isSeparator(r):
			start := lx.cursor.Off()
			lx.cursor.Bump()
			lx.push(token.Token{Kind: token.Separator, Line: lx.line, Col: start, Lexeme: lx.cursor.Slice(start)})
		case isOperator(r):
			lx.scanOperator()
		case unicode.IsSpace(r):
			if r == '\n' {
				lx.line++
			}
			lx.cursor.Bump()
		case r == '"':
			lx.scanQuoted('"')
		case r == '\'':
			lx.scanQuoted('\'')
		default:
			lx.scanIdentOrKeyword()
		}
	}
	lx.tokens = append(lx.tokens, token.Token{Kind: token.EOF})
	return lx.tokens, lx.hasErr
}

func (lx *Lexer) push(t token.Token) {
	lx.tokens = append(lx.tokens, t)
}

// pushError emits one Error token and raises the aggregate flag.
// Scanning continues after the caller returns.
func (lx *Lexer) pushError(kind diag.LexErrorKind, col uint32, text string) {
	lx.hasErr = true
	lx.push(token.Token{
		Kind: token.Error,
		Line: lx.line,
		Col:  col,
		Err: &diag.LexError{
			Kind: kind,
			Line: lx.line,
			Col:  col,
			Text: text,
		},
	})
}
