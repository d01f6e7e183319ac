package lexer

import (
	"zx/internal/diag"
	"zx/internal/token"
)

// scanOperator emits one single-character Operator token, except when
// '/' opens a comment.
func (lx *Lexer) scanOperator() {
	if lx.cursor.PeekByte() == '/' {
		if next, ok := lx.cursor.PeekNext(); ok && (next == '/' || next == '*') {
			lx.scanComment()
			return
		}
	}
	start := lx.cursor.Off()
	lx.cursor.Bump()
	lx.push(token.Token{Kind: token.Operator, Line: lx.line, Col: start, Lexeme: lx.cursor.Slice(start)})
}

// scanComment consumes // to (not including) the next newline, or
// /* to the matching */. Successful comments produce no token; an
// unterminated block comment yields an Error token and stops at EOF.
func (lx *Lexer) scanComment() {
	start := lx.cursor.Off()
	lx.cursor.Bump() // '/'

	if lx.cursor.PeekByte() == '/' {
		for !lx.cursor.EOF() && lx.cursor.PeekByte() != '\n' {
			lx.cursor.Bump()
		}
		return
	}

	// Block comment. No nesting: the first */ terminates.
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.PeekByte() == '*' {
			if next, ok := lx.cursor.PeekNext(); ok && next == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return
			}
		}
		lx.cursor.Bump()
	}
	lx.pushError(diag.LexUnterminatedComment, start, lx.cursor.Slice(start))
}
