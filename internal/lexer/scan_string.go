package lexer

import (
	"zx/internal/diag"
	"zx/internal/token"
)

// scanQuoted handles string and character literals. The
// lexeme is the verbatim source run, quotes included; escapes are not
// decoded here. A backslash immediately before a closing quote
// suppresses termination for that one occurrence only (single
// character lookback, longer escape runs do not stack).
func (lx *Lexer) scanQuoted(quote byte) {
	start := lx.cursor.Off()
	lx.cursor.Bump() // opening quote

	terminated := false
	for !lx.cursor.EOF() {
		if lx.cursor.PeekByte() == quote {
			escaped := lx.cursor.LastByte() == '\\'
			lx.cursor.Bump()
			if !escaped {
				terminated = true
				break
			}
			continue
		}
		lx.cursor.Bump()
	}

	text := lx.cursor.Slice(start)
	if terminated {
		kind := token.StringLit
		if quote == '\'' {
			kind = token.CharLit
		}
		lx.push(token.Token{Kind: kind, Line: lx.line, Col: start, Lexeme: text})
		return
	}

	// Distinguish the two end-of-input shapes: a trailing backslash
	// means the escape itself ran off the input; otherwise the
	// terminator was simply never pushed.
	if lx.cursor.LastByte() == '\\' {
		lx.pushError(diag.LexUnexpectedEOF, start, text)
		return
	}
	if quote == '\'' {
		lx.pushError(diag.LexUnterminatedChar, start, text)
		return
	}
	lx.pushError(diag.LexUnterminatedString, start, text)
}
