package lexer

import (
	"unicode"

	"zx/internal/token"
)

// scanIdentOrKeyword greedily consumes characters until an operator,
// separator, or whitespace boundary, then classifies the text against
// the data-type table, the keyword table, and falls back to an
// identifier. Unicode identifiers pass through verbatim.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Off()
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.Peek()
		if isOperator(r) || isSeparator(r) || unicode.IsSpace(r) {
			break
		}
		lx.cursor.Bump()
	}

	text := lx.cursor.Slice(start)
	kind := token.Identifier
	switch {
	case token.IsDataType(text):
		kind = token.DataType
	case token.IsKeyword(text):
		kind = token.Keyword
	}
	lx.push(token.Token{Kind: kind, Line: lx.line, Col: start, Lexeme: text})
}
