package lexer

import (
	"strconv"

	"zx/internal/diag"
	"zx/internal/token"
)

// scanNumber handles every numeric form: 0b/0o/0x integers, decimal
// integers, and floats with fractional part and/or exponent. The raw
// digits accumulate first; validity is decided afterwards by parsing
// the text in its radix/kind. A bad literal yields exactly one
// kind-specific Error token spanning the whole literal run, and
// scanning resumes after it.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Off()

	// Radix prefix: a leading 0 followed by x/o/b switches base.
	if lx.cursor.PeekByte() == '0' {
		if next, ok := lx.cursor.PeekNext(); ok {
			var base int
			var errKind diag.LexErrorKind
			switch next {
			case 'x', 'X':
				base, errKind = 16, diag.LexInvalidHex
			case 'o', 'O':
				base, errKind = 8, diag.LexInvalidOctal
			case 'b', 'B':
				base, errKind = 2, diag.LexInvalidBinary
			}
			if base != 0 {
				lx.cursor.Bump() // '0'
				lx.cursor.Bump() // radix letter
				digits := lx.cursor.Off()
				for isLiteralRun(lx.cursor.PeekByte()) {
					lx.cursor.Bump()
				}
				text := lx.cursor.Slice(start)
				if _, err := strconv.ParseUint(lx.cursor.Slice(digits), base, 64); err != nil {
					lx.pushError(errKind, start, text)
					return
				}
				lx.push(token.Token{Kind: token.IntLit, Line: lx.line, Col: start, Lexeme: text})
				return
			}
		}
	}

	// Decimal integer part.
	for isDec(lx.cursor.PeekByte()) {
		lx.cursor.Bump()
	}

	isFloat := false

	// Fractional part: '.' promotes to float only when digits follow,
	// otherwise the dot stays an operator for the parser.
	if lx.cursor.PeekByte() == '.' {
		if next, ok := lx.cursor.PeekNext(); ok && next >= '0' && next <= '9' {
			isFloat = true
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.PeekByte()) {
				lx.cursor.Bump()
			}
		}
	}

	// Exponent: e/E [sign] digits, promotes to float.
	if b := lx.cursor.PeekByte(); b == 'e' || b == 'E' {
		isFloat = true
		lx.cursor.Bump()
		if b := lx.cursor.PeekByte(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		for isDec(lx.cursor.PeekByte()) {
			lx.cursor.Bump()
		}
	}

	// Swallow any trailing literal-run junk (12ab, 1.5e+x) so the
	// whole malformed literal is one token.
	for isLiteralRun(lx.cursor.PeekByte()) {
		lx.cursor.Bump()
	}

	text := lx.cursor.Slice(start)
	if isFloat {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			lx.pushError(diag.LexInvalidFloat, start, text)
			return
		}
		lx.push(token.Token{Kind: token.FloatLit, Line: lx.line, Col: start, Lexeme: text})
		return
	}
	if _, err := strconv.ParseUint(text, 10, 64); err != nil {
		lx.pushError(diag.LexInvalidDecimal, start, text)
		return
	}
	lx.push(token.Token{Kind: token.IntLit, Line: lx.line, Col: start, Lexeme: text})
}
