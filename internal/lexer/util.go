package lexer

// Separators and operators are fixed single-character sets; everything
// multi-character (==, <<, ...) is the parser's business.

func isSeparator(r rune) bool {
	switch r {
	case ';', ',', '{', '}', '[', ']', '(', ')':
		return true
	}
	return false
}

func isOperator(r rune) bool {
	switch r {
	case '>', '<', '=', '!', '^', '|', '&', '~', '+', '-', '*', '/', '%', '.':
		return true
	}
	return false
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isLiteralRun reports whether b extends the maximal run of a numeric
// literal. Malformed literals swallow the whole run so that e.g. 0xZZ
// becomes a single invalid-hex token rather than an error plus an
// identifier.
func isLiteralRun(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
