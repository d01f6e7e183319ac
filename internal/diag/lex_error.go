package diag

import "fmt"

// LexErrorKind discriminates the lexical error taxonomy.
type LexErrorKind uint8

const (
	// LexUnexpectedEOF indicates the input ended inside a construct.
	LexUnexpectedEOF LexErrorKind = iota
	// LexInvalidBinary indicates a malformed 0b literal.
	LexInvalidBinary
	// LexInvalidOctal indicates a malformed 0o literal.
	LexInvalidOctal
	// LexInvalidDecimal indicates a malformed decimal literal.
	LexInvalidDecimal
	// LexInvalidHex indicates a malformed 0x literal.
	LexInvalidHex
	// LexInvalidFloat indicates a malformed float literal.
	LexInvalidFloat
	// LexUnterminatedString indicates a string literal with no closing quote.
	LexUnterminatedString
	// LexUnterminatedChar indicates a character literal with no closing quote.
	LexUnterminatedChar
	// LexUnterminatedComment indicates a block comment with no closing */.
	LexUnterminatedComment
)

func (k LexErrorKind) String() string {
	switch k {
	case LexUnexpectedEOF:
		return "unexpected EOF"
	case LexInvalidBinary:
		return "invalid binary number"
	case LexInvalidOctal:
		return "invalid octal number"
	case LexInvalidDecimal:
		return "invalid decimal number"
	case LexInvalidHex:
		return "invalid hexadecimal number"
	case LexInvalidFloat:
		return "invalid float number"
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexUnterminatedChar:
		return "unterminated character literal"
	case LexUnterminatedComment:
		return "unterminated comment"
	}
	return "unknown lexical error"
}

// LexError is one lexical failure, embedded in the Error token that
// replaces the malformed construct. Text is the raw source run that
// failed to scan, never a converted value.
type LexError struct {
	Kind LexErrorKind
	Line uint32
	Col  uint32
	Text string
}

// Error renders the plain (uncolored) message. Colored output is the
// renderer's job, see Printer.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s at line %d, col %d -> %s", e.Kind, e.Line, e.Col, e.Text)
}
