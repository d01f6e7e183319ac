package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// DataType represents a built-in type name (u8, f64, bool, ...).
	DataType
	// Identifier represents an identifier token.
	Identifier
	// Separator represents a single-character separator token.
	Separator
	// Operator represents a single-character operator token.
	Operator
	// Keyword represents a language keyword.
	Keyword
	// IntLit represents an integer literal in any radix.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// StringLit represents a string literal, quotes included.
	StringLit
	// CharLit represents a character literal, quotes included.
	CharLit
	// Error represents a malformed construct; the token carries the
	// lexical error in place of the construct it replaced.
	Error
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "Eof"
	case DataType:
		return "DataType"
	case Identifier:
		return "Identifier"
	case Separator:
		return "Separator"
	case Operator:
		return "Operator"
	case Keyword:
		return "Keyword"
	case IntLit:
		return "IntLiteral"
	case FloatLit:
		return "FloatLiteral"
	case StringLit:
		return "StringLiteral"
	case CharLit:
		return "CharLiteral"
	case Error:
		return "Error"
	}
	return "Unknown"
}
