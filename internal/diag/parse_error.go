package diag

import "fmt"

// ParseErrorKind discriminates the syntactic error taxonomy.
type ParseErrorKind uint8

const (
	// ParseUnexpectedToken indicates a token that no construct accepts here.
	ParseUnexpectedToken ParseErrorKind = iota
	// ParseMissingToken indicates a required token that is absent.
	ParseMissingToken
	// ParseInvalidSyntax indicates a construct that started but went wrong.
	ParseInvalidSyntax
	// ParseUnexpectedEOF indicates the token stream ended mid-construct.
	ParseUnexpectedEOF
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseUnexpectedToken:
		return "unexpected token"
	case ParseMissingToken:
		return "missing expected token"
	case ParseInvalidSyntax:
		return "invalid syntax"
	case ParseUnexpectedEOF:
		return "unexpected EOF while parsing"
	}
	return "unknown syntax error"
}

// ParseError is one syntactic failure. It is embedded in the tree node
// whose parse failed, never collected in a side channel, so the
// failure's structural position is preserved. Msg carries either the
// offending lexeme or a fuller explanation.
type ParseError struct {
	Kind ParseErrorKind
	Line uint32
	Col  uint32
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, col %d -> %s", e.Kind, e.Line, e.Col, e.Msg)
}
