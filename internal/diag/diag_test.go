package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"zx/internal/diag"
)

func TestLexErrorMessage(t *testing.T) {
	e := &diag.LexError{Kind: diag.LexInvalidHex, Line: 3, Col: 41, Text: "0xZZ"}
	want := "invalid hexadecimal number at line 3, col 41 -> 0xZZ"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseErrorMessage(t *testing.T) {
	e := &diag.ParseError{Kind: diag.ParseMissingToken, Line: 7, Col: 2, Msg: "expected ';'"}
	want := "missing expected token at line 7, col 2 -> expected ';'"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLexErrorKindStrings(t *testing.T) {
	tests := []struct {
		kind diag.LexErrorKind
		want string
	}{
		{diag.LexUnexpectedEOF, "unexpected EOF"},
		{diag.LexInvalidBinary, "invalid binary number"},
		{diag.LexInvalidOctal, "invalid octal number"},
		{diag.LexInvalidDecimal, "invalid decimal number"},
		{diag.LexInvalidHex, "invalid hexadecimal number"},
		{diag.LexInvalidFloat, "invalid float number"},
		{diag.LexUnterminatedString, "unterminated string literal"},
		{diag.LexUnterminatedChar, "unterminated character literal"},
		{diag.LexUnterminatedComment, "unterminated comment"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseErrorKindStrings(t *testing.T) {
	tests := []struct {
		kind diag.ParseErrorKind
		want string
	}{
		{diag.ParseUnexpectedToken, "unexpected token"},
		{diag.ParseMissingToken, "missing expected token"},
		{diag.ParseInvalidSyntax, "invalid syntax"},
		{diag.ParseUnexpectedEOF, "unexpected EOF while parsing"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPrinter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := diag.NewPrinter(&buf)
	p.SetColor(false)

	p.LexError(&diag.LexError{Kind: diag.LexInvalidHex, Line: 3, Col: 41, Text: "0xZZ"})
	want := "invalid hexadecimal number at line 3, col 41 -> 0xZZ\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	p.ParseError(&diag.ParseError{Kind: diag.ParseUnexpectedToken, Line: 1, Col: 0, Msg: "xyz"})
	want = "unexpected token at line 1, col 0 -> xyz\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_NilErrorsIgnored(t *testing.T) {
	var buf bytes.Buffer
	p := diag.NewPrinter(&buf)
	p.SetColor(false)
	p.LexError(nil)
	p.ParseError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil diagnostics must print nothing, got %q", buf.String())
	}
}

// A pathological lexeme is clipped by display width so one diagnostic
// cannot wrap the whole terminal.
func TestPrinter_ClipsLongLexemes(t *testing.T) {
	var buf bytes.Buffer
	p := diag.NewPrinter(&buf)
	p.SetColor(false)

	long := strings.Repeat("a", 400)
	p.LexError(&diag.LexError{Kind: diag.LexUnterminatedString, Line: 1, Col: 0, Text: long})

	out := buf.String()
	if !strings.Contains(out, "...") {
		t.Errorf("long lexeme not clipped: %q", out)
	}
	if strings.Contains(out, strings.Repeat("a", 100)) {
		t.Errorf("clipped output still carries 100 consecutive runes: %d bytes", len(out))
	}
}
