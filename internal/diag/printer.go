// Package diag defines the two error taxonomies of the front end
// (lexical and syntactic) and a terminal renderer for them.
//
// Errors are plain values. The lexer embeds LexError into Error tokens,
// the parser embeds ParseError into the tree node that failed; nothing
// here is a Go error in the control-flow sense. The Printer is the only
// place that knows about colors.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// maxLexemeWidth bounds the offending-text column so a pathological
// lexeme (an unterminated string swallowing the rest of the file)
// cannot wrap the whole terminal.
const maxLexemeWidth = 48

// Printer renders diagnostics to a writer. Color can be forced on or
// off; by default fatih/color decides from the tty.
type Printer struct {
	out io.Writer

	head  *color.Color
	pos   *color.Color
	arrow *color.Color
	text  *color.Color
}

// NewPrinter constructs a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		head:  color.New(color.FgRed, color.Bold),
		pos:   color.New(color.FgYellow),
		arrow: color.New(color.FgCyan),
		text:  color.New(color.FgBlue),
	}
}

// SetColor overrides tty autodetection for all subsequent prints.
func (p *Printer) SetColor(enabled bool) {
	all := []*color.Color{p.head, p.pos, p.arrow, p.text}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// LexError prints one lexical diagnostic:
//
//	invalid hexadecimal number at line 3, col 41 -> 0xZZ
func (p *Printer) LexError(e *LexError) {
	if e == nil {
		return
	}
	p.print(e.Kind.String()+" at", e.Line, e.Col, e.Text)
}

// ParseError prints one syntactic diagnostic.
func (p *Printer) ParseError(e *ParseError) {
	if e == nil {
		return
	}
	p.print(e.Kind.String()+" at", e.Line, e.Col, e.Msg)
}

func (p *Printer) print(head string, line, col uint32, text string) {
	fmt.Fprintf(p.out, "%s %s %s %s\n",
		p.head.Sprint(head),
		p.pos.Sprintf("line %d, col %d", line, col),
		p.arrow.Sprint("->"),
		p.text.Sprint(clipLexeme(text)),
	)
}

// clipLexeme truncates by display width, not byte count, so multi-byte
// source text keeps its alignment.
func clipLexeme(s string) string {
	if runewidth.StringWidth(s) <= maxLexemeWidth {
		return s
	}
	return runewidth.Truncate(s, maxLexemeWidth, "...")
}
