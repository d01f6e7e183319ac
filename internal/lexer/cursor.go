package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Cursor is an explicit byte index into an immutable input buffer.
// Peek and Bump are the only primitives; there is no backtracking and
// no internal state beyond the offset, which keeps one-character
// lookahead cheap and side-effect-free.
type Cursor struct {
	input []byte
	off   uint32
}

// NewCursor creates a cursor over input.
func NewCursor(input []byte) Cursor {
	if _, err := safecast.Conv[uint32](len(input)); err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{input: input, off: 0}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.off >= uint32(len(c.input))
}

// Off returns the current byte offset.
func (c *Cursor) Off() uint32 {
	return c.off
}

// PeekByte returns the current byte, or 0 at EOF.
func (c *Cursor) PeekByte() byte {
	if c.EOF() {
		return 0
	}
	return c.input[c.off]
}

// Peek decodes the rune at the cursor. Returns utf8.RuneError with
// size 0 at EOF.
func (c *Cursor) Peek() (r rune, size uint32) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.input[c.off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.input[c.off:])
	szu, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return r, szu
}

// PeekNext decodes the rune after the current one, without moving.
func (c *Cursor) PeekNext() (rune, bool) {
	_, size := c.Peek()
	if size == 0 {
		return utf8.RuneError, false
	}
	next := c.off + size
	if next >= uint32(len(c.input)) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRune(c.input[next:])
	return r, true
}

// Bump advances past the current rune. The column a token reports is a
// byte offset, so multi-byte runes advance it by their encoded length.
func (c *Cursor) Bump() {
	_, size := c.Peek()
	c.off += size
}

// Slice returns the verbatim source substring [start, c.off).
func (c *Cursor) Slice(start uint32) string {
	return string(c.input[start:c.off])
}

// LastByte returns the byte immediately before the cursor, or 0 at the
// start of input. Single-character lookback for quote termination.
func (c *Cursor) LastByte() byte {
	if c.off == 0 {
		return 0
	}
	return c.input[c.off-1]
}
