package parser

import "strings"

// cursor is a random-access view over the decoded input text. It only
// navigates; it carries no parsing semantics and never reports errors.
// Every accessor returns false past either end instead of panicking.
//
// Newlines are normalized once up front (CRLF and bare CR become LF),
// which replaces per-read lookahead since the whole input is in memory.
type cursor struct {
	input []rune
	pos   int
}

func newCursor(input string) *cursor {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	return &cursor{input: []rune(input), pos: -1}
}

// current returns the rune at the cursor position.
func (c *cursor) current() (rune, bool) {
	if c.pos < 0 || c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// peek returns the rune n positions ahead without moving the cursor.
func (c *cursor) peek(n int) (rune, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.input) {
		return 0, false
	}
	return c.input[i], true
}

// advance moves forward one position and returns the new current rune.
// Past the end it stays put and keeps returning false.
func (c *cursor) advance() (rune, bool) {
	if c.pos < len(c.input) {
		c.pos++
	}
	return c.current()
}

// rewindOne moves back exactly one position, so the current rune can be
// consumed again under a different state.
func (c *cursor) rewindOne() {
	if c.pos >= 0 {
		c.pos--
	}
}

// offset reports the current rune position, for error messages.
func (c *cursor) offset() int {
	return c.pos
}
