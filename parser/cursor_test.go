package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorNavigation(t *testing.T) {
	t.Parallel()
	c := newCursor("ab")

	_, ok := c.current()
	assert.False(t, ok, "cursor starts before the input")

	r, ok := c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, c.offset())

	p, ok := c.peek(1)
	assert.True(t, ok)
	assert.Equal(t, 'b', p)

	r, ok = c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)

	_, ok = c.advance()
	assert.False(t, ok, "past the end")

	// advancing past the end stays put
	_, ok = c.advance()
	assert.False(t, ok)

	c.rewindOne()
	r, ok = c.current()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)
}

func TestCursorNewlineNormalization(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "crlf", input: "a\r\nb", want: "a\nb"},
		{name: "bare cr", input: "a\rb", want: "a\nb"},
		{name: "mixed", input: "a\r\r\nb\r", want: "a\n\nb\n"},
		{name: "untouched", input: "a\nb", want: "a\nb"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newCursor(tc.input)
			var got []rune
			for {
				r, ok := c.advance()
				if !ok {
					break
				}
				got = append(got, r)
			}
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestCursorUnicode(t *testing.T) {
	t.Parallel()
	c := newCursor("aöz")
	c.advance()
	r, ok := c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'ö', r)
	r, ok = c.advance()
	assert.True(t, ok)
	assert.Equal(t, 'z', r)
}
