package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPolicy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ActionAbort, ErrorPolicy{}.Resolve(Mismatch{Open: "span", Closing: "body"}))
}

func TestVoidPolicy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ActionIgnore, VoidPolicy{}.Resolve(Mismatch{Open: "span", Closing: "body"}))
}

func TestClosePolicy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    Mismatch
		want Action
	}{
		{
			name: "closing tag names an ancestor",
			m:    Mismatch{Open: "span", Closing: "body", Ancestors: []string{"body", "html"}},
			want: ActionClose,
		},
		{
			name: "closing tag names the root",
			m:    Mismatch{Open: "div", Closing: "html", Ancestors: []string{"html"}},
			want: ActionClose,
		},
		{
			name: "closing tag names nothing open",
			m:    Mismatch{Open: "span", Closing: "table", Ancestors: []string{"body", "html"}},
			want: ActionIgnore,
		},
		{
			name: "no ancestors at all",
			m:    Mismatch{Open: "html", Closing: "div"},
			want: ActionIgnore,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ClosePolicy{}.Resolve(tc.m))
		})
	}
}
