package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grove/parser/dom"
)

func TestParseSerializeRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already normal form",
			input: `<html><body><p>hi</p></body></html>`,
			want:  `<html><body><p>hi</p></body></html>`,
		},
		{
			name:  "implied closes become explicit",
			input: `<ul><li>a<li>b</ul>`,
			want:  `<ul><li>a</li><li>b</li></ul>`,
		},
		{
			name:  "attributes sort and quote",
			input: `<div id=x class='y z'>a</div>`,
			want:  `<div class="y z" id="x">a</div>`,
		},
		{
			name:  "text escapes on the way out",
			input: `<p>a &amp; b</p>`,
			want:  `<p>a &amp; b</p>`,
		},
		{
			name:  "void has no end tag",
			input: `<div><br></div>`,
			want:  `<div><br></div>`,
		},
		{
			name:  "script content survives unescaped",
			input: `<html><script>if (a<b && c) {}</script></html>`,
			want:  `<html><script>if (a<b && c) {}</script></html>`,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse(tc.input, WithErrorHandler(func(*LexError) error { return nil }))
			require.NoError(t, err)
			assert.Equal(t, tc.want, doc.Serialize())
		})
	}
}

func TestParseSerializeIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		`<div><p>one<p>two</div>`,
		`<html><head><title>t</title></head><body><b>x</b></body></html>`,
		`<table><tr><td>a<td>b</table>`,
		`<html><script>if (a<b) {}</script></html>`,
	}
	for _, input := range inputs {
		doc, err := Parse(input,
			WithRecoveryPolicy(ClosePolicy{}),
			WithErrorHandler(func(*LexError) error { return nil }))
		require.NoError(t, err)
		once := doc.Serialize()

		again, err := Parse(once)
		require.NoError(t, err)
		assert.Equal(t, once, again.Serialize(), "serialized form must be a fixed point")
	}
}

func TestParseNoRootElement(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "   \n", "just text", "<!-- only a comment -->"} {
		_, err := Parse(input, WithErrorHandler(func(*LexError) error { return nil }))
		assert.ErrorIs(t, err, ErrNoRootElement, "input %q", input)
	}
}

func TestParseStrayEndTag(t *testing.T) {
	t.Parallel()
	_, err := Parse(`</div><p>x</p>`, WithErrorHandler(func(*LexError) error { return nil }))
	assert.ErrorIs(t, err, ErrStrayEndTag)
}

func TestParseHandlerEscalation(t *testing.T) {
	t.Parallel()
	_, err := Parse(`<p>a &bogus; b</p>`, WithErrorHandler(func(e *LexError) error {
		return e
	}))
	require.Error(t, err)
	var lex *LexError
	require.ErrorAs(t, err, &lex)
	assert.Equal(t, errUnknownNamedCharRef, lex.Code)
}

func TestParseDefaultPolicyFailsFast(t *testing.T) {
	t.Parallel()
	doc, err := Parse(`<html><body><p>ok</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "html", doc.Name(doc.Root()))

	_, err = Parse(`<html><body><span>hi</body></html>`)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestParseDocumentQueries(t *testing.T) {
	t.Parallel()
	doc, err := Parse(`<html><body id="main"><p>hi</p><!-- c --></body></html>`)
	require.NoError(t, err)

	root := doc.Root()
	assert.Equal(t, dom.ElementNode, doc.Kind(root))
	assert.Equal(t, "html", doc.Name(root))
	assert.Equal(t, dom.NoHandle, doc.Parent(doc.Parent(root)), "document node has no parent")

	kids := doc.Children(root)
	require.Len(t, kids, 1)
	body := kids[0]
	assert.Equal(t, "body", doc.Name(body))
	assert.Equal(t, map[string]string{"id": "main"}, doc.Attributes(body))
	assert.Equal(t, root, doc.Parent(body))

	bodyKids := doc.Children(body)
	require.Len(t, bodyKids, 2)
	assert.Equal(t, "p", doc.Name(bodyKids[0]))
	assert.Equal(t, dom.CommentNode, doc.Kind(bodyKids[1]))
	assert.Equal(t, "", doc.Text(bodyKids[1]), "text content is scoped to text nodes")

	p := bodyKids[0]
	pKids := doc.Children(p)
	require.Len(t, pKids, 1)
	assert.Equal(t, dom.TextNode, doc.Kind(pKids[0]))
	assert.Equal(t, "hi", doc.Text(pKids[0]))
}

func TestParseConcurrentReads(t *testing.T) {
	t.Parallel()
	doc, err := Parse(`<html><body><p>a</p><p>b</p></body></html>`)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				root := doc.Root()
				for _, c := range doc.Children(root) {
					doc.Name(c)
					doc.Attributes(c)
					doc.Children(c)
				}
				doc.Serialize()
			}
		}()
	}
	wg.Wait()
}
