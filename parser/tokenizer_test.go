package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenize runs the tokenizer to end of input, collecting every token
// and every reported error code. Adjacent character tokens are merged
// so expectations can be written as strings.
func tokenize(t *testing.T, input string) ([]Token, []string) {
	t.Helper()
	var codes []string
	z := newTokenizer(newCursor(input), func(e *LexError) error {
		codes = append(codes, e.Code)
		return nil
	})
	var out []Token
	for {
		tok, err := z.next()
		require.NoError(t, err)
		if tok.Type == endOfFileToken {
			return coalesce(out), codes
		}
		out = append(out, tok)
	}
}

func coalesce(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if tok.Type == characterToken && len(out) > 0 && out[len(out)-1].Type == characterToken {
			out[len(out)-1].Data += tok.Data
			continue
		}
		out = append(out, tok)
	}
	return out
}

func chars(s string) Token  { return Token{Type: characterToken, Data: s} }
func start(name string, attrs ...Attribute) Token {
	return Token{Type: startTagToken, TagName: name, Attributes: attrs}
}
func end(name string) Token { return Token{Type: endTagToken, TagName: name} }

func TestTokenizerBasics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "plain text",
			input: "hello",
			want:  []Token{chars("hello")},
		},
		{
			name:  "simple element",
			input: `<div>x</div>`,
			want:  []Token{start("div"), chars("x"), end("div")},
		},
		{
			name:  "tag names fold to lowercase",
			input: `<DIV></DiV>`,
			want:  []Token{start("div"), end("div")},
		},
		{
			name:  "self closing",
			input: `<br/>`,
			want:  []Token{{Type: startTagToken, TagName: "br", SelfClosing: true}},
		},
		{
			name:  "comment",
			input: `<!-- hi -->`,
			want:  []Token{{Type: commentToken, Data: " hi "}},
		},
		{
			name:  "doctype",
			input: `<!DOCTYPE html>`,
			want:  []Token{{Type: doctypeToken, TagName: "html"}},
		},
		{
			name:  "doctype name folds",
			input: `<!doctype HTML>`,
			want:  []Token{{Type: doctypeToken, TagName: "html"}},
		},
		{
			name:  "lone less-than",
			input: "a < b",
			want:  []Token{chars("a < b")},
		},
		{
			name:  "crlf normalized",
			input: "a\r\nb\rc",
			want:  []Token{chars("a\nb\nc")},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, _ := tokenize(t, tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizerAttributes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		want      []Token
		wantCodes []string
	}{
		{
			name:  "double quoted",
			input: `<a href="x">`,
			want:  []Token{start("a", Attribute{Name: "href", Value: "x"})},
		},
		{
			name:  "single quoted",
			input: `<a href='x y'>`,
			want:  []Token{start("a", Attribute{Name: "href", Value: "x y"})},
		},
		{
			name:  "unquoted",
			input: `<a href=x>`,
			want:  []Token{start("a", Attribute{Name: "href", Value: "x"})},
		},
		{
			name:  "bare attribute",
			input: `<input disabled>`,
			want:  []Token{start("input", Attribute{Name: "disabled", Value: ""})},
		},
		{
			name:  "several attributes",
			input: `<a b="1" c='2' d=3 e>`,
			want: []Token{start("a",
				Attribute{Name: "b", Value: "1"},
				Attribute{Name: "c", Value: "2"},
				Attribute{Name: "d", Value: "3"},
				Attribute{Name: "e", Value: ""},
			)},
		},
		{
			name:  "attribute names fold",
			input: `<a HREF="x">`,
			want:  []Token{start("a", Attribute{Name: "href", Value: "x"})},
		},
		{
			name:      "duplicate keeps first value",
			input:     `<a id="1" id="2">`,
			want:      []Token{start("a", Attribute{Name: "id", Value: "1"})},
			wantCodes: []string{errDuplicateAttribute},
		},
		{
			name:      "missing whitespace between attributes",
			input:     `<a b="1"c="2">`,
			want: []Token{start("a",
				Attribute{Name: "b", Value: "1"},
				Attribute{Name: "c", Value: "2"},
			)},
			wantCodes: []string{errMissingWhitespaceBetweenAttrs},
		},
		{
			name:      "end tag sheds attributes",
			input:     `</div class="x">`,
			want:      []Token{end("div")},
			wantCodes: []string{errEndTagWithAttributes},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, codes := tokenize(t, tc.input)
			assert.Equal(t, tc.want, got)
			if tc.wantCodes != nil {
				assert.Equal(t, tc.wantCodes, codes)
			}
		})
	}
}

func TestTokenizerCharacterReferences(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		want      []Token
		wantCodes []string
	}{
		{
			name:  "named",
			input: "a &amp; b",
			want:  []Token{chars("a & b")},
		},
		{
			name:      "named without semicolon",
			input:     "a &amp b",
			want:      []Token{chars("a & b")},
			wantCodes: []string{errMissingSemicolonAfterCharRef},
		},
		{
			name:  "longest match wins",
			input: "&notin;x",
			want:  []Token{chars("¬in;x")},
		},
		{
			name:      "unknown reference",
			input:     "&bogus;",
			want:      []Token{chars("&bogus;")},
			wantCodes: []string{errUnknownNamedCharRef},
		},
		{
			name:  "bare ampersand",
			input: "fish & chips",
			want:  []Token{chars("fish & chips")},
		},
		{
			name:  "decimal",
			input: "&#65;",
			want:  []Token{chars("A")},
		},
		{
			name:  "hex",
			input: "&#x41;&#X42;",
			want:  []Token{chars("AB")},
		},
		{
			name:      "null becomes replacement",
			input:     "&#0;",
			want:      []Token{chars("�")},
			wantCodes: []string{errNullCharRef},
		},
		{
			name:      "out of range becomes replacement",
			input:     "&#x110000;",
			want:      []Token{chars("�")},
			wantCodes: []string{errCharRefOutsideUnicodeRange},
		},
		{
			name:      "windows-1252 remap",
			input:     "&#x80;",
			want:      []Token{chars("€")},
			wantCodes: []string{errControlCharRef},
		},
		{
			name:      "digits missing",
			input:     "&#;",
			want:      []Token{chars("&#;")},
			wantCodes: []string{errAbsenceOfDigits},
		},
		{
			name:  "reference in attribute value",
			input: `<a href="x&amp;y">`,
			want:  []Token{start("a", Attribute{Name: "href", Value: "x&y"})},
		},
		{
			name:  "legacy query string stays literal",
			input: `<a href="?x=1&copy=2">`,
			want:  []Token{start("a", Attribute{Name: "href", Value: "?x=1&copy=2"})},
		},
		{
			name:      "legacy reference before space converts",
			input:     `<a href="a &copy b">`,
			want:      []Token{start("a", Attribute{Name: "href", Value: "a © b"})},
			wantCodes: []string{errMissingSemicolonAfterCharRef},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, codes := tokenize(t, tc.input)
			assert.Equal(t, tc.want, got)
			if tc.wantCodes != nil {
				assert.Equal(t, tc.wantCodes, codes)
			}
		})
	}
}

// collectFrom keeps pulling tokens until end of input.
func collectFrom(t *testing.T, z *tokenizer) []Token {
	t.Helper()
	var out []Token
	for {
		tok, err := z.next()
		require.NoError(t, err)
		if tok.Type == endOfFileToken {
			return coalesce(out)
		}
		out = append(out, tok)
	}
}

func TestTokenizerRCDATA(t *testing.T) {
	t.Parallel()
	z := newTokenizer(newCursor(`<title>a <b> &amp; </nope></title>x`), func(*LexError) error { return nil })

	tok, err := z.next()
	require.NoError(t, err)
	assert.Equal(t, start("title"), tok)

	// the tree builder flips the state after a title start tag
	z.setState(rcdataState)

	rest := collectFrom(t, z)
	assert.Equal(t, []Token{chars("a <b> & </nope>"), end("title"), chars("x")}, rest)
}

func TestTokenizerRawText(t *testing.T) {
	t.Parallel()
	z := newTokenizer(newCursor(`<style>a &amp; {}</style>`), func(*LexError) error { return nil })

	tok, err := z.next()
	require.NoError(t, err)
	assert.Equal(t, start("style"), tok)

	z.setState(rawTextState)

	rest := collectFrom(t, z)
	assert.Equal(t, []Token{chars("a &amp; {}"), end("style")}, rest)
}

func TestTokenizerScriptData(t *testing.T) {
	t.Parallel()
	z := newTokenizer(newCursor(`<script>if (a<b) {}</script>`), func(*LexError) error { return nil })

	tok, err := z.next()
	require.NoError(t, err)
	assert.Equal(t, start("script"), tok)

	z.setState(scriptDataState)

	rest := collectFrom(t, z)
	assert.Equal(t, []Token{chars("if (a<b) {}"), end("script")}, rest)
}

func TestTokenizerPlaintext(t *testing.T) {
	t.Parallel()
	z := newTokenizer(newCursor(`<plaintext></plaintext><b>`), func(*LexError) error { return nil })

	tok, err := z.next()
	require.NoError(t, err)
	assert.Equal(t, start("plaintext"), tok)

	z.setState(plaintextState)

	rest := collectFrom(t, z)
	assert.Equal(t, []Token{chars("</plaintext><b>")}, rest)
}

func TestTokenizerErrorRecovery(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		want      []Token
		wantCodes []string
	}{
		{
			name:      "eof in tag drops the tag",
			input:     "x<div",
			want:      []Token{chars("x")},
			wantCodes: []string{errEOFInTag},
		},
		{
			name:      "eof before tag name keeps the angle",
			input:     "x<",
			want:      []Token{chars("x<")},
			wantCodes: []string{errEOFBeforeTagName},
		},
		{
			name:      "question mark becomes bogus comment",
			input:     "<?pi?>",
			want:      []Token{{Type: commentToken, Data: "?pi?"}},
			wantCodes: []string{errUnexpectedQuestionMark},
		},
		{
			name:      "empty end tag vanishes",
			input:     "a</>b",
			want:      []Token{chars("ab")},
			wantCodes: []string{errMissingEndTagName},
		},
		{
			name:      "eof in comment emits what was seen",
			input:     "<!-- hi",
			want:      []Token{{Type: commentToken, Data: " hi"}},
			wantCodes: []string{errEOFInComment},
		},
		{
			name:      "incorrectly opened comment",
			input:     "<!ELEMENT x>",
			want:      []Token{{Type: commentToken, Data: "ELEMENT x"}},
			wantCodes: []string{errIncorrectlyOpenedComment},
		},
		{
			name:      "nested comment open",
			input:     "<!-- a <!-- b --> c",
			want:      []Token{{Type: commentToken, Data: " a <!-- b "}, chars(" c")},
			wantCodes: []string{errNestedComment},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, codes := tokenize(t, tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantCodes, codes)
		})
	}
}

func TestTokenizerHandlerEscalation(t *testing.T) {
	t.Parallel()
	abort := assert.AnError
	z := newTokenizer(newCursor(`<a id="1" id="2">`), func(e *LexError) error {
		if e.Code == errDuplicateAttribute {
			return abort
		}
		return nil
	})
	_, err := z.next()
	require.Error(t, err)
	assert.Equal(t, abort, err)
}
