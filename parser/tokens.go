package parser

import "strings"

type tokenType uint8

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	commentToken
	doctypeToken
	endOfFileToken
)

func (t tokenType) String() string {
	switch t {
	case characterToken:
		return "character"
	case startTagToken:
		return "start-tag"
	case endTagToken:
		return "end-tag"
	case commentToken:
		return "comment"
	case doctypeToken:
		return "doctype"
	case endOfFileToken:
		return "end-of-file"
	default:
		return "invalid"
	}
}

// Attribute is one name/value pair on a start tag. The list on a token
// preserves first-seen order; a duplicated name keeps its first value.
type Attribute struct {
	Name  string
	Value string
}

// Token is one lexical unit handed from the tokenizer to the tree
// builder. TagName is set for tag and doctype tokens, Data for
// character and comment tokens.
type Token struct {
	Type        tokenType
	TagName     string
	Attributes  []Attribute
	SelfClosing bool
	Data        string
}

type tagKind uint8

const (
	startTagKind tagKind = iota
	endTagKind
)

// tokenBuilder accumulates the tag, attribute, comment and doctype
// pieces of the token currently under construction, plus the temporary
// buffer and accumulator used by the character-reference sub-machine.
type tokenBuilder struct {
	name      strings.Builder
	data      strings.Builder
	attrName  strings.Builder
	attrValue strings.Builder
	temp      strings.Builder

	attrs       []Attribute
	seen        map[string]struct{}
	selfClosing bool
	kind        tagKind
	charRef     int
}

func newTokenBuilder() *tokenBuilder {
	return &tokenBuilder{seen: map[string]struct{}{}}
}

// reset clears everything except the temporary buffer, which belongs
// to the character-reference machine and is reset on entry there.
func (b *tokenBuilder) reset() {
	b.name.Reset()
	b.data.Reset()
	b.attrName.Reset()
	b.attrValue.Reset()
	b.attrs = nil
	b.seen = map[string]struct{}{}
	b.selfClosing = false
}

func (b *tokenBuilder) writeName(r rune)      { b.name.WriteRune(r) }
func (b *tokenBuilder) writeData(r rune)      { b.data.WriteRune(r) }
func (b *tokenBuilder) writeAttrName(r rune)  { b.attrName.WriteRune(r) }
func (b *tokenBuilder) writeAttrValue(r rune) { b.attrValue.WriteRune(r) }
func (b *tokenBuilder) writeTemp(r rune)      { b.temp.WriteRune(r) }

func (b *tokenBuilder) resetTemp()         { b.temp.Reset() }
func (b *tokenBuilder) tempString() string { return b.temp.String() }

// commitAttr finishes the attribute under construction. The first
// occurrence of a name wins; a repeated name is dropped and the false
// return tells the tokenizer to report it.
func (b *tokenBuilder) commitAttr() bool {
	name := b.attrName.String()
	value := b.attrValue.String()
	b.attrName.Reset()
	b.attrValue.Reset()
	if name == "" {
		return true
	}
	if _, dup := b.seen[name]; dup {
		return false
	}
	b.seen[name] = struct{}{}
	b.attrs = append(b.attrs, Attribute{Name: name, Value: value})
	return true
}

// addCharRefDigit accumulates one digit of a numeric character
// reference, saturating just past the Unicode range so overflow cannot
// wrap back into it.
func (b *tokenBuilder) addCharRefDigit(base, digit int) {
	if b.charRef > 0x10FFFF {
		return
	}
	b.charRef = b.charRef*base + digit
}

func (b *tokenBuilder) startTag() Token {
	return Token{
		Type:        startTagToken,
		TagName:     b.name.String(),
		Attributes:  b.attrs,
		SelfClosing: b.selfClosing,
	}
}

func (b *tokenBuilder) endTag() Token {
	return Token{
		Type:        endTagToken,
		TagName:     b.name.String(),
		Attributes:  b.attrs,
		SelfClosing: b.selfClosing,
	}
}

func (b *tokenBuilder) character(r rune) Token {
	return Token{Type: characterToken, Data: string(r)}
}

func (b *tokenBuilder) comment() Token {
	return Token{Type: commentToken, Data: b.data.String()}
}

func (b *tokenBuilder) doctype() Token {
	return Token{Type: doctypeToken, TagName: b.name.String()}
}

func (b *tokenBuilder) eof() Token {
	return Token{Type: endOfFileToken}
}
