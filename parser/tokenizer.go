package parser

import "strings"

// tokenizerState identifies one state of the lexical state machine.
// Each state is a method on tokenizer with the same shape: it receives
// the current rune (or the end-of-input marker), mutates the token
// under construction, and answers whether the rune should be consumed
// again and which state runs next.
type tokenizerState uint8

const (
	dataState tokenizerState = iota
	rcdataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcdataLessThanSignState
	rcdataEndTagOpenState
	rcdataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	bogusDoctypeState
	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState
)

type tokenizer struct {
	cur              *cursor
	b                *tokenBuilder
	state            tokenizerState
	returnState      tokenizerState
	pending          []Token
	lastStartTagName string
	handler          ErrorHandler
	fatal            error
}

func newTokenizer(cur *cursor, handler ErrorHandler) *tokenizer {
	if handler == nil {
		handler = DefaultErrorHandler
	}
	return &tokenizer{
		cur:     cur,
		b:       newTokenBuilder(),
		state:   dataState,
		handler: handler,
	}
}

// setState is used by the tree builder to put the tokenizer into a
// content-specific state after certain start tags.
func (z *tokenizer) setState(s tokenizerState) { z.state = s }

// report hands a recoverable error to the handler. If the handler
// escalates, the error is stashed and next returns it before producing
// any further tokens.
func (z *tokenizer) report(code string) {
	if err := z.handler(&LexError{Code: code, Offset: z.cur.offset()}); err != nil && z.fatal == nil {
		z.fatal = err
	}
}

func (z *tokenizer) emit(tokens ...Token) {
	z.pending = append(z.pending, tokens...)
}

// emitCurrentTag finishes the tag under construction. End tags shed
// attributes and the self-closing flag before they leave the tokenizer.
func (z *tokenizer) emitCurrentTag() {
	if z.b.kind == startTagKind {
		t := z.b.startTag()
		z.lastStartTagName = t.TagName
		z.emit(t)
		return
	}
	t := z.b.endTag()
	if len(t.Attributes) > 0 {
		z.report(errEndTagWithAttributes)
		t.Attributes = nil
	}
	if t.SelfClosing {
		z.report(errEndTagWithTrailingSolidus)
		t.SelfClosing = false
	}
	z.emit(t)
}

func (z *tokenizer) commitAttr() {
	if !z.b.commitAttr() {
		z.report(errDuplicateAttribute)
	}
}

func (z *tokenizer) take() Token {
	t := z.pending[0]
	z.pending = z.pending[1:]
	return t
}

// next runs the state machine until at least one token is ready and
// returns the oldest one. A true second return from a state method
// means reconsume: the same rune is redispatched under the new state.
func (z *tokenizer) next() (Token, error) {
	for {
		if z.fatal != nil {
			return Token{}, z.fatal
		}
		if len(z.pending) > 0 {
			return z.take(), nil
		}
		r, ok := z.cur.advance()
		reconsume, next := z.step(r, !ok)
		if reconsume && ok {
			z.cur.rewindOne()
		}
		z.state = next
	}
}

func (z *tokenizer) step(r rune, eof bool) (bool, tokenizerState) {
	switch z.state {
	case dataState:
		return z.data(r, eof)
	case rcdataState:
		return z.rcdata(r, eof)
	case rawTextState:
		return z.rawText(r, eof)
	case scriptDataState:
		return z.scriptData(r, eof)
	case plaintextState:
		return z.plaintext(r, eof)
	case tagOpenState:
		return z.tagOpen(r, eof)
	case endTagOpenState:
		return z.endTagOpen(r, eof)
	case tagNameState:
		return z.tagName(r, eof)
	case rcdataLessThanSignState:
		return z.textLessThanSign(r, eof, rcdataState, rcdataEndTagOpenState)
	case rcdataEndTagOpenState:
		return z.textEndTagOpen(r, eof, rcdataState, rcdataEndTagNameState)
	case rcdataEndTagNameState:
		return z.textEndTagName(r, eof, rcdataState, rcdataEndTagNameState)
	case rawTextLessThanSignState:
		return z.textLessThanSign(r, eof, rawTextState, rawTextEndTagOpenState)
	case rawTextEndTagOpenState:
		return z.textEndTagOpen(r, eof, rawTextState, rawTextEndTagNameState)
	case rawTextEndTagNameState:
		return z.textEndTagName(r, eof, rawTextState, rawTextEndTagNameState)
	case scriptDataLessThanSignState:
		return z.textLessThanSign(r, eof, scriptDataState, scriptDataEndTagOpenState)
	case scriptDataEndTagOpenState:
		return z.textEndTagOpen(r, eof, scriptDataState, scriptDataEndTagNameState)
	case scriptDataEndTagNameState:
		return z.textEndTagName(r, eof, scriptDataState, scriptDataEndTagNameState)
	case beforeAttributeNameState:
		return z.beforeAttributeName(r, eof)
	case attributeNameState:
		return z.attributeName(r, eof)
	case afterAttributeNameState:
		return z.afterAttributeName(r, eof)
	case beforeAttributeValueState:
		return z.beforeAttributeValue(r, eof)
	case attributeValueDoubleQuotedState:
		return z.attributeValueQuoted(r, eof, '"', attributeValueDoubleQuotedState)
	case attributeValueSingleQuotedState:
		return z.attributeValueQuoted(r, eof, '\'', attributeValueSingleQuotedState)
	case attributeValueUnquotedState:
		return z.attributeValueUnquoted(r, eof)
	case afterAttributeValueQuotedState:
		return z.afterAttributeValueQuoted(r, eof)
	case selfClosingStartTagState:
		return z.selfClosingStartTag(r, eof)
	case bogusCommentState:
		return z.bogusComment(r, eof)
	case markupDeclarationOpenState:
		return z.markupDeclarationOpen(r, eof)
	case commentStartState:
		return z.commentStart(r, eof)
	case commentStartDashState:
		return z.commentStartDash(r, eof)
	case commentState:
		return z.comment(r, eof)
	case commentLessThanSignState:
		return z.commentLessThanSign(r, eof)
	case commentLessThanSignBangState:
		return z.commentLessThanSignBang(r, eof)
	case commentLessThanSignBangDashState:
		return z.commentLessThanSignBangDash(r, eof)
	case commentLessThanSignBangDashDashState:
		return z.commentLessThanSignBangDashDash(r, eof)
	case commentEndDashState:
		return z.commentEndDash(r, eof)
	case commentEndState:
		return z.commentEnd(r, eof)
	case commentEndBangState:
		return z.commentEndBang(r, eof)
	case doctypeState:
		return z.doctype(r, eof)
	case beforeDoctypeNameState:
		return z.beforeDoctypeName(r, eof)
	case doctypeNameState:
		return z.doctypeName(r, eof)
	case afterDoctypeNameState:
		return z.afterDoctypeName(r, eof)
	case bogusDoctypeState:
		return z.bogusDoctype(r, eof)
	case characterReferenceState:
		return z.characterReference(r, eof)
	case namedCharacterReferenceState:
		return z.namedCharacterReference(r, eof)
	case ambiguousAmpersandState:
		return z.ambiguousAmpersand(r, eof)
	case numericCharacterReferenceState:
		return z.numericCharacterReference(r, eof)
	case hexCharacterReferenceStartState:
		return z.hexCharacterReferenceStart(r, eof)
	case decimalCharacterReferenceStartState:
		return z.decimalCharacterReferenceStart(r, eof)
	case hexCharacterReferenceState:
		return z.hexCharacterReference(r, eof)
	case decimalCharacterReferenceState:
		return z.decimalCharacterReference(r, eof)
	case numericCharacterReferenceEndState:
		return z.numericCharacterReferenceEnd(r, eof)
	default:
		return z.data(r, eof)
	}
}

func (z *tokenizer) data(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.eof())
		return false, dataState
	}
	switch r {
	case '&':
		z.returnState = dataState
		return false, characterReferenceState
	case '<':
		return false, tagOpenState
	case 0:
		z.report(errUnexpectedNull)
		z.emit(z.b.character(r))
		return false, dataState
	default:
		z.emit(z.b.character(r))
		return false, dataState
	}
}

func (z *tokenizer) rcdata(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.eof())
		return false, rcdataState
	}
	switch r {
	case '&':
		z.returnState = rcdataState
		return false, characterReferenceState
	case '<':
		return false, rcdataLessThanSignState
	case 0:
		z.report(errUnexpectedNull)
		z.emit(z.b.character('�'))
		return false, rcdataState
	default:
		z.emit(z.b.character(r))
		return false, rcdataState
	}
}

func (z *tokenizer) rawText(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.eof())
		return false, rawTextState
	}
	switch r {
	case '<':
		return false, rawTextLessThanSignState
	case 0:
		z.report(errUnexpectedNull)
		z.emit(z.b.character('�'))
		return false, rawTextState
	default:
		z.emit(z.b.character(r))
		return false, rawTextState
	}
}

func (z *tokenizer) scriptData(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.eof())
		return false, scriptDataState
	}
	switch r {
	case '<':
		return false, scriptDataLessThanSignState
	case 0:
		z.report(errUnexpectedNull)
		z.emit(z.b.character('�'))
		return false, scriptDataState
	default:
		z.emit(z.b.character(r))
		return false, scriptDataState
	}
}

func (z *tokenizer) plaintext(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.eof())
		return false, plaintextState
	}
	if r == 0 {
		z.report(errUnexpectedNull)
		z.emit(z.b.character('�'))
		return false, plaintextState
	}
	z.emit(z.b.character(r))
	return false, plaintextState
}

func (z *tokenizer) tagOpen(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFBeforeTagName)
		z.emit(z.b.character('<'), z.b.eof())
		return false, dataState
	}
	switch {
	case r == '!':
		return false, markupDeclarationOpenState
	case r == '/':
		return false, endTagOpenState
	case isASCIIAlpha(r):
		z.b.reset()
		z.b.kind = startTagKind
		return true, tagNameState
	case r == '?':
		z.report(errUnexpectedQuestionMark)
		z.b.reset()
		return true, bogusCommentState
	default:
		z.report(errInvalidFirstCharacterOfTagName)
		z.emit(z.b.character('<'))
		return true, dataState
	}
}

func (z *tokenizer) endTagOpen(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFBeforeTagName)
		z.emit(z.b.character('<'), z.b.character('/'), z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIAlpha(r):
		z.b.reset()
		z.b.kind = endTagKind
		return true, tagNameState
	case r == '>':
		z.report(errMissingEndTagName)
		return false, dataState
	default:
		z.report(errInvalidFirstCharacterOfTagName)
		z.b.reset()
		return true, bogusCommentState
	}
}

func (z *tokenizer) tagName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInTag)
		z.emit(z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '>':
		z.emitCurrentTag()
		return false, dataState
	case isASCIIUpper(r):
		z.b.writeName(r + 0x20)
		return false, tagNameState
	case r == 0:
		z.report(errUnexpectedNull)
		z.b.writeName('�')
		return false, tagNameState
	default:
		z.b.writeName(r)
		return false, tagNameState
	}
}

// textLessThanSign, textEndTagOpen and textEndTagName are shared by the
// rcdata, rawtext and script-data content families, which only differ
// in which state they fall back to.

func (z *tokenizer) textLessThanSign(r rune, eof bool, text, open tokenizerState) (bool, tokenizerState) {
	if !eof && r == '/' {
		z.b.resetTemp()
		return false, open
	}
	z.emit(z.b.character('<'))
	return true, text
}

func (z *tokenizer) textEndTagOpen(r rune, eof bool, text, name tokenizerState) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(r) {
		z.b.reset()
		z.b.kind = endTagKind
		return true, name
	}
	z.emit(z.b.character('<'), z.b.character('/'))
	return true, text
}

func (z *tokenizer) textEndTagName(r rune, eof bool, text, self tokenizerState) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIWhitespace(r):
			if z.isAppropriateEndTag() {
				return false, beforeAttributeNameState
			}
		case r == '/':
			if z.isAppropriateEndTag() {
				return false, selfClosingStartTagState
			}
		case r == '>':
			if z.isAppropriateEndTag() {
				z.emitCurrentTag()
				return false, dataState
			}
		case isASCIIUpper(r):
			z.b.writeName(r + 0x20)
			z.b.writeTemp(r)
			return false, self
		case isASCIIAlpha(r):
			z.b.writeName(r)
			z.b.writeTemp(r)
			return false, self
		}
	}
	z.emit(z.b.character('<'), z.b.character('/'))
	z.flushTempAsCharacters()
	return true, text
}

// isAppropriateEndTag is the check that lets </title>, </style> and
// friends close their element: the end tag under construction must name
// the most recent start tag.
func (z *tokenizer) isAppropriateEndTag() bool {
	return z.lastStartTagName != "" && z.b.name.String() == z.lastStartTagName
}

func (z *tokenizer) beforeAttributeName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, afterAttributeNameState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/' || r == '>':
		return true, afterAttributeNameState
	case r == '=':
		z.report(errUnexpectedEqualsSign)
		z.b.writeAttrName(r)
		return false, attributeNameState
	default:
		return true, attributeNameState
	}
}

func (z *tokenizer) attributeName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, afterAttributeNameState
	}
	switch {
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		return true, afterAttributeNameState
	case r == '=':
		return false, beforeAttributeValueState
	case isASCIIUpper(r):
		z.b.writeAttrName(r + 0x20)
		return false, attributeNameState
	case r == 0:
		z.report(errUnexpectedNull)
		z.b.writeAttrName('�')
		return false, attributeNameState
	case r == '"' || r == '\'' || r == '<':
		z.report(errUnexpectedCharInAttributeName)
		z.b.writeAttrName(r)
		return false, attributeNameState
	default:
		z.b.writeAttrName(r)
		return false, attributeNameState
	}
}

func (z *tokenizer) afterAttributeName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInTag)
		z.emit(z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterAttributeNameState
	case r == '/':
		z.commitAttr()
		return false, selfClosingStartTagState
	case r == '=':
		return false, beforeAttributeValueState
	case r == '>':
		z.commitAttr()
		z.emitCurrentTag()
		return false, dataState
	default:
		z.commitAttr()
		return true, attributeNameState
	}
}

func (z *tokenizer) beforeAttributeValue(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, attributeValueUnquotedState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeValueState
	case r == '"':
		return false, attributeValueDoubleQuotedState
	case r == '\'':
		return false, attributeValueSingleQuotedState
	case r == '>':
		z.report(errMissingAttributeValue)
		z.commitAttr()
		z.emitCurrentTag()
		return false, dataState
	default:
		return true, attributeValueUnquotedState
	}
}

func (z *tokenizer) attributeValueQuoted(r rune, eof bool, quote rune, self tokenizerState) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInTag)
		z.emit(z.b.eof())
		return false, dataState
	}
	switch r {
	case quote:
		z.commitAttr()
		return false, afterAttributeValueQuotedState
	case '&':
		z.returnState = self
		return false, characterReferenceState
	case 0:
		z.report(errUnexpectedNull)
		z.b.writeAttrValue('�')
		return false, self
	default:
		z.b.writeAttrValue(r)
		return false, self
	}
}

func (z *tokenizer) attributeValueUnquoted(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInTag)
		z.emit(z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		z.commitAttr()
		return false, beforeAttributeNameState
	case r == '&':
		z.returnState = attributeValueUnquotedState
		return false, characterReferenceState
	case r == '>':
		z.commitAttr()
		z.emitCurrentTag()
		return false, dataState
	case r == 0:
		z.report(errUnexpectedNull)
		z.b.writeAttrValue('�')
		return false, attributeValueUnquotedState
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		z.report(errUnexpectedCharInUnquotedValue)
		z.b.writeAttrValue(r)
		return false, attributeValueUnquotedState
	default:
		z.b.writeAttrValue(r)
		return false, attributeValueUnquotedState
	}
}

func (z *tokenizer) afterAttributeValueQuoted(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInTag)
		z.emit(z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeAttributeNameState
	case r == '/':
		return false, selfClosingStartTagState
	case r == '>':
		z.emitCurrentTag()
		return false, dataState
	default:
		z.report(errMissingWhitespaceBetweenAttrs)
		return true, beforeAttributeNameState
	}
}

func (z *tokenizer) selfClosingStartTag(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInTag)
		z.emit(z.b.eof())
		return false, dataState
	}
	if r == '>' {
		z.b.selfClosing = true
		z.emitCurrentTag()
		return false, dataState
	}
	z.report(errUnexpectedSolidusInTag)
	return true, beforeAttributeNameState
}

func (z *tokenizer) bogusComment(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.comment(), z.b.eof())
		return false, dataState
	}
	switch r {
	case '>':
		z.emit(z.b.comment())
		return false, dataState
	case 0:
		z.report(errUnexpectedNull)
		z.b.writeData('�')
		return false, bogusCommentState
	default:
		z.b.writeData(r)
		return false, bogusCommentState
	}
}

func (z *tokenizer) markupDeclarationOpen(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		if next, ok := z.cur.peek(1); r == '-' && ok && next == '-' {
			z.cur.advance()
			z.b.reset()
			return false, commentStartState
		}
		if (r == 'd' || r == 'D') && z.peekMatchFold("octype") {
			z.advanceN(len("octype"))
			z.b.reset()
			return false, doctypeState
		}
	}
	z.report(errIncorrectlyOpenedComment)
	z.b.reset()
	return true, bogusCommentState
}

// peekMatchFold reports whether the runes after the current one spell
// rest, ASCII case-insensitively. rest must be lowercase.
func (z *tokenizer) peekMatchFold(rest string) bool {
	for i, want := range rest {
		r, ok := z.cur.peek(i + 1)
		if !ok {
			return false
		}
		if isASCIIUpper(r) {
			r += 0x20
		}
		if r != want {
			return false
		}
	}
	return true
}

func (z *tokenizer) advanceN(n int) {
	for i := 0; i < n; i++ {
		z.cur.advance()
	}
}

func (z *tokenizer) commentStart(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '-':
			return false, commentStartDashState
		case '>':
			z.report(errAbruptClosingOfEmptyComment)
			z.emit(z.b.comment())
			return false, dataState
		}
	}
	return true, commentState
}

func (z *tokenizer) commentStartDash(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInComment)
		z.emit(z.b.comment(), z.b.eof())
		return false, dataState
	}
	switch r {
	case '-':
		return false, commentEndState
	case '>':
		z.report(errAbruptClosingOfEmptyComment)
		z.emit(z.b.comment())
		return false, dataState
	default:
		z.b.writeData('-')
		return true, commentState
	}
}

func (z *tokenizer) comment(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInComment)
		z.emit(z.b.comment(), z.b.eof())
		return false, dataState
	}
	switch r {
	case '<':
		z.b.writeData(r)
		return false, commentLessThanSignState
	case '-':
		return false, commentEndDashState
	case 0:
		z.report(errUnexpectedNull)
		z.b.writeData('�')
		return false, commentState
	default:
		z.b.writeData(r)
		return false, commentState
	}
}

func (z *tokenizer) commentLessThanSign(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '!':
			z.b.writeData(r)
			return false, commentLessThanSignBangState
		case '<':
			z.b.writeData(r)
			return false, commentLessThanSignState
		}
	}
	return true, commentState
}

func (z *tokenizer) commentLessThanSignBang(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashState
	}
	return true, commentState
}

func (z *tokenizer) commentLessThanSignBangDash(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		return false, commentLessThanSignBangDashDashState
	}
	return true, commentEndDashState
}

func (z *tokenizer) commentLessThanSignBangDashDash(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r != '>' {
		z.report(errNestedComment)
	}
	return true, commentEndState
}

func (z *tokenizer) commentEndDash(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInComment)
		z.emit(z.b.comment(), z.b.eof())
		return false, dataState
	}
	if r == '-' {
		return false, commentEndState
	}
	z.b.writeData('-')
	return true, commentState
}

func (z *tokenizer) commentEnd(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInComment)
		z.emit(z.b.comment(), z.b.eof())
		return false, dataState
	}
	switch r {
	case '>':
		z.emit(z.b.comment())
		return false, dataState
	case '!':
		return false, commentEndBangState
	case '-':
		z.b.writeData('-')
		return false, commentEndState
	default:
		z.b.writeData('-')
		z.b.writeData('-')
		return true, commentState
	}
}

func (z *tokenizer) commentEndBang(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInComment)
		z.emit(z.b.comment(), z.b.eof())
		return false, dataState
	}
	switch r {
	case '-':
		z.b.writeData('-')
		z.b.writeData('-')
		z.b.writeData('!')
		return false, commentEndDashState
	case '>':
		z.report(errIncorrectlyClosedComment)
		z.emit(z.b.comment())
		return false, dataState
	default:
		z.b.writeData('-')
		z.b.writeData('-')
		z.b.writeData('!')
		return true, commentState
	}
}

func (z *tokenizer) doctype(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInDoctype)
		z.emit(z.b.doctype(), z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypeNameState
	case r == '>':
		return true, beforeDoctypeNameState
	default:
		z.report(errMissingWhitespaceBeforeDoctype)
		return true, beforeDoctypeNameState
	}
}

func (z *tokenizer) beforeDoctypeName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInDoctype)
		z.emit(z.b.doctype(), z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, beforeDoctypeNameState
	case r == '>':
		z.report(errMissingDoctypeName)
		z.emit(z.b.doctype())
		return false, dataState
	case isASCIIUpper(r):
		z.b.writeName(r + 0x20)
		return false, doctypeNameState
	case r == 0:
		z.report(errUnexpectedNull)
		z.b.writeName('�')
		return false, doctypeNameState
	default:
		z.b.writeName(r)
		return false, doctypeNameState
	}
}

func (z *tokenizer) doctypeName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInDoctype)
		z.emit(z.b.doctype(), z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterDoctypeNameState
	case r == '>':
		z.emit(z.b.doctype())
		return false, dataState
	case isASCIIUpper(r):
		z.b.writeName(r + 0x20)
		return false, doctypeNameState
	case r == 0:
		z.report(errUnexpectedNull)
		z.b.writeName('�')
		return false, doctypeNameState
	default:
		z.b.writeName(r)
		return false, doctypeNameState
	}
}

func (z *tokenizer) afterDoctypeName(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.report(errEOFInDoctype)
		z.emit(z.b.doctype(), z.b.eof())
		return false, dataState
	}
	switch {
	case isASCIIWhitespace(r):
		return false, afterDoctypeNameState
	case r == '>':
		z.emit(z.b.doctype())
		return false, dataState
	default:
		z.report(errInvalidCharacterAfterDoctype)
		return true, bogusDoctypeState
	}
}

func (z *tokenizer) bogusDoctype(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.emit(z.b.doctype(), z.b.eof())
		return false, dataState
	}
	switch r {
	case '>':
		z.emit(z.b.doctype())
		return false, dataState
	case 0:
		z.report(errUnexpectedNull)
		return false, bogusDoctypeState
	default:
		return false, bogusDoctypeState
	}
}

// inAttribute reports whether the character-reference machine was
// entered from inside an attribute value, which routes its output to
// the value buffer instead of the character stream.
func (z *tokenizer) inAttribute() bool {
	switch z.returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// flushTemp drains the temporary buffer to wherever the return state
// directs: the attribute value under construction, or the character
// stream.
func (z *tokenizer) flushTemp() {
	s := z.b.tempString()
	if z.inAttribute() {
		for _, r := range s {
			z.b.writeAttrValue(r)
		}
		return
	}
	for _, r := range s {
		z.emit(z.b.character(r))
	}
}

// flushTempAsCharacters is the end-tag-name variant: the buffer always
// goes to the character stream regardless of any stale return state.
func (z *tokenizer) flushTempAsCharacters() {
	for _, r := range z.b.tempString() {
		z.emit(z.b.character(r))
	}
}

func (z *tokenizer) characterReference(r rune, eof bool) (bool, tokenizerState) {
	z.b.resetTemp()
	z.b.writeTemp('&')
	if eof {
		z.flushTemp()
		return true, z.returnState
	}
	switch {
	case isASCIIAlphanumeric(r):
		return true, namedCharacterReferenceState
	case r == '#':
		z.b.writeTemp(r)
		return false, numericCharacterReferenceState
	default:
		z.flushTemp()
		return true, z.returnState
	}
}

// namedCharacterReference resolves the whole reference in one shot: it
// scans forward for the longest table entry, then either substitutes
// the replacement or, when nothing matches, defers to the ambiguous
// ampersand state. Reference names are ASCII so byte and rune lengths
// agree.
func (z *tokenizer) namedCharacterReference(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		z.flushTemp()
		return true, z.returnState
	}
	candidate := string(r)
	var matched, replacement string
	if repl, ok := namedReferences[candidate]; ok {
		matched, replacement = candidate, repl
	}
	for i := 1; len(candidate) < maxNamedReferenceLength; i++ {
		c, ok := z.cur.peek(i)
		if !ok {
			break
		}
		candidate += string(c)
		if repl, ok := namedReferences[candidate]; ok {
			matched, replacement = candidate, repl
		}
	}
	if matched == "" {
		z.flushTemp()
		return true, ambiguousAmpersandState
	}
	terminated := strings.HasSuffix(matched, ";")
	if z.inAttribute() && !terminated {
		// Legacy carve-out: inside an attribute an unterminated
		// reference followed by an alphanumeric or equals sign stays
		// literal, so URLs like ?a=b&copy=c survive.
		if next, ok := z.cur.peek(len(matched)); ok && (next == '=' || isASCIIAlphanumeric(next)) {
			for _, c := range matched {
				z.b.writeTemp(c)
			}
			z.advanceN(len(matched) - 1)
			z.flushTemp()
			return false, z.returnState
		}
	}
	z.advanceN(len(matched) - 1)
	if !terminated {
		z.report(errMissingSemicolonAfterCharRef)
	}
	z.b.resetTemp()
	for _, c := range replacement {
		z.b.writeTemp(c)
	}
	z.flushTemp()
	return false, z.returnState
}

func (z *tokenizer) ambiguousAmpersand(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		return true, z.returnState
	}
	switch {
	case isASCIIAlphanumeric(r):
		if z.inAttribute() {
			z.b.writeAttrValue(r)
		} else {
			z.emit(z.b.character(r))
		}
		return false, ambiguousAmpersandState
	case r == ';':
		z.report(errUnknownNamedCharRef)
		return true, z.returnState
	default:
		return true, z.returnState
	}
}

func (z *tokenizer) numericCharacterReference(r rune, eof bool) (bool, tokenizerState) {
	z.b.charRef = 0
	if !eof && (r == 'x' || r == 'X') {
		z.b.writeTemp(r)
		return false, hexCharacterReferenceStartState
	}
	return true, decimalCharacterReferenceStartState
}

func (z *tokenizer) hexCharacterReferenceStart(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIHexDigit(r) {
		return true, hexCharacterReferenceState
	}
	z.report(errAbsenceOfDigits)
	z.flushTemp()
	return true, z.returnState
}

func (z *tokenizer) decimalCharacterReferenceStart(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIDigit(r) {
		return true, decimalCharacterReferenceState
	}
	z.report(errAbsenceOfDigits)
	z.flushTemp()
	return true, z.returnState
}

func (z *tokenizer) hexCharacterReference(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIDigit(r):
			z.b.addCharRefDigit(16, int(r-'0'))
			return false, hexCharacterReferenceState
		case r >= 'A' && r <= 'F':
			z.b.addCharRefDigit(16, int(r-'A')+10)
			return false, hexCharacterReferenceState
		case r >= 'a' && r <= 'f':
			z.b.addCharRefDigit(16, int(r-'a')+10)
			return false, hexCharacterReferenceState
		case r == ';':
			return false, numericCharacterReferenceEndState
		}
	}
	z.report(errMissingSemicolonAfterCharRef)
	return true, numericCharacterReferenceEndState
}

func (z *tokenizer) decimalCharacterReference(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIDigit(r):
			z.b.addCharRefDigit(10, int(r-'0'))
			return false, decimalCharacterReferenceState
		case r == ';':
			return false, numericCharacterReferenceEndState
		}
	}
	z.report(errMissingSemicolonAfterCharRef)
	return true, numericCharacterReferenceEndState
}

// numericCharacterReferenceEnd never consumes its input: it fixes up
// the accumulated code point and hands the rune back to the return
// state.
func (z *tokenizer) numericCharacterReferenceEnd(r rune, eof bool) (bool, tokenizerState) {
	c := z.b.charRef
	switch {
	case c == 0:
		z.report(errNullCharRef)
		c = 0xFFFD
	case c > 0x10FFFF:
		z.report(errCharRefOutsideUnicodeRange)
		c = 0xFFFD
	case isSurrogate(rune(c)):
		z.report(errSurrogateCharRef)
		c = 0xFFFD
	case isNoncharacter(rune(c)):
		z.report(errNoncharacterCharRef)
	case c == 0x0D || (isControl(rune(c)) && !isASCIIWhitespace(rune(c))):
		z.report(errControlCharRef)
		if repl, ok := windows1252Remap[c]; ok {
			c = int(repl)
		}
	}
	z.b.resetTemp()
	z.b.writeTemp(rune(c))
	z.flushTemp()
	return true, z.returnState
}

func isASCIIWhitespace(r rune) bool {
	return r == '\t' || r == '\n' || r == '\f' || r == ' '
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIIAlphanumeric(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) }

func isSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDFFF }

func isNoncharacter(r rune) bool {
	return (r >= 0xFDD0 && r <= 0xFDEF) || (r&0xFFFE) == 0xFFFE
}

func isControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}
