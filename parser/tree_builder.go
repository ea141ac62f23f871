package parser

import (
	"strings"

	"grove/parser/dom"
)

// insertionMode selects which handler interprets the next token during
// tree construction.
type insertionMode uint8

const (
	initialMode insertionMode = iota
	beforeHTMLMode
	beforeHeadMode
	inHeadMode
	afterHeadMode
	inBodyMode
	textMode
	afterBodyMode
	afterAfterBodyMode
)

func (m insertionMode) String() string {
	switch m {
	case initialMode:
		return "initial"
	case beforeHTMLMode:
		return "before-html"
	case beforeHeadMode:
		return "before-head"
	case inHeadMode:
		return "in-head"
	case afterHeadMode:
		return "after-head"
	case inBodyMode:
		return "in-body"
	case textMode:
		return "text"
	case afterBodyMode:
		return "after-body"
	case afterAfterBodyMode:
		return "after-after-body"
	default:
		return "invalid"
	}
}

// modeHandler consumes one token. The bool return asks the dispatcher
// to run the same token again under the returned mode.
type modeHandler func(t Token) (bool, insertionMode, error)

// treeBuilder turns the token stream into an arena-backed tree. The
// stack of open elements holds handles, innermost last. No html, head
// or body element is ever synthesized: the first start tag in the
// input becomes the document root, whatever its name.
type treeBuilder struct {
	z     *tokenizer
	arena *dom.Arena
	doc   dom.Handle
	root  dom.Handle

	open     []dom.Handle
	mode     insertionMode
	origMode insertionMode
	mappings map[insertionMode]modeHandler

	policy  RecoveryPolicy
	handler ErrorHandler

	// skipNewline drops the newline right after a pre, listing or
	// textarea start tag.
	skipNewline bool

	// formatting tracks the names of open formatting elements in the
	// order they opened.
	formatting []string
}

func newTreeBuilder(z *tokenizer, policy RecoveryPolicy, handler ErrorHandler) *treeBuilder {
	if policy == nil {
		policy = ErrorPolicy{}
	}
	if handler == nil {
		handler = DefaultErrorHandler
	}
	arena := dom.NewArena()
	tb := &treeBuilder{
		z:       z,
		arena:   arena,
		doc:     arena.CreateDocument(),
		root:    dom.NoHandle,
		mode:    initialMode,
		policy:  policy,
		handler: handler,
	}
	tb.mappings = tb.createMappings()
	return tb
}

func (tb *treeBuilder) createMappings() map[insertionMode]modeHandler {
	return map[insertionMode]modeHandler{
		initialMode:        tb.initialHandler,
		beforeHTMLMode:     tb.beforeHTMLHandler,
		beforeHeadMode:     tb.beforeHeadHandler,
		inHeadMode:         tb.inHeadHandler,
		afterHeadMode:      tb.afterHeadHandler,
		inBodyMode:         tb.inBodyHandler,
		textMode:           tb.textHandler,
		afterBodyMode:      tb.afterBodyHandler,
		afterAfterBodyMode: tb.afterAfterBodyHandler,
	}
}

// run drains the tokenizer through the mode handlers and returns the
// finished document.
func (tb *treeBuilder) run() (*dom.Document, error) {
	for {
		t, err := tb.z.next()
		if err != nil {
			return nil, err
		}
		if err := tb.process(t); err != nil {
			return nil, err
		}
		if t.Type == endOfFileToken {
			return tb.document()
		}
	}
}

func (tb *treeBuilder) process(t Token) error {
	if t.Type != characterToken {
		tb.skipNewline = false
	}
	for {
		reprocess, next, err := tb.mappings[tb.mode](t)
		if err != nil {
			return err
		}
		tb.mode = next
		if !reprocess {
			return nil
		}
	}
}

func (tb *treeBuilder) document() (*dom.Document, error) {
	if tb.root == dom.NoHandle {
		return nil, ErrNoRootElement
	}
	return dom.NewDocument(tb.arena, tb.doc, tb.root), nil
}

func (tb *treeBuilder) report(code string) error {
	return tb.handler(&LexError{Code: code, Offset: tb.z.cur.offset()})
}

func (tb *treeBuilder) currentNode() dom.Handle {
	if len(tb.open) == 0 {
		return tb.doc
	}
	return tb.open[len(tb.open)-1]
}

func (tb *treeBuilder) currentName() string {
	if len(tb.open) == 0 {
		return ""
	}
	return tb.arena.Get(tb.open[len(tb.open)-1]).Name
}

func (tb *treeBuilder) rootName() string {
	if tb.root == dom.NoHandle {
		return ""
	}
	return tb.arena.Get(tb.root).Name
}

func (tb *treeBuilder) push(h dom.Handle) {
	tb.open = append(tb.open, h)
}

func (tb *treeBuilder) pop() dom.Handle {
	h := tb.open[len(tb.open)-1]
	tb.open = tb.open[:len(tb.open)-1]
	return h
}

func attrMap(attrs []Attribute) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if _, ok := m[a.Name]; !ok {
			m[a.Name] = a.Value
		}
	}
	return m
}

// insertElement attaches a new element under the current node and
// pushes it. The first element attached directly under the document
// becomes the root.
func (tb *treeBuilder) insertElement(t Token) dom.Handle {
	h := tb.arena.CreateElement(t.TagName, attrMap(t.Attributes))
	parent := tb.currentNode()
	tb.arena.AppendChild(parent, h)
	if parent == tb.doc && tb.root == dom.NoHandle {
		tb.root = h
	}
	tb.push(h)
	return h
}

// insertVoidElement attaches without pushing, for void and
// self-closing tags.
func (tb *treeBuilder) insertVoidElement(t Token) {
	h := tb.arena.CreateElement(t.TagName, attrMap(t.Attributes))
	parent := tb.currentNode()
	tb.arena.AppendChild(parent, h)
	if parent == tb.doc && tb.root == dom.NoHandle {
		tb.root = h
	}
}

// insertCharacter appends text to the current node, extending a
// trailing text node so runs of characters collapse into one node.
func (tb *treeBuilder) insertCharacter(data string) {
	if tb.skipNewline {
		tb.skipNewline = false
		if strings.HasPrefix(data, "\n") {
			data = data[1:]
		}
		if data == "" {
			return
		}
	}
	parent := tb.currentNode()
	kids := tb.arena.Children(parent)
	if len(kids) > 0 {
		if last := tb.arena.Get(kids[len(kids)-1]); last.Type == dom.TextNode {
			last.Data += data
			return
		}
	}
	tb.arena.AppendChild(parent, tb.arena.CreateText(data))
}

func (tb *treeBuilder) insertComment(parent dom.Handle, data string) {
	tb.arena.AppendChild(parent, tb.arena.CreateComment(data))
}

func (tb *treeBuilder) mergeAttributes(h dom.Handle, attrs []Attribute) {
	n := tb.arena.Get(h)
	for _, a := range attrs {
		if _, ok := n.Attributes[a.Name]; !ok {
			n.Attributes[a.Name] = a.Value
		}
	}
}

// hasElementInScope scans the open elements innermost first, stopping
// at the first blocker.
func (tb *treeBuilder) hasElementInScope(name string, blockers map[string]bool) bool {
	for i := len(tb.open) - 1; i >= 0; i-- {
		n := tb.arena.Get(tb.open[i]).Name
		if n == name {
			return true
		}
		if blockers[n] {
			return false
		}
	}
	return false
}

// generateImpliedEndTags closes elements whose end tags are optional.
// The root is never closed implicitly.
func (tb *treeBuilder) generateImpliedEndTags(except string) {
	for len(tb.open) > 1 {
		name := tb.currentName()
		if !impliedEndTags[name] || name == except {
			return
		}
		tb.pop()
	}
}

// popUntil pops until the named element has been popped. The root stays.
func (tb *treeBuilder) popUntil(name string) {
	for len(tb.open) > 1 {
		h := tb.pop()
		if tb.arena.Get(h).Name == name {
			return
		}
	}
}

func (tb *treeBuilder) closePInButtonScope() error {
	if !tb.hasElementInScope("p", buttonScopeBlockers) {
		return nil
	}
	return tb.closePElement()
}

func (tb *treeBuilder) closePElement() error {
	tb.generateImpliedEndTags("p")
	if tb.currentName() != "p" {
		if err := tb.report(errUnexpectedEndTag); err != nil {
			return err
		}
	}
	tb.popUntil("p")
	return nil
}

// reconstructActiveFormattingElements would reopen formatting elements
// that block closes forced shut. The open list is maintained but no
// elements are cloned back yet.
// TODO: clone formatting elements back into the tree after block closes.
func (tb *treeBuilder) reconstructActiveFormattingElements() {}

func (tb *treeBuilder) removeFormatting(name string) {
	if !formattingElements[name] {
		return
	}
	for i := len(tb.formatting) - 1; i >= 0; i-- {
		if tb.formatting[i] == name {
			tb.formatting = append(tb.formatting[:i], tb.formatting[i+1:]...)
			return
		}
	}
}

// resolveMismatch asks the recovery policy about an end tag that does
// not name the innermost open element. The bool return means the close
// reached the root and construction moves past the body.
func (tb *treeBuilder) resolveMismatch(t Token) (bool, error) {
	if err := tb.report(errUnexpectedEndTag); err != nil {
		return false, err
	}
	open := tb.currentName()
	ancestors := make([]string, 0, len(tb.open))
	for i := len(tb.open) - 2; i >= 0; i-- {
		ancestors = append(ancestors, tb.arena.Get(tb.open[i]).Name)
	}
	switch tb.policy.Resolve(Mismatch{Open: open, Closing: t.TagName, Ancestors: ancestors}) {
	case ActionAbort:
		return false, &MismatchError{Expected: open, Actual: t.TagName}
	case ActionClose:
		for i := len(tb.open) - 1; i >= 0; i-- {
			if tb.arena.Get(tb.open[i]).Name != t.TagName {
				continue
			}
			if i == 0 {
				tb.open = tb.open[:1]
				return true, nil
			}
			tb.open = tb.open[:i]
			return false, nil
		}
		return false, nil
	default:
		return false, nil
	}
}

// stopParsing runs at end of input: any elements left open beyond the
// root are reported once and the stack drains. The root staying open
// at EOF is not an error.
func (tb *treeBuilder) stopParsing() error {
	if len(tb.open) > 1 {
		if err := tb.report(errEOFWithOpenElements); err != nil {
			return err
		}
	}
	tb.open = tb.open[:0]
	tb.formatting = nil
	return nil
}

func isWhitespaceText(s string) bool {
	for _, r := range s {
		if !isASCIIWhitespace(r) {
			return false
		}
	}
	return true
}

func (tb *treeBuilder) initialHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			return false, initialMode, nil
		}
		return true, beforeHTMLMode, nil
	case commentToken:
		tb.insertComment(tb.doc, t.Data)
		return false, initialMode, nil
	case doctypeToken:
		if t.TagName != "html" {
			if err := tb.report(errUnknownDoctypeName); err != nil {
				return false, initialMode, err
			}
		}
		return false, beforeHTMLMode, nil
	default:
		return true, beforeHTMLMode, nil
	}
}

func (tb *treeBuilder) beforeHTMLHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			return false, beforeHTMLMode, nil
		}
		return false, beforeHTMLMode, tb.report(errTextBeforeRoot)
	case commentToken:
		tb.insertComment(tb.doc, t.Data)
		return false, beforeHTMLMode, nil
	case doctypeToken:
		return false, beforeHTMLMode, tb.report(errUnexpectedDoctype)
	case startTagToken:
		if t.TagName == "html" {
			tb.insertElement(t)
			return false, beforeHeadMode, nil
		}
		return true, inBodyMode, nil
	case endTagToken:
		return false, beforeHTMLMode, ErrStrayEndTag
	default:
		return false, beforeHTMLMode, nil
	}
}

func (tb *treeBuilder) beforeHeadHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			return false, beforeHeadMode, nil
		}
		return true, inBodyMode, nil
	case commentToken:
		tb.insertComment(tb.currentNode(), t.Data)
		return false, beforeHeadMode, nil
	case doctypeToken:
		return false, beforeHeadMode, tb.report(errUnexpectedDoctype)
	case startTagToken:
		switch t.TagName {
		case "head":
			tb.insertElement(t)
			return false, inHeadMode, nil
		case "body":
			tb.insertElement(t)
			return false, inBodyMode, nil
		default:
			return true, inBodyMode, nil
		}
	case endTagToken:
		return true, inBodyMode, nil
	default:
		return false, beforeHeadMode, tb.stopParsing()
	}
}

func (tb *treeBuilder) inHeadHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			tb.insertCharacter(t.Data)
			return false, inHeadMode, nil
		}
		tb.popUntil("head")
		return true, afterHeadMode, nil
	case commentToken:
		tb.insertComment(tb.currentNode(), t.Data)
		return false, inHeadMode, nil
	case doctypeToken:
		return false, inHeadMode, tb.report(errUnexpectedDoctype)
	case startTagToken:
		switch {
		case t.TagName == "head":
			return false, inHeadMode, tb.report(errUnexpectedStartTag)
		case dom.IsVoid(t.TagName) || t.SelfClosing:
			tb.insertVoidElement(t)
			return false, inHeadMode, nil
		case t.TagName == "title":
			tb.insertElement(t)
			return false, tb.enterText(rcdataState, inHeadMode), nil
		case rawTextElements[t.TagName]:
			tb.insertElement(t)
			return false, tb.enterText(rawTextState, inHeadMode), nil
		case t.TagName == "script":
			tb.insertElement(t)
			return false, tb.enterText(scriptDataState, inHeadMode), nil
		default:
			tb.popUntil("head")
			return true, afterHeadMode, nil
		}
	case endTagToken:
		switch t.TagName {
		case "head":
			tb.popUntil("head")
			return false, afterHeadMode, nil
		case "body", "html", "br":
			tb.popUntil("head")
			return true, afterHeadMode, nil
		default:
			return false, inHeadMode, tb.report(errUnexpectedEndTag)
		}
	default:
		return false, inHeadMode, tb.stopParsing()
	}
}

func (tb *treeBuilder) afterHeadHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			tb.insertCharacter(t.Data)
			return false, afterHeadMode, nil
		}
		return true, inBodyMode, nil
	case commentToken:
		tb.insertComment(tb.currentNode(), t.Data)
		return false, afterHeadMode, nil
	case doctypeToken:
		return false, afterHeadMode, tb.report(errUnexpectedDoctype)
	case startTagToken:
		switch t.TagName {
		case "body":
			tb.insertElement(t)
			return false, inBodyMode, nil
		case "head":
			return false, afterHeadMode, tb.report(errUnexpectedStartTag)
		default:
			return true, inBodyMode, nil
		}
	case endTagToken:
		return true, inBodyMode, nil
	default:
		return false, afterHeadMode, tb.stopParsing()
	}
}

// enterText switches the tokenizer into a content-specific state and
// remembers where to come back to once the element closes.
func (tb *treeBuilder) enterText(s tokenizerState, back insertionMode) insertionMode {
	tb.z.setState(s)
	tb.origMode = back
	return textMode
}

func (tb *treeBuilder) inBodyHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		tb.insertCharacter(t.Data)
		return false, inBodyMode, nil
	case commentToken:
		tb.insertComment(tb.currentNode(), t.Data)
		return false, inBodyMode, nil
	case doctypeToken:
		return false, inBodyMode, tb.report(errUnexpectedDoctype)
	case startTagToken:
		return tb.inBodyStartTag(t)
	case endTagToken:
		return tb.inBodyEndTag(t)
	default:
		return false, inBodyMode, tb.stopParsing()
	}
}

func (tb *treeBuilder) inBodyStartTag(t Token) (bool, insertionMode, error) {
	name := t.TagName
	if name == "image" {
		if err := tb.report(errUnexpectedStartTag); err != nil {
			return false, inBodyMode, err
		}
		name = "img"
		t.TagName = "img"
	}
	switch {
	case name == "html":
		if len(tb.open) == 0 {
			tb.insertElement(t)
			return false, inBodyMode, nil
		}
		if err := tb.report(errUnexpectedStartTag); err != nil {
			return false, inBodyMode, err
		}
		tb.mergeAttributes(tb.open[0], t.Attributes)
		return false, inBodyMode, nil
	case name == "hr":
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertVoidElement(t)
		return false, inBodyMode, nil
	case dom.IsVoid(name) || t.SelfClosing:
		wasEmpty := len(tb.open) == 0
		tb.insertVoidElement(t)
		if wasEmpty {
			// a void root closes the document immediately
			return false, afterBodyMode, nil
		}
		return false, inBodyMode, nil
	case name == "pre" || name == "listing":
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertElement(t)
		tb.skipNewline = true
		return false, inBodyMode, nil
	case name == "textarea":
		tb.insertElement(t)
		tb.skipNewline = true
		return false, tb.enterText(rcdataState, inBodyMode), nil
	case rcdataElements[name]:
		tb.insertElement(t)
		return false, tb.enterText(rcdataState, inBodyMode), nil
	case rawTextElements[name]:
		tb.insertElement(t)
		return false, tb.enterText(rawTextState, inBodyMode), nil
	case name == "script":
		tb.insertElement(t)
		return false, tb.enterText(scriptDataState, inBodyMode), nil
	case name == "plaintext":
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertElement(t)
		tb.z.setState(plaintextState)
		return false, inBodyMode, nil
	case headingElements[name]:
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		if headingElements[tb.currentName()] && len(tb.open) > 1 {
			if err := tb.report(errUnexpectedStartTag); err != nil {
				return false, inBodyMode, err
			}
			tb.pop()
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case name == "li":
		if tb.hasElementInScope("li", listItemScopeBlockers) {
			tb.generateImpliedEndTags("li")
			tb.popUntil("li")
		}
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case name == "dd" || name == "dt":
		for _, sibling := range []string{"dd", "dt"} {
			if tb.hasElementInScope(sibling, defaultScopeBlockers) {
				tb.generateImpliedEndTags(sibling)
				tb.popUntil(sibling)
				break
			}
		}
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case name == "button":
		if tb.hasElementInScope("button", defaultScopeBlockers) {
			if err := tb.report(errUnexpectedStartTag); err != nil {
				return false, inBodyMode, err
			}
			tb.generateImpliedEndTags("")
			tb.popUntil("button")
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case formattingElements[name]:
		tb.reconstructActiveFormattingElements()
		tb.insertElement(t)
		tb.formatting = append(tb.formatting, name)
		return false, inBodyMode, nil
	case name == "table":
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case name == "td" || name == "th":
		for _, cell := range []string{"td", "th"} {
			if tb.hasElementInScope(cell, tableScopeBlockers) {
				tb.generateImpliedEndTags("")
				tb.popUntil(cell)
				break
			}
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case name == "tr":
		if tb.hasElementInScope("tr", tableScopeBlockers) {
			tb.generateImpliedEndTags("")
			tb.popUntil("tr")
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	case blockElements[name]:
		if err := tb.closePInButtonScope(); err != nil {
			return false, inBodyMode, err
		}
		tb.insertElement(t)
		return false, inBodyMode, nil
	default:
		tb.reconstructActiveFormattingElements()
		tb.insertElement(t)
		return false, inBodyMode, nil
	}
}

func (tb *treeBuilder) inBodyEndTag(t Token) (bool, insertionMode, error) {
	name := t.TagName
	switch {
	case name == "p":
		if !tb.hasElementInScope("p", buttonScopeBlockers) {
			return false, inBodyMode, tb.report(errUnexpectedEndTag)
		}
		return false, inBodyMode, tb.closePElement()
	case name == "li":
		if !tb.hasElementInScope("li", listItemScopeBlockers) {
			return false, inBodyMode, tb.report(errUnexpectedEndTag)
		}
		tb.generateImpliedEndTags("li")
		if tb.currentName() != "li" {
			if err := tb.report(errUnexpectedEndTag); err != nil {
				return false, inBodyMode, err
			}
		}
		tb.popUntil("li")
		return false, inBodyMode, nil
	case name == "dd" || name == "dt":
		if !tb.hasElementInScope(name, defaultScopeBlockers) {
			return false, inBodyMode, tb.report(errUnexpectedEndTag)
		}
		tb.generateImpliedEndTags(name)
		if tb.currentName() != name {
			if err := tb.report(errUnexpectedEndTag); err != nil {
				return false, inBodyMode, err
			}
		}
		tb.popUntil(name)
		return false, inBodyMode, nil
	case headingElements[name]:
		inScope := false
		for h := range headingElements {
			if tb.hasElementInScope(h, defaultScopeBlockers) {
				inScope = true
				break
			}
		}
		if !inScope {
			return false, inBodyMode, tb.report(errUnexpectedEndTag)
		}
		tb.generateImpliedEndTags("")
		if tb.currentName() != name {
			if err := tb.report(errUnexpectedEndTag); err != nil {
				return false, inBodyMode, err
			}
		}
		for len(tb.open) > 1 {
			if popped := tb.pop(); headingElements[tb.arena.Get(popped).Name] {
				break
			}
		}
		return false, inBodyMode, nil
	case name == "br":
		if err := tb.report(errUnexpectedEndTag); err != nil {
			return false, inBodyMode, err
		}
		tb.insertVoidElement(Token{Type: startTagToken, TagName: "br"})
		return false, inBodyMode, nil
	default:
		tb.generateImpliedEndTags(name)
		if tb.currentName() == name {
			if len(tb.open) == 1 {
				// the root's end tag never pops it
				return false, afterBodyMode, nil
			}
			tb.pop()
			tb.removeFormatting(name)
			return false, inBodyMode, nil
		}
		toAfterBody, err := tb.resolveMismatch(t)
		if err != nil {
			return false, inBodyMode, err
		}
		if toAfterBody {
			return false, afterBodyMode, nil
		}
		return false, inBodyMode, nil
	}
}

func (tb *treeBuilder) textHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		tb.insertCharacter(t.Data)
		return false, textMode, nil
	case endTagToken:
		if len(tb.open) == 1 {
			// the text element is the root
			return false, afterBodyMode, nil
		}
		tb.pop()
		return false, tb.origMode, nil
	case endOfFileToken:
		if err := tb.report(errEOFInTextContent); err != nil {
			return false, textMode, err
		}
		if len(tb.open) > 1 {
			tb.pop()
		}
		return true, tb.origMode, nil
	default:
		return false, textMode, nil
	}
}

func (tb *treeBuilder) afterBodyHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			return false, afterBodyMode, nil
		}
		if err := tb.report(errUnexpectedContentAfterRoot); err != nil {
			return false, afterBodyMode, err
		}
		return true, inBodyMode, nil
	case commentToken:
		tb.insertComment(tb.doc, t.Data)
		return false, afterBodyMode, nil
	case doctypeToken:
		return false, afterBodyMode, tb.report(errUnexpectedDoctype)
	case startTagToken:
		if err := tb.report(errUnexpectedContentAfterRoot); err != nil {
			return false, afterBodyMode, err
		}
		return true, inBodyMode, nil
	case endTagToken:
		if t.TagName == tb.rootName() {
			return false, afterAfterBodyMode, nil
		}
		return false, afterBodyMode, tb.report(errUnexpectedEndTag)
	default:
		return false, afterBodyMode, tb.stopParsing()
	}
}

func (tb *treeBuilder) afterAfterBodyHandler(t Token) (bool, insertionMode, error) {
	switch t.Type {
	case characterToken:
		if isWhitespaceText(t.Data) {
			return false, afterAfterBodyMode, nil
		}
		if err := tb.report(errUnexpectedContentAfterRoot); err != nil {
			return false, afterAfterBodyMode, err
		}
		return true, inBodyMode, nil
	case commentToken:
		tb.insertComment(tb.doc, t.Data)
		return false, afterAfterBodyMode, nil
	case doctypeToken:
		return false, afterAfterBodyMode, tb.report(errUnexpectedDoctype)
	case endOfFileToken:
		return false, afterAfterBodyMode, tb.stopParsing()
	default:
		if err := tb.report(errUnexpectedContentAfterRoot); err != nil {
			return false, afterAfterBodyMode, err
		}
		return true, inBodyMode, nil
	}
}
