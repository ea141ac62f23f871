package dom

// Attr is one attribute pair for Builder.Element and Builder.Void.
type Attr struct {
	Name  string
	Value string
}

// Builder assembles a Document by hand. It exists so tests can state an
// expected tree as a literal nested shape; the parser never goes
// through it.
//
//	doc := dom.NewBuilder().
//		Element("html").
//		Void("br").
//		Element("b").Text("yo").Close().
//		Document()
type Builder struct {
	arena *Arena
	doc   Handle
	root  Handle
	open  []Handle
}

func NewBuilder() *Builder {
	a := NewArena()
	return &Builder{arena: a, doc: a.CreateDocument(), root: NoHandle}
}

func (b *Builder) target() Handle {
	if len(b.open) == 0 {
		return b.doc
	}
	return b.open[len(b.open)-1]
}

func (b *Builder) insert(h Handle) {
	b.arena.AppendChild(b.target(), h)
	if b.root == NoHandle && b.arena.Get(h).Type == ElementNode {
		b.root = h
	}
}

// Element opens an element under the current insertion point and makes
// it the new insertion point until Close.
func (b *Builder) Element(name string, attrs ...Attr) *Builder {
	h := b.arena.CreateElement(name, attrMap(attrs))
	b.insert(h)
	b.open = append(b.open, h)
	return b
}

// Void inserts an element that takes no children and stays closed.
func (b *Builder) Void(name string, attrs ...Attr) *Builder {
	b.insert(b.arena.CreateElement(name, attrMap(attrs)))
	return b
}

// Text inserts a text node under the current insertion point.
func (b *Builder) Text(content string) *Builder {
	b.insert(b.arena.CreateText(content))
	return b
}

// Comment inserts a comment node under the current insertion point.
func (b *Builder) Comment(content string) *Builder {
	b.insert(b.arena.CreateComment(content))
	return b
}

// Close ends the most recently opened element.
func (b *Builder) Close() *Builder {
	if len(b.open) > 0 {
		b.open = b.open[:len(b.open)-1]
	}
	return b
}

// Document closes everything still open and returns the finished tree.
func (b *Builder) Document() *Document {
	b.open = b.open[:0]
	return NewDocument(b.arena, b.doc, b.root)
}

func attrMap(attrs []Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if _, ok := m[a.Name]; !ok {
			m[a.Name] = a.Value
		}
	}
	return m
}
