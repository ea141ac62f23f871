package dom

// Document is a finished tree: the arena holding every node plus the
// handle of the top-level root element. Once returned by the parser it
// is treated as immutable, so it may be shared across goroutines for
// concurrent read-only querying.
type Document struct {
	arena *Arena
	doc   Handle
	root  Handle
}

// NewDocument wraps an arena and its root element. The doc handle is
// the synthetic super-root that carries document-level comments.
func NewDocument(arena *Arena, doc, root Handle) *Document {
	return &Document{arena: arena, doc: doc, root: root}
}

// Root returns the handle of the top-level root element.
func (d *Document) Root() Handle {
	return d.root
}

// Kind returns the node type behind h, or zero for an unknown handle.
func (d *Document) Kind(h Handle) NodeType {
	if n := d.arena.Get(h); n != nil {
		return n.Type
	}
	return 0
}

// Name returns the tag name of an element node, "" otherwise.
func (d *Document) Name(h Handle) string {
	if n := d.arena.Get(h); n != nil && n.Type == ElementNode {
		return n.Name
	}
	return ""
}

// Attributes returns a copy of an element's attributes. The copy keeps
// the document immutable under concurrent readers.
func (d *Document) Attributes(h Handle) map[string]string {
	n := d.arena.Get(h)
	if n == nil || n.Type != ElementNode {
		return nil
	}
	attrs := make(map[string]string, len(n.Attributes))
	for k, v := range n.Attributes {
		attrs[k] = v
	}
	return attrs
}

// Text returns the content of a text node, "" for any other kind.
func (d *Document) Text(h Handle) string {
	if n := d.arena.Get(h); n != nil && n.Type == TextNode {
		return n.Data
	}
	return ""
}

// Children returns a copy of the ordered child handles of h.
func (d *Document) Children(h Handle) []Handle {
	kids := d.arena.Children(h)
	if len(kids) == 0 {
		return nil
	}
	out := make([]Handle, len(kids))
	copy(out, kids)
	return out
}

// Parent returns the parent of h, NoHandle at the document node.
func (d *Document) Parent(h Handle) Handle {
	return d.arena.Parent(h)
}
