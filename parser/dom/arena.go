package dom

// Arena is an append-only store of nodes for one document. It assigns
// handles in creation order and records the parent/child links next to
// each node. The arena never shrinks or compacts during a parse, so a
// handle handed out once stays valid for the arena's whole lifetime.
type Arena struct {
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 0, 16)}
}

func (a *Arena) alloc(n Node) Handle {
	n.parent = NoHandle
	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1)
}

// CreateDocument allocates the synthetic super-root node.
func (a *Arena) CreateDocument() Handle {
	return a.alloc(Node{Type: DocumentNode})
}

// CreateElement allocates an element node. The attribute map is owned
// by the node afterwards.
func (a *Arena) CreateElement(name string, attrs map[string]string) Handle {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return a.alloc(Node{Type: ElementNode, Name: name, Attributes: attrs})
}

// CreateText allocates a text node.
func (a *Arena) CreateText(content string) Handle {
	return a.alloc(Node{Type: TextNode, Data: content})
}

// CreateComment allocates a comment node.
func (a *Arena) CreateComment(content string) Handle {
	return a.alloc(Node{Type: CommentNode, Data: content})
}

// Get returns the node behind h for inspection or in-place mutation
// during construction. Returns nil for a handle the arena never issued.
func (a *Arena) Get(h Handle) *Node {
	if h < 0 || int(h) >= len(a.nodes) {
		return nil
	}
	return &a.nodes[h]
}

// AppendChild links child as the last child of parent. A child that
// already has a parent is detached from it first; the node itself is
// never deleted, only re-parented.
func (a *Arena) AppendChild(parent, child Handle) {
	c := a.Get(child)
	if c == nil || a.Get(parent) == nil {
		return
	}
	if c.parent != NoHandle {
		a.detach(child)
	}
	c.parent = parent
	p := a.Get(parent)
	p.children = append(p.children, child)
}

func (a *Arena) detach(child Handle) {
	p := a.Get(a.nodes[child].parent)
	for i, h := range p.children {
		if h == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	a.nodes[child].parent = NoHandle
}

// Parent returns the parent of h, or NoHandle at the document node.
func (a *Arena) Parent(h Handle) Handle {
	if n := a.Get(h); n != nil {
		return n.parent
	}
	return NoHandle
}

// Children returns the ordered child handles of h. The slice is the
// arena's own; callers that hold on to it must copy it.
func (a *Arena) Children(h Handle) []Handle {
	if n := a.Get(h); n != nil {
		return n.children
	}
	return nil
}

// Len reports how many nodes the arena holds.
func (a *Arena) Len() int {
	return len(a.nodes)
}
