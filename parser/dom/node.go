// Package dom holds the arena-backed node tree produced by the parser.
// All nodes of one document live in a single Arena and are addressed by
// small integer handles rather than pointers, so parent links can be
// plain values instead of back-references.
package dom

// Handle addresses a node inside the Arena that created it. A handle is
// only meaningful together with that arena; handles are never reused or
// invalidated while the arena is alive.
type Handle int32

// NoHandle marks an absent node, e.g. the parent of the document node.
const NoHandle Handle = -1

type NodeType uint8

const (
	DocumentNode NodeType = iota + 1
	ElementNode
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "DocumentNode"
	case ElementNode:
		return "ElementNode"
	case TextNode:
		return "TextNode"
	case CommentNode:
		return "CommentNode"
	default:
		return "InvalidNode"
	}
}

// Node is one entry in the arena. Name and Attributes are set for
// elements, Data for text and comment nodes. Parent and child links are
// managed by the arena and reachable through its accessors.
type Node struct {
	Type       NodeType
	Name       string
	Data       string
	Attributes map[string]string

	parent   Handle
	children []Handle
}

// voidElements never take children and are closed by their own start
// tag when serialized.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// IsVoid reports whether name belongs to the fixed set of void
// (unpaired) elements.
func IsVoid(name string) bool {
	return voidElements[name]
}
