package dom

import (
	"sort"
	"strings"
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
var attrEscaper = strings.NewReplacer("&", "&amp;", "\"", "&quot;")

// rawTextContent elements carry their text back out unescaped: the
// parser reads their bodies in raw-text states where character
// references never applied, so escaping would not survive a re-parse.
var rawTextContent = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "script": true,
	"style": true, "xmp": true,
}

// Serialize renders the root element and its subtree back to HTML text.
// Attributes are written in sorted order so output is deterministic;
// void elements are written without an end tag. The result reproduces
// the document's structure, not the original byte layout.
func (d *Document) Serialize() string {
	var sb strings.Builder
	d.serializeNode(&sb, d.root)
	return sb.String()
}

func (d *Document) serializeNode(sb *strings.Builder, h Handle) {
	n := d.arena.Get(h)
	if n == nil {
		return
	}
	switch n.Type {
	case DocumentNode:
		for _, c := range d.arena.Children(h) {
			d.serializeNode(sb, c)
		}
	case ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.Name)
		for _, k := range sortedAttrNames(n.Attributes) {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(attrEscaper.Replace(n.Attributes[k]))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		if IsVoid(n.Name) {
			return
		}
		if rawTextContent[n.Name] {
			for _, c := range d.arena.Children(h) {
				if t := d.arena.Get(c); t != nil && t.Type == TextNode {
					sb.WriteString(t.Data)
				}
			}
		} else {
			for _, c := range d.arena.Children(h) {
				d.serializeNode(sb, c)
			}
		}
		sb.WriteString("</")
		sb.WriteString(n.Name)
		sb.WriteByte('>')
	case TextNode:
		sb.WriteString(textEscaper.Replace(n.Data))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	}
}

// String renders the whole tree as an indented outline, one node per
// line, with element attributes listed under their element. The format
// is meant for test comparisons and debugging, not for re-parsing.
func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString("#document\n")
	for _, c := range d.arena.Children(d.doc) {
		d.dumpNode(&sb, c, 0)
	}
	return sb.String()
}

func (d *Document) dumpNode(sb *strings.Builder, h Handle, depth int) {
	n := d.arena.Get(h)
	if n == nil {
		return
	}
	indent := "| " + strings.Repeat("  ", depth)
	switch n.Type {
	case ElementNode:
		sb.WriteString(indent)
		sb.WriteString("<")
		sb.WriteString(n.Name)
		sb.WriteString(">\n")
		for _, k := range sortedAttrNames(n.Attributes) {
			sb.WriteString(indent)
			sb.WriteString("  ")
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(n.Attributes[k])
			sb.WriteString("\"\n")
		}
		for _, c := range d.arena.Children(h) {
			d.dumpNode(sb, c, depth+1)
		}
	case TextNode:
		sb.WriteString(indent)
		sb.WriteString("\"")
		sb.WriteString(n.Data)
		sb.WriteString("\"\n")
	case CommentNode:
		sb.WriteString(indent)
		sb.WriteString("<!-- ")
		sb.WriteString(n.Data)
		sb.WriteString(" -->\n")
	}
}

func sortedAttrNames(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
