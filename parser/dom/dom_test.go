package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaHandles(t *testing.T) {
	t.Parallel()
	a := NewArena()
	doc := a.CreateDocument()
	el := a.CreateElement("div", map[string]string{"id": "x"})
	txt := a.CreateText("hi")

	assert.Equal(t, 3, a.Len())
	assert.Nil(t, a.Get(NoHandle))
	assert.Nil(t, a.Get(Handle(99)))

	a.AppendChild(doc, el)
	a.AppendChild(el, txt)

	assert.Equal(t, doc, a.Parent(el))
	assert.Equal(t, el, a.Parent(txt))
	assert.Equal(t, NoHandle, a.Parent(doc))
	assert.Equal(t, []Handle{txt}, a.Children(el))
}

func TestArenaReparenting(t *testing.T) {
	t.Parallel()
	a := NewArena()
	doc := a.CreateDocument()
	first := a.CreateElement("div", nil)
	second := a.CreateElement("section", nil)
	child := a.CreateText("x")

	a.AppendChild(doc, first)
	a.AppendChild(doc, second)
	a.AppendChild(first, child)

	// moving a node detaches it from its old parent, nothing is freed
	a.AppendChild(second, child)

	assert.Empty(t, a.Children(first))
	assert.Equal(t, []Handle{child}, a.Children(second))
	assert.Equal(t, second, a.Parent(child))
	assert.Equal(t, 4, a.Len())
}

func TestDocumentReadOnlyContract(t *testing.T) {
	t.Parallel()
	doc := NewBuilder().
		Element("html").
		Element("body", Attr{Name: "id", Value: "main"}).
		Text("hi").
		Comment(" note ").
		Document()

	body := doc.Children(doc.Root())[0]

	attrs := doc.Attributes(body)
	attrs["id"] = "clobbered"
	assert.Equal(t, "main", doc.Attributes(body)["id"], "attribute map is a copy")

	kids := doc.Children(doc.Root())
	kids[0] = NoHandle
	assert.Equal(t, body, doc.Children(doc.Root())[0], "children slice is a copy")

	assert.Equal(t, "", doc.Name(NoHandle))
	assert.Nil(t, doc.Attributes(NoHandle))
	assert.Equal(t, "", doc.Text(body), "elements have no text of their own")

	bodyKids := doc.Children(body)
	require.Len(t, bodyKids, 2)
	assert.Equal(t, "hi", doc.Text(bodyKids[0]))
	assert.Equal(t, "", doc.Text(bodyKids[1]), "comments have no text content")
}

func TestVoidElements(t *testing.T) {
	t.Parallel()
	assert.True(t, IsVoid("br"))
	assert.True(t, IsVoid("img"))
	assert.False(t, IsVoid("div"))
	assert.False(t, IsVoid(""))
}

func TestSerialize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "nested elements",
			doc: NewBuilder().
				Element("html").
				Element("p").Text("hi").
				Document(),
			want: `<html><p>hi</p></html>`,
		},
		{
			name: "void stays unclosed",
			doc: NewBuilder().
				Element("div").
				Void("br").
				Document(),
			want: `<div><br></div>`,
		},
		{
			name: "attributes sorted and escaped",
			doc: NewBuilder().
				Element("a", Attr{Name: "title", Value: `say "hi"`}, Attr{Name: "href", Value: "x?a=1&b=2"}).
				Document(),
			want: `<a href="x?a=1&amp;b=2" title="say &quot;hi&quot;"></a>`,
		},
		{
			name: "text escaped",
			doc: NewBuilder().
				Element("p").Text("1 < 2 & 3 > 2").
				Document(),
			want: `<p>1 &lt; 2 &amp; 3 &gt; 2</p>`,
		},
		{
			name: "script text stays raw",
			doc: NewBuilder().
				Element("html").
				Element("script").Text("if (a<b && c>d) {}").Close().
				Element("style").Text("a > b { color: red }").
				Document(),
			want: `<html><script>if (a<b && c>d) {}</script><style>a > b { color: red }</style></html>`,
		},
		{
			name: "comment",
			doc: NewBuilder().
				Element("div").Comment(" note ").
				Document(),
			want: `<div><!-- note --></div>`,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.doc.Serialize())
		})
	}
}

func TestStringOutline(t *testing.T) {
	t.Parallel()
	doc := NewBuilder().
		Comment(" top ").
		Element("html", Attr{Name: "lang", Value: "en"}).
		Element("body").
		Text("hi").
		Document()

	want := "#document\n" +
		"| <!--  top  -->\n" +
		"| <html>\n" +
		"|   lang=\"en\"\n" +
		"|   <body>\n" +
		"|     \"hi\"\n"
	assert.Equal(t, want, doc.String())
}

func TestBuilderFirstElementIsRoot(t *testing.T) {
	t.Parallel()
	doc := NewBuilder().
		Comment(" before ").
		Element("main").Text("x").
		Document()
	require.NotEqual(t, NoHandle, doc.Root())
	assert.Equal(t, "main", doc.Name(doc.Root()))
}
