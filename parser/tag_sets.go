package parser

// Fixed tag-classification sets used by the tree builder. They are
// initialized once and never mutated.

// impliedEndTags may be closed implicitly when an enclosing element
// closes or a sibling of the same kind opens.
var impliedEndTags = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

// defaultScopeBlockers terminate a scan of the open-elements stack for
// "has an element in scope" checks.
var defaultScopeBlockers = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true,
	"td": true, "th": true, "marquee": true, "object": true,
	"template": true,
}

var buttonScopeBlockers = extendScope("button")

var listItemScopeBlockers = extendScope("ol", "ul")

// tableScopeBlockers is the narrower set used for row/cell implied
// closes inside tables.
var tableScopeBlockers = map[string]bool{
	"html": true, "table": true, "template": true,
}

// formattingElements are the inline elements tracked on the active
// formatting list.
var formattingElements = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true,
	"font": true, "i": true, "nobr": true, "s": true, "small": true,
	"strike": true, "strong": true, "tt": true, "u": true,
}

// blockElements implicitly close an open p element when they start.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"center": true, "details": true, "dialog": true, "dir": true,
	"div": true, "dl": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "header": true,
	"hgroup": true, "listing": true, "main": true, "menu": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"summary": true, "ul": true,
}

var headingElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// rawTextElements switch the tokenizer into rawtext content; their
// bodies contain no markup.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "style": true,
	"xmp": true,
}

// rcdataElements switch the tokenizer into rcdata content; character
// references still apply inside them.
var rcdataElements = map[string]bool{
	"textarea": true, "title": true,
}

func extendScope(names ...string) map[string]bool {
	m := make(map[string]bool, len(defaultScopeBlockers)+len(names))
	for k := range defaultScopeBlockers {
		m[k] = true
	}
	for _, n := range names {
		m[n] = true
	}
	return m
}
