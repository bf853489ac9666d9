// Package bftree builds blackfriday syntax trees from parsed Markdown
// documents, so that blackfriday's renderers may serialize them.
package bftree

import (
	"io"

	"github.com/russross/blackfriday"

	"github.com/jcorbin/scanmark/internal/cliutil"
	"github.com/jcorbin/scanmark/markup"
	"github.com/jcorbin/scanmark/scandown"
)

// Tree returns a blackfriday Document node whose children mirror the blocks
// of doc. List items hold a single paragraph, and lists are marked tight so
// that renderers elide the paragraph tags.
func Tree(doc scandown.Document, opts markup.Options) *blackfriday.Node {
	root := blackfriday.NewNode(blackfriday.Document)
	b := builder{opts: opts, parent: root}
	for _, block := range doc {
		block.Accept(b)
	}
	return root
}

// Render writes doc as HTML using blackfriday's HTML renderer.
func Render(w io.Writer, doc scandown.Document, opts markup.Options) error {
	ew := cliutil.ErrWriter{Writer: w}
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	Tree(doc, opts).Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if ew.Err != nil {
			return blackfriday.Terminate
		}
		return r.RenderNode(&ew, node, entering)
	})
	return ew.Err
}

type builder struct {
	opts   markup.Options
	parent *blackfriday.Node
}

func (b builder) into(node *blackfriday.Node) builder {
	b.parent.AppendChild(node)
	b.parent = node
	return b
}

func (b builder) text(text scandown.Text) {
	for _, span := range text {
		span.Accept(b)
	}
}

func (b builder) list(ordered bool, items []scandown.Text) {
	list := blackfriday.NewNode(blackfriday.List)
	list.Tight = true
	if ordered {
		list.ListFlags = blackfriday.ListTypeOrdered
		list.Delimiter = '.'
	} else {
		list.BulletChar = '-'
	}
	sub := b.into(list)
	for _, item := range items {
		li := blackfriday.NewNode(blackfriday.Item)
		li.ListData = list.ListData
		sub.into(li).into(blackfriday.NewNode(blackfriday.Paragraph)).text(item)
	}
}

func (b builder) VisitHeading(h scandown.Heading) {
	node := blackfriday.NewNode(blackfriday.Heading)
	node.Level = h.Level().Rank()
	if b.opts.HeadingIDs {
		node.HeadingID = markup.HeadingID(h.Text())
	}
	b.into(node).text(h.Text())
}

func (b builder) VisitOrderedList(l scandown.OrderedList)     { b.list(true, l.Items) }
func (b builder) VisitUnorderedList(l scandown.UnorderedList) { b.list(false, l.Items) }

func (b builder) VisitLine(l scandown.Line) {
	if !l.Blank() {
		b.into(blackfriday.NewNode(blackfriday.Paragraph)).text(l.Text)
	}
}

func (b builder) VisitCodeblock(c scandown.Codeblock) {
	node := blackfriday.NewNode(blackfriday.CodeBlock)
	node.IsFenced = true
	node.Info = []byte(c.Language)
	node.Literal = []byte(c.Body)
	b.parent.AppendChild(node)
}

func (b builder) VisitPlaintext(s scandown.Plaintext) { b.literal(blackfriday.Text, string(s)) }
func (b builder) VisitInlineCode(s scandown.InlineCode) {
	b.literal(blackfriday.Code, string(s))
}

func (b builder) VisitBold(s scandown.Bold) {
	b.into(blackfriday.NewNode(blackfriday.Strong)).literal(blackfriday.Text, string(s))
}

func (b builder) VisitItalic(s scandown.Italic) {
	b.into(blackfriday.NewNode(blackfriday.Emph)).literal(blackfriday.Text, string(s))
}

func (b builder) VisitLink(s scandown.Link) {
	node := blackfriday.NewNode(blackfriday.Link)
	node.Destination = []byte(s.URL)
	b.into(node).literal(blackfriday.Text, s.Label)
}

func (b builder) VisitImage(s scandown.Image) {
	node := blackfriday.NewNode(blackfriday.Image)
	node.Destination = []byte(s.URL)
	b.into(node).literal(blackfriday.Text, s.Alt)
}

func (b builder) literal(typ blackfriday.NodeType, s string) {
	node := blackfriday.NewNode(typ)
	node.Literal = []byte(s)
	b.parent.AppendChild(node)
}


