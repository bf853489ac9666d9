// Package markup translates parsed Markdown documents into HTML node trees.
//
// Trees hold raw, unescaped text and attribute values exactly as parsed.
// Escaping is the job of whatever serializes the tree; Render does so with
// html.Render.
package markup

import (
	"github.com/shurcooL/sanitized_anchor_name"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jcorbin/scanmark/scandown"
)

// Class attribute values used to tag code elements.
const (
	CodeClassPrefix = "lang-"
	InlineCodeClass = "inline"
)

// Options controls optional translation features; the zero value is the
// plain mapping.
type Options struct {
	// HeadingIDs adds an id attribute to every heading, derived from its text.
	HeadingIDs bool
}

// HeadingID returns the anchor id used for a heading with the given text.
func HeadingID(text scandown.Text) string {
	return sanitized_anchor_name.Create(scandown.PlainText(text))
}

var headingAtoms = [scandown.MaxLevel]atom.Atom{
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
}

// Translate returns an html.DocumentNode whose children are the translated
// blocks of doc, in order. Blank lines produce no nodes.
func Translate(doc scandown.Document) *html.Node {
	return TranslateWith(doc, Options{})
}

// TranslateWith is Translate with explicit Options.
func TranslateWith(doc scandown.Document, opts Options) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	tr := translator{opts: opts, parent: root}
	for _, b := range doc {
		b.Accept(tr)
	}
	return root
}

// translator appends nodes for every visited block or span under parent.
type translator struct {
	opts   Options
	parent *html.Node
}

func (tr translator) into(el *html.Node) translator {
	tr.parent.AppendChild(el)
	tr.parent = el
	return tr
}

func (tr translator) text(text scandown.Text) {
	for _, span := range text {
		span.Accept(tr)
	}
}

func (tr translator) items(list *html.Node, items []scandown.Text) {
	sub := tr.into(list)
	for _, item := range items {
		sub.into(element(atom.Li)).text(item)
	}
}

func (tr translator) VisitHeading(h scandown.Heading) {
	el := element(headingAtoms[h.Level().Rank()-1])
	if tr.opts.HeadingIDs {
		el.Attr = append(el.Attr, html.Attribute{Key: "id", Val: HeadingID(h.Text())})
	}
	tr.into(el).text(h.Text())
}

func (tr translator) VisitOrderedList(l scandown.OrderedList) {
	tr.items(element(atom.Ol), l.Items)
}

func (tr translator) VisitUnorderedList(l scandown.UnorderedList) {
	tr.items(element(atom.Ul), l.Items)
}

func (tr translator) VisitLine(l scandown.Line) {
	if l.Blank() {
		return
	}
	tr.into(element(atom.P)).text(l.Text)
}

func (tr translator) VisitCodeblock(c scandown.Codeblock) {
	code := element(atom.Code, html.Attribute{Key: "class", Val: CodeClassPrefix + c.Language})
	tr.into(element(atom.Pre)).into(code).literal(c.Body)
}

func (tr translator) VisitPlaintext(s scandown.Plaintext) {
	tr.literal(string(s))
}

func (tr translator) VisitBold(s scandown.Bold) {
	tr.into(element(atom.B)).literal(string(s))
}

func (tr translator) VisitItalic(s scandown.Italic) {
	tr.into(element(atom.I)).literal(string(s))
}

func (tr translator) VisitInlineCode(s scandown.InlineCode) {
	tr.into(element(atom.Code, html.Attribute{Key: "class", Val: InlineCodeClass})).literal(string(s))
}

func (tr translator) VisitLink(s scandown.Link) {
	tr.into(element(atom.A, html.Attribute{Key: "href", Val: s.URL})).literal(s.Label)
}

func (tr translator) VisitImage(s scandown.Image) {
	tr.parent.AppendChild(element(atom.Img,
		html.Attribute{Key: "src", Val: s.URL},
		html.Attribute{Key: "alt", Val: s.Alt},
	))
}

func (tr translator) literal(s string) {
	tr.parent.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}
