package scandown

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a numbered, one block per line form when
// formatted with `%+v`, a space separated list of block types otherwise.
func (doc Document) Format(f fmt.State, _ rune) {
	if len(doc) == 0 {
		io.WriteString(f, "-- empty --")
		return
	}
	for i, b := range doc {
		if f.Flag('+') {
			if i > 0 {
				io.WriteString(f, "\n")
			}
			fmt.Fprintf(f, "%v. %+v", i+1, b)
		} else {
			if i > 0 {
				io.WriteString(f, " ")
			}
			fmt.Fprintf(f, "%v", b)
		}
	}
}

// Format writes the span type and its quoted content, like `Bold("text")`.
func (text Text) Format(f fmt.State, _ rune) {
	for i, span := range text {
		if i > 0 {
			io.WriteString(f, " ")
		}
		span.Accept(spanFormatter{f})
	}
}

// Format writes a textual representation of the receiver. Produces a verbose
// "Heading2 content" form when formatted with `%+v`, a terse "Heading2"
// form otherwise.
func (h Heading) Format(f fmt.State, _ rune) { h.Accept(blockFormatter{f}) }

// Format writes "OrderedList[N]" followed, under `%+v`, by each item.
func (l OrderedList) Format(f fmt.State, _ rune) { l.Accept(blockFormatter{f}) }

// Format writes "UnorderedList[N]" followed, under `%+v`, by each item.
func (l UnorderedList) Format(f fmt.State, _ rune) { l.Accept(blockFormatter{f}) }

// Format writes "Line" or "Blank", followed under `%+v` by any content.
func (l Line) Format(f fmt.State, _ rune) { l.Accept(blockFormatter{f}) }

// Format writes "Codeblock", followed under `%+v` by its language and body.
func (c Codeblock) Format(f fmt.State, _ rune) { c.Accept(blockFormatter{f}) }

type blockFormatter struct{ f fmt.State }

func (bf blockFormatter) VisitHeading(h Heading) {
	fmt.Fprintf(bf.f, "Heading%v", h.Level().Rank())
	bf.text(h.Text())
}

func (bf blockFormatter) VisitOrderedList(l OrderedList) {
	fmt.Fprintf(bf.f, "OrderedList[%v]", len(l.Items))
	bf.items(l.Items)
}

func (bf blockFormatter) VisitUnorderedList(l UnorderedList) {
	fmt.Fprintf(bf.f, "UnorderedList[%v]", len(l.Items))
	bf.items(l.Items)
}

func (bf blockFormatter) VisitLine(l Line) {
	if l.Blank() {
		io.WriteString(bf.f, "Blank")
		return
	}
	io.WriteString(bf.f, "Line")
	bf.text(l.Text)
}

func (bf blockFormatter) VisitCodeblock(c Codeblock) {
	io.WriteString(bf.f, "Codeblock")
	if bf.f.Flag('+') {
		fmt.Fprintf(bf.f, " lang=%q body=%q", c.Language, c.Body)
	}
}

func (bf blockFormatter) text(text Text) {
	if bf.f.Flag('+') && len(text) > 0 {
		fmt.Fprintf(bf.f, " %v", text)
	}
}

func (bf blockFormatter) items(items []Text) {
	if bf.f.Flag('+') {
		for _, item := range items {
			fmt.Fprintf(bf.f, " [%v]", item)
		}
	}
}

type spanFormatter struct{ f fmt.State }

func (sf spanFormatter) VisitPlaintext(s Plaintext)   { fmt.Fprintf(sf.f, "Plaintext(%q)", string(s)) }
func (sf spanFormatter) VisitBold(s Bold)             { fmt.Fprintf(sf.f, "Bold(%q)", string(s)) }
func (sf spanFormatter) VisitItalic(s Italic)         { fmt.Fprintf(sf.f, "Italic(%q)", string(s)) }
func (sf spanFormatter) VisitInlineCode(s InlineCode) { fmt.Fprintf(sf.f, "InlineCode(%q)", string(s)) }
func (sf spanFormatter) VisitLink(s Link)             { fmt.Fprintf(sf.f, "Link(%q, %q)", s.Label, s.URL) }
func (sf spanFormatter) VisitImage(s Image)           { fmt.Fprintf(sf.f, "Image(%q, %q)", s.Alt, s.URL) }
