package scandown

import (
	"fmt"
	"strings"
)

// Document is the ordered sequence of blocks parsed from one input string.
type Document []Block

// Block represents one top-level piece of parsed Markdown structure: a
// Heading, OrderedList, UnorderedList, Line, or Codeblock.
//
// The set of block types is closed; consumers dispatch through Accept and a
// BlockVisitor, so adding a block type breaks every visitor until it handles
// the new case.
type Block interface {
	Accept(v BlockVisitor)
	block()
}

// BlockVisitor receives one call per Block passed to its Accept method.
type BlockVisitor interface {
	VisitHeading(Heading)
	VisitOrderedList(OrderedList)
	VisitUnorderedList(UnorderedList)
	VisitLine(Line)
	VisitCodeblock(Codeblock)
}

// Text is a flat sequence of inline spans, in left to right input order.
type Text []Inline

// Inline represents one span of text within a block: a Plaintext, Bold,
// Italic, InlineCode, Link, or Image. Spans never contain other spans.
type Inline interface {
	Accept(v InlineVisitor)
	inline()
}

// InlineVisitor receives one call per Inline passed to its Accept method.
type InlineVisitor interface {
	VisitPlaintext(Plaintext)
	VisitBold(Bold)
	VisitItalic(Italic)
	VisitInlineCode(InlineCode)
	VisitLink(Link)
	VisitImage(Image)
}

// Level is a heading rank in the range 1 through 6. Its zero value is rank 1,
// and no other constructor can produce a rank outside that range.
type Level struct{ off uint8 }

// MaxLevel is the deepest heading rank.
const MaxLevel = 6

// NewLevel returns the Level for rank n, or an error if n is not in 1..6.
func NewLevel(n int) (Level, error) {
	if n < 1 || n > MaxLevel {
		return Level{}, fmt.Errorf("invalid heading level %d, must be 1-%d", n, MaxLevel)
	}
	return Level{uint8(n - 1)}, nil
}

// MustLevel is NewLevel that panics on an invalid rank.
func MustLevel(n int) Level {
	l, err := NewLevel(n)
	if err != nil {
		panic(err)
	}
	return l
}

// Rank returns the heading rank, 1 through 6.
func (l Level) Rank() int { return int(l.off) + 1 }

// Heading is an ATX heading line, like "## Title".
type Heading struct {
	level Level
	text  Text
}

// NewHeading returns a Heading of the given rank, or an error if level is not
// in 1..6.
func NewHeading(level int, text Text) (Heading, error) {
	l, err := NewLevel(level)
	if err != nil {
		return Heading{}, err
	}
	return Heading{l, text}, nil
}

// MustHeading is NewHeading that panics on an invalid rank.
func MustHeading(level int, text Text) Heading {
	return Heading{MustLevel(level), text}
}

// Level returns the heading rank.
func (h Heading) Level() Level { return h.level }

// Text returns the heading content.
func (h Heading) Text() Text { return h.text }

// OrderedList is a contiguous run of numbered list items.
type OrderedList struct {
	Items []Text
}

// UnorderedList is a contiguous run of bulleted list items.
type UnorderedList struct {
	Items []Text
}

// Line is a single paragraph line. A blank input line parses as a Line with
// empty Text.
type Line struct {
	Text Text
}

// Blank returns true if the line has no content.
func (l Line) Blank() bool { return len(l.Text) == 0 }

// Codeblock is a fenced code block. Body holds the raw lines between the
// fences, newlines included; Language holds the opening fence info string.
type Codeblock struct {
	Language string
	Body     string
}

func (h Heading) Accept(v BlockVisitor)       { v.VisitHeading(h) }
func (l OrderedList) Accept(v BlockVisitor)   { v.VisitOrderedList(l) }
func (l UnorderedList) Accept(v BlockVisitor) { v.VisitUnorderedList(l) }
func (l Line) Accept(v BlockVisitor)          { v.VisitLine(l) }
func (c Codeblock) Accept(v BlockVisitor)     { v.VisitCodeblock(c) }

func (Heading) block()       {}
func (OrderedList) block()   {}
func (UnorderedList) block() {}
func (Line) block()          {}
func (Codeblock) block()     {}

// Plaintext is literal text.
type Plaintext string

// Bold is strongly emphasized text, written **like this**.
type Bold string

// Italic is emphasized text, written *like this*.
type Italic string

// InlineCode is a code span, written `like this`.
type InlineCode string

// Link is a hyperlink, written [Label](URL).
type Link struct {
	Label string
	URL   string
}

// Image is an embedded image, written ![Alt](URL).
type Image struct {
	Alt string
	URL string
}

func (s Plaintext) Accept(v InlineVisitor)  { v.VisitPlaintext(s) }
func (s Bold) Accept(v InlineVisitor)       { v.VisitBold(s) }
func (s Italic) Accept(v InlineVisitor)     { v.VisitItalic(s) }
func (s InlineCode) Accept(v InlineVisitor) { v.VisitInlineCode(s) }
func (s Link) Accept(v InlineVisitor)       { v.VisitLink(s) }
func (s Image) Accept(v InlineVisitor)      { v.VisitImage(s) }

func (Plaintext) inline()  {}
func (Bold) inline()       {}
func (Italic) inline()     {}
func (InlineCode) inline() {}
func (Link) inline()       {}
func (Image) inline()      {}

// PlainText returns the literal text of all spans concatenated, dropping any
// formatting. Link labels and image alt text are included; URLs are not.
func PlainText(text Text) string {
	var pw plainWriter
	for _, span := range text {
		span.Accept(&pw)
	}
	return pw.String()
}

type plainWriter struct{ strings.Builder }

func (pw *plainWriter) VisitPlaintext(s Plaintext)   { pw.WriteString(string(s)) }
func (pw *plainWriter) VisitBold(s Bold)             { pw.WriteString(string(s)) }
func (pw *plainWriter) VisitItalic(s Italic)         { pw.WriteString(string(s)) }
func (pw *plainWriter) VisitInlineCode(s InlineCode) { pw.WriteString(string(s)) }
func (pw *plainWriter) VisitLink(s Link)             { pw.WriteString(s.Label) }
func (pw *plainWriter) VisitImage(s Image)           { pw.WriteString(s.Alt) }
