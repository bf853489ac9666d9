package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/jcorbin/scanmark/scandown"
)

// FallbackMessage is the text Process returns in place of a tree when its
// input cannot be parsed.
const FallbackMessage = "Failed to parse markdown, make sure it ends with '\\n'."

// Process parses input and translates it, never failing: if input cannot be
// parsed, the result is a single text node carrying FallbackMessage, with no
// partial tree.
func Process(input string) *html.Node {
	return ProcessWith(input, Options{})
}

// ProcessWith is Process with explicit translation Options.
func ProcessWith(input string, opts Options) *html.Node {
	doc, err := scandown.Parse(input)
	if err != nil {
		return Fallback()
	}
	return TranslateWith(doc, opts)
}

// Fallback returns a new text node carrying FallbackMessage.
func Fallback() *html.Node {
	return &html.Node{Type: html.TextNode, Data: FallbackMessage}
}

// IsFallback returns true if n is a node returned by Fallback.
func IsFallback(n *html.Node) bool {
	return n != nil &&
		n.Type == html.TextNode &&
		n.Data == FallbackMessage &&
		n.Parent == nil
}

// Render serializes the tree rooted at n as HTML, escaping all text and
// attribute values.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString is Render into a string.
func RenderString(n *html.Node) (string, error) {
	var sb strings.Builder
	err := Render(&sb, n)
	return sb.String(), err
}
