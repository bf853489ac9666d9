package bftree_test

import (
	"strings"
	"testing"

	"github.com/russross/blackfriday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/scanmark/markup"
	"github.com/jcorbin/scanmark/markup/bftree"
	"github.com/jcorbin/scanmark/scandown"
)

func parse(t *testing.T, input string) scandown.Document {
	doc, err := scandown.Parse(input)
	require.NoError(t, err, "must parse")
	return doc
}

func TestTree(t *testing.T) {
	doc := parse(t, "## Title\n\n1. a\n2. b\n- c\npara *x*\n```go\nbody\n```\n")
	root := bftree.Tree(doc, markup.Options{})
	require.Equal(t, blackfriday.Document, root.Type)

	var types []blackfriday.NodeType
	for c := root.FirstChild; c != nil; c = c.Next {
		types = append(types, c.Type)
	}
	assert.Equal(t, []blackfriday.NodeType{
		blackfriday.Heading,
		blackfriday.List,
		blackfriday.List,
		blackfriday.Paragraph,
		blackfriday.CodeBlock,
	}, types, "blank lines should produce no nodes")

	heading := root.FirstChild
	assert.Equal(t, 2, heading.Level)
	assert.Equal(t, "Title", string(heading.FirstChild.Literal))

	ol := heading.Next
	assert.NotZero(t, ol.ListFlags&blackfriday.ListTypeOrdered, "expected ordered list")
	var items []string
	for li := ol.FirstChild; li != nil; li = li.Next {
		assert.Equal(t, blackfriday.Item, li.Type)
		items = append(items, string(li.FirstChild.FirstChild.Literal))
	}
	assert.Equal(t, []string{"a", "b"}, items)

	ul := ol.Next
	assert.Zero(t, ul.ListFlags&blackfriday.ListTypeOrdered, "expected unordered list")

	code := root.LastChild
	assert.Equal(t, "go", string(code.Info))
	assert.Equal(t, "body\n", string(code.Literal))
}

func TestRender(t *testing.T) {
	doc := parse(t, "# Title\n"+
		"- a\n- **b**\n"+
		"see [site](https://example.com) and ![cat](cat.png) `x<y`\n"+
		"```rs\nfn main() {}\n```\n")

	var sb strings.Builder
	require.NoError(t, bftree.Render(&sb, doc, markup.Options{HeadingIDs: true}))
	out := sb.String()

	for _, want := range []string{
		`<h1 id="title">Title</h1>`,
		`<li>a</li>`,
		`<li><strong>b</strong></li>`,
		`<a href="https://example.com">site</a>`,
		`<img src="cat.png" alt="cat" />`,
		`<code>x&lt;y</code>`,
		`<pre><code class="language-rs">fn main() {}`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "<p><li>", "list items should not be wrapped in paragraphs")
}

type failWriter struct{ n int }

func (fw *failWriter) Write(p []byte) (int, error) {
	if fw.n++; fw.n > 2 {
		return 0, assert.AnError
	}
	return len(p), nil
}

func TestRender_writeError(t *testing.T) {
	doc := parse(t, "# a\n# b\n# c\n# d\n")
	var fw failWriter
	assert.Equal(t, assert.AnError, bftree.Render(&fw, doc, markup.Options{}))
	assert.Equal(t, 3, fw.n, "expected no writes after the first failure")
}
