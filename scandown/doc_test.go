package scandown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/scanmark/scandown"
)

func TestLevel(t *testing.T) {
	var zero scandown.Level
	assert.Equal(t, 1, zero.Rank(), "zero level should be rank 1")

	for n := 1; n <= scandown.MaxLevel; n++ {
		l, err := scandown.NewLevel(n)
		require.NoError(t, err, "level %v must be valid", n)
		assert.Equal(t, n, l.Rank(), "expected rank")
	}
	for _, n := range []int{-1, 0, 7, 100} {
		_, err := scandown.NewLevel(n)
		assert.Error(t, err, "level %v should be invalid", n)
		assert.Panics(t, func() { scandown.MustLevel(n) }, "MustLevel(%v) should panic", n)
	}
}

func TestNewHeading(t *testing.T) {
	h, err := scandown.NewHeading(3, text("x"))
	require.NoError(t, err)
	assert.Equal(t, 3, h.Level().Rank())
	assert.Equal(t, text("x"), h.Text())

	_, err = scandown.NewHeading(0, text("x"))
	assert.Error(t, err, "level 0 heading should be rejected")
	_, err = scandown.NewHeading(7, text("x"))
	assert.Error(t, err, "level 7 heading should be rejected")
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "", scandown.PlainText(nil))
	assert.Equal(t, "a b c d link alt", scandown.PlainText(scandown.Text{
		scandown.Plaintext("a "),
		scandown.Bold("b"),
		scandown.Italic(" c "),
		scandown.InlineCode("d"),
		scandown.Plaintext(" "),
		scandown.Link{Label: "link", URL: "https://example.com"},
		scandown.Plaintext(" "),
		scandown.Image{Alt: "alt", URL: "img.png"},
	}))
}

// countingVisitor checks that every block type dispatches to its own method.
type countingVisitor map[string]int

func (cv countingVisitor) VisitHeading(scandown.Heading)             { cv["heading"]++ }
func (cv countingVisitor) VisitOrderedList(scandown.OrderedList)     { cv["ol"]++ }
func (cv countingVisitor) VisitUnorderedList(scandown.UnorderedList) { cv["ul"]++ }
func (cv countingVisitor) VisitLine(scandown.Line)                   { cv["line"]++ }
func (cv countingVisitor) VisitCodeblock(scandown.Codeblock)         { cv["code"]++ }

func TestBlock_Accept(t *testing.T) {
	doc, err := scandown.Parse("# h\n1. a\n- b\nc\n\n```\nd\n```\n")
	require.NoError(t, err)
	cv := countingVisitor{}
	for _, b := range doc {
		b.Accept(cv)
	}
	assert.Equal(t, countingVisitor{
		"heading": 1,
		"ol":      1,
		"ul":      1,
		"line":    2,
		"code":    1,
	}, cv)
}
