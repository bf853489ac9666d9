package scandown

import "strings"

// ParseInline tokenizes the content of a single line into inline spans.
//
// Scanning is a single forward pass. At each byte, an image opener "![" is
// tried before a link opener "[", then a bold "**", an italic "*", and a code
// span "`". An opener with no closer later on the line, along with all text
// after it, becomes plaintext. Runs of plaintext are always coalesced into
// one span.
func ParseInline(text string) Text {
	var (
		spans Text
		lit   int // start of pending plaintext
	)
	for i := 0; i < len(text); {
		var (
			span Inline
			next int
		)
		switch c := text[i]; {
		case c == '!' && strings.HasPrefix(text[i+1:], "["):
			span, next = scanLink(text, i+2, true)
		case c == '[':
			span, next = scanLink(text, i+1, false)
		case c == '*' && strings.HasPrefix(text[i+1:], "*"):
			span, next = scanDelimited(text, i, "**")
		case c == '*':
			span, next = scanDelimited(text, i, "*")
		case c == '`':
			span, next = scanDelimited(text, i, "`")
		default:
			i++
			continue
		}
		if next < 0 {
			break
		}
		if span != nil {
			if i > lit {
				spans = append(spans, Plaintext(text[lit:i]))
			}
			spans = append(spans, span)
			lit = next
		}
		i = next
	}
	if lit < len(text) {
		spans = append(spans, Plaintext(text[lit:]))
	}
	return spans
}

// scanLink scans the remainder of a link or image whose label starts at
// text[start:].
//
// Returns the span and the offset after it when matched. A label not followed
// by a "(" is literal text, so a nil span is returned along with the offset
// after its "]". When no closer is found, returns a negative offset.
func scanLink(text string, start int, image bool) (Inline, int) {
	end := strings.IndexByte(text[start:], ']')
	if end < 0 {
		return nil, -1
	}
	label := text[start : start+end]
	rest := start + end + 1
	if !strings.HasPrefix(text[rest:], "(") {
		return nil, rest
	}
	closer := strings.IndexByte(text[rest+1:], ')')
	if closer < 0 {
		return nil, -1
	}
	url := text[rest+1 : rest+1+closer]
	next := rest + 1 + closer + 1
	if image {
		return Image{Alt: label, URL: url}, next
	}
	return Link{Label: label, URL: url}, next
}

// scanDelimited scans a span opened by delim at text[start:], closed by the
// next occurrence of the same delimiter.
//
// Returns the span and the offset after its closer when matched. An empty span
// is literal text, so a nil span is returned along with the offset after its
// closer. When no closer is found, returns a negative offset.
func scanDelimited(text string, start int, delim string) (Inline, int) {
	from := start + len(delim)
	end := strings.Index(text[from:], delim)
	if end < 0 {
		return nil, -1
	}
	next := from + end + len(delim)
	if end == 0 {
		return nil, next
	}
	body := text[from : from+end]
	switch delim {
	case "**":
		return Bold(body), next
	case "*":
		return Italic(body), next
	default:
		return InlineCode(body), next
	}
}
