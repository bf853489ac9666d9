package scandown

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// BlockScanner tracks state for parsing Markdown block structure one block at
// a time. Its Scan method implements a bufio.SplitFunc tokenizer; after each
// token, Block returns the parsed block and Line where it started.
//
// It is not safe to use BlockScanner from parallel goroutines.
type BlockScanner struct {
	block Block // last scanned block
	line  int   // line number where block started
	lines int   // lines consumed so far
}

// Scan implements a bufio.SplitFunc that tokenizes Markdown block structure.
//
// Each token spans one whole block: a single line for headings, paragraph
// lines, and blank lines; a run of lines for lists; and everything from the
// opening through the closing fence for code blocks. Every line MUST be
// terminated by '\n', so a final unterminated line is an error, as is an
// unterminated code fence.
//
// The returned token is a window within data, so must not be retained
// across calls to Scan.
//
// Example usage:
// 	var blocks scandown.BlockScanner
// 	sc := bufio.NewScanner(os.Stdin)
// 	sc.Split(blocks.Scan)
// 	for sc.Scan() {
// 		fmt.Printf("scanned %v %q\n", blocks.Block(), sc.Bytes())
// 	}
func (blocks *BlockScanner) Scan(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	line := data
	if eol := bytes.IndexByte(line, '\n'); eol >= 0 {
		line = line[:eol+1]
	} else if !atEOF {
		return 0, nil, nil
	} else {
		return 0, nil, blocks.fail(0, ErrMissingTerminator)
	}

	var (
		block   Block
		lines   = 1
		tail    = trimNewline(line)
		_, cont = trimIndent(tail, 0, 3)
	)
	advance = len(line)

	if len(bytes.TrimSpace(tail)) == 0 {
		block = Line{}
	} else if delim, width, info := openingFence(cont); delim != 0 {
		var body int
		body, lines, err = scanFence(data[advance:], delim, width, atEOF)
		if err != nil {
			return 0, nil, blocks.fail(lines, err)
		}
		if lines == 0 {
			return 0, nil, nil
		}
		block = Codeblock{
			Language: trimText(info),
			Body:     string(data[advance : advance+body]),
		}
		advance += body + closingLen(data[advance+body:])
		lines++
	} else if delim, level, rest := delimiter(cont, MaxLevel, '#'); delim != 0 {
		block = Heading{Level{uint8(level - 1)}, ParseInline(trimText(rest))}
	} else if delim, _, _ := listMarker(cont); delim != 0 {
		var items []Text
		advance, lines, items = scanList(data, delim, atEOF)
		if advance == 0 {
			return 0, nil, nil
		}
		if isByte(delim, '.', ')') {
			block = OrderedList{items}
		} else {
			block = UnorderedList{items}
		}
	} else {
		block = Line{ParseInline(trimText(tail))}
	}

	blocks.block = block
	blocks.line = blocks.lines + 1
	blocks.lines += lines
	return advance, data[:advance], nil
}

// scanFence scans lines following an opening fence, returning the length of
// the body before the closing fence and how many body lines it spans.
// Returns zero lines and no error when more data is needed.
func scanFence(data []byte, delim byte, width int, atEOF bool) (body, lines int, err error) {
	for off := 0; ; {
		rest := data[off:]
		eol := bytes.IndexByte(rest, '\n')
		if eol < 0 {
			if !atEOF {
				return 0, 0, nil
			}
			if len(rest) > 0 && isClosingFence(trimNewline(rest), delim, width) {
				return 0, lines + 1, ErrMissingTerminator
			}
			return 0, 0, ErrUnterminatedFence
		}
		if isClosingFence(trimNewline(rest[:eol+1]), delim, width) {
			return off, lines + 1, nil
		}
		off += eol + 1
		lines++
	}
}

// openingFence matches a code fence opener; a backtick fence's info string may
// not itself contain a backtick.
func openingFence(line []byte) (delim byte, width int, info []byte) {
	delim, width, info = fence(line, 3, '`', '~')
	if delim == '`' && bytes.IndexByte(info, '`') >= 0 {
		return 0, 0, nil
	}
	return delim, width, info
}

func closingLen(data []byte) int {
	return bytes.IndexByte(data, '\n') + 1
}

func isClosingFence(line []byte, delim byte, width int) bool {
	_, cont := trimIndent(line, 0, 3)
	if len(cont) == 0 {
		return false
	}
	d, _, rest := fence(cont, width, delim)
	return d != 0 && len(bytes.TrimSpace(rest)) == 0
}

// scanList consumes a run of list item lines sharing the same marker
// delimiter, returning how many bytes and lines they span along with each
// item's content. Returns zero advance when more data is needed.
func scanList(data []byte, delim byte, atEOF bool) (advance, lines int, items []Text) {
	for {
		rest := data[advance:]
		eol := bytes.IndexByte(rest, '\n')
		if eol < 0 {
			if !atEOF {
				return 0, 0, nil
			}
			// any unterminated remnant fails on the next scan
			return advance, lines, items
		}
		_, cont := trimIndent(trimNewline(rest[:eol+1]), 0, 3)
		if len(cont) == 0 {
			return advance, lines, items
		}
		d, _, text := listMarker(cont)
		if d != delim {
			return advance, lines, items
		}
		items = append(items, ParseInline(trimText(text)))
		advance += eol + 1
		lines++
	}
}

func (blocks *BlockScanner) fail(lines int, err error) error {
	return &ParseError{Line: blocks.lines + 1 + lines, Err: err}
}

// Block returns the Block parsed by the last call to Scan.
func (blocks *BlockScanner) Block() Block {
	return blocks.block
}

// Line returns the 1-based input line number where the last block started.
func (blocks *BlockScanner) Line() int {
	return blocks.line
}

// Reset clears all receiver state, preparing it to scan a new stream.
func (blocks *BlockScanner) Reset() {
	*blocks = BlockScanner{}
}

// MaxBlockSize limits how large a single block may be when parsing from a
// stream with ParseReader.
const MaxBlockSize = 4 * 1024 * 1024

// Parse parses a complete Markdown document. The input must end with a
// newline, so empty input is an error, and any code fence must be closed.
// Parsing is all-or-nothing: on error, no Document is returned.
func Parse(input string) (Document, error) {
	max := len(input) + 1
	if max < bufio.MaxScanTokenSize {
		max = bufio.MaxScanTokenSize
	}
	return parse(strings.NewReader(input), max)
}

// ParseReader is like Parse, but reads input from a stream; any single block
// larger than MaxBlockSize results in bufio.ErrTooLong.
func ParseReader(r io.Reader) (Document, error) {
	return parse(r, MaxBlockSize)
}

func parse(r io.Reader, max int) (Document, error) {
	var blocks BlockScanner
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, max)
	sc.Split(blocks.Scan)
	doc := Document{}
	for sc.Scan() {
		doc = append(doc, blocks.Block())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		// empty input lacks even one terminated line
		return nil, blocks.fail(0, ErrMissingTerminator)
	}
	return doc, nil
}

func trimText(b []byte) string {
	return string(bytes.TrimSpace(b))
}

func listMarker(line []byte) (delim byte, width int, cont []byte) {
	delim, width, tail := delimiter(line, 1, '-', '*', '+')
	if delim == 0 {
		if width, tail = ordinal(line); len(tail) > 0 {
			var dw int
			delim, dw, tail = delimiter(tail, 1, '.', ')')
			width += dw
		}
	}
	switch {
	case delim == 0:
		return 0, 0, nil
	case len(tail) == 0:
		return delim, width, tail
	default:
		// delimiter guarantees a following space or tab
		return delim, width + 1, tail[1:]
	}
}

func delimiter(line []byte, maxWidth int, marks ...byte) (delim byte, width int, tail []byte) {
	if len(line) == 0 {
		return 0, 0, nil
	}
	if delim = line[0]; !isByte(delim, marks...) {
		return 0, 0, nil
	}

	width++
	tail = line[1:]
	for {
		if len(tail) == 0 {
			return delim, width, tail
		}
		switch tail[0] {
		case delim:
			if width++; width > maxWidth {
				return 0, 0, nil
			}
			tail = tail[1:]
		case ' ', '\t':
			return delim, width, tail
		default:
			return 0, 0, nil
		}
	}
}

func ordinal(line []byte) (width int, tail []byte) {
	tail = line
	for len(tail) > 0 {
		switch c := tail[0]; c {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			width++
			tail = tail[1:]
			continue
		}
		break
	}
	if width < 1 || width > 9 {
		return 0, nil
	}
	return width, tail
}

func fence(line []byte, min int, marks ...byte) (fence byte, width int, tail []byte) {
	if len(line) == 0 {
		return 0, 0, nil
	}
	if fence = line[0]; !isByte(fence, marks...) {
		return 0, 0, nil
	}
	width++

	for ; width < len(line); width++ {
		if line[width] != fence {
			break
		}
	}

	if width < min {
		return 0, 0, nil
	}

	return fence, width, line[width:]
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}

func trimNewline(line []byte) []byte {
	i := len(line) - 1
	for i >= 0 {
		switch line[i] {
		case '\r', '\n':
			i--
		default:
			return line[:i+1]
		}
	}
	return line[:0]
}

func trimIndent(line []byte, prior, limit int) (n int, tail []byte) {
	for tail = line; n < limit && len(tail) > 0; tail = tail[1:] {
		if c := tail[0]; c == ' ' {
			n++
		} else if c == '\t' {
			if m := n + 4 - prior; m > limit {
				return n, tail
			} else if m == limit {
				return m, tail
			}
			prior = 0
		} else {
			break
		}
	}
	return n, tail
}
