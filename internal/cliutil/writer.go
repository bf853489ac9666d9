// Package cliutil provides output plumbing shared by scanmark commands.
package cliutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, tracking its last error and how many bytes were
// written, preventing future writes after a non-nil error.
type ErrWriter struct {
	io.Writer
	Err error
	N   int64
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
		ew.N += int64(n)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends the given string before every
// line written through it. Complete lines are flushed as soon as they are
// written; the caller SHOULD close it to flush any partial final line.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	return &prefixer{to: w, prefix: prefix}
}

type prefixer struct {
	to     io.Writer
	prefix string
	buf    bytes.Buffer
}

func (p *prefixer) Close() error {
	if p.buf.Len() == 0 {
		return nil
	}
	_, err := p.buf.WriteTo(p.to)
	return err
}

func (p *prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if i := p.buf.Len() - 1; i < 0 || p.buf.Bytes()[i] == '\n' {
			p.buf.WriteString(p.prefix)
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line = b[:i+1]
		}
		b = b[len(line):]
		m, _ := p.buf.Write(line)
		n += m
	}
	return n, p.flushLines()
}

// flushLines writes buffered bytes through the last newline.
func (p *prefixer) flushLines() error {
	b := p.buf.Bytes()
	i := bytes.LastIndexByte(b, '\n')
	if i < 0 {
		return nil
	}
	m, err := p.to.Write(b[:i+1])
	p.buf.Next(m)
	return err
}
