package scandown

import (
	"errors"
	"fmt"
)

// ErrParse matches every error returned by Parse, ParseReader, and
// BlockScanner.Scan when tested with errors.Is.
var ErrParse = errors.New("markdown parse failed")

// Specific parse failures, each matching ErrParse.
var (
	ErrMissingTerminator error = parseFailure("input must end with a newline")
	ErrUnterminatedFence error = parseFailure("unterminated code fence")
)

type parseFailure string

func (pf parseFailure) Error() string        { return string(pf) }
func (pf parseFailure) Is(target error) bool { return target == ErrParse }

// ParseError records the input line where parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", pe.Line, pe.Err)
}

// Unwrap returns the underlying parse failure.
func (pe *ParseError) Unwrap() error { return pe.Err }
