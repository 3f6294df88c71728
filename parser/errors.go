package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ParseFailure is returned when no grammar rule matches at some position.
//
// Remaining is the unconsumed input at the failing position. Offset is that
// position as a byte index into the parsed text, and Line and Col its 1-based
// line and rune column.
type ParseFailure struct {
	Expected  string
	Remaining string
	Offset    int
	Line, Col int
}

func (err *ParseFailure) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, found %s", err.Line, err.Col, err.Expected, snippet(err.Remaining))
}

// NumericOverflow is returned when an integer literal doesn't fit in 32 bits.
//
// Unlike ParseFailure, it is fatal: no other alternative is tried once it is
// raised, so `99999999999` is never read as a variable.
type NumericOverflow struct {
	Literal   string
	Offset    int
	Line, Col int
	Err       error
}

func (err *NumericOverflow) Error() string {
	return fmt.Sprintf("%d:%d: integer %s out of 32-bit range", err.Line, err.Col, err.Literal)
}

func (err *NumericOverflow) Unwrap() error {
	return err.Err
}

// IsFatal returns whether err stops ordered alternation instead of letting the
// next alternative be tried.
func IsFatal(err error) bool {
	var overflow *NumericOverflow
	return errors.As(err, &overflow)
}

// ---- helpers

// locate fills the line and column of a failure raised while parsing text.
func locate(text string, err error) error {
	var failure *ParseFailure
	if errors.As(err, &failure) {
		failure.Line, failure.Col = position(text, failure.Offset)
	}
	var overflow *NumericOverflow
	if errors.As(err, &overflow) {
		overflow.Line, overflow.Col = position(text, overflow.Offset)
	}
	return err
}

const snippetLen = 20

func snippet(s string) string {
	if s == "" {
		return "end of input"
	}
	if line := strings.IndexByte(s, '\n'); line > 0 && line < snippetLen {
		s = s[:line] + "…"
	} else if utf8.RuneCountInString(s) > snippetLen {
		s = string([]rune(s)[:snippetLen]) + "…"
	}
	return fmt.Sprintf("%q", s)
}

// position returns the 1-based line and rune column of offset within text.
func position(text string, offset int) (int, int) {
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}
