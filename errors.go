package xmltree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is returned by [Parse] for any malformed document.
type Error struct {
	// Kind identifies the violated rule.
	Kind Kind

	// At is the byte offset in the input where the error occurred.
	At int

	// Line is the 1-based line of At, counting newline characters before it.
	Line int

	// Column is the 1-based column of At. It counts characters from the most recent line start,
	// not bytes.
	Column int

	// Message is a human-readable description of the error, without the position.
	Message string
}

// Error returns a human-readable error message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d at column %d", e.Message, e.Line, e.Column)
}

// Is checks if the given error matches the receiver.
func (e *Error) Is(err error) bool {
	var o *Error
	return errors.As(err, &o) && *o == *e
}

// Offset returns e.At.
func (e *Error) Offset() int {
	return e.At
}

// position converts a byte offset in input into a 1-based line and column pair.
func position(input string, at int) (line, column int) {
	if at > len(input) {
		at = len(input)
	}

	before := input[:at]
	start := strings.LastIndexByte(before, '\n') + 1

	return 1 + strings.Count(before, "\n"), 1 + utf8.RuneCountInString(before[start:])
}
