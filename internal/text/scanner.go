// Package text implements a low-level cursor over strings and []byte meant to be used in building
// higher-level scanners on top of it.
package text

import "strings"

// Scanner wraps an immutable input and a current offset into it.
//
// All matching methods are anchored at the current offset: on success they advance the offset past
// the match, on failure they leave the offset untouched.
type Scanner[T []byte | string] struct {
	data   T
	offset int
}

// Consume checks if the next byte is equal to c and, if true, advances the scanner.
func (s *Scanner[T]) Consume(c byte) bool {
	c1, ok := s.Peek()
	if !ok || c != c1 {
		return false
	}
	s.offset++
	return true
}

// ConsumeString checks if the remaining input starts with lit and, if true, advances the scanner
// past it.
func (s *Scanner[T]) ConsumeString(lit string) bool {
	if len(s.data)-s.offset < len(lit) {
		return false
	}
	if string(s.data[s.offset:s.offset+len(lit)]) != lit {
		return false
	}
	s.offset += len(lit)
	return true
}

// EOF reports whether the scanner has consumed all of its input.
func (s *Scanner[T]) EOF() bool {
	return s.offset >= len(s.data)
}

// Offset returns the current offset in the data.
func (s *Scanner[T]) Offset() int {
	return s.offset
}

// Peek returns the next byte in the input.
func (s *Scanner[T]) Peek() (byte, bool) {
	if s.offset >= len(s.data) {
		return 0, false
	}
	return s.data[s.offset], true
}

// Reset resets the internal state of the scanner and sets it to read from data.
func (s *Scanner[T]) Reset(data T) {
	s.data = data
	s.offset = 0
}

// Rest returns the not yet consumed part of the input without advancing the scanner.
func (s *Scanner[T]) Rest() T {
	return s.data[s.offset:]
}

// SkipSpaces skips over ASCII spaces inside the input, returning the number of bytes skipped.
func (s *Scanner[T]) SkipSpaces() int {
	start := s.offset
	for s.offset < len(s.data) {
		switch s.data[s.offset] {
		case ' ', '\r', '\n', '\t':
			s.offset++
		default:
			return s.offset - start
		}
	}
	return s.offset - start
}

// TakeWhile consumes bytes from the input until f returns false and returns the consumed slice.
func (s *Scanner[T]) TakeWhile(f func(c byte) bool) T {
	start := s.offset
	for s.offset < len(s.data) && f(s.data[s.offset]) {
		s.offset++
	}
	return s.data[start:s.offset]
}

// Until searches for marker in the remaining input. On success it returns the data before the
// marker and advances the scanner past the marker. On failure the scanner is left unchanged.
func (s *Scanner[T]) Until(marker string) (T, bool) {
	idx := strings.Index(string(s.data[s.offset:]), marker)
	if idx < 0 {
		var zero T
		return zero, false
	}
	seg := s.data[s.offset : s.offset+idx]
	s.offset += idx + len(marker)
	return seg, true
}
