package xmltree

import "strings"

// Forbidden raw characters per unescaping policy. Inner text only rejects '<' since quotes and
// '>' are not always escaped in the wild. Single-quoted attribute values may contain raw '"'.
const (
	forbiddenInnerText   = "<"
	forbiddenDoubleQuote = `<'"`
	forbiddenSingleQuote = `<'`
)

// unescapeEntity validates that s contains no byte from forbidden and no malformed "&...;"
// sequence, then rewrites the five predefined entities into their literal characters.
//
// Numeric character references are validated for syntax but passed through unchanged.
//
// On failure ok is false and at is the offset of the offending byte within s.
func unescapeEntity(s, forbidden string) (unescaped string, at int, ok bool) {
	if idx := strings.IndexAny(s, forbidden); idx >= 0 {
		return "", idx, false
	}

	for i := range len(s) {
		if s[i] == '&' && !validEntity(s[i+1:]) {
			return "", i, false
		}
	}

	if !strings.Contains(s, "&") {
		return s, 0, true
	}

	// The order of the rewrites is fixed; each one is an independent global substitution.
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")

	return s, 0, true
}

// validEntity reports whether s, the text directly after a '&', starts with a legal entity body:
// one of the five predefined names, "#" followed by decimal digits, or "#x" followed by exactly
// four hex digits, each terminated by ';'.
func validEntity(s string) bool {
	switch {
	case strings.HasPrefix(s, "lt;"),
		strings.HasPrefix(s, "gt;"),
		strings.HasPrefix(s, "apos;"),
		strings.HasPrefix(s, "quot;"),
		strings.HasPrefix(s, "amp;"):
		return true
	}

	if !strings.HasPrefix(s, "#") {
		return false
	}

	if rest, ok := strings.CutPrefix(s[1:], "x"); ok {
		if len(rest) < 5 || rest[4] != ';' {
			return false
		}
		for i := range 4 {
			if !isHexDigit(rest[i]) {
				return false
			}
		}
		return true
	}

	rest := s[1:]

	var i int
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}

	return i > 0 && i < len(rest) && rest[i] == ';'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\r', '\n', '\t':
		return true
	default:
		return false
	}
}

// isBlank reports whether s is empty or consists only of whitespace.
func isBlank(s string) bool {
	for i := range len(s) {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}
