package xmltree

import "strings"

// parseAttrList parses zero or more key="value" or key='value' pairs from s, each preceded by at
// least one whitespace character. Keys are not checked against XML name rules and later duplicate
// keys overwrite earlier ones.
//
// base is the offset of s in the full input and is only used for error positions.
func (p *parser) parseAttrList(s string, base int) (map[string]string, error) {
	var attrs map[string]string

	rest, off := s, 0

	for {
		var i int
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}

		// Pairs must be separated from the tag name and from each other by whitespace.
		if i == 0 || i == len(rest) {
			break
		}

		eq := strings.IndexByte(rest[i:], '=')
		if eq <= 0 {
			break
		}
		key := rest[i : i+eq]

		j := i + eq + 1
		if j >= len(rest) || (rest[j] != '"' && rest[j] != '\'') {
			break
		}
		quote := rest[j]

		end := strings.IndexByte(rest[j+1:], quote)
		if end < 0 {
			break
		}
		raw := rest[j+1 : j+1+end]

		forbidden := forbiddenDoubleQuote
		if quote == '\'' {
			forbidden = forbiddenSingleQuote
		}

		value, at, ok := unescapeEntity(raw, forbidden)
		if !ok {
			return nil, p.fail(KindNoEscapedCharacter, base+off+j+1+at,
				"found an unescaped character or an undefined entity")
		}

		if attrs == nil {
			attrs = make(map[string]string, 4)
		}
		attrs[key] = value

		consumed := j + 1 + end + 1
		rest, off = rest[consumed:], off+consumed
	}

	// Whatever did not match as a pair must be whitespace only.
	for i := range len(rest) {
		if !isSpace(rest[i]) {
			return nil, p.fail(KindIllegalAttributes, base+off+i, "illegal attributes")
		}
	}

	return attrs, nil
}
