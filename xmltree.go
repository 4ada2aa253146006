// Package xmltree implements a validating, non-streaming parser for a restricted subset of XML,
// turning a complete document string into an immutable in-memory tree.
//
// The subset consists of one mandatory declaration, elements with attributes, nested content,
// comments, CDATA sections and the five predefined character entities plus numeric character
// references. There is no support for DTDs, namespaces, processing instructions besides the
// declaration or external entities.
package xmltree

// SupportedVersion is the only version accepted in the XML declaration.
const SupportedVersion = "1.0"

// TextNodeName is the reserved name of synthetic nodes holding text between tags.
const TextNodeName = "#text"

// Kind identifies the well-formedness rule violated by a malformed document.
type Kind uint8

const (
	// KindInvalid is the zero value for Kind and is not a valid kind.
	KindInvalid Kind = iota

	// KindNoXMLDeclaration means the declaration is missing, malformed or not at the very start
	// of the input.
	KindNoXMLDeclaration

	// KindUnsupportedVersion means the declared version is not exactly [SupportedVersion].
	KindUnsupportedVersion

	// KindIllegalAttributes means an attribute list has trailing non-whitespace after the last
	// valid pair.
	KindIllegalAttributes

	// KindNoEscapedCharacter means a forbidden raw character or a malformed "&...;" sequence
	// appears in text or attribute content.
	KindNoEscapedCharacter

	// KindIllegalComment means a bare "--" occurs inside a comment body before its terminator.
	KindIllegalComment

	// KindMissingClosingTag means the end of the input was reached while scanning for "-->",
	// "]]>" or ">".
	KindMissingClosingTag

	// KindNoNameTag means an opening "<" is immediately followed by a delimiter, leaving the tag
	// without a name.
	KindNoNameTag

	// KindIllegalTagName means a tag name contains one of <, >, ', " or &.
	KindIllegalTagName

	// KindMismatchedClosingTag means a closing tag does not name the currently open element,
	// including a closing tag while no element is open at all.
	KindMismatchedClosingTag

	// KindClosingTagWithAttributes means a closing tag carries attributes.
	KindClosingTagWithAttributes

	// KindClosingTagSelfClosing means a closing tag also carries the self-closing marker.
	KindClosingTagSelfClosing

	// KindIllegalFormatTrailingContent means non-whitespace content remains after the root
	// element and any trailing comments.
	KindIllegalFormatTrailingContent
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "KindInvalid"
	case KindNoXMLDeclaration:
		return "KindNoXMLDeclaration"
	case KindUnsupportedVersion:
		return "KindUnsupportedVersion"
	case KindIllegalAttributes:
		return "KindIllegalAttributes"
	case KindNoEscapedCharacter:
		return "KindNoEscapedCharacter"
	case KindIllegalComment:
		return "KindIllegalComment"
	case KindMissingClosingTag:
		return "KindMissingClosingTag"
	case KindNoNameTag:
		return "KindNoNameTag"
	case KindIllegalTagName:
		return "KindIllegalTagName"
	case KindMismatchedClosingTag:
		return "KindMismatchedClosingTag"
	case KindClosingTagWithAttributes:
		return "KindClosingTagWithAttributes"
	case KindClosingTagSelfClosing:
		return "KindClosingTagSelfClosing"
	case KindIllegalFormatTrailingContent:
		return "KindIllegalFormatTrailingContent"
	default:
		panic("unknown kind")
	}
}
