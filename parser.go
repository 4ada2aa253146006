package xmltree

import (
	"fmt"
	"strings"

	"github.com/Qazwar/xmltree/internal/text"
)

// Parse parses text into a [Document].
//
// The input must be a complete, already decoded UTF-8 document; no encoding sniffing is performed.
// Every call is independent and allocates a fresh tree.
//
// Any failure is reported as an [*Error] positioned at the offending input. The first failure
// aborts the parse; no partial document is ever returned.
func Parse(input string) (*Document, error) {
	p := &parser{input: input}
	p.sc.Reset(input)
	return p.parse()
}

type parser struct {
	input string
	sc    text.Scanner[string]
}

func (p *parser) fail(kind Kind, at int, format string, args ...any) error {
	line, column := position(p.input, at)

	return &Error{
		Kind:    kind,
		At:      at,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) parse() (*Document, error) {
	version, attrs, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}

	root, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	return &Document{Version: version, Attr: attrs, Root: root}, nil
}

// parseDeclaration matches the mandatory "<?xml ...?>" declaration at the very start of the
// input. Anything between the quoted version and "?>" is parsed as an attribute list.
func (p *parser) parseDeclaration() (string, map[string]string, error) {
	start := p.sc.Offset()

	if !p.sc.ConsumeString("<?xml") || p.sc.SkipSpaces() == 0 || !p.sc.ConsumeString(`version="`) {
		return "", nil, p.fail(KindNoXMLDeclaration, start, "no XML declaration")
	}

	verStart := p.sc.Offset()

	version, ok := p.sc.Until(`"`)
	if !ok || version == "" {
		return "", nil, p.fail(KindNoXMLDeclaration, start, "no XML declaration")
	}

	attrStart := p.sc.Offset()

	blob, ok := p.sc.Until("?>")
	if !ok {
		return "", nil, p.fail(KindNoXMLDeclaration, start, "no XML declaration")
	}

	if version != SupportedVersion {
		return "", nil, p.fail(KindUnsupportedVersion, verStart, "unsupported XML version %q", version)
	}

	attrs, err := p.parseAttrList(blob, attrStart)
	if err != nil {
		return "", nil, err
	}

	return version, attrs, nil
}

// parseNodes runs the main tag loop, maintaining the stack of open elements through parent links,
// and returns the first child of the synthetic top-level container, if any.
func (p *parser) parseNodes() (*Node, error) {
	top := &Node{}
	current := top

	// Decoded text accumulated since the last ordinary tag.
	var pending strings.Builder

	for !p.sc.EOF() {
		textStart := p.sc.Offset()

		lead, found := p.sc.Until("<")
		if !found {
			break
		}

		decoded, at, ok := unescapeEntity(lead, forbiddenInnerText)
		if !ok {
			return nil, p.fail(KindNoEscapedCharacter, textStart+at,
				"found an unescaped character or an undefined entity")
		}
		pending.WriteString(decoded)

		headStart := p.sc.Offset()

		switch {
		case p.sc.ConsumeString("!--"):
			if err := p.skipComment(headStart); err != nil {
				return nil, err
			}

		case p.sc.ConsumeString("![CDATA["):
			data, ok := p.sc.Until("]]>")
			if !ok {
				return nil, p.fail(KindMissingClosingTag, headStart, "missing an end of the CDATA section")
			}

			// CDATA content is taken verbatim, without entity processing.
			pending.WriteString(data)

		default:
			if err := p.parseTag(&current, top, &pending, headStart); err != nil {
				return nil, err
			}
		}
	}

	// Comments may legally trail after the root element closes; the loop above already skipped
	// them. Anything left over must be whitespace.
	if !isBlank(p.sc.Rest()) {
		return nil, p.fail(KindIllegalFormatTrailingContent, p.sc.Offset(), "illegal format")
	}

	if len(top.Children) == 0 {
		return nil, nil
	}

	root := top.Children[0]
	root.parent = nil
	return root, nil
}

// skipComment consumes a comment body up to and including "-->", discarding the content.
// headStart is the offset of the "!--" head, used for error positions.
func (p *parser) skipComment(headStart int) error {
	rest := p.sc.Rest()

	idx := strings.Index(rest, "--")
	if idx < 0 {
		return p.fail(KindMissingClosingTag, headStart, "missing an end of the comment section")
	}

	if idx+2 >= len(rest) || rest[idx+2] != '>' {
		return p.fail(KindIllegalComment, p.sc.Offset()+idx,
			"two dashes in the middle of a comment are not allowed")
	}

	// The first "--" is part of a "-->", so this never fails.
	_, _ = p.sc.Until("-->")
	return nil
}

// parseTag handles an ordinary tag whose head starts at headStart, just past the '<'. current
// follows the innermost open element; top is the synthetic container.
func (p *parser) parseTag(current **Node, top *Node, pending *strings.Builder, headStart int) error {
	name := p.takeName()
	if name == "" {
		return p.fail(KindNoNameTag, headStart, "found a no name tag")
	}

	if idx := strings.IndexAny(name, `<>'"&`); idx >= 0 {
		return p.fail(KindIllegalTagName, headStart+idx, "illegal character in the tag name %q", name)
	}

	blobStart := p.sc.Offset()

	blob, ok := p.sc.Until(">")
	if !ok {
		return p.fail(KindMissingClosingTag, headStart, `missing ">" for the tag %q`, name)
	}

	selfClosing := strings.HasSuffix(blob, "/")
	markAt := blobStart + len(blob) - 1
	if selfClosing {
		blob = blob[:len(blob)-1]
	}

	attrs, err := p.parseAttrList(blob, blobStart)
	if err != nil {
		return err
	}

	node := *current

	if buf := pending.String(); !isBlank(buf) {
		node.Children = append(node.Children, &Node{parent: node, Name: TextNodeName, Value: buf})
	}
	pending.Reset()

	if strings.HasPrefix(name, "/") {
		switch {
		case selfClosing:
			return p.fail(KindClosingTagSelfClosing, markAt, `closing tag can not end with "/>", %q`, name)
		case node == top:
			return p.fail(KindMismatchedClosingTag, headStart, "missing an opening tag for the tag %q", name)
		case name[1:] != node.Name:
			return p.fail(KindMismatchedClosingTag, headStart, "missing a closing tag for the tag %q", node.Name)
		case len(attrs) != 0:
			return p.fail(KindClosingTagWithAttributes, headStart, "closing tag can not have attributes, %q", name)
		}

		// Collapse a sole text child into the element before it is sealed.
		if len(node.Children) == 1 && node.Children[0].Name == TextNodeName {
			node.Value = node.Children[0].Value
			node.Children = nil
		}

		*current = node.parent
		return nil
	}

	child := &Node{parent: node, Name: name, Attr: attrs}
	node.Children = append(node.Children, child)

	if !selfClosing {
		*current = child
	}
	return nil
}

// takeName consumes a tag name: an optional leading '/' followed by bytes up to the next
// whitespace, '>' or '/'. Illegal characters pass through here and are rejected by the caller so
// they can be reported with their own kind.
func (p *parser) takeName() string {
	start := p.sc.Offset()

	_ = p.sc.Consume('/')
	_ = p.sc.TakeWhile(func(c byte) bool {
		return c != '>' && c != '/' && !isSpace(c)
	})

	return p.input[start:p.sc.Offset()]
}
