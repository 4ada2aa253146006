package xmltree

import (
	"maps"
	"slices"
	"strings"
)

// Document is the result of a successful [Parse] call.
//
// Documents are never modified after construction and are safe for concurrent reads.
type Document struct {
	// Version is the version from the XML declaration. It is always [SupportedVersion].
	Version string

	// Attr contains any extra attributes found on the declaration, such as "encoding" or
	// "standalone", or nil if there are none. A declared encoding is recorded but not acted upon.
	Attr map[string]string

	// Root is the document root element, or nil if the document contains no element at all.
	Root *Node
}

// Node is a single element or text node in a parsed document.
//
// A Node is either an element node or a text node: text nodes have the name [TextNodeName] and
// carry no attributes and no children.
type Node struct {
	// parent is a non-owning back-reference to the enclosing node, nil for the root. It is only
	// needed while parsing, to pop the open-element stack and validate closing tags.
	parent *Node

	// Name is the tag name of the element, or [TextNodeName] for synthetic text nodes.
	Name string

	// Attr contains the decoded attributes of the element, or nil if there are none. Duplicate
	// attribute names are silently overwritten in scan order, so the last occurrence wins.
	Attr map[string]string

	// Value holds the literal text of a text node. As a normalization step it also holds the text
	// of any element whose entire content is a single text child.
	Value string

	// Children contains the child nodes in document order. It is empty for self-closing,
	// attribute-only and collapsed nodes.
	Children []*Node
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// InnerText returns the concatenation of the node's own value and the inner text of every child,
// depth-first, left-to-right.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.innerText(&sb)
	return sb.String()
}

func (n *Node) innerText(sb *strings.Builder) {
	sb.WriteString(n.Value)

	for _, child := range n.Children {
		child.innerText(sb)
	}
}

// Description returns an indented multi-line outline of the document for diagnostics.
//
// The output is not a serialization format: it is not guaranteed to parse back into an equal
// document.
func (d *Document) Description() string {
	var sb strings.Builder

	sb.WriteString("XML version=")
	sb.WriteString(d.Version)
	sb.WriteByte('\n')

	if d.Root != nil {
		d.Root.describe(&sb, 0)
	}

	return sb.String()
}

// Description returns an indented multi-line outline of the node and its children for diagnostics.
func (n *Node) Description() string {
	var sb strings.Builder
	n.describe(&sb, 0)
	return sb.String()
}

func (n *Node) describe(sb *strings.Builder, indent int) {
	for range indent {
		sb.WriteByte(' ')
	}

	sb.WriteString("+ ")
	sb.WriteString(n.Name)

	for _, key := range slices.Sorted(maps.Keys(n.Attr)) {
		sb.WriteString(", ")
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(n.Attr[key])
	}

	if n.Value != "" {
		sb.WriteString(", ")
		sb.WriteString(n.Value)
	}

	sb.WriteByte('\n')

	for _, child := range n.Children {
		child.describe(sb, indent+1)
	}
}
