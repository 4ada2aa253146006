package xmltree_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Qazwar/xmltree"
)

// decl is the shortest valid declaration, 21 bytes long. Offsets in expected errors below count
// from the start of the full input.
const decl = `<?xml version="1.0"?>`

func TestParse(t *testing.T) {
	parseError := func(kind xmltree.Kind, at, line, column int, message string) *xmltree.Error {
		return &xmltree.Error{Kind: kind, At: at, Line: line, Column: column, Message: message}
	}

	testCases := []struct {
		Name     string
		Input    string
		Document *xmltree.Document
		Error    error
	}{
		{
			Name:  "empty",
			Input: ``,
			Error: parseError(xmltree.KindNoXMLDeclaration, 0, 1, 1, "no XML declaration"),
		},
		{
			Name:  "declaration without version",
			Input: `<?xml?>`,
			Error: parseError(xmltree.KindNoXMLDeclaration, 0, 1, 1, "no XML declaration"),
		},
		{
			Name:  "declaration not at start",
			Input: ` <?xml version="1.0"?>`,
			Error: parseError(xmltree.KindNoXMLDeclaration, 0, 1, 1, "no XML declaration"),
		},
		{
			Name:  "declaration without question marks",
			Input: `<xml version="1.0">`,
			Error: parseError(xmltree.KindNoXMLDeclaration, 0, 1, 1, "no XML declaration"),
		},
		{
			Name:  "declaration without end",
			Input: `<?xml version="1.0"`,
			Error: parseError(xmltree.KindNoXMLDeclaration, 0, 1, 1, "no XML declaration"),
		},
		{
			Name:     "declaration only",
			Input:    decl,
			Document: &xmltree.Document{Version: "1.0"},
		},
		{
			Name:     "declaration with trailing whitespace",
			Input:    decl + "\n\t ",
			Document: &xmltree.Document{Version: "1.0"},
		},
		{
			Name:  "declaration with attributes",
			Input: `<?xml version="1.0" encoding="UTF-8" standalone='yes'?>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Attr:    map[string]string{"encoding": "UTF-8", "standalone": "yes"},
			},
		},
		{
			Name:  "unsupported version",
			Input: `<?xml version="0.9"?>`,
			Error: parseError(xmltree.KindUnsupportedVersion, 15, 1, 16, `unsupported XML version "0.9"`),
		},
		{
			Name:  "declaration with illegal attributes",
			Input: `<?xml version="1.0" standalone?>`,
			Error: parseError(xmltree.KindIllegalAttributes, 20, 1, 21, "illegal attributes"),
		},

		{
			Name:  "self-closing root",
			Input: decl + `<root/>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "root"},
			},
		},
		{
			Name:  "empty element",
			Input: decl + `<a></a>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "a"},
			},
		},
		{
			Name:  "sole text child collapses into the element",
			Input: decl + `<a><b>x</b></a>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Children: []*xmltree.Node{
						{Name: "b", Value: "x"},
					},
				},
			},
		},
		{
			Name:  "mixed text and element children",
			Input: decl + `<a>x<b/>y</a>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Children: []*xmltree.Node{
						{Name: "#text", Value: "x"},
						{Name: "b"},
						{Name: "#text", Value: "y"},
					},
				},
			},
		},
		{
			Name:  "whitespace only text is discarded",
			Input: decl + `<a> <b/> </a>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Children: []*xmltree.Node{
						{Name: "b"},
					},
				},
			},
		},
		{
			Name:  "unclosed elements at end of input are allowed",
			Input: decl + `<a><b>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Children: []*xmltree.Node{
						{Name: "b"},
					},
				},
			},
		},
		{
			Name:  "siblings after the first root are ignored",
			Input: decl + `<a/><b/>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "a"},
			},
		},

		{
			Name:  "element attributes with both quote styles",
			Input: decl + `<a href="x" title='y'/>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Attr: map[string]string{"href": "x", "title": "y"},
				},
			},
		},
		{
			Name:  "duplicate attribute keys last wins",
			Input: decl + `<a x="1" x="2"/>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Attr: map[string]string{"x": "2"},
				},
			},
		},
		{
			Name:  "attributes without separating whitespace",
			Input: decl + `<a x="1"y="2"/>`,
			Error: parseError(xmltree.KindIllegalAttributes, 29, 1, 30, "illegal attributes"),
		},

		{
			Name:  "predefined entities in text",
			Input: decl + `<value>&lt;&gt;&apos;&quot;&amp;</value>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "value", Value: `<>'"&`},
			},
		},
		{
			Name:  "numeric references pass through unchanged",
			Input: decl + `<v>&#160;&#x2663;</v>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "v", Value: "&#160;&#x2663;"},
			},
		},
		{
			Name:  "bare ampersand in text",
			Input: decl + `<value>&</value>`,
			Error: parseError(xmltree.KindNoEscapedCharacter, 28, 1, 29,
				"found an unescaped character or an undefined entity"),
		},
		{
			Name:  "short hex reference",
			Input: decl + `<v>&#x12;</v>`,
			Error: parseError(xmltree.KindNoEscapedCharacter, 24, 1, 25,
				"found an unescaped character or an undefined entity"),
		},
		{
			Name:  "unescaped angle bracket in attribute value",
			Input: decl + `<a x="a<b">`,
			Error: parseError(xmltree.KindNoEscapedCharacter, 28, 1, 29,
				"found an unescaped character or an undefined entity"),
		},
		{
			Name:  "raw apostrophe in double-quoted attribute value",
			Input: decl + `<a x="it's"/>`,
			Error: parseError(xmltree.KindNoEscapedCharacter, 29, 1, 30,
				"found an unescaped character or an undefined entity"),
		},
		{
			Name:  "raw double quote in single-quoted attribute value",
			Input: decl + `<a x='say "hi"'/>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root: &xmltree.Node{
					Name: "a",
					Attr: map[string]string{"x": `say "hi"`},
				},
			},
		},

		{
			Name:  "cdata is taken verbatim",
			Input: decl + `<t>A<![CDATA[<raw> & stuff]]>B</t>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "t", Value: "A<raw> & stuffB"},
			},
		},
		{
			Name:  "cdata without end",
			Input: decl + `<t><![CDATA[x`,
			Error: parseError(xmltree.KindMissingClosingTag, 25, 1, 26, "missing an end of the CDATA section"),
		},

		{
			Name:  "comments around the root are skipped",
			Input: decl + `<!-- note --><a/><!-- after -->`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "a"},
			},
		},
		{
			Name:  "comment with single dashes",
			Input: decl + `<!-- a-b --><r/>`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "r"},
			},
		},
		{
			Name:  "comment without end",
			Input: decl + `<!--`,
			Error: parseError(xmltree.KindMissingClosingTag, 22, 1, 23, "missing an end of the comment section"),
		},
		{
			Name:  "double dash inside comment",
			Input: decl + `<!-- -- -->`,
			Error: parseError(xmltree.KindIllegalComment, 26, 1, 27,
				"two dashes in the middle of a comment are not allowed"),
		},
		{
			Name:  "double dash at end of input",
			Input: decl + `<!-- --`,
			Error: parseError(xmltree.KindIllegalComment, 26, 1, 27,
				"two dashes in the middle of a comment are not allowed"),
		},

		{
			Name:  "no name tag",
			Input: decl + `<>`,
			Error: parseError(xmltree.KindNoNameTag, 22, 1, 23, "found a no name tag"),
		},
		{
			Name:  "illegal character in tag name",
			Input: decl + `<a&b>`,
			Error: parseError(xmltree.KindIllegalTagName, 23, 1, 24, `illegal character in the tag name "a&b"`),
		},
		{
			Name:  "tag without closing bracket",
			Input: decl + `<a`,
			Error: parseError(xmltree.KindMissingClosingTag, 22, 1, 23, `missing ">" for the tag "a"`),
		},
		{
			Name:  "mismatched closing tag case",
			Input: decl + `<Test>x</test>`,
			Error: parseError(xmltree.KindMismatchedClosingTag, 29, 1, 30, `missing a closing tag for the tag "Test"`),
		},
		{
			Name:  "closing tag with nothing open",
			Input: decl + `</a>`,
			Error: parseError(xmltree.KindMismatchedClosingTag, 22, 1, 23, `missing an opening tag for the tag "/a"`),
		},
		{
			Name:  "closing tag with attributes",
			Input: decl + `<a></a x="1">`,
			Error: parseError(xmltree.KindClosingTagWithAttributes, 25, 1, 26,
				`closing tag can not have attributes, "/a"`),
		},
		{
			Name:  "closing tag with self-closing marker",
			Input: decl + `<a></a/>`,
			Error: parseError(xmltree.KindClosingTagSelfClosing, 27, 1, 28,
				`closing tag can not end with "/>", "/a"`),
		},

		{
			Name:  "trailing content after root",
			Input: decl + `<a/>junk`,
			Error: parseError(xmltree.KindIllegalFormatTrailingContent, 25, 1, 26, "illegal format"),
		},
		{
			Name:  "trailing comment with whitespace",
			Input: decl + `<a/> <!-- tail --> `,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "a"},
			},
		},
		{
			Name:  "text before a trailing comment is dropped",
			Input: decl + `<a/>x<!-- tail -->`,
			Document: &xmltree.Document{
				Version: "1.0",
				Root:    &xmltree.Node{Name: "a"},
			},
		},

		{
			Name:  "error position on a later line",
			Input: decl + "\n<a>\n&\n</a>",
			Error: parseError(xmltree.KindNoEscapedCharacter, 26, 3, 1,
				"found an unescaped character or an undefined entity"),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			doc, err := xmltree.Parse(testCase.Input)

			if diff := cmp.Diff(testCase.Document, doc, cmpopts.IgnoreUnexported(xmltree.Node{})); diff != "" {
				t.Errorf("Parse(...): (-want +got):\n%s", diff)
			}

			if !errors.Is(testCase.Error, err) {
				t.Errorf("got error %v, want %v", err, testCase.Error)
			}
		})
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	_, err := xmltree.Parse(decl + "\n<a>\n&\n</a>")
	if err == nil {
		t.Fatal("Parse(...) = <nil>, want error")
	}

	want := "found an unescaped character or an undefined entity on line 3 at column 1"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var perr *xmltree.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *xmltree.Error", err)
	}

	if got := perr.Offset(); got != 26 {
		t.Errorf("Offset() = %d, want %d", got, 26)
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()

	input := `<?xml version="1.0" encoding="UTF-8"?>
<!--Comment stest stes ets etest -->
<node>
<!--Comment stest stes ets etest -->
    <test value="test">TEST<![CDATA[<ads> Scripting]]>TEST</test>
    <value>
        text before test tag&#160;&lt;&#x2663;
        <test value='"&apos;test"'/>
        text after test tag
    </value>
</node>
`

	for b.Loop() {
		if _, err := xmltree.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
