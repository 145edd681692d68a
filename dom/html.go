package dom

import (
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind discriminates element payloads.
type Kind int8

const (
	// Elem is a markup element, carrying its tag name.
	Elem Kind = iota
	// Text is a text fragment, carrying its content.
	Text
)

// Element is the tree payload for HTML content. It is comparable, so the
// equality-based tree operations (Contains, Equal, ContainsSubTree) apply.
type Element struct {
	Kind Kind
	Tag  string // tag name for Elem payloads
	Text string // content for Text payloads
}

func (e Element) String() string {
	if e.Kind == Text {
		return "“" + e.Text + "”"
	}
	return "<" + e.Tag + ">"
}

// FromHTML parses a complete HTML document from input and returns it as a
// tree rooted at the document's root element.
func FromHTML(input io.Reader) (*arbor.ArrayTree[Element], error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	root := fromNode(doc)
	if root == nil {
		return nil, arbor.ErrIllegalArguments
	}
	return root, nil
}

// FromFragment parses an HTML fragment from input. Since a fragment may
// carry more than one top-level node, the result is rooted at a synthetic
// element with tag name "#fragment".
func FromFragment(input io.Reader) (*arbor.ArrayTree[Element], error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, context)
	if err != nil {
		return nil, err
	}
	root := arbor.NewArrayTree(Element{Kind: Elem, Tag: "#fragment"})
	for _, n := range nodes {
		if sub := fromNode(n); sub != nil {
			if err := root.AddChild(sub); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

// fromNode converts a parse-tree node. Non-element, non-text nodes
// (comments, doctype) are skipped; their element children are hoisted to
// the nearest converted ancestor. Whitespace-only text is dropped.
func fromNode(n *html.Node) *arbor.ArrayTree[Element] {
	var t *arbor.ArrayTree[Element]
	switch n.Type {
	case html.DocumentNode:
		// hoist: return the first convertible child (the <html> element)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if sub := fromNode(c); sub != nil {
				return sub
			}
		}
		return nil
	case html.ElementNode:
		t = arbor.NewArrayTree(Element{Kind: Elem, Tag: n.Data})
		tracer().Debugf("<%s>", n.Data)
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return arbor.NewArrayTree(Element{Kind: Text, Text: n.Data})
	default:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if sub := fromNode(c); sub != nil {
			if err := t.AddChild(sub); err != nil {
				tracer().Errorf("dom: cannot attach child: %s", err.Error())
			}
		}
	}
	return t
}

// InnerText returns the textual content of the element node and all its
// descendants. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that dom.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendants). Fragments are
// concatenated in document (pre-order) order.
func InnerText(n arbor.Node[Element]) string {
	var sb strings.Builder
	for node := range arbor.RangePreOrder(n) {
		if el := node.Value(); el.Kind == Text {
			sb.WriteString(el.Text)
		}
	}
	return sb.String()
}
