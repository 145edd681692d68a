package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromFragment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := strings.NewReader("<p>Hello <b>World</b>!</p>")
	root, err := FromFragment(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if root.Value().Tag != "#fragment" {
		t.Fatalf("expected a synthetic fragment root, got %v", root.Value())
	}
	if root.Degree() != 1 {
		t.Fatalf("expected one top-level node, got %d", root.Degree())
	}
	p, err := root.Child(0)
	if err != nil {
		t.Fatal(err)
	}
	if el := p.Value(); el.Kind != Elem || el.Tag != "p" {
		t.Errorf("expected a <p> element, got %v", el)
	}
	if p.Degree() != 3 { // text, <b>, text
		t.Errorf("expected 3 children of <p>, got %d", p.Degree())
	}
}

func TestFromFragmentMultipleRoots(t *testing.T) {
	input := strings.NewReader("<p>one</p><p>two</p>")
	root, err := FromFragment(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if root.Degree() != 2 {
		t.Errorf("expected two top-level nodes, got %d", root.Degree())
	}
}

func TestFromHTML(t *testing.T) {
	input := strings.NewReader("<html><body><p>Hi</p></body></html>")
	root, err := FromHTML(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if el := root.Value(); el.Kind != Elem || el.Tag != "html" {
		t.Fatalf("expected an <html> root, got %v", el)
	}
	if !arbor.Contains[Element](root, Element{Kind: Elem, Tag: "p"}) {
		t.Errorf("expected to find the <p> element")
	}
}

func TestInnerText(t *testing.T) {
	input := strings.NewReader("<p>Hello <b>World</b>!</p>")
	root, err := FromFragment(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	text := InnerText(arbor.Node[Element](root))
	if text != "Hello World!" {
		t.Errorf("expected inner text %q, got %q", "Hello World!", text)
	}
}

func TestElementTreesAreComparable(t *testing.T) {
	a, err := FromFragment(strings.NewReader("<p>one</p>"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromFragment(strings.NewReader("<p>one</p>"))
	if err != nil {
		t.Fatal(err)
	}
	if !arbor.Equal[Element](a, b) {
		t.Errorf("expected equal fragments to compare equal")
	}
	query := arbor.NewArrayTree(Element{Kind: Elem, Tag: "p"})
	if err := query.AddChild(arbor.NewArrayTree(Element{Kind: Text, Text: "one"})); err != nil {
		t.Fatal(err)
	}
	if !arbor.ContainsSubTree[Element](a, query) {
		t.Errorf("expected the fragment to contain the hand-built query tree")
	}
}
