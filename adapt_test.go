package arbor

import (
	"errors"
	"strconv"
	"testing"
)

func TestAdaptConvertsValues(t *testing.T) {
	root := fixture()
	view := Adapt(Node[int](root), strconv.Itoa)
	if view.Value() != "1" {
		t.Fatalf("expected converted root value %q, got %q", "1", view.Value())
	}
	var values []string
	for n := range RangeBreadthFirst(view) {
		values = append(values, n.Value())
	}
	expect := []string{"1", "2", "3", "4", "5", "6"}
	if len(values) != len(expect) {
		t.Fatalf("expected %v, got %v", expect, values)
	}
	for i := range expect {
		if values[i] != expect[i] {
			t.Fatalf("expected %v, got %v", expect, values)
		}
	}
}

func TestAdaptSharesStructure(t *testing.T) {
	root := fixture()
	view := Adapt(Node[int](root), strconv.Itoa)
	root.Add(7) // mutate the underlying tree after adapting
	if view.Degree() != 3 {
		t.Errorf("expected the view to reflect the added child")
	}
	if Size(view) != 7 {
		t.Errorf("expected view size 7, got %d", Size(view))
	}
}

func TestAdaptIsReadOnly(t *testing.T) {
	root := fixture()
	view := Adapt(Node[int](root), strconv.Itoa)
	if err := view.SetValue("x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported from SetValue on a view, got %v", err)
	}
}

func TestAdaptFailFastThroughView(t *testing.T) {
	root := fixture()
	view := Adapt(Node[int](root), strconv.Itoa)
	visited := 0
	err := EachBreadthFirst(view, func(n Node[string]) error {
		visited++
		if visited == 1 {
			root.Add(7) // counters shine through the view
		}
		return nil
	})
	if !errors.Is(err, ErrConcurrentMutation) {
		t.Fatalf("expected ErrConcurrentMutation through the view, got %v", err)
	}
}

func TestAdaptFold(t *testing.T) {
	root := fixture()
	view := Adapt(Node[int](root), strconv.Itoa)
	all := func(Node[string]) bool { return true }
	concat := func(r, v string) string { return r + v }
	joined, ok := Fold(view, all, concat, "")
	if !ok {
		t.Fatalf("expected fold over a view to succeed")
	}
	if joined != "123456" {
		t.Errorf("expected breadth-first concatenation %q, got %q", "123456", joined)
	}
}

func TestAdaptParentChain(t *testing.T) {
	root := fixture()
	four, _ := Find[int](root, 4)
	view := Adapt(four, strconv.Itoa)
	var chain []string
	for a := range RangeAncestors(view) {
		chain = append(chain, a.Value())
	}
	if len(chain) != 2 || chain[0] != "2" || chain[1] != "1" {
		t.Errorf("expected ancestral view chain [2 1], got %v", chain)
	}
}
