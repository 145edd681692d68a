package arbor

import (
	"errors"
	"testing"
)

// chain3 builds the three-level chain
//
//	        4
//	      /   \
//	     2     6
//	    / \   / \
//	   1   3 5   7
func chain3(t *testing.T) *BinaryTree[int] {
	t.Helper()
	root := NewBinaryTree(4)
	l := NewBinaryTree(2)
	r := NewBinaryTree(6)
	if err := root.SetLeft(l); err != nil {
		t.Fatalf("unexpected SetLeft error: %v", err)
	}
	if err := root.SetRight(r); err != nil {
		t.Fatalf("unexpected SetRight error: %v", err)
	}
	_ = l.SetLeft(NewBinaryTree(1))
	_ = l.SetRight(NewBinaryTree(3))
	_ = r.SetLeft(NewBinaryTree(5))
	_ = r.SetRight(NewBinaryTree(7))
	return root
}

func TestBinaryTreeInOrder(t *testing.T) {
	root := chain3(t)
	var values []int
	for n := range RangeInOrder(root) {
		values = append(values, n.Value())
	}
	expect := []int{1, 2, 3, 4, 5, 6, 7}
	if len(values) != len(expect) {
		t.Fatalf("expected %d in-order values, got %d", len(expect), len(values))
	}
	for i, v := range expect {
		if values[i] != v {
			t.Fatalf("expected in-order values %v, got %v", expect, values)
		}
	}
}

func TestBinaryTreeChildEnumeration(t *testing.T) {
	root := NewBinaryTree("root")
	_ = root.SetRight(NewBinaryTree("right"))
	var values []string
	for ch := range root.Children() {
		values = append(values, ch.Value())
	}
	if len(values) != 1 || values[0] != "right" {
		t.Errorf("expected enumeration to skip the empty left slot, got %v", values)
	}
	if root.Degree() != 1 {
		t.Errorf("expected degree 1, got %d", root.Degree())
	}
}

func TestBinaryTreeSelfGraftRejected(t *testing.T) {
	root := NewBinaryTree(1)
	if err := root.SetLeft(root); !errors.Is(err, ErrGraftCycle) {
		t.Fatalf("expected ErrGraftCycle for self-graft, got %v", err)
	}
	leaf := NewBinaryTree(2)
	_ = root.SetLeft(leaf)
	if err := leaf.SetRight(root); !errors.Is(err, ErrGraftCycle) {
		t.Fatalf("expected ErrGraftCycle for ancestor-graft, got %v", err)
	}
	if root.left != leaf || leaf.Parent() != Node[int](root) {
		t.Errorf("rejected graft corrupted the structure")
	}
}

func TestBinaryTreeClearSlot(t *testing.T) {
	root := NewBinaryTree(1)
	leaf := NewBinaryTree(2)
	_ = root.SetLeft(leaf)
	before := root.mod
	if err := root.SetLeft(nil); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if root.left != nil || leaf.Parent() != nil {
		t.Errorf("clearing the slot did not prune the child")
	}
	if root.mod != before+1 {
		t.Errorf("expected one prune event, counter %d -> %d", before, root.mod)
	}
}

func TestBinaryTreeAdd(t *testing.T) {
	root := NewBinaryTree(1)
	l, err := root.Add(2)
	if err != nil || root.left != l {
		t.Fatalf("expected first Add to fill the left slot, got %v", err)
	}
	r, err := root.Add(3)
	if err != nil || root.right != r {
		t.Fatalf("expected second Add to fill the right slot, got %v", err)
	}
	if _, err = root.Add(4); !errors.Is(err, ErrSlotsOccupied) {
		t.Fatalf("expected ErrSlotsOccupied on a full node, got %v", err)
	}
}

func TestBinaryTreeReparentAcrossTrees(t *testing.T) {
	a := NewBinaryTree("a")
	b := NewBinaryTree("b")
	mover := NewBinaryTree("m")
	_ = a.SetLeft(mover)
	aBefore, bBefore := a.mod, b.mod
	if err := b.SetRight(mover); err != nil {
		t.Fatalf("unexpected reparent error: %v", err)
	}
	if a.left != nil || b.right != mover || mover.Parent() != Node[string](b) {
		t.Errorf("reparenting did not rewire slots and parent link")
	}
	if a.mod != aBefore+1 || b.mod != bBefore+1 {
		t.Errorf("expected one event per chain, a: %d -> %d, b: %d -> %d",
			aBefore, a.mod, bBefore, b.mod)
	}
}

func TestBinaryTreeSlotMoveIsReorder(t *testing.T) {
	root := NewBinaryTree(0)
	ch := NewBinaryTree(1)
	_ = root.SetLeft(ch)
	before := root.mod
	if err := root.SetRight(ch); err != nil {
		t.Fatalf("unexpected slot move error: %v", err)
	}
	if root.left != nil || root.right != ch {
		t.Errorf("slot move did not relocate the child")
	}
	if root.mod != before+1 {
		t.Errorf("slot move must bump exactly once, counter %d -> %d", before, root.mod)
	}
}

func TestEachInOrderDetectsMutation(t *testing.T) {
	root := chain3(t)
	seen := 0
	err := EachInOrder(root, func(n Node[int]) error {
		seen++
		if seen == 1 {
			_, e := root.Right().Add(8)
			if !errors.Is(e, ErrSlotsOccupied) {
				t.Fatalf("fixture changed, expected full node")
			}
			_ = root.Right().SetRight(nil) // structural change mid-walk
		}
		return nil
	})
	if !errors.Is(err, ErrConcurrentMutation) {
		t.Fatalf("expected ErrConcurrentMutation, got %v", err)
	}
}
