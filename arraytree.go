package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// ArrayTree is a tree node whose children live in a growable, ordered,
// index-addressable array. Inserting at index i shifts the children at
// positions ≥ i up by one, removing at i shifts down by one; per-mutation
// cost is linear in the number of children.
//
// All mutating operations maintain the tree invariant and bump the
// modification counters of the node and its ancestors. Error signaling uses
// sentinel errors checked with errors.Is — there are no boolean failure
// returns.
type ArrayTree[T any] struct {
	core[T]
	children []*ArrayTree[T]
}

// NewArrayTree creates a single-node tree carrying value v.
func NewArrayTree[T any](v T) *ArrayTree[T] {
	t := &ArrayTree[T]{}
	t.value = v
	return t
}

func (t *ArrayTree[T]) String() string {
	return fmt.Sprintf("(ArrayTree #ch=%d %v)", len(t.children), t.value)
}

// SetValue replaces the node's payload. The value change counts as a
// structural event and is propagated to all ancestors.
func (t *ArrayTree[T]) SetValue(v T) error {
	t.value = v
	bumpChain[T](t)
	return nil
}

// Degree returns the number of direct children.
func (t *ArrayTree[T]) Degree() int {
	return len(t.children)
}

// ChildCount returns the number of direct children.
func (t *ArrayTree[T]) ChildCount() int {
	return len(t.children)
}

// Children enumerates the direct children in array order.
func (t *ArrayTree[T]) Children() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for _, ch := range t.children {
			if !yield(ch) {
				return
			}
		}
	}
}

// Child returns the child at position i, flagging ErrIndexOutOfBounds for
// positions outside [0, ChildCount).
func (t *ArrayTree[T]) Child(i int) (*ArrayTree[T], error) {
	if i < 0 || i >= len(t.children) {
		return nil, ErrIndexOutOfBounds
	}
	return t.children[i], nil
}

// Add creates a new child node carrying value v, appends it after the
// existing children and returns it.
func (t *ArrayTree[T]) Add(v T) *ArrayTree[T] {
	ch := NewArrayTree(v)
	t.children = append(t.children, ch)
	ch.parent = t
	bumpChain[T](t)
	return ch
}

// InsertValue creates a new child node carrying value v at position i,
// shifting the children at positions ≥ i. Valid positions are 0 ≤ i ≤
// ChildCount.
func (t *ArrayTree[T]) InsertValue(i int, v T) (*ArrayTree[T], error) {
	if i < 0 || i > len(t.children) {
		return nil, ErrIndexOutOfBounds
	}
	ch := NewArrayTree(v)
	t.insertAt(i, ch)
	ch.parent = t
	bumpChain[T](t)
	return ch, nil
}

// AddChild grafts the subtree ch as the last child of this node. If ch
// currently has a parent it is detached first, producing a separate
// structural event on its former ancestry.
func (t *ArrayTree[T]) AddChild(ch *ArrayTree[T]) error {
	return t.InsertChild(len(t.children), ch)
}

// InsertChild grafts the subtree ch at child position i, shifting the
// children at positions ≥ i. Valid positions are 0 ≤ i ≤ ChildCount.
//
// Grafting a node that is already a child of this node is a pure reorder:
// it produces exactly one structural event on this node's chain instead of a
// detach/attach pair. Grafting a child of a different parent detaches it
// there first (one event on the old chain), then attaches it here (one event
// on this chain).
func (t *ArrayTree[T]) InsertChild(i int, ch *ArrayTree[T]) error {
	if ch == nil {
		return ErrIllegalArguments
	}
	if i < 0 || i > len(t.children) {
		return ErrIndexOutOfBounds
	}
	if p, ok := ch.Parent().(*ArrayTree[T]); ok && p == t {
		j := t.indexOf(ch)
		assert(j >= 0, "child links to parent, but parent does not store it")
		if j == i || j == i-1 {
			return nil // position unchanged
		}
		t.removeAt(j)
		if j < i {
			i--
		}
		t.insertAt(i, ch)
		bumpChain[T](t)
		return nil
	}
	if err := checkGraft[T](t, ch); err != nil {
		return err
	}
	detach[T](ch) // no-op for a root
	t.insertAt(i, ch)
	ch.parent = t
	bumpChain[T](t)
	return nil
}

// ReplaceChild grafts ch at child position i and returns the child formerly
// stored there, pruned into an independent tree. Replacement is a single
// structural event on this node's chain; detaching ch from a different
// former parent is a separate event there.
func (t *ArrayTree[T]) ReplaceChild(i int, ch *ArrayTree[T]) (*ArrayTree[T], error) {
	if ch == nil {
		return nil, ErrIllegalArguments
	}
	if i < 0 || i >= len(t.children) {
		return nil, ErrIndexOutOfBounds
	}
	old := t.children[i]
	if old == ch {
		return old, nil
	}
	if err := checkGraft[T](t, ch); err != nil {
		return nil, err
	}
	if p, ok := ch.Parent().(*ArrayTree[T]); ok && p == t {
		j := t.indexOf(ch)
		assert(j >= 0, "child links to parent, but parent does not store it")
		t.removeAt(j)
		if j < i {
			i--
		}
		old = t.children[i]
	} else {
		detach[T](ch)
	}
	old.parent = nil
	t.children[i] = ch
	ch.parent = t
	bumpChain[T](t)
	return old, nil
}

// RemoveChild prunes the child at position i and returns it as an
// independent tree.
func (t *ArrayTree[T]) RemoveChild(i int) (*ArrayTree[T], error) {
	if i < 0 || i >= len(t.children) {
		return nil, ErrIndexOutOfBounds
	}
	ch := t.children[i]
	t.removeAt(i)
	ch.parent = nil
	bumpChain[T](t)
	return ch, nil
}

// Isolate removes this node from its parent, if any, turning it into an
// independent tree. It returns the isolated node.
func (t *ArrayTree[T]) Isolate() *ArrayTree[T] {
	detach[T](t)
	return t
}

// --- Storage plumbing ------------------------------------------------------

func (t *ArrayTree[T]) indexOf(ch *ArrayTree[T]) int {
	for i, c := range t.children {
		if c == ch {
			return i
		}
	}
	return -1
}

func (t *ArrayTree[T]) insertAt(i int, ch *ArrayTree[T]) {
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = ch
}

func (t *ArrayTree[T]) removeAt(i int) {
	copy(t.children[i:], t.children[i+1:])
	t.children[len(t.children)-1] = nil
	t.children = t.children[:len(t.children)-1]
}

func (t *ArrayTree[T]) detachChild(ch Node[T]) bool {
	for i, c := range t.children {
		if Node[T](c) == ch {
			t.removeAt(i)
			return true
		}
	}
	return false
}
