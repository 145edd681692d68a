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

// ErrSlotsOccupied is flagged when a value is added to a binary node which
// already has both children.
const ErrSlotsOccupied = TreeError("binary node already has two children")

// BinaryTree is a tree node with exactly two optionally empty, named child
// slots, left and right. Child enumeration yields left before right and
// skips empty slots.
//
// Error signaling follows the same sentinel-error convention as ArrayTree.
type BinaryTree[T any] struct {
	core[T]
	left, right *BinaryTree[T]
}

// NewBinaryTree creates a single-node tree carrying value v.
func NewBinaryTree[T any](v T) *BinaryTree[T] {
	t := &BinaryTree[T]{}
	t.value = v
	return t
}

func (t *BinaryTree[T]) String() string {
	return fmt.Sprintf("(BinaryTree #ch=%d %v)", t.Degree(), t.value)
}

// SetValue replaces the node's payload. The value change counts as a
// structural event and is propagated to all ancestors.
func (t *BinaryTree[T]) SetValue(v T) error {
	t.value = v
	bumpChain[T](t)
	return nil
}

// Left returns the left child, or nil if the slot is empty.
func (t *BinaryTree[T]) Left() *BinaryTree[T] {
	return t.left
}

// Right returns the right child, or nil if the slot is empty.
func (t *BinaryTree[T]) Right() *BinaryTree[T] {
	return t.right
}

// Degree returns the number of occupied child slots.
func (t *BinaryTree[T]) Degree() int {
	d := 0
	if t.left != nil {
		d++
	}
	if t.right != nil {
		d++
	}
	return d
}

// Children enumerates left, then right, skipping empty slots.
func (t *BinaryTree[T]) Children() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		if t.left != nil && !yield(t.left) {
			return
		}
		if t.right != nil {
			yield(t.right)
		}
	}
}

// SetLeft grafts ch into the left slot. A nil argument clears the slot,
// pruning the former occupant. Replacing one occupant by another is a single
// structural event on this node's chain; detaching ch from a former parent
// is a separate event there.
func (t *BinaryTree[T]) SetLeft(ch *BinaryTree[T]) error {
	return t.setSlot(&t.left, ch)
}

// SetRight grafts ch into the right slot, with the same semantics as SetLeft.
func (t *BinaryTree[T]) SetRight(ch *BinaryTree[T]) error {
	return t.setSlot(&t.right, ch)
}

func (t *BinaryTree[T]) setSlot(slot **BinaryTree[T], ch *BinaryTree[T]) error {
	old := *slot
	if old == ch {
		return nil
	}
	if ch == nil {
		*slot = nil
		old.parent = nil
		bumpChain[T](t)
		return nil
	}
	if err := checkGraft[T](t, ch); err != nil {
		return err
	}
	if p, ok := ch.Parent().(*BinaryTree[T]); ok && p == t {
		// slot-to-slot move within this node is a reorder
		if t.left == ch {
			t.left = nil
		} else {
			t.right = nil
		}
	} else {
		detach[T](ch) // no-op for a root
	}
	if old != nil {
		old.parent = nil
	}
	*slot = ch
	ch.parent = t
	bumpChain[T](t)
	return nil
}

// Add creates a new child node carrying value v in the first free slot,
// left before right, and returns it. Adding to a node with both slots
// occupied is flagged with ErrSlotsOccupied.
func (t *BinaryTree[T]) Add(v T) (*BinaryTree[T], error) {
	ch := NewBinaryTree(v)
	switch {
	case t.left == nil:
		t.left = ch
	case t.right == nil:
		t.right = ch
	default:
		return nil, ErrSlotsOccupied
	}
	ch.parent = t
	bumpChain[T](t)
	return ch, nil
}

// Isolate removes this node from its parent, if any, turning it into an
// independent tree. It returns the isolated node.
func (t *BinaryTree[T]) Isolate() *BinaryTree[T] {
	detach[T](t)
	return t
}

func (t *BinaryTree[T]) detachChild(ch Node[T]) bool {
	if t.left != nil && Node[T](t.left) == ch {
		t.left = nil
		return true
	}
	if t.right != nil && Node[T](t.right) == ch {
		t.right = nil
		return true
	}
	return false
}

// RangeInOrder iterates over the subtree rooted at start in in-order: left
// subtree, node, right subtree. The walk pre-descends along left children
// with an explicit stack. In-order is defined for binary trees only.
func RangeInOrder[T any](start *BinaryTree[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		var stack []*BinaryTree[T]
		cur := start
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			cur = n.right
		}
	}
}

// EachInOrder visits the subtree rooted at start in in-order. Iteration
// stops at the first callback error and returns that error. A structural
// change observed between visits aborts with ErrConcurrentMutation.
func EachInOrder[T any](start *BinaryTree[T], f func(Node[T]) error) error {
	if start == nil || f == nil {
		return ErrIllegalArguments
	}
	type slot struct {
		node *BinaryTree[T]
		mod  uint64
	}
	var stack []slot
	cur := start
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, slot{node: cur, mod: cur.mod})
			cur = cur.left
		}
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.node.mod != s.mod {
			return ErrConcurrentMutation
		}
		if err := f(s.node); err != nil {
			return err
		}
		cur = s.node.right
	}
	return nil
}
