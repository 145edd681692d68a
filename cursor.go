package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Order selects the traversal order of a Cursor.
type Order int

const (
	// BreadthFirst visits nodes level by level, shallower nodes first.
	BreadthFirst Order = iota
	// PreOrder visits a node before its descendants.
	PreOrder
	// PostOrder visits a node after its descendants.
	PostOrder
	// ChildrenOnly visits the direct children of the start node, without
	// recursing.
	ChildrenOnly
	// Ancestors visits the start node's parent chain up to the root,
	// excluding the start node itself.
	Ancestors
)

// Cursor is an explicit iterator over a tree, with support for pruning the
// node it is positioned on. It replaces the iterator-remove idiom of other
// ecosystems: Next advances, Node/Value read the current position, Remove
// prunes the current subtree.
//
// Usage follows the scanner idiom:
//
//	cursor := NewCursor(root, PreOrder)
//	for cursor.Next() {
//	    doSomething(cursor.Value())
//	}
//	if cursor.Err() != nil { … }
//
// Every pending node carries a snapshot of its modification counter, taken
// when the node entered the cursor's working set. A snapshot mismatch at
// visit time stops the iteration with ErrConcurrentMutation. Removals
// performed through the cursor itself are sanctioned and will not trip the
// detection.
type Cursor[T any] struct {
	order   Order
	start   Node[T]
	anchor  walkEntry[T]   // snapshot of the start node, taken at creation
	pending []walkEntry[T] // FIFO for breadth-first/children-only, LIFO otherwise
	poDone  []bool         // post-order expansion markers, parallel to pending
	current Node[T]
	removed bool
	err     error
}

// NewCursor creates a cursor over the subtree rooted at start.
func NewCursor[T any](start Node[T], order Order) *Cursor[T] {
	assert(start != nil, "cursor requires a non-nil start node")
	c := &Cursor[T]{order: order, start: start, anchor: enter(start)}
	switch order {
	case BreadthFirst, PreOrder:
		c.pending = []walkEntry[T]{enter(start)}
		c.poDone = nil
	case PostOrder:
		c.pending = []walkEntry[T]{enter(start)}
		c.poDone = []bool{false}
	case ChildrenOnly:
		for ch := range start.Children() {
			c.pending = append(c.pending, enter(ch))
		}
	case Ancestors:
		// nothing to stage, the parent chain is chased live
	default:
		assert(false, "unknown traversal order")
	}
	return c
}

// Next advances the cursor to the next node of the traversal. It returns
// false when the traversal is exhausted or has failed; Err distinguishes the
// two cases.
func (c *Cursor[T]) Next() bool {
	if c.err != nil {
		return false
	}
	// every structural event below the start node propagates a counter bump
	// up to it, so the anchor snapshot catches interference anywhere in the
	// subtree being traversed
	if c.order != Ancestors && c.anchor.stale() {
		c.fail(ErrConcurrentMutation)
		return false
	}
	switch c.order {
	case BreadthFirst:
		return c.nextBreadthFirst()
	case PreOrder:
		return c.nextPreOrder()
	case PostOrder:
		return c.nextPostOrder()
	case ChildrenOnly:
		return c.nextChild()
	case Ancestors:
		return c.nextAncestor()
	}
	return false
}

// Node returns the node the cursor is positioned on. It is a contract
// violation to call Node before the first Next or after Next returned false.
func (c *Cursor[T]) Node() Node[T] {
	assert(c.current != nil, "cursor not positioned at a node")
	return c.current
}

// Value returns the payload of the current node.
func (c *Cursor[T]) Value() T {
	return c.Node().Value()
}

// Err returns the first error encountered by the cursor, or nil.
func (c *Cursor[T]) Err() error {
	return c.err
}

// Remove prunes the subtree the cursor is positioned on, detaching it from
// its parent. The detached subtree is not entered by subsequent Next calls
// (for post-order, its nodes have already been visited). Counters are bumped
// starting at the former parent, and the cursor re-snapshots its pending
// state, so its own mutation does not count as interference.
//
// Remove fails with ErrCursorState before the first Next, after exhaustion,
// or when called twice without an intervening Next; with ErrIllegalArguments
// when the current node is a root; and with ErrUnsupported for the Ancestors
// order and for read-only trees.
func (c *Cursor[T]) Remove() error {
	if c.order == Ancestors {
		return ErrUnsupported
	}
	if c.current == nil || c.removed {
		return ErrCursorState
	}
	if c.current.Parent() == nil {
		return ErrIllegalArguments
	}
	if !detach(c.current) {
		return ErrUnsupported
	}
	c.removed = true
	// the detach bumped counters of nodes which may still be pending,
	// including the anchor
	c.anchor.mod = c.anchor.node.modCount()
	for i := range c.pending {
		c.pending[i].mod = c.pending[i].node.modCount()
	}
	return nil
}

func (c *Cursor[T]) nextBreadthFirst() bool {
	c.expandCurrent(false)
	if len(c.pending) == 0 {
		c.current = nil
		return false
	}
	e := c.pending[0]
	c.pending = c.pending[1:]
	return c.position(e)
}

func (c *Cursor[T]) nextPreOrder() bool {
	c.expandCurrent(true)
	if len(c.pending) == 0 {
		c.current = nil
		return false
	}
	e := c.pending[len(c.pending)-1]
	c.pending = c.pending[:len(c.pending)-1]
	return c.position(e)
}

func (c *Cursor[T]) nextPostOrder() bool {
	for len(c.pending) > 0 {
		top := len(c.pending) - 1
		e, done := c.pending[top], c.poDone[top]
		c.pending = c.pending[:top]
		c.poDone = c.poDone[:top]
		if e.stale() {
			c.fail(ErrConcurrentMutation)
			return false
		}
		if done {
			c.current = e.node
			c.removed = false
			return true
		}
		c.pending = append(c.pending, e)
		c.poDone = append(c.poDone, true)
		chs := childSlice(e.node)
		for i := len(chs) - 1; i >= 0; i-- {
			c.pending = append(c.pending, enter(chs[i]))
			c.poDone = append(c.poDone, false)
		}
	}
	c.current = nil
	return false
}

func (c *Cursor[T]) nextChild() bool {
	c.removed = false
	if len(c.pending) == 0 {
		c.current = nil
		return false
	}
	e := c.pending[0]
	c.pending = c.pending[1:]
	return c.position(e)
}

func (c *Cursor[T]) nextAncestor() bool {
	if c.current == nil {
		if c.start == nil { // already finished once
			return false
		}
		c.current = c.start.Parent()
		c.start = nil
	} else {
		c.current = c.current.Parent()
	}
	return c.current != nil
}

// expandCurrent stages the children of the node most recently returned,
// unless that node has been pruned through Remove. Staging is deferred until
// the subsequent Next call exactly so that Remove can cut off descent.
func (c *Cursor[T]) expandCurrent(lifo bool) {
	if c.current == nil || c.removed {
		c.removed = false
		return
	}
	if lifo {
		chs := childSlice(c.current)
		for i := len(chs) - 1; i >= 0; i-- {
			c.pending = append(c.pending, enter(chs[i]))
		}
	} else {
		for ch := range c.current.Children() {
			c.pending = append(c.pending, enter(ch))
		}
	}
}

func (c *Cursor[T]) position(e walkEntry[T]) bool {
	if e.stale() {
		c.fail(ErrConcurrentMutation)
		return false
	}
	c.current = e.node
	c.removed = false
	return true
}

func (c *Cursor[T]) fail(err error) {
	c.err = err
	c.current = nil
	c.pending = nil
	c.poDone = nil
}
