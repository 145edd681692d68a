package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// The traversal algorithms below are written once, against the Node
// capability interface, and therefore work for every storage variant.
// Range* functions return pull-style iterators without interference
// detection; the Each* functions snapshot modification counters and abort
// with ErrConcurrentMutation when a structural change slips in between
// visits. Ordering guarantees hold only in the absence of concurrent
// mutation.

// RangeBreadthFirst iterates over the subtree rooted at start in
// breadth-first order: start first, then all nodes of depth 1 in enumeration
// order, and so on. For any two visited nodes m before n, depth(m) ≤ depth(n).
func RangeBreadthFirst[T any](start Node[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		if start == nil {
			return
		}
		queue := []Node[T]{start}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			for ch := range n.Children() {
				queue = append(queue, ch)
			}
		}
	}
}

// RangePreOrder iterates over the subtree rooted at start in pre-order:
// a node is visited before any of its descendants, children left to right.
func RangePreOrder[T any](start Node[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		if start == nil {
			return
		}
		stack := []Node[T]{start}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			// push in reverse enumeration order, so that the
			// first-enumerated child is popped next
			chs := childSlice(n)
			for i := len(chs) - 1; i >= 0; i-- {
				stack = append(stack, chs[i])
			}
		}
	}
}

// RangePostOrder iterates over the subtree rooted at start in post-order:
// all descendants of a node surface before the node itself, children left
// to right.
func RangePostOrder[T any](start Node[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		if start == nil {
			return
		}
		type frame struct {
			node     Node[T]
			expanded bool
		}
		stack := []frame{{node: start}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.expanded {
				if !yield(f.node) {
					return
				}
				continue
			}
			stack = append(stack, frame{node: f.node, expanded: true})
			chs := childSlice(f.node)
			for i := len(chs) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: chs[i]})
			}
		}
	}
}

// RangeAncestors iterates from start's parent up to the root. The start node
// itself is not visited.
func RangeAncestors[T any](start Node[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		if start == nil {
			return
		}
		for a := start.Parent(); a != nil; a = a.Parent() {
			if !yield(a) {
				return
			}
		}
	}
}

// RangeChildren iterates over the direct children of n, without recursing.
func RangeChildren[T any](n Node[T]) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		if n == nil {
			return
		}
		for ch := range n.Children() {
			if !yield(ch) {
				return
			}
		}
	}
}

// --- Fail-fast callback walks ----------------------------------------------

type walkEntry[T any] struct {
	node Node[T]
	mod  uint64
}

func enter[T any](n Node[T]) walkEntry[T] {
	return walkEntry[T]{node: n, mod: n.modCount()}
}

// stale reports whether the node's counter moved since the entry was created.
func (e walkEntry[T]) stale() bool {
	return e.node.modCount() != e.mod
}

// EachBreadthFirst visits the subtree rooted at start in breadth-first order.
// Iteration stops at the first callback error and returns that error. A
// structural change observed between visits aborts the walk with
// ErrConcurrentMutation.
//
// Detection compares the start node's counter against a snapshot taken when
// the walk began: every structural event below start propagates a bump up to
// start, so interference within the walked subtree is caught at the next
// visit.
func EachBreadthFirst[T any](start Node[T], f func(Node[T]) error) error {
	if start == nil || f == nil {
		return ErrIllegalArguments
	}
	anchor := enter(start)
	queue := []walkEntry[T]{anchor}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if anchor.stale() || e.stale() {
			return ErrConcurrentMutation
		}
		if err := f(e.node); err != nil {
			return err
		}
		for ch := range e.node.Children() {
			queue = append(queue, enter(ch))
		}
	}
	return nil
}

// EachPreOrder visits the subtree rooted at start in pre-order, with the
// same error and interference semantics as EachBreadthFirst.
func EachPreOrder[T any](start Node[T], f func(Node[T]) error) error {
	if start == nil || f == nil {
		return ErrIllegalArguments
	}
	anchor := enter(start)
	stack := []walkEntry[T]{anchor}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if anchor.stale() || e.stale() {
			return ErrConcurrentMutation
		}
		if err := f(e.node); err != nil {
			return err
		}
		chs := childSlice(e.node)
		for i := len(chs) - 1; i >= 0; i-- {
			stack = append(stack, enter(chs[i]))
		}
	}
	return nil
}

// EachPostOrder visits the subtree rooted at start in post-order, with the
// same error and interference semantics as EachBreadthFirst.
func EachPostOrder[T any](start Node[T], f func(Node[T]) error) error {
	if start == nil || f == nil {
		return ErrIllegalArguments
	}
	type frame struct {
		entry    walkEntry[T]
		expanded bool
	}
	anchor := enter(start)
	stack := []frame{{entry: anchor}}
	for len(stack) > 0 {
		f0 := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if anchor.stale() || f0.entry.stale() {
			return ErrConcurrentMutation
		}
		if f0.expanded {
			if err := f(f0.entry.node); err != nil {
				return err
			}
			continue
		}
		stack = append(stack, frame{entry: f0.entry, expanded: true})
		chs := childSlice(f0.entry.node)
		for i := len(chs) - 1; i >= 0; i-- {
			stack = append(stack, frame{entry: enter(chs[i])})
		}
	}
	return nil
}

// EachAncestors visits start's strict ancestors, nearest first. The parent
// chain is re-read at every step, so there is nothing to snapshot.
func EachAncestors[T any](start Node[T], f func(Node[T]) error) error {
	if start == nil || f == nil {
		return ErrIllegalArguments
	}
	for a := start.Parent(); a != nil; a = a.Parent() {
		if err := f(a); err != nil {
			return err
		}
	}
	return nil
}

// EachChild visits the direct children of n. A structural change of n during
// the visit aborts with ErrConcurrentMutation.
func EachChild[T any](n Node[T], f func(Node[T]) error) error {
	if n == nil || f == nil {
		return ErrIllegalArguments
	}
	snapshot := n.modCount()
	for _, ch := range childSlice(n) {
		if n.modCount() != snapshot {
			return ErrConcurrentMutation
		}
		if err := f(ch); err != nil {
			return err
		}
	}
	return nil
}

// childSlice collects the direct children of n into a slice.
func childSlice[T any](n Node[T]) []Node[T] {
	chs := make([]Node[T], 0, n.Degree())
	for ch := range n.Children() {
		chs = append(chs, ch)
	}
	return chs
}
