package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Size returns the number of nodes in the subtree rooted at n, including n
// itself. For every node, Size(n) == 1 + the sum of its children's sizes.
func Size[T any](n Node[T]) int {
	if n == nil {
		return 0
	}
	size := 1
	for ch := range n.Children() {
		size += Size(ch)
	}
	return size
}

// Contains reports whether any node of the subtree rooted at root carries
// value v.
func Contains[T comparable](root Node[T], v T) bool {
	_, found := Find(root, v)
	return found
}

// Find returns the first node of the subtree rooted at root carrying value
// v, in breadth-first order.
func Find[T comparable](root Node[T], v T) (Node[T], bool) {
	for n := range RangeBreadthFirst(root) {
		if n.Value() == v {
			return n, true
		}
	}
	return nil, false
}

// Remove searches the subtree rooted at root, in breadth-first order, for a
// node below root carrying value v, prunes it, and returns it as an
// independent tree. The root itself is never removed, as it has no parent to
// be detached from.
func Remove[T comparable](root Node[T], v T) (Node[T], bool) {
	if root == nil {
		return nil, false
	}
	for n := range RangeBreadthFirst(root) {
		if n == root || n.Value() != v {
			continue
		}
		if detach(n) {
			return n, true
		}
	}
	return nil, false
}

// Equal reports structural equality of two trees: equal root values and,
// recursively, pairwise equal child sequences in enumeration order — same
// arity, same order, same values. Two nil nodes are equal.
func Equal[T comparable](a, b Node[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Value() != b.Value() || a.Degree() != b.Degree() {
		return false
	}
	next, stop := iter.Pull(b.Children())
	defer stop()
	for ca := range a.Children() {
		cb, ok := next()
		if !ok || !Equal(ca, cb) {
			return false
		}
	}
	return true
}

// ContainsSubTree reports whether the tree rooted at tree embeds the tree
// rooted at query: some node of tree carries query's root value and matches
// query's subtree position by position. A candidate node may have more
// children than the corresponding query node, but the query children must
// match its leading children in order.
//
// The relation is a partial order over trees: every tree contains itself,
// mutual containment implies structural equality, and containment is
// transitive. Candidates are probed in breadth-first order, continuing at
// the next value match when a lock-step comparison fails.
func ContainsSubTree[T comparable](tree, query Node[T]) bool {
	if tree == nil || query == nil {
		return false
	}
	for cand := range RangeBreadthFirst(tree) {
		if cand.Value() == query.Value() && embeds(cand, query) {
			return true
		}
	}
	return false
}

// embeds performs the lock-step comparison of a candidate subtree against
// the query subtree.
func embeds[T comparable](cand, query Node[T]) bool {
	if cand.Value() != query.Value() {
		return false
	}
	if cand.Degree() < query.Degree() {
		return false
	}
	next, stop := iter.Pull(cand.Children())
	defer stop()
	for qch := range query.Children() {
		cch, ok := next()
		if !ok || !embeds(cch, qch) {
			return false
		}
	}
	return true
}

// Map produces a structurally identical tree with a different payload type
// by applying f to every node's value. The result is always an ArrayTree;
// its child enumeration order matches the source's, so Map with an identity
// function yields a tree Equal to its input.
func Map[T, U any](n Node[T], f func(T) U) *ArrayTree[U] {
	if n == nil || f == nil {
		return nil
	}
	m := NewArrayTree(f(n.Value()))
	for ch := range n.Children() {
		sub := Map(ch, f)
		sub.parent = m
		m.children = append(m.children, sub)
	}
	return m
}
