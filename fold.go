package arbor

// Fold reduces the values of a selected portion of the subtree rooted at
// root, in breadth-first order. A node's value is folded into the running
// result, and its children considered at all, only if selector accepts the
// node; a rejected node is skipped together with its entire subtree.
//
// Fold returns the init value and false when the root itself is rejected.
// Accumulation order is the breadth-first visiting order, so acc need not be
// commutative, but it should not rely on sibling grouping.
func Fold[T, R any](root Node[T], selector func(Node[T]) bool, acc func(R, T) R, init R) (R, bool) {
	if root == nil || selector == nil || acc == nil {
		return init, false
	}
	if !selector(root) {
		return init, false
	}
	result := init
	queue := []Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		result = acc(result, n.Value())
		for ch := range n.Children() {
			if selector(ch) {
				queue = append(queue, ch)
			}
		}
	}
	return result, true
}

// FoldAncestors reduces n's value with the values of all its ancestors,
// starting at n itself and folding upward towards the root.
func FoldAncestors[T, R any](n Node[T], acc func(R, T) R, init R) R {
	if n == nil || acc == nil {
		return init
	}
	result := acc(init, n.Value())
	for a := range RangeAncestors(n) {
		result = acc(result, a.Value())
	}
	return result
}
