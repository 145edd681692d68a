package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Splitter decomposes a tree traversal into independent fragments, intended
// to be handed to separate worker goroutines by an external scheduler. The
// package itself never spawns goroutines.
//
// A splitter's state is its frontier: a set of node handles representing the
// disjoint subtrees still to be visited. Advancing visits one frontier node
// and replaces it by its direct children; splitting partitions the frontier
// members between two splitters. Since frontier members are never in an
// ancestor/descendant relation with each other, fragments can never process
// overlapping subtrees: draining all fragments visits every node exactly
// once.
//
// Every node entering the frontier is snapshotted with its modification
// counter; a mismatch when the node is visited stops the fragment with
// ErrConcurrentMutation. Detection is best effort — an interleaved detach
// and equivalent-shaped reattach may go unnoticed — and nothing is repaired
// or rolled back.
type Splitter[T any] struct {
	anchor   walkEntry[T] // snapshot of the iteration root, shared by all fragments
	frontier []walkEntry[T]
}

// NewSplitter creates a splitter whose frontier holds the single subtree
// rooted at root.
func NewSplitter[T any](root Node[T]) *Splitter[T] {
	assert(root != nil, "splitter requires a non-nil root node")
	anchor := enter(root)
	return &Splitter[T]{anchor: anchor, frontier: []walkEntry[T]{anchor}}
}

// EstimateSize returns the number of nodes remaining in this fragment: the
// sum of the subtree sizes of all frontier members. The estimate is exact in
// the absence of concurrent mutation.
func (s *Splitter[T]) EstimateSize() int {
	size := 0
	for _, e := range s.frontier {
		size += Size(e.node)
	}
	return size
}

// TrySplit attempts to move roughly half of this fragment's remaining work
// into a new, independent splitter. It returns nil when the frontier has one
// member or fewer: splitting a singleton frontier would force the fragments
// to later process ancestor/descendant pairs, duplicating nodes. Callers
// should Advance a few times to grow the frontier, then retry.
func (s *Splitter[T]) TrySplit() *Splitter[T] {
	if len(s.frontier) <= 1 {
		return nil
	}
	var keep, give []walkEntry[T]
	for i, e := range s.frontier {
		if i%2 == 0 {
			give = append(give, e)
		} else {
			keep = append(keep, e)
		}
	}
	s.frontier = keep
	return &Splitter[T]{anchor: s.anchor, frontier: give}
}

// Advance removes one node from the frontier, feeds its value to visit and
// adds the node's direct children to the frontier. It returns false when the
// fragment is exhausted, and flags ErrConcurrentMutation when the node's
// counter moved since it entered the frontier.
func (s *Splitter[T]) Advance(visit func(T)) (bool, error) {
	if len(s.frontier) == 0 {
		return false, nil
	}
	e := s.frontier[0]
	s.frontier = s.frontier[1:]
	if s.anchor.stale() || e.stale() {
		return false, ErrConcurrentMutation
	}
	for ch := range e.node.Children() {
		s.frontier = append(s.frontier, enter(ch))
	}
	if visit != nil {
		visit(e.node.Value())
	}
	return true, nil
}

// Drain visits every remaining node of this fragment, emptying the frontier.
func (s *Splitter[T]) Drain(visit func(T)) error {
	for {
		more, err := s.Advance(visit)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
