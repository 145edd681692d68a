package arbor

import "github.com/guiguan/caster"

// Change describes one structural-change event observed at a watched node.
//
// Origin is the node whose child collection (or value) changed; Watched is
// the watched ancestor-or-self through which the event was observed. Counter
// carries the watched node's modification counter after the change.
type Change[T any] struct {
	Watched Node[T]
	Origin  Node[T]
	Counter uint64
}

// Watcher broadcasts structural-change events for one node.
//
// Every mutation at the watched node or any of its descendants propagates a
// counter bump through the watched node and is published as a Change record.
// Broadcasting is best effort: a subscriber with a full channel misses the
// event rather than blocking the mutating caller.
//
// Watching does not synchronize anything; it is an observation channel, not
// an exclusion mechanism.
type Watcher[T any] struct {
	node Node[T]
	cast *caster.Caster
}

// Watch attaches a change broadcaster to node n. Repeated calls for the same
// node share one broadcaster.
func Watch[T any](n Node[T]) *Watcher[T] {
	assert(n != nil, "Watch requires a non-nil node")
	c := n.broadcaster()
	if c == nil {
		c = caster.New(nil) // we will broadcast messages on structural changes
		n.setBroadcaster(c)
	}
	return &Watcher[T]{node: n, cast: c}
}

// Events subscribes to the watched node's change events. Messages on the
// returned channel are Change[T] records. The second return value is false
// if the watcher has already been closed.
func (w *Watcher[T]) Events(capacity uint) (chan interface{}, bool) {
	return w.cast.Sub(nil, capacity)
}

// Unsubscribe cancels a subscription obtained from Events.
func (w *Watcher[T]) Unsubscribe(ch chan interface{}) {
	w.cast.Unsub(ch)
}

// Close detaches the broadcaster from the node and closes all subscriber
// channels.
func (w *Watcher[T]) Close() {
	w.cast.Close()
	if w.node.broadcaster() == w.cast {
		w.node.setBroadcaster(nil)
	}
}

// publish sends a change event to subscribers of node at, if it is watched.
// Called from bumpChain for every node of the propagation chain.
func publish[T any](at, origin Node[T]) {
	if c := at.broadcaster(); c != nil {
		c.TryPub(Change[T]{Watched: at, Origin: origin, Counter: at.modCount()})
	}
}
