package arbor

import (
	"iter"

	"github.com/guiguan/caster"
)

// Adapt returns a read-only view of the tree rooted at n with payloads
// converted through conv. The view shares structure with the underlying
// tree — no nodes are copied — and reflects later mutations of it, including
// their modification counters, so the fail-fast walks work through a view.
//
// Adapt is the explicit covariance bridge: a tree of a narrower payload type
// is consumed as a tree of a wider one by converting at the boundary.
// All mutation entry points of a view are unsupported; use Map to obtain a
// mutable converted copy instead.
func Adapt[S, T any](n Node[S], conv func(S) T) Node[T] {
	if n == nil || conv == nil {
		return nil
	}
	return &viewNode[S, T]{inner: n, conv: conv}
}

type viewNode[S, T any] struct {
	inner Node[S]
	conv  func(S) T
}

func (v *viewNode[S, T]) Value() T {
	return v.conv(v.inner.Value())
}

func (v *viewNode[S, T]) SetValue(T) error {
	return ErrUnsupported
}

// Parent wraps the underlying parent in a fresh view node. Views carry no
// identity of their own; identity-sensitive algorithms must run on the
// underlying tree.
func (v *viewNode[S, T]) Parent() Node[T] {
	p := v.inner.Parent()
	if p == nil {
		return nil
	}
	return &viewNode[S, T]{inner: p, conv: v.conv}
}

func (v *viewNode[S, T]) Degree() int {
	return v.inner.Degree()
}

func (v *viewNode[S, T]) Children() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for ch := range v.inner.Children() {
			if !yield(&viewNode[S, T]{inner: ch, conv: v.conv}) {
				return
			}
		}
	}
}

func (v *viewNode[S, T]) modCount() uint64 {
	return v.inner.modCount()
}

func (v *viewNode[S, T]) bumpMod() {
	assert(false, "adapted view is read-only")
}

func (v *viewNode[S, T]) setParentLink(Node[T]) {
	assert(false, "adapted view is read-only")
}

func (v *viewNode[S, T]) detachChild(Node[T]) bool {
	return false
}

func (v *viewNode[S, T]) broadcaster() *caster.Caster {
	return nil
}

func (v *viewNode[S, T]) setBroadcaster(*caster.Caster) {}
