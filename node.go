package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/guiguan/caster"
)

// Node is the capability surface shared by all tree storage variants.
//
// A node owns its payload value and its children; the parent link is a
// non-owning back-reference used for ancestry queries and cycle checks only.
// Child enumeration yields every direct child exactly once in a stable,
// variant-defined order; all traversal algorithms of this package are built
// solely on child enumeration and parent access.
//
// The interface is sealed: the unexported methods keep implementations
// inside this package, so the structural invariants (single parent, no
// cycles, counter propagation) cannot be broken by foreign node types.
type Node[T any] interface {
	// Value returns the payload carried by this node.
	Value() T

	// SetValue replaces the payload. Variants which do not support value
	// mutation return ErrUnsupported.
	SetValue(v T) error

	// Parent returns the node owning this one, or nil for a root.
	Parent() Node[T]

	// Degree returns the number of direct children.
	Degree() int

	// Children enumerates the direct children in stable order.
	Children() iter.Seq[Node[T]]

	// modCount returns the structural-version counter of this node.
	modCount() uint64
	// bumpMod increments the structural-version counter by one.
	bumpMod()
	// setParentLink rewires the parent back-reference. Storage updates are
	// the caller's responsibility.
	setParentLink(p Node[T])
	// detachChild removes ch from this node's child storage, reporting
	// whether ch was found. It does not touch parent links or counters.
	detachChild(ch Node[T]) bool
	// broadcaster returns the change broadcaster attached to this node,
	// or nil if the node is unwatched.
	broadcaster() *caster.Caster
	// setBroadcaster attaches or clears the change broadcaster.
	setBroadcaster(c *caster.Caster)
}

// core is the embedded base of every storage variant. It carries the payload,
// the parent back-reference and the modification counter, and supplies the
// default mutation behavior: unsupported.
type core[T any] struct {
	value  T
	parent Node[T]
	mod    uint64
	cast   *caster.Caster
}

func (c *core[T]) Value() T {
	return c.value
}

// SetValue is the default value-mutation hook. Mutable variants override it.
func (c *core[T]) SetValue(T) error {
	return ErrUnsupported
}

func (c *core[T]) Parent() Node[T] {
	return c.parent
}

func (c *core[T]) modCount() uint64 {
	return c.mod
}

func (c *core[T]) bumpMod() {
	c.mod++
}

func (c *core[T]) setParentLink(p Node[T]) {
	c.parent = p
}

func (c *core[T]) broadcaster() *caster.Caster {
	return c.cast
}

func (c *core[T]) setBroadcaster(cast *caster.Caster) {
	c.cast = cast
}

// bumpChain increments the modification counter of n and of every strict
// ancestor of n, exactly once each, walking upward from n. One call
// corresponds to one structural event. Watched nodes along the chain publish
// a Change record to their subscribers.
func bumpChain[T any](n Node[T]) {
	for x := n; x != nil; x = x.Parent() {
		x.bumpMod()
		publish(x, n)
	}
}

// checkGraft validates that child may become a child of parent. It rejects
// nil arguments, self-grafts and ancestor-grafts: the ancestral chain of
// parent, including parent itself, must not contain child.
func checkGraft[T any](parent, child Node[T]) error {
	if parent == nil || child == nil {
		return ErrIllegalArguments
	}
	for a := parent; a != nil; a = a.Parent() {
		if a == child {
			return ErrGraftCycle
		}
	}
	return nil
}

// detach prunes child from its current parent, turning it into an
// independent tree. Counters are bumped starting at the former parent and
// propagating upward; the pruned subtree's own counters are left alone, since
// the former ancestors are the ones whose cached traversal state went stale.
//
// detach reports false if child has no parent or its parent refuses removal
// (read-only views).
func detach[T any](child Node[T]) bool {
	p := child.Parent()
	if p == nil {
		return false
	}
	if !p.detachChild(child) {
		return false
	}
	child.setParentLink(nil)
	bumpChain(p)
	return true
}
