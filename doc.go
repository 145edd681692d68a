/*
Package arbor implements a family of node-linked hierarchical containers.

Trees

Arbor trees are ordered, parent-owned general trees: every node carries a
payload value, an ordered collection of children which it exclusively owns,
and a non-owning back-reference to its parent. Exactly one node of every
tree — the root — has no parent. Subtrees may be grafted onto other nodes
and pruned off again; the package maintains the tree invariant (a single
parent per node, no cycles) under arbitrary graft/prune/replace operations.

Two storage variants are provided. ArrayTree keeps children in a growable,
index-addressable array; BinaryTree keeps exactly two named slots, left and
right. Both variants plug into one shared traversal engine, which offers
breadth-first, pre-order, post-order, ancestral and child-only walks, plus
folding, containment queries and structural equality. The engine is written
against a small capability interface (child enumeration and parent access),
so further variants need not re-implement any traversal logic.

Trees are not internally synchronized. Mutations maintain a per-node
modification counter, propagated to all ancestors, which the iteration and
split-iteration machinery uses for best-effort detection of concurrent
structural interference — detection, not prevention. Callers that mutate and
traverse concurrently must impose their own external exclusion.

The split-iteration protocol (type Splitter) decomposes a traversal into
independent fragments suitable for handing to separate worker goroutines by
an external scheduler. The package itself never spawns goroutines and no
operation blocks.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic("arbor: " + msg)
	}
}

// TreeError is an error type for the arbor module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. a nil subtree argument to a graft operation.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a child position is outside the
// valid range of a node's child collection.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrUnsupported is flagged when a mutation entry point is called on a tree
// variant which does not implement it.
const ErrUnsupported = TreeError("operation not supported by this tree variant")

// ErrGraftCycle is flagged when a graft operation would make a node an
// ancestor of itself.
const ErrGraftCycle = TreeError("graft would create a cycle")

// ErrConcurrentMutation is flagged when iteration detects a structural change
// which happened while the iteration was in progress. Detection is best
// effort, not a guarantee.
const ErrConcurrentMutation = TreeError("tree structurally changed during iteration")

// ErrCursorState is flagged on cursor misuse, e.g. calling Remove before the
// first call to Next, or twice without an intervening Next.
const ErrCursorState = TreeError("cursor not positioned at a node")
