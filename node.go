// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import (
	"iter"

	"github.com/cockroachdb/edgetree/internal/orderedmap"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Node is a node of a tree with values of type V and edge labels of type E.
//
// A node with no children is a leaf. Children are iterated in the order in
// which their edges were first bound; that order is also the traversal order
// of every walk over the tree, so callers that care about visitation order
// (for example move ordering in a game tree search) control it through the
// order of Set calls.
type Node[V any, E comparable] struct {
	value V
	// parent is a back-reference; the parent's children map is what keeps a
	// node reachable.
	parent *Node[V, E]
	// children is nil until the first child is bound.
	children *orderedmap.Map[E, *Node[V, E]]
}

// New returns a standalone leaf node holding value.
func New[V any, E comparable](value V) *Node[V, E] {
	return &Node[V, E]{value: value}
}

// Value returns the value the node was created with.
func (n *Node[V, E]) Value() V {
	return n.value
}

// Parent returns the node's parent, or nil for a root.
func (n *Node[V, E]) Parent() *Node[V, E] {
	return n.parent
}

// IsRoot returns true if the node has no parent.
func (n *Node[V, E]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf returns true if no child was ever bound to the node.
func (n *Node[V, E]) IsLeaf() bool {
	return n.children == nil
}

// NumChildren returns the number of direct children.
func (n *Node[V, E]) NumChildren() int {
	if n.children == nil {
		return 0
	}
	return n.children.Len()
}

// Child returns the child bound to edge.
func (n *Node[V, E]) Child(edge E) (*Node[V, E], bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Get(edge)
}

// Children returns an iterator over the direct children in insertion order.
func (n *Node[V, E]) Children() iter.Seq2[E, *Node[V, E]] {
	return func(yield func(E, *Node[V, E]) bool) {
		if n.children == nil {
			return
		}
		for e, c := range n.children.All() {
			if !yield(e, c) {
				return
			}
		}
	}
}

// Set binds edge to child, makes n the parent of child and returns the node
// previously bound to edge, or nil. Rebinding an existing edge keeps the
// edge's position among its siblings.
//
// A replaced node is detached: its parent is cleared unless it is still bound
// to n under another edge, or has since been attached elsewhere.
func (n *Node[V, E]) Set(edge E, child *Node[V, E]) *Node[V, E] {
	if child == nil {
		panic(errors.AssertionFailedf("edgetree: nil child bound to edge %v", edge))
	}
	if n.children == nil {
		n.children = orderedmap.New[E, *Node[V, E]]()
	}
	prev, _ := n.children.Put(edge, child)
	child.parent = n
	if prev != nil && prev != child && prev.parent == n && !n.holds(prev) {
		prev.parent = nil
	}
	return prev
}

// SetN is like Set but requires that edge is not bound yet. If it is, the tree
// is left unchanged and an ErrContractViolation error is returned.
func (n *Node[V, E]) SetN(edge E, child *Node[V, E]) error {
	if existing, ok := n.Child(edge); ok {
		return contractViolationf("edge %v of %s is already bound to %s", edge, n, existing)
	}
	n.Set(edge, child)
	return nil
}

// holds returns true if c is one of n's direct children.
func (n *Node[V, E]) holds(c *Node[V, E]) bool {
	for _, child := range n.Children() {
		if child == c {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (n *Node[V, E]) String() string {
	return redact.StringWithoutMarkers(n)
}

// SafeFormat implements redact.SafeFormatter. Node values are treated as
// unsafe.
func (n *Node[V, E]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("node(%v", n.value)
	if n.children != nil {
		w.Printf(", children=%d", redact.Safe(n.children.Len()))
	}
	w.SafeRune(')')
}
