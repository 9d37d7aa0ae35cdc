// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

// AncestorVisitFunc is invoked by TraverseAncestors for every node on the path
// from the start node to the root. child is the node visited just before n
// (nil for the start node) and edge is the edge of n that leads to child.
// distance counts parent links from the start node and isRoot is true iff n
// has no parent.
type AncestorVisitFunc[V any, E comparable] func(
	n, child *Node[V, E], edge E, distance int, isRoot bool,
)

// TraverseAncestors walks from n up to the root of its tree. If includeSelf is
// false, n is not passed to visit and the walk starts at its parent, at
// distance 1.
//
// Each edge is recovered by scanning the parent's children, so a walk costs
// O(depth × subtree size) in the worst case.
func (n *Node[V, E]) TraverseAncestors(visit AncestorVisitFunc[V, E], includeSelf bool) error {
	return n.traverseAncestors(func(a, child *Node[V, E], edge E, distance int, isRoot bool) bool {
		visit(a, child, edge, distance, isRoot)
		return true
	}, includeSelf)
}

func (n *Node[V, E]) traverseAncestors(
	visit func(a, child *Node[V, E], edge E, distance int, isRoot bool) bool, includeSelf bool,
) error {
	return n.climb(func(a, below *Node[V, E], d int) (bool, error) {
		var edge E
		if below != nil {
			if a.IsLeaf() {
				return false, structuralCorruptionf("%s is the parent of %s but has no children", a, below)
			}
			e, ok, err := a.EdgeThatLeadsTo(below)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, structuralCorruptionf("%s is the parent of %s but does not lead to it", a, below)
			}
			edge = e
		}
		if d == 0 && !includeSelf {
			return true, nil
		}
		return visit(a, below, edge, d, a.parent == nil), nil
	})
}

// AllPreviousSiblingsSatisfy returns true if pred holds for every sibling bound
// to n's parent before n. It returns true for a root.
func (n *Node[V, E]) AllPreviousSiblingsSatisfy(pred func(*Node[V, E]) bool) bool {
	if n.parent == nil {
		return true
	}
	for _, sibling := range n.parent.Children() {
		if sibling == n {
			break
		}
		if !pred(sibling) {
			return false
		}
	}
	return true
}

// AllChildrenSatisfy returns true if pred holds for every direct child of n.
// It returns an ErrContractViolation error if n is a leaf.
func (n *Node[V, E]) AllChildrenSatisfy(pred func(*Node[V, E]) bool) (bool, error) {
	if n.IsLeaf() {
		return false, contractViolationf("child predicate on leaf %s", n)
	}
	for _, child := range n.Children() {
		if !pred(child) {
			return false, nil
		}
	}
	return true, nil
}

// AllAncestorsSatisfy returns true if pred holds for every ancestor of n, and
// for n itself if includeSelf is true.
func (n *Node[V, E]) AllAncestorsSatisfy(pred func(*Node[V, E]) bool, includeSelf bool) (bool, error) {
	violating, err := n.FirstAncestorViolating(pred, includeSelf)
	if err != nil {
		return false, err
	}
	return violating == nil, nil
}

// FirstAncestorViolating returns the closest ancestor of n (or n itself if
// includeSelf is true) for which pred does not hold, or nil if there is none.
// The walk stops at the first violation.
func (n *Node[V, E]) FirstAncestorViolating(
	pred func(*Node[V, E]) bool, includeSelf bool,
) (*Node[V, E], error) {
	var violating *Node[V, E]
	err := n.traverseAncestors(func(a, _ *Node[V, E], _ E, _ int, _ bool) bool {
		if pred(a) {
			return true
		}
		violating = a
		return false
	}, includeSelf)
	if err != nil {
		return nil, err
	}
	return violating, nil
}
