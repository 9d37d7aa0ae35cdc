// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import (
	"github.com/cockroachdb/edgetree/internal/invariants"
	"github.com/cockroachdb/swiss"
)

// Descendants returns the nodes below n in pre-order, preceded by n itself if
// includeSelf is true. The result is empty iff n is a leaf and includeSelf is
// false.
func (n *Node[V, E]) Descendants(includeSelf bool) ([]*Node[V, E], error) {
	var res []*Node[V, E]
	if err := n.DepthFirstTraversal(func(c, _ *Node[V, E], _ E, _ int) {
		res = append(res, c)
	}, includeSelf, true); err != nil {
		return nil, err
	}
	invariants.Check((len(res) > 0) == (includeSelf || !n.IsLeaf()),
		"%d descendants of %s (includeSelf=%t)", len(res), n, includeSelf)
	return res, nil
}

// Leaves returns the leaves of the subtree rooted at n, in pre-order. n itself
// is only considered if includeSelf is true.
func (n *Node[V, E]) Leaves(includeSelf bool) ([]*Node[V, E], error) {
	var res []*Node[V, E]
	if err := n.DepthFirstTraversal(func(c, _ *Node[V, E], _ E, _ int) {
		if c.IsLeaf() {
			res = append(res, c)
		}
	}, includeSelf, true); err != nil {
		return nil, err
	}
	return res, nil
}

// EdgeThatLeadsTo returns the edge of the direct child of n whose subtree
// contains target (the child itself included). ok is false if target cannot be
// reached from n.
//
// EdgeThatLeadsTo returns an ErrContractViolation error if n is a leaf, and an
// ErrStructuralCorruption assertion failure if target is reachable through more
// than one child.
func (n *Node[V, E]) EdgeThatLeadsTo(target *Node[V, E]) (edge E, ok bool, _ error) {
	if n.IsLeaf() {
		return edge, false, contractViolationf("edge lookup on leaf %s", n)
	}
	var matches int
	for e, child := range n.Children() {
		found, err := child.contains(target)
		if err != nil {
			return edge, false, err
		}
		if !found {
			continue
		}
		matches++
		if matches > 1 {
			return edge, false, structuralCorruptionf(
				"%s is reachable from %s through edges %v and %v", target, n, edge, e)
		}
		edge, ok = e, true
	}
	return edge, ok, nil
}

// climb calls fn for n and then for each node on the parent chain above it.
// below is the node visited before node (nil for n) and distance the number of
// hops from n. The climb stops when fn returns false or an error, and fails
// with ErrCycleDetected if the parent chain loops.
func (n *Node[V, E]) climb(
	fn func(node, below *Node[V, E], distance int) (bool, error),
) error {
	var seen swiss.Map[*Node[V, E], struct{}]
	seen.Init(8)
	var below *Node[V, E]
	for node, d := n, 0; node != nil; node, below, d = node.parent, node, d+1 {
		if _, ok := seen.Get(node); ok {
			return cycleDetectedf("parent chain of %s loops back to %s", n, node)
		}
		seen.Put(node, struct{}{})
		if ok, err := fn(node, below, d); !ok || err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the number of parent links between n and the root of its tree.
func (n *Node[V, E]) Depth() (int, error) {
	depth := 0
	err := n.climb(func(_, _ *Node[V, E], d int) (bool, error) {
		depth = d
		return true, nil
	})
	return depth, err
}

// Root returns the topmost ancestor of n, which is n itself if n has no
// parent.
func (n *Node[V, E]) Root() (*Node[V, E], error) {
	root := n
	err := n.climb(func(node, _ *Node[V, E], _ int) (bool, error) {
		root = node
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}
