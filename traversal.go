// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import "github.com/cockroachdb/swiss"

// VisitFunc is invoked by DepthFirstTraversal for every visited node. parent
// and edge describe how the walk reached n: they are nil and the zero value
// for the node the walk started from. depth is the distance from that node.
type VisitFunc[V any, E comparable] func(n, parent *Node[V, E], edge E, depth int)

// DepthFirstTraversal walks the subtree rooted at n, visiting every reachable
// node once. Children are descended into in insertion order.
//
// If parentFirst is true, visit is applied to a node before its children
// (pre-order), otherwise after them (post-order). If visitStart is false, n
// itself is not passed to visit, although its subtree is still walked.
//
// The walk fails with ErrCycleDetected as soon as it reaches a node it has
// already entered. Nodes visited before that point are not revisited.
func (n *Node[V, E]) DepthFirstTraversal(
	visit VisitFunc[V, E], visitStart bool, parentFirst bool,
) error {
	return n.walk(func(c, parent *Node[V, E], edge E, depth int) bool {
		visit(c, parent, edge, depth)
		return true
	}, visitStart, parentFirst)
}

// walkFrame is the explicit-stack equivalent of a recursive call visiting
// node. next is the index of the next child to descend into.
type walkFrame[V any, E comparable] struct {
	node   *Node[V, E]
	parent *Node[V, E]
	edge   E
	depth  int
	next   int
}

// walk is the traversal engine behind every query of the package. It visits
// nodes in the same order as the recursive definition:
//
//	visit(n):
//	  if parentFirst: f(n)
//	  for each child c of n: visit(c)
//	  if !parentFirst: f(n)
//
// but keeps its state on the heap so that deep trees cannot overflow the
// goroutine stack. The walk stops early, without error, when f returns false.
func (n *Node[V, E]) walk(
	f func(c, parent *Node[V, E], edge E, depth int) bool, visitStart, parentFirst bool,
) error {
	var entered swiss.Map[*Node[V, E], struct{}]
	entered.Init(16)
	stack := make([]walkFrame[V, E], 0, 16)

	// enter pushes a frame for c. It returns false if the walk must stop.
	enter := func(c, parent *Node[V, E], edge E, depth int) (bool, error) {
		if _, ok := entered.Get(c); ok {
			return false, cycleDetectedf("%s reached again through edge %v of %s", c, edge, parent)
		}
		entered.Put(c, struct{}{})
		if parentFirst && (depth > 0 || visitStart) {
			if !f(c, parent, edge, depth) {
				return false, nil
			}
		}
		stack = append(stack, walkFrame[V, E]{node: c, parent: parent, edge: edge, depth: depth})
		return true, nil
	}

	var noEdge E
	if ok, err := enter(n, nil, noEdge, 0); !ok {
		return err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if children := top.node.children; children != nil && top.next < children.Len() {
			edge, child := children.At(top.next)
			top.next++
			if ok, err := enter(child, top.node, edge, top.depth+1); !ok {
				return err
			}
			continue
		}
		fr := *top
		stack = stack[:len(stack)-1]
		if !parentFirst && (fr.depth > 0 || visitStart) {
			if !f(fr.node, fr.parent, fr.edge, fr.depth) {
				return nil
			}
		}
	}
	return nil
}

// contains returns true if target is n or one of its descendants.
func (n *Node[V, E]) contains(target *Node[V, E]) (bool, error) {
	found := false
	err := n.walk(func(c, _ *Node[V, E], _ E, _ int) bool {
		found = c == target
		return !found
	}, true, true)
	return found, err
}
