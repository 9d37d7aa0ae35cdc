// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package edgetree implements a generic rooted tree whose edges carry labels.
//
// A Node owns its children, which are kept in insertion order and keyed by an
// edge label that is unique among siblings. Each node also holds a
// back-reference to its parent. Every query offered by the package is built on
// a single primitive, an order-preserving depth-first walk with cycle
// detection:
//
//	a := edgetree.New[string, int]("a")
//	b := edgetree.New[string, int]("b")
//	a.Set(0, b)
//	b.Set(0, edgetree.New[string, int]("c"))
//
//	leaves, _ := a.Leaves(false) // [c]
//	edge, ok, _ := a.EdgeThatLeadsTo(leaves[0]) // 0, true
//	s, _ := a.Print(nil)
//	// ROOT node #0 with value: a
//	// node #0 ~~[0]~~> node #1 with value: b
//	// node #1 ~~[0]~~> node #2 with value: c
//
// Trees are not safe for concurrent mutation. A traversal must not mutate the
// tree it is walking.
//
// # Errors
//
// Operations that walk the structure return ErrCycleDetected when they reach a
// node twice, ErrContractViolation when invoked in a state where they are not
// defined, and errors marked with ErrStructuralCorruption when the parent and
// child links contradict each other. Use errors.Is to test for them.
package edgetree
