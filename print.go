// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/swiss"
)

// Print renders the subtree rooted at n, one line per node in pre-order:
//
//	ROOT node #0 with value: a
//	node #0 ~~[0]~~> node #1 with value: b
//
// Nodes are numbered in the order they are reached, starting from 0 on every
// call. Values are rendered with format, or fmt.Sprint if format is nil; edges
// with fmt.Sprint. Lines are separated by newlines, without a trailing one.
func (n *Node[V, E]) Print(format func(V) string) (string, error) {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	var ids swiss.Map[*Node[V, E], int]
	ids.Init(16)
	var buf strings.Builder
	err := n.DepthFirstTraversal(func(c, parent *Node[V, E], edge E, _ int) {
		id := ids.Len()
		ids.Put(c, id)
		if parent == nil {
			fmt.Fprintf(&buf, "ROOT node #%d with value: %s", id, format(c.value))
			return
		}
		parentID, _ := ids.Get(parent)
		fmt.Fprintf(&buf, "\nnode #%d ~~[%v]~~> node #%d with value: %s",
			parentID, edge, id, format(c.value))
	}, true, true)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
