// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/edgetree/internal/treedef"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

// treeStats summarizes the shape of a tree.
type treeStats struct {
	nodes    int
	leaves   int
	perDepth []int
}

func (s *treeStats) maxDepth() int {
	return len(s.perDepth) - 1
}

func collectStats(n *treedef.Node) (treeStats, error) {
	var s treeStats
	err := n.DepthFirstTraversal(func(c, _ *treedef.Node, _ string, depth int) {
		s.nodes++
		if c.IsLeaf() {
			s.leaves++
		}
		for len(s.perDepth) <= depth {
			s.perDepth = append(s.perDepth, 0)
		}
		s.perDepth[depth]++
	}, true, true)
	return s, err
}

func count(n int) string {
	return string(crhumanize.Count(int64(n), crhumanize.Compact))
}

func (d *treeT) runStats(cmd *cobra.Command, args []string) error {
	n, err := d.loadStart(args[0])
	if err != nil {
		return err
	}
	s, err := collectStats(n)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "nodes:     %s\n", count(s.nodes))
	fmt.Fprintf(w, "leaves:    %s\n", count(s.leaves))
	fmt.Fprintf(w, "max depth: %d\n", s.maxDepth())

	tbl := newTable(w, "depth", "nodes")
	for depth, c := range s.perDepth {
		tbl.Append([]string{strconv.Itoa(depth), count(c)})
	}
	tbl.Render()

	if d.plot && len(s.perDepth) > 1 {
		series := make([]float64, len(s.perDepth))
		for i, c := range s.perDepth {
			series[i] = float64(c)
		}
		fmt.Fprintln(w, asciigraph.Plot(series,
			asciigraph.Height(8), asciigraph.Caption("nodes per depth")))
	}
	return nil
}
