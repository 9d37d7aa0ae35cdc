// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import (
	"fmt"

	"github.com/cockroachdb/edgetree/internal/ascii"
)

// DiagramOptions configures Diagram.
type DiagramOptions struct {
	// Indent is the number of columns each level is shifted by. Values below 2
	// are replaced by the default of 4.
	Indent int
	// EdgeSeparator is written between an edge and the value of the node it
	// leads to. Defaults to " ─ ".
	EdgeSeparator string
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *DiagramOptions) EnsureDefaults() *DiagramOptions {
	if o == nil {
		o = &DiagramOptions{}
	}
	if o.Indent < 2 {
		o.Indent = 4
	}
	if o.EdgeSeparator == "" {
		o.EdgeSeparator = " ─ "
	}
	return o
}

type diagramRow struct {
	depth int
	text  string
}

// Diagram renders the subtree rooted at n as a box-drawing diagram:
//
//	a
//	├── 0 ─ b
//	│   └── 0 ─ d
//	└── 1 ─ c
//
// Values are rendered with format, or fmt.Sprint if format is nil. opts may be
// nil.
func (n *Node[V, E]) Diagram(format func(V) string, opts *DiagramOptions) (string, error) {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	var o DiagramOptions
	if opts != nil {
		o = *opts
	}
	opts = o.EnsureDefaults()

	var rows []diagramRow
	err := n.DepthFirstTraversal(func(c, parent *Node[V, E], edge E, depth int) {
		text := format(c.value)
		if parent != nil {
			text = fmt.Sprint(edge) + opts.EdgeSeparator + text
		}
		rows = append(rows, diagramRow{depth: depth, text: text})
	}, true, true)
	if err != nil {
		return "", err
	}

	board := ascii.Make(opts.Indent*4, len(rows))
	// Rows are laid out bottom-up. continues[d] is true if a node at depth d
	// is still to come below the current row with no shallower node in
	// between, in which case the current row's ancestor at depth d has a
	// later sibling and its vertical line runs through this row.
	var continues []bool
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		if r.depth >= len(continues) {
			continues = append(continues, make([]bool, r.depth-len(continues)+1)...)
		}
		cur := board.At(i, 0)
		if r.depth > 0 {
			for d := 1; d < r.depth; d++ {
				if continues[d] {
					board.At(i, (d-1)*opts.Indent).WriteRune('│')
				}
			}
			cur = board.At(i, (r.depth-1)*opts.Indent)
			if continues[r.depth] {
				cur = cur.WriteRune('├')
			} else {
				cur = cur.WriteRune('└')
			}
			for range opts.Indent - 2 {
				cur = cur.WriteRune('─')
			}
			cur = cur.Right(1)
		}
		cur.WriteString(r.text)
		continues[r.depth] = true
		for d := r.depth + 1; d < len(continues); d++ {
			continues[d] = false
		}
	}
	return board.String(), nil
}
