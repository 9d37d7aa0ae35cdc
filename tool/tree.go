// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/edgetree"
	"github.com/cockroachdb/edgetree/internal/treedef"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

// treeT implements the tree inspection commands, including both
// configuration state and the commands themselves.
type treeT struct {
	Commands  []*cobra.Command
	Print     *cobra.Command
	Diagram   *cobra.Command
	Walk      *cobra.Command
	Ancestors *cobra.Command
	Leaves    *cobra.Command
	Stats     *cobra.Command
	Diff      *cobra.Command

	t *T

	// Configuration.
	from        string
	order       string
	plot        bool
	diagramOpts edgetree.DiagramOptions
	// includeStart is kept per command since the defaults differ.
	includeStart struct {
		walk, ancestors, leaves bool
	}
}

func newTree(t *T) *treeT {
	d := &treeT{t: t}

	d.Print = &cobra.Command{
		Use:   "print <file>",
		Short: "print the tree, one line per node",
		Args:  cobra.ExactArgs(1),
		RunE:  d.runPrint,
	}
	d.Diagram = &cobra.Command{
		Use:   "diagram <file>",
		Short: "draw the tree",
		Args:  cobra.ExactArgs(1),
		RunE:  d.runDiagram,
	}
	d.Walk = &cobra.Command{
		Use:   "walk <file>",
		Short: "list the nodes of a depth-first walk",
		Long: `
List the nodes in the order in which a depth-first walk visits them, together
with the parent and edge the walk reached them through and their depth.
`,
		Args: cobra.ExactArgs(1),
		RunE: d.runWalk,
	}
	d.Ancestors = &cobra.Command{
		Use:   "ancestors <file> <node>",
		Short: "list the ancestors of a node",
		Args:  cobra.ExactArgs(2),
		RunE:  d.runAncestors,
	}
	d.Leaves = &cobra.Command{
		Use:   "leaves <file>",
		Short: "list the leaves of the tree",
		Args:  cobra.ExactArgs(1),
		RunE:  d.runLeaves,
	}
	d.Stats = &cobra.Command{
		Use:   "stats <file>",
		Short: "print node counts per depth",
		Args:  cobra.ExactArgs(1),
		RunE:  d.runStats,
	}
	d.Diff = &cobra.Command{
		Use:   "diff <file> <file>",
		Short: "compare the printed form of two trees",
		Args:  cobra.ExactArgs(2),
		RunE:  d.runDiff,
	}

	for _, cmd := range []*cobra.Command{d.Print, d.Diagram, d.Walk, d.Leaves, d.Stats} {
		cmd.Flags().StringVar(&d.from, "from", "", "node to start from (default: the root)")
	}
	d.Walk.Flags().StringVar(&d.order, "order", "pre", "visit parents before (pre) or after (post) children")
	d.Walk.Flags().BoolVar(&d.includeStart.walk, "include-start", false, "also visit the start node")
	d.Ancestors.Flags().BoolVar(&d.includeStart.ancestors, "include-start", true, "also visit the start node")
	d.Leaves.Flags().BoolVar(&d.includeStart.leaves, "include-start", false, "consider the start node")
	d.Stats.Flags().BoolVar(&d.plot, "plot", false, "plot the number of nodes per depth")
	d.Diagram.Flags().IntVar(&d.diagramOpts.Indent, "indent", 4, "columns per level")
	d.Diagram.Flags().StringVar(&d.diagramOpts.EdgeSeparator, "separator", " ─ ", "text between an edge and a value")

	d.Commands = []*cobra.Command{d.Print, d.Diagram, d.Walk, d.Ancestors, d.Leaves, d.Stats, d.Diff}
	return d
}

func (d *treeT) loadStart(path string) (*treedef.Node, error) {
	tree, err := d.t.load(path)
	if err != nil {
		return nil, err
	}
	return start(tree, d.from)
}

func (d *treeT) runPrint(cmd *cobra.Command, args []string) error {
	n, err := d.loadStart(args[0])
	if err != nil {
		return err
	}
	out, err := n.Print(nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (d *treeT) runDiagram(cmd *cobra.Command, args []string) error {
	n, err := d.loadStart(args[0])
	if err != nil {
		return err
	}
	out, err := n.Diagram(nil, &d.diagramOpts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	return tbl
}

func (d *treeT) runWalk(cmd *cobra.Command, args []string) error {
	var parentFirst bool
	switch d.order {
	case "pre":
		parentFirst = true
	case "post":
	default:
		return errors.Newf("unknown order %q", d.order)
	}
	n, err := d.loadStart(args[0])
	if err != nil {
		return err
	}
	tbl := newTable(cmd.OutOrStdout(), "node", "parent", "edge", "depth")
	err = n.DepthFirstTraversal(func(c, parent *treedef.Node, edge string, depth int) {
		row := []string{c.Value(), "", "", strconv.Itoa(depth)}
		if parent != nil {
			row[1], row[2] = parent.Value(), edge
		}
		tbl.Append(row)
	}, d.includeStart.walk, parentFirst)
	if err != nil {
		return err
	}
	tbl.Render()
	return nil
}

func (d *treeT) runAncestors(cmd *cobra.Command, args []string) error {
	tree, err := d.t.load(args[0])
	if err != nil {
		return err
	}
	n, err := start(tree, args[1])
	if err != nil {
		return err
	}
	tbl := newTable(cmd.OutOrStdout(), "node", "child", "edge", "distance", "root")
	err = n.TraverseAncestors(func(a, child *treedef.Node, edge string, distance int, isRoot bool) {
		row := []string{a.Value(), "", "", strconv.Itoa(distance), strconv.FormatBool(isRoot)}
		if child != nil {
			row[1], row[2] = child.Value(), edge
		}
		tbl.Append(row)
	}, d.includeStart.ancestors)
	if err != nil {
		return err
	}
	tbl.Render()
	return nil
}

func (d *treeT) runLeaves(cmd *cobra.Command, args []string) error {
	n, err := d.loadStart(args[0])
	if err != nil {
		return err
	}
	leaves, err := n.Leaves(d.includeStart.leaves)
	if err != nil {
		return err
	}
	for _, l := range leaves {
		fmt.Fprintln(cmd.OutOrStdout(), l.Value())
	}
	return nil
}

func (d *treeT) runDiff(cmd *cobra.Command, args []string) error {
	var printed [2]string
	for i, path := range args {
		tree, err := d.t.load(path)
		if err != nil {
			return err
		}
		if printed[i], err = tree.Root.Print(nil); err != nil {
			return errors.Wrapf(err, "%s", path)
		}
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(printed[0]),
		B:        difflib.SplitLines(printed[1]),
		FromFile: args[0],
		ToFile:   args[1],
		Context:  1,
	})
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no differences")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), diff)
	return nil
}
