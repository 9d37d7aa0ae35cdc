// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

type sample struct {
	a, b, c, d, e, f, g, h, i, j *Node[string, int]
}

// makeSample builds
//
//	a ─0─ b ─0─ d
//	│     └─1─ e ─0─ f ─0─ h
//	│          │     └─1─ i
//	│          └─1─ g
//	└─1─ c
//
// plus a detached node j. If withCycle is set, a is also bound under h.
func makeSample(t *testing.T, withCycle bool) sample {
	var s sample
	for _, p := range []struct {
		n **Node[string, int]
		v string
	}{{&s.a, "a"}, {&s.b, "b"}, {&s.c, "c"}, {&s.d, "d"}, {&s.e, "e"},
		{&s.f, "f"}, {&s.g, "g"}, {&s.h, "h"}, {&s.i, "i"}, {&s.j, "j"}} {
		*p.n = New[string, int](p.v)
	}
	require.NoError(t, s.f.SetN(0, s.h))
	require.NoError(t, s.f.SetN(1, s.i))
	require.NoError(t, s.e.SetN(0, s.f))
	require.NoError(t, s.e.SetN(1, s.g))
	require.NoError(t, s.b.SetN(0, s.d))
	require.NoError(t, s.b.SetN(1, s.e))
	require.NoError(t, s.a.SetN(0, s.b))
	require.NoError(t, s.a.SetN(1, s.c))
	if withCycle {
		require.NoError(t, s.h.SetN(0, s.a))
	}
	return s
}

func (s sample) all() []*Node[string, int] {
	return []*Node[string, int]{s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h, s.i, s.j}
}

func values[V any, E comparable](nodes []*Node[V, E]) string {
	var buf strings.Builder
	for _, n := range nodes {
		fmt.Fprint(&buf, n.Value())
	}
	return buf.String()
}

func TestNew(t *testing.T) {
	n := New[int, string](3)
	require.Equal(t, 3, n.Value())
	require.True(t, n.IsLeaf())
	require.True(t, n.IsRoot())
	require.Nil(t, n.Parent())
	require.Equal(t, 0, n.NumChildren())
	_, ok := n.Child("a")
	require.False(t, ok)
}

func TestSet(t *testing.T) {
	n := New[int, string](3)
	four, five := New[int, string](4), New[int, string](5)

	require.Nil(t, n.Set("a", four))
	require.False(t, n.IsLeaf())
	require.Same(t, n, four.Parent())

	require.Same(t, four, n.Set("a", five))
	require.False(t, n.IsLeaf())
	require.Same(t, n, five.Parent())
	// The replaced child is detached.
	require.Nil(t, four.Parent())

	delta := New[int, string](6)
	require.Nil(t, n.Set("b", delta))
	child, ok := n.Child("a")
	require.True(t, ok)
	require.Same(t, five, child)
	require.Equal(t, 2, n.NumChildren())
}

func TestSetKeepsEdgePosition(t *testing.T) {
	n := New[string, int]("root")
	for i, v := range []string{"x", "y", "z"} {
		n.Set(i, New[string, int](v))
	}
	n.Set(0, New[string, int]("w"))
	var got []string
	for e, c := range n.Children() {
		got = append(got, fmt.Sprintf("%d:%s", e, c.Value()))
	}
	require.Equal(t, []string{"0:w", "1:y", "2:z"}, got)
}

func TestSetReplacedChildStillBound(t *testing.T) {
	n := New[string, int]("root")
	c := New[string, int]("c")
	n.Set(0, c)
	n.Set(1, c)
	// c is no longer bound under 0 but still is under 1: keep its parent.
	require.Same(t, c, n.Set(0, New[string, int]("d")))
	require.Same(t, n, c.Parent())

	// Rebinding the same node is not a replacement.
	require.Same(t, c, n.Set(1, c))
	require.Same(t, n, c.Parent())

	// A replaced node that was moved to another parent keeps that parent.
	other := New[string, int]("other")
	other.Set(0, c)
	n.Set(1, New[string, int]("e"))
	require.Same(t, other, c.Parent())
}

func TestSetNilChild(t *testing.T) {
	n := New[string, int]("root")
	require.Panics(t, func() { n.Set(0, nil) })
}

func TestSetN(t *testing.T) {
	n := New[string, string]("root")
	first, second := New[string, string]("first"), New[string, string]("second")
	require.NoError(t, n.SetN("x", first))

	err := n.SetN("x", second)
	require.True(t, errors.Is(err, ErrContractViolation), "%v", err)
	child, _ := n.Child("x")
	require.Same(t, first, child)
	require.Nil(t, second.Parent())
}

func TestDescendants(t *testing.T) {
	s := makeSample(t, false)
	for _, tc := range []struct {
		n              *Node[string, int]
		without, withS string
	}{
		{s.h, "", "h"},
		{s.i, "", "i"},
		{s.g, "", "g"},
		{s.d, "", "d"},
		{s.c, "", "c"},
		{s.f, "hi", "fhi"},
		{s.e, "fhig", "efhig"},
		{s.b, "defhig", "bdefhig"},
		{s.a, "bdefhigc", "abdefhigc"},
	} {
		without, err := tc.n.Descendants(false)
		require.NoError(t, err)
		require.Equal(t, tc.without, values(without))
		with, err := tc.n.Descendants(true)
		require.NoError(t, err)
		require.Equal(t, tc.withS, values(with))
		require.Same(t, tc.n, with[0])
	}
}

func TestLeaves(t *testing.T) {
	s := makeSample(t, false)
	for _, tc := range []struct {
		n              *Node[string, int]
		without, withS string
	}{
		{s.h, "", "h"},
		{s.c, "", "c"},
		{s.f, "hi", "hi"},
		{s.e, "hig", "hig"},
		{s.b, "dhig", "dhig"},
		{s.a, "dhigc", "dhigc"},
	} {
		without, err := tc.n.Leaves(false)
		require.NoError(t, err)
		require.Equal(t, tc.without, values(without))
		with, err := tc.n.Leaves(true)
		require.NoError(t, err)
		require.Equal(t, tc.withS, values(with))
	}
}

func TestLeafIffNoDescendants(t *testing.T) {
	s := makeSample(t, false)
	for _, n := range s.all() {
		without, err := n.Descendants(false)
		require.NoError(t, err)
		with, err := n.Descendants(true)
		require.NoError(t, err)
		require.Equal(t, n.IsLeaf(), len(without) == 0, "%s", n)
		require.Equal(t, len(without)+1, len(with), "%s", n)
	}
}

func TestDepthFirstTraversalOrders(t *testing.T) {
	s := makeSample(t, false)
	walk := func(visitStart, parentFirst bool) string {
		var buf strings.Builder
		require.NoError(t, s.a.DepthFirstTraversal(func(n, _ *Node[string, int], _ int, _ int) {
			buf.WriteString(n.Value())
		}, visitStart, parentFirst))
		return buf.String()
	}
	require.Equal(t, "bdefhigc", walk(false, true))
	require.Equal(t, "abdefhigc", walk(true, true))
	require.Equal(t, "dhifgebc", walk(false, false))
	require.Equal(t, "dhifgebca", walk(true, false))

	// Same set of nodes, and reproducible.
	pre, post := []byte(walk(true, true)), []byte(walk(true, false))
	require.ElementsMatch(t, pre, post)
	require.Equal(t, string(pre), walk(true, true))
	require.Equal(t, string(post), walk(true, false))
}

func TestDepthFirstTraversalArguments(t *testing.T) {
	s := makeSample(t, false)
	var got []string
	require.NoError(t, s.e.DepthFirstTraversal(func(n, parent *Node[string, int], edge int, depth int) {
		if parent == nil {
			got = append(got, fmt.Sprintf("%s edge=%d depth=%d", n.Value(), edge, depth))
			return
		}
		got = append(got, fmt.Sprintf("%s -(%d)-> %s depth=%d", parent.Value(), edge, n.Value(), depth))
	}, true, false))
	require.Equal(t, []string{
		"f -(0)-> h depth=2",
		"f -(1)-> i depth=2",
		"e -(0)-> f depth=1",
		"e -(1)-> g depth=1",
		"e edge=0 depth=0",
	}, got)
}

func TestDepthFirstTraversalSum(t *testing.T) {
	a := New[int, int](1)
	nodes := []*Node[int, int]{a}
	for v := 2; v <= 10; v++ {
		nodes = append(nodes, New[int, int](v))
	}
	b, c, d, e, f, g, h, i := nodes[1], nodes[2], nodes[3], nodes[4], nodes[5], nodes[6], nodes[7], nodes[8]
	f.Set(0, h)
	f.Set(1, i)
	e.Set(0, f)
	e.Set(1, g)
	b.Set(0, d)
	b.Set(1, e)
	a.Set(0, b)
	a.Set(1, c)

	sum := 0
	accum := func(n, _ *Node[int, int], _ int, _ int) { sum += n.Value() }
	require.NoError(t, a.DepthFirstTraversal(accum, true, true))
	require.Equal(t, 45, sum)
	sum = 0
	require.NoError(t, a.DepthFirstTraversal(accum, false, true))
	require.Equal(t, 44, sum)
	sum = 0
	require.NoError(t, a.DepthFirstTraversal(accum, false, false))
	require.Equal(t, 44, sum)
}

func TestCycleDetected(t *testing.T) {
	s := makeSample(t, true)
	for _, parentFirst := range []bool{true, false} {
		err := s.a.DepthFirstTraversal(func(*Node[string, int], *Node[string, int], int, int) {}, true, parentFirst)
		require.True(t, errors.Is(err, ErrCycleDetected), "%v", err)
		require.Contains(t, err.Error(), "node(a, children=2) reached again through edge 0 of node(h, children=1)")
	}
	_, err := s.b.Descendants(false)
	require.True(t, errors.Is(err, ErrCycleDetected))
	_, err = s.e.Leaves(true)
	require.True(t, errors.Is(err, ErrCycleDetected))
	_, err = s.a.Print(nil)
	require.True(t, errors.Is(err, ErrCycleDetected))
	_, err = s.a.Diagram(nil, nil)
	require.True(t, errors.Is(err, ErrCycleDetected))

	// h.SetN(0, a) made h the parent of a, so the parent chain loops too.
	_, err = s.i.Depth()
	require.True(t, errors.Is(err, ErrCycleDetected))
	_, err = s.i.Root()
	require.True(t, errors.Is(err, ErrCycleDetected))
	err = s.i.TraverseAncestors(func(*Node[string, int], *Node[string, int], int, int, bool) {}, true)
	require.True(t, errors.Is(err, ErrCycleDetected))
}

func TestSelfLoop(t *testing.T) {
	n := New[string, int]("n")
	n.Set(0, n)
	_, err := n.Descendants(true)
	require.True(t, errors.Is(err, ErrCycleDetected))
}

func TestEdgeThatLeadsTo(t *testing.T) {
	s := makeSample(t, false)
	for _, tc := range []struct {
		target *Node[string, int]
		edge   int
	}{
		{s.b, 0}, {s.c, 1}, {s.d, 0}, {s.e, 0}, {s.f, 0}, {s.g, 0}, {s.h, 0}, {s.i, 0},
	} {
		edge, ok, err := s.a.EdgeThatLeadsTo(tc.target)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, tc.edge, edge, "%s", tc.target)
	}
	// j is not connected to the tree, and a is not below itself.
	for _, n := range []*Node[string, int]{s.j, s.a} {
		_, ok, err := s.a.EdgeThatLeadsTo(n)
		require.NoError(t, err)
		require.False(t, ok)
	}
	_, _, err := s.h.EdgeThatLeadsTo(s.a)
	require.True(t, errors.Is(err, ErrContractViolation), "%v", err)
}

func TestEdgeThatLeadsToInvertsSet(t *testing.T) {
	s := makeSample(t, false)
	for _, n := range s.all() {
		if n.IsRoot() {
			continue
		}
		for e, c := range n.Parent().Children() {
			if c == n {
				got, ok, err := n.Parent().EdgeThatLeadsTo(n)
				require.NoError(t, err)
				require.True(t, ok)
				require.Equal(t, e, got)
			}
		}
	}
	x := New[string, int]("x")
	s.g.Set(7, x)
	edge, ok, err := s.g.EdgeThatLeadsTo(x)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, edge)
}

func TestEdgeThatLeadsToCorruption(t *testing.T) {
	s := makeSample(t, false)
	// Bind g under c as well: g is now reachable through both edges of a.
	s.c.Set(0, s.g)
	_, _, err := s.a.EdgeThatLeadsTo(s.g)
	require.True(t, errors.Is(err, ErrStructuralCorruption), "%v", err)
	require.True(t, errors.HasAssertionFailure(err))
}

type ancestorVisit struct {
	Node, Child string
	Edge        int
	Distance    int
	IsRoot      bool
}

func TestTraverseAncestors(t *testing.T) {
	s := makeSample(t, false)
	collect := func(n *Node[string, int], includeSelf bool) []ancestorVisit {
		var got []ancestorVisit
		require.NoError(t, n.TraverseAncestors(func(a, child *Node[string, int], edge int, distance int, isRoot bool) {
			v := ancestorVisit{Node: a.Value(), Edge: edge, Distance: distance, IsRoot: isRoot}
			if child != nil {
				v.Child = child.Value()
			}
			got = append(got, v)
		}, includeSelf))
		return got
	}

	want := []ancestorVisit{
		{Node: "i", Distance: 0},
		{Node: "f", Child: "i", Edge: 1, Distance: 1},
		{Node: "e", Child: "f", Edge: 0, Distance: 2},
		{Node: "b", Child: "e", Edge: 1, Distance: 3},
		{Node: "a", Child: "b", Edge: 0, Distance: 4, IsRoot: true},
	}
	if diff := pretty.Diff(want, collect(s.i, true)); diff != nil {
		t.Fatalf("unexpected ancestor walk:\n%s", strings.Join(diff, "\n"))
	}
	if diff := pretty.Diff(want[1:], collect(s.i, false)); diff != nil {
		t.Fatalf("unexpected ancestor walk:\n%s", strings.Join(diff, "\n"))
	}
	require.Equal(t, []ancestorVisit{{Node: "a", IsRoot: true}}, collect(s.a, true))
	require.Empty(t, collect(s.a, false))
}

func TestTraverseAncestorsStaleParent(t *testing.T) {
	p := New[string, int]("p")
	q := New[string, int]("q")
	c := New[string, int]("c")
	p.Set(0, New[string, int]("other"))
	q.Set(0, c)
	// Point c's back-reference at a node that does not hold it.
	c.parent = p
	err := c.TraverseAncestors(func(*Node[string, int], *Node[string, int], int, int, bool) {}, true)
	require.True(t, errors.Is(err, ErrStructuralCorruption), "%v", err)
}

func TestAncestorPredicates(t *testing.T) {
	s := makeSample(t, false)
	notE := func(n *Node[string, int]) bool { return n.Value() != "e" }
	isNotLeaf := func(n *Node[string, int]) bool { return !n.IsLeaf() }

	ok, err := s.h.AllAncestorsSatisfy(isNotLeaf, false)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.h.AllAncestorsSatisfy(isNotLeaf, true)
	require.NoError(t, err)
	require.False(t, ok)

	v, err := s.i.FirstAncestorViolating(notE, true)
	require.NoError(t, err)
	require.Same(t, s.e, v)
	v, err = s.d.FirstAncestorViolating(notE, true)
	require.NoError(t, err)
	require.Nil(t, v)
	v, err = s.e.FirstAncestorViolating(notE, false)
	require.NoError(t, err)
	require.Nil(t, v)

	// The walk stops at the first violation.
	var seen []string
	_, err = s.h.FirstAncestorViolating(func(n *Node[string, int]) bool {
		seen = append(seen, n.Value())
		return n.Value() != "f"
	}, true)
	require.NoError(t, err)
	require.Equal(t, []string{"h", "f"}, seen)
}

func TestSiblingAndChildPredicates(t *testing.T) {
	s := makeSample(t, false)
	isLeaf := func(n *Node[string, int]) bool { return n.IsLeaf() }

	require.True(t, s.a.AllPreviousSiblingsSatisfy(isLeaf))
	require.True(t, s.b.AllPreviousSiblingsSatisfy(isLeaf))
	require.False(t, s.c.AllPreviousSiblingsSatisfy(isLeaf))
	require.True(t, s.e.AllPreviousSiblingsSatisfy(isLeaf))
	require.True(t, s.g.AllPreviousSiblingsSatisfy(func(n *Node[string, int]) bool { return n == s.f }))

	ok, err := s.f.AllChildrenSatisfy(isLeaf)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.e.AllChildrenSatisfy(isLeaf)
	require.NoError(t, err)
	require.False(t, ok)
	_, err = s.g.AllChildrenSatisfy(isLeaf)
	require.True(t, errors.Is(err, ErrContractViolation))
}

func TestDepthAndRoot(t *testing.T) {
	s := makeSample(t, false)
	for _, tc := range []struct {
		n     *Node[string, int]
		depth int
		root  *Node[string, int]
	}{
		{s.a, 0, s.a}, {s.b, 1, s.a}, {s.i, 4, s.a}, {s.g, 3, s.a}, {s.j, 0, s.j},
	} {
		depth, err := tc.n.Depth()
		require.NoError(t, err)
		require.Equal(t, tc.depth, depth, "%s", tc.n)
		root, err := tc.n.Root()
		require.NoError(t, err)
		require.Same(t, tc.root, root)
	}
}

func TestPrint(t *testing.T) {
	s := makeSample(t, false)
	out, err := s.a.Print(nil)
	require.NoError(t, err)
	require.Equal(t, `ROOT node #0 with value: a
node #0 ~~[0]~~> node #1 with value: b
node #1 ~~[0]~~> node #2 with value: d
node #1 ~~[1]~~> node #3 with value: e
node #3 ~~[0]~~> node #4 with value: f
node #4 ~~[0]~~> node #5 with value: h
node #4 ~~[1]~~> node #6 with value: i
node #3 ~~[1]~~> node #7 with value: g
node #0 ~~[1]~~> node #8 with value: c`, out)
	require.Len(t, strings.Split(out, "\n"), 9)

	out, err = s.j.Print(nil)
	require.NoError(t, err)
	require.Equal(t, "ROOT node #0 with value: j", out)

	// Ids restart on every call.
	for range 2 {
		out, err = s.f.Print(strings.ToUpper)
		require.NoError(t, err)
		require.Equal(t, `ROOT node #0 with value: F
node #0 ~~[0]~~> node #1 with value: H
node #0 ~~[1]~~> node #2 with value: I`, out)
	}
}

func TestDiagram(t *testing.T) {
	s := makeSample(t, false)
	out, err := s.a.Diagram(nil, nil)
	require.NoError(t, err)
	require.Equal(t, `a
├── 0 ─ b
│   ├── 0 ─ d
│   └── 1 ─ e
│       ├── 0 ─ f
│       │   ├── 0 ─ h
│       │   └── 1 ─ i
│       └── 1 ─ g
└── 1 ─ c`, out)

	out, err = s.e.Diagram(strings.ToUpper, &DiagramOptions{Indent: 2, EdgeSeparator: ": "})
	require.NoError(t, err)
	require.Equal(t, `E
├ 0: F
│ ├ 0: H
│ └ 1: I
└ 1: G`, out)

	out, err = s.j.Diagram(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "j", out)
}

func TestDiagramOptionsEnsureDefaults(t *testing.T) {
	var o *DiagramOptions
	o = o.EnsureDefaults()
	require.Equal(t, 4, o.Indent)
	require.Equal(t, " ─ ", o.EdgeSeparator)

	o = (&DiagramOptions{Indent: 6, EdgeSeparator: "="}).EnsureDefaults()
	require.Equal(t, 6, o.Indent)
	require.Equal(t, "=", o.EdgeSeparator)
}

func TestNodeString(t *testing.T) {
	s := makeSample(t, false)
	require.Equal(t, "node(a, children=2)", s.a.String())
	require.Equal(t, "node(j)", s.j.String())
	require.Equal(t, "node(‹a›, children=2)", string(redact.Sprint(s.a)))
}

func TestDeepTree(t *testing.T) {
	const depth = 200000
	root := New[int, int](0)
	leaf := root
	for i := 1; i < depth; i++ {
		next := New[int, int](i)
		leaf.Set(0, next)
		leaf = next
	}
	count := 0
	last := -1
	require.NoError(t, root.DepthFirstTraversal(func(n, _ *Node[int, int], _ int, d int) {
		if count == 0 {
			require.Equal(t, depth-1, d)
		}
		count++
		last = n.Value()
	}, true, false))
	require.Equal(t, depth, count)
	require.Equal(t, 0, last)

	d, err := leaf.Depth()
	require.NoError(t, err)
	require.Equal(t, depth-1, d)
}
