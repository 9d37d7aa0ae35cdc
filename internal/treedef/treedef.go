// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treedef parses textual tree definitions, used by tests and the
// edgetree tool. A definition looks like:
//
//	# comments and blank lines are ignored
//	root a
//	a -(0)-> b
//	a -(1)-> c
//	node j
//	link c -(0)-> a
//
// "root" names the root of the tree and must come first. Each edge line binds
// a new child, named and valued by its name, under an already defined parent;
// children are bound in line order. "node" defines a detached node. "link"
// binds an already defined node, which is how definitions can describe a
// shared child or a cycle.
package treedef

import (
	"strings"

	"github.com/cockroachdb/edgetree"
	"github.com/cockroachdb/edgetree/internal/strparse"
	"github.com/cockroachdb/errors"
)

// Node is the node type produced by Parse: values are node names and edges are
// the labels written between the parentheses.
type Node = edgetree.Node[string, string]

// Tree is a parsed definition.
type Tree struct {
	// Root is the node named by the "root" line.
	Root  *Node
	nodes map[string]*Node
	names []string
}

// Node returns the node with the given name.
func (t *Tree) Node(name string) (*Node, bool) {
	n, ok := t.nodes[name]
	return n, ok
}

// MustNode returns the node with the given name and panics if there is none.
func (t *Tree) MustNode(name string) *Node {
	n, ok := t.nodes[name]
	if !ok {
		panic(errors.AssertionFailedf("treedef: unknown node %q", name))
	}
	return n
}

// Names returns the node names in definition order.
func (t *Tree) Names() []string {
	return append([]string(nil), t.names...)
}

// Parse parses a tree definition.
func Parse(input string) (*Tree, error) {
	t := &Tree{nodes: make(map[string]*Node)}
	for i, line := range strings.Split(input, "\n") {
		if j := strings.IndexByte(line, '#'); j >= 0 {
			line = line[:j]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := t.parseLine(line); err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
	}
	if t.Root == nil {
		return nil, errors.New("treedef: missing root")
	}
	return t, nil
}

func (t *Tree) parseLine(line string) (err error) {
	parseErr := strparse.Catch(func() {
		p := strparse.MakeParser("()", line)
		switch p.Peek() {
		case "root":
			p.Next()
			name := p.Name()
			p.ExpectDone()
			if t.Root != nil {
				err = errors.Newf("treedef: root already defined as %q", t.Root.Value())
				return
			}
			t.Root, err = t.define(name)
		case "node":
			p.Next()
			name := p.Name()
			p.ExpectDone()
			_, err = t.define(name)
		case "link":
			p.Next()
			parent, edge, child := parseEdge(&p)
			err = t.bind(parent, edge, child, true)
		default:
			if t.Root == nil {
				err = errors.New("treedef: root must be defined first")
				return
			}
			parent, edge, child := parseEdge(&p)
			err = t.bind(parent, edge, child, false)
		}
	})
	if parseErr != nil {
		return parseErr
	}
	return err
}

func parseEdge(p *strparse.Parser) (parent, edge, child string) {
	parent = p.Name()
	p.Expect("-", "(")
	edge = p.Next()
	if edge == "" || edge == ")" {
		p.Errf("expected an edge label")
	}
	p.Expect(")", "->")
	child = p.Name()
	p.ExpectDone()
	return parent, edge, child
}

func (t *Tree) define(name string) (*Node, error) {
	if _, ok := t.nodes[name]; ok {
		return nil, errors.Newf("treedef: node %q already defined", name)
	}
	n := edgetree.New[string, string](name)
	t.nodes[name] = n
	t.names = append(t.names, name)
	return n, nil
}

func (t *Tree) bind(parentName, edge, childName string, link bool) error {
	parent, ok := t.nodes[parentName]
	if !ok {
		return errors.Newf("treedef: undefined parent %q", parentName)
	}
	var child *Node
	if link {
		if child, ok = t.nodes[childName]; !ok {
			return errors.Newf("treedef: undefined link target %q", childName)
		}
	} else {
		var err error
		if child, err = t.define(childName); err != nil {
			return err
		}
	}
	return parent.SetN(edge, child)
}
