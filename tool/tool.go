// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the commands of the edgetree introspection tool.
// Every command reads a tree definition file in the format accepted by the
// treedef package.
package tool

import (
	"fmt"
	"log"
	"os"

	"github.com/cockroachdb/edgetree/internal/treedef"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Fatalf implements the Logger.Fatalf interface.
func (DefaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// T is the container for all of the introspection tools.
type T struct {
	Commands []*cobra.Command
	logger   Logger
	verbose  bool
	tree     *treeT
}

// Option configures a T.
type Option func(*T)

// WithLogger sets the logger used for verbose output and fatal errors.
func WithLogger(l Logger) Option {
	return func(t *T) { t.logger = l }
}

// New creates a new introspection tool.
func New(opts ...Option) *T {
	t := &T{logger: DefaultLogger{}}
	for _, opt := range opts {
		opt(t)
	}
	t.tree = newTree(t)
	t.Commands = t.tree.Commands
	for _, cmd := range t.Commands {
		cmd.Flags().BoolVarP(&t.verbose, "verbose", "v", false, "log what the command is doing")
	}
	return t
}

// Logger returns the tool's logger.
func (t *T) Logger() Logger {
	return t.logger
}

func (t *T) infof(format string, args ...interface{}) {
	if t.verbose {
		t.logger.Infof(format, args...)
	}
}

// load parses the tree definition stored in path.
func (t *T) load(path string) (*treedef.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := treedef.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	t.infof("%s: %d nodes defined, root %s", path, len(tree.Names()), tree.Root)
	return tree, nil
}

// start returns the node named name, or the root if name is empty.
func start(tree *treedef.Tree, name string) (*treedef.Node, error) {
	if name == "" {
		return tree.Root, nil
	}
	n, ok := tree.Node(name)
	if !ok {
		return nil, errors.Newf("unknown node %q", name)
	}
	return n, nil
}
