// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"

	"github.com/cockroachdb/edgetree/tool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edgetree [command] (flags)",
	Short: "edge-labeled tree introspection tool",
	Long: `
Inspect trees described in tree definition files:

	root a
	a -(0)-> b
	a -(1)-> c
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	t := tool.New()
	rootCmd.AddCommand(t.Commands...)

	if err := rootCmd.Execute(); err != nil {
		t.Logger().Fatalf("edgetree: %v", err)
	}
}
