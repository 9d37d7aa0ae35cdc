// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardWrite(t *testing.T) {
	board := Make(4, 1)
	board.At(0, 0).WriteString("Hello\nworld!")
	require.Equal(t, "Hello\nworld!", board.String())
	require.Equal(t, 2, board.Lines())

	board.Reset(3)
	require.Equal(t, "", board.String())
	cur := board.At(1, 2).WriteString("a\nb")
	require.Equal(t, 2, cur.Row())
	require.Equal(t, 3, cur.Column())
	require.Equal(t, "\n  a\n  b", board.String())
}

func TestBoardRandomAccess(t *testing.T) {
	board := Make(1, 1)
	board.NewLine().WriteString("root")
	board.NewLine().Right(4).WriteString("child")
	board.At(1, 0).WriteRune('└')
	board.At(0, 0).Down(2).WriteRune('x')
	require.Equal(t, "root\n└   child\nx", board.String())
	require.Equal(t, "> root\n> └   child\n> x", board.Render("> "))
}
