// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii implements a random-access character board used to lay out
// text diagrams.
package ascii

import (
	"bytes"
	"slices"
	"strings"
)

// Board is a grid of runes that grows on demand in both dimensions. Cells that
// were never written render as spaces, and trailing spaces are trimmed when
// rendering.
type Board struct {
	buf   []rune
	width int
}

// Make returns a new Board with the given initial width and height.
func Make(width, height int) Board {
	if width < 1 {
		width = 1
	}
	return Board{buf: make([]rune, 0, width*height), width: width}
}

// At returns a cursor at the given row and column.
func (b *Board) At(r, c int) Cursor {
	if r >= b.lines() {
		b.growRows(r - b.lines() + 1)
	}
	return Cursor{b: b, r: r, c: c}
}

// NewLine returns a cursor at the beginning of a fresh line appended to the
// board.
func (b *Board) NewLine() Cursor {
	return b.At(b.lines(), 0)
}

// Lines returns the number of rows on the board.
func (b *Board) Lines() int {
	return b.lines()
}

// String returns the board contents.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the board contents with every line prefixed by indent.
func (b *Board) Render(indent string) string {
	var buf bytes.Buffer
	for r := 0; r < b.lines(); r++ {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteString(strings.TrimRight(string(b.row(r)), " "))
	}
	return buf.String()
}

// Reset clears the board and sets its width.
func (b *Board) Reset(w int) {
	b.buf = b.buf[:0]
	b.width = max(w, 1)
}

func (b *Board) lines() int {
	return len(b.buf) / b.width
}

func (b *Board) row(r int) []rune {
	return b.buf[r*b.width : (r+1)*b.width]
}

func (b *Board) growRows(n int) {
	b.buf = slices.Grow(b.buf, n*b.width)
	for range n * b.width {
		b.buf = append(b.buf, ' ')
	}
}

func (b *Board) growWidth(w int) {
	buf := make([]rune, w*b.lines())
	for i := range buf {
		buf[i] = ' '
	}
	for r := range b.lines() {
		copy(buf[r*w:], b.row(r))
	}
	b.buf = buf
	b.width = w
}

func (b *Board) write(r, c int, s []rune) {
	if c+len(s) > b.width {
		b.growWidth(c + len(s))
	}
	copy(b.row(r)[c:], s)
}

// Cursor is a position on a Board.
type Cursor struct {
	b    *Board
	r, c int
}

// Row returns the row of the cursor.
func (c Cursor) Row() int { return c.r }

// Column returns the column of the cursor.
func (c Cursor) Column() int { return c.c }

// Right returns a cursor moved numCols to the right.
func (c Cursor) Right(numCols int) Cursor {
	c.c += numCols
	return c
}

// Down returns a cursor moved numRows down, growing the board if necessary.
func (c Cursor) Down(numRows int) Cursor {
	return c.b.At(c.r+numRows, c.c)
}

// WriteString writes s at the cursor and returns a cursor positioned right
// after the written text. Newlines in s continue on the next row at the
// column the write started from.
func (c Cursor) WriteString(s string) Cursor {
	col := c.c
	for {
		line, rest, found := strings.Cut(s, "\n")
		runes := []rune(line)
		c.b.write(c.r, c.c, runes)
		c.c += len(runes)
		if !found {
			return c
		}
		c = c.b.At(c.r+1, col)
		s = rest
	}
}

// WriteRune writes a single rune at the cursor and returns a cursor positioned
// right after it.
func (c Cursor) WriteRune(ch rune) Cursor {
	c.b.write(c.r, c.c, []rune{ch})
	return c.Right(1)
}
