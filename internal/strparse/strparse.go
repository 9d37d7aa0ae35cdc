// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests, tools and debug input.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parser splits a string into tokens. Tokens are separated by whitespace; in
// addition user-specified separators are always separate tokens. For example,
// when passed the separators `()` the string `a -(0)-> b` results in tokens
// `a`, `-`, `(`, `0`, `)`, `->`, `b`.
//
// All Parser methods panic instead of returning errors. Use Catch to convert
// those panics back into errors.
type Parser struct {
	original  string
	tokens    []token
	lastToken token
}

type token struct {
	tok    string
	offset int
}

// MakeParser constructs a new Parser that treats every rune in separators as a
// separate token, and consumes the provided input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}
	s := input
	off := 0
	for len(s) > 0 {
		start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if start == -1 {
			break
		}
		off += start
		s = s[start:]

		n := strings.IndexFunc(s, unicode.IsSpace)
		if n == -1 {
			n = len(s)
		}
		if pos := strings.IndexAny(s[:n], separators); pos == 0 {
			n = 1
		} else if pos > 0 {
			n = pos
		}
		p.tokens = append(p.tokens, token{tok: s[:n], offset: off})
		off += n
		s = s[n:]
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the offset of the next token.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.original)
	}
	return p.tokens[0].offset
}

// Peek returns the next token without consuming it. Returns "" if there are no
// more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// ExpectDone verifies that all tokens were consumed.
func (p *Parser) ExpectDone() {
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	var buf strings.Builder
	for _, tok := range p.tokens {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(tok.tok)
	}
	p.tokens = nil
	return buf.String()
}

// Name consumes the next token, verifying that it is made of letters, digits,
// underscores and dots.
func (p *Parser) Name() string {
	next := p.Next()
	if next == "" {
		p.Errf("expected a name")
	}
	for _, r := range next {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			p.Errf("invalid character %q in name %q", r, next)
		}
	}
	return next
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(parseError{errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg)})
}

type parseError struct {
	err error
}

// Catch runs fn and converts a panic raised by a Parser into an error. Other
// panics are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe.err
		}
	}()
	fn()
	return nil
}
