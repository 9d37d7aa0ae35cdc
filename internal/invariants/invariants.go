// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates expensive structural self-checks. The checks are
// compiled in only when building with the "invariants" or "race" build tags.
package invariants

import "github.com/cockroachdb/errors"

// Check panics with an assertion failure if cond is false and invariants are
// enabled. The format arguments are only evaluated on failure, so callers
// should still guard costly argument construction with Enabled.
func Check(cond bool, format string, args ...interface{}) {
	if Enabled && !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
