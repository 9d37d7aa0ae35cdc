// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package edgetree

import "github.com/cockroachdb/errors"

// ErrCycleDetected is returned when a traversal reaches a node it has already
// entered during the same call. It indicates that the structure is not a tree.
var ErrCycleDetected = errors.New("edgetree: cycle detected")

// ErrContractViolation is returned when an operation is invoked in a state in
// which it is not defined, for example SetN on an edge that is already bound or
// EdgeThatLeadsTo on a leaf.
var ErrContractViolation = errors.New("edgetree: contract violation")

// ErrStructuralCorruption marks assertion failures raised when the parent and
// child links disagree, for example when a node is reachable through more than
// one child of the same parent. Errors carrying this mark also satisfy
// errors.HasAssertionFailure.
var ErrStructuralCorruption = errors.New("edgetree: structural corruption")

func cycleDetectedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCycleDetected, format, args...)
}

func contractViolationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrContractViolation, format, args...)
}

func structuralCorruptionf(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrStructuralCorruption)
}
