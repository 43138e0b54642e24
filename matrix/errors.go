// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Public
// indexers return these sentinels (optionally wrapped with method context via
// %w); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLabelCount indicates that a labelled rendering was given a label slice
	// whose length does not match the grid shape.
	ErrLabelCount = errors.New("matrix: label count does not match shape")

	// ErrNilCellFunc indicates that Labeled was called without a cell renderer.
	ErrNilCellFunc = errors.New("matrix: nil cell function")
)
