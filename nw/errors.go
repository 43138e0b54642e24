// SPDX-License-Identifier: MIT
// Package: cacoepy/nw
//
// errors.go — sentinel errors for the nw package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (arity, offending type, indices) is attached with %w at the
//     return site, never baked into the sentinel text.
//   • Align never panics on user input.

package nw

import "errors"

var (
	// ErrInvalidSimilarity is returned by NewConfig when the similarity value is
	// neither a two-argument scoring function nor a two-level scoring table.
	// Classification: configuration error, fatal to that configuration.
	ErrInvalidSimilarity = errors.New("nw: similarity must be a two-argument function or a 2D table")

	// ErrNilConfig is returned by Align when no scoring configuration is given.
	ErrNilConfig = errors.New("nw: scoring config is nil")

	// ErrGapInSequence is returned by Align when an input sequence already
	// contains the reserved gap symbol.
	ErrGapInSequence = errors.New("nw: input sequence contains the gap symbol")

	// ErrTraceback signals that traceback indices underflowed before the origin
	// cell was reached, or that an unknown trace tag was read.
	// Classification: internal consistency fault; never expected in correct operation.
	ErrTraceback = errors.New("nw: traceback index underflow")
)
