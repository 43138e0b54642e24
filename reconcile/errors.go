// SPDX-License-Identifier: MIT
// Package: cacoepy/reconcile
//
// errors.go — sentinel errors for the reconcile package.
//
// Every failure of Pairs wraps ErrAlignSequencePair together with exactly one
// cause sentinel, so callers may branch on either:
//
//	errors.Is(err, reconcile.ErrAlignSequencePair) // "not reconcilable"
//	errors.Is(err, reconcile.ErrLengthMismatch)    // which check failed

package reconcile

import "errors"

var (
	// ErrAlignSequencePair marks every reconciliation failure. The two input
	// alignments cannot be merged; retrying with the same inputs is pointless.
	ErrAlignSequencePair = errors.New("reconcile: alignment pairs cannot be reconciled")

	// ErrLengthMismatch indicates that a reference and its partner differ in length.
	ErrLengthMismatch = errors.New("reconcile: reference and partner lengths differ")

	// ErrReferenceMismatch indicates that the two references do not reduce to
	// the same token sequence once gaps are removed.
	ErrReferenceMismatch = errors.New("reconcile: references differ after gap removal")

	// ErrMergeMismatch indicates that the merged reference read back from the
	// two branches disagrees. Internal consistency fault.
	ErrMergeMismatch = errors.New("reconcile: merged references differ")
)
