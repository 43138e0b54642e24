// SPDX-License-Identifier: MIT
// Package: cacoepy/mdd
//
// errors.go — sentinel errors for the mdd package.

package mdd

import "errors"

var (
	// ErrSequenceLength indicates that sequences which must be aligned
	// position-for-position differ in length.
	ErrSequenceLength = errors.New("mdd: target, annotation and prediction must be aligned")

	// ErrNilAligner is returned when an alignment helper is given no aligner.
	ErrNilAligner = errors.New("mdd: aligner is nil")
)
