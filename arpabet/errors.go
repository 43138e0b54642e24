// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// errors.go — sentinel errors and the vocabulary error type.

package arpabet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInVocabulary is matched (errors.Is) by every *VocabularyError.
	ErrNotInVocabulary = errors.New("arpabet: token is not an ARPAbet phoneme")

	// ErrInvalidMapping indicates a malformed attribute mapping.
	ErrInvalidMapping = errors.New("arpabet: invalid attribute mapping")

	// ErrEmptyMark is returned by ParseMark for labels that normalise to "".
	// Callers usually skip such intervals.
	ErrEmptyMark = errors.New("arpabet: empty phone mark")

	// ErrInvalidMark is returned by ParseMark for labels matching no known form.
	ErrInvalidMark = errors.New("arpabet: unrecognised phone mark")
)

// VocabularyError reports the first token of a sequence that is outside the
// vocabulary. It is raised before any alignment work starts.
type VocabularyError struct {
	Token string // offending token
	Index int    // position of Token in the checked sequence
}

// Error implements error.
func (e *VocabularyError) Error() string {
	return fmt.Sprintf("arpabet: a sequence contains %q at index %d which is not an ARPAbet phoneme", e.Token, e.Index)
}

// Unwrap lets errors.Is(err, ErrNotInVocabulary) succeed.
func (e *VocabularyError) Unwrap() error { return ErrNotInVocabulary }
