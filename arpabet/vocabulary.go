// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// vocabulary.go — closed token sets checked before alignment.

package arpabet

import "slices"

// Vocabulary is an immutable ordered set of tokens.
type Vocabulary struct {
	tokens []string
	set    map[string]struct{}
}

// NewVocabulary returns a Vocabulary of tokens; duplicates are dropped and the
// first occurrence fixes the order.
func NewVocabulary(tokens []string) *Vocabulary {
	v := &Vocabulary{
		tokens: make([]string, 0, len(tokens)),
		set:    make(map[string]struct{}, len(tokens)),
	}
	for _, t := range tokens {
		if _, ok := v.set[t]; ok {
			continue
		}
		v.set[t] = struct{}{}
		v.tokens = append(v.tokens, t)
	}

	return v
}

// Contains reports whether tok belongs to v.
func (v *Vocabulary) Contains(tok string) bool {
	_, ok := v.set[tok]
	return ok
}

// Tokens returns a copy of the tokens in insertion order.
func (v *Vocabulary) Tokens() []string { return slices.Clone(v.tokens) }

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Check returns a *VocabularyError for the first token of seq outside v, or nil.
// Complexity: O(len(seq)).
func (v *Vocabulary) Check(seq []string) error {
	for i, tok := range seq {
		if !v.Contains(tok) {
			return &VocabularyError{Token: tok, Index: i}
		}
	}

	return nil
}
