// SPDX-License-Identifier: MIT
// Package: cacoepy/nw
//
// scoring.go — the scoring configuration consumed by Align.
//
// A Config is a tagged variant: it holds EITHER a pairwise scoring function
// OR a two-level scoring table, plus one gap penalty. The variant is resolved
// once in the constructor and exposed through a single Score(a, b) method, so
// the DP fill never type-switches per cell.

package nw

import (
	"fmt"
	"reflect"
)

// SimilarityFunc scores the substitution of token a (from seq1) by token b
// (from seq2). It must be pure: Align calls it once per DP cell.
type SimilarityFunc func(a, b string) float64

// Table is a two-level scoring table: Table[a][b] is the score of pairing a
// with b. Absent pairs score exactly 0.
//
// Align looks up Table[seq1 token][seq2 token]. An asymmetric table keyed the
// other way round (seq2 token first) must be transposed before use.
type Table map[string]map[string]float64

// Kind reports which scoring variant a Config holds.
type Kind int

const (
	// KindFunction: scores come from a SimilarityFunc.
	KindFunction Kind = iota
	// KindTable: scores come from a Table lookup.
	KindTable
)

// String returns a short human-readable name of the variant.
func (k Kind) String() string {
	if k == KindTable {
		return "table"
	}
	return "function"
}

// Config is an immutable scoring policy: a gap penalty plus exactly one of a
// scoring function or a scoring table. Build it once and share it freely; a
// Config is safe for concurrent read-only use by independent Align calls.
type Config struct {
	gap   float64
	kind  Kind
	fn    SimilarityFunc
	table Table
	score func(a, b string) float64 // resolved variant, see Score
}

// NewConfig validates similarity and returns a Config using gapPenalty.
//
// Accepted similarity values:
//   - SimilarityFunc, func(string, string) float64, func(string, string) int;
//   - Table, map[string]map[string]float64, map[string]map[string]int.
//
// A function value with any other number of parameters fails with
// ErrInvalidSimilarity carrying its arity; any other value fails with
// ErrInvalidSimilarity carrying its type.
//
// gapPenalty is stored as given and ADDED at every gap step, so a
// conventional cost must be passed as a non-positive number.
func NewConfig(similarity any, gapPenalty float64) (*Config, error) {
	switch s := similarity.(type) {
	case SimilarityFunc:
		return NewFuncConfig(s, gapPenalty)
	case func(string, string) float64:
		return NewFuncConfig(s, gapPenalty)
	case func(string, string) int:
		if s == nil {
			return nil, fmt.Errorf("%w: nil function", ErrInvalidSimilarity)
		}
		return NewFuncConfig(func(a, b string) float64 { return float64(s(a, b)) }, gapPenalty)
	case Table:
		return NewTableConfig(s, gapPenalty), nil
	case map[string]map[string]float64:
		return NewTableConfig(s, gapPenalty), nil
	case map[string]map[string]int:
		t := make(Table, len(s))
		for a, row := range s {
			r := make(map[string]float64, len(row))
			for b, v := range row {
				r[b] = float64(v)
			}
			t[a] = r
		}
		return NewTableConfig(t, gapPenalty), nil
	case nil:
		return nil, fmt.Errorf("%w: got nil", ErrInvalidSimilarity)
	}

	v := reflect.ValueOf(similarity)
	if v.Kind() == reflect.Func {
		if n := v.Type().NumIn(); n != 2 {
			return nil, fmt.Errorf("%w: function takes %d arguments, want 2", ErrInvalidSimilarity, n)
		}
		return nil, fmt.Errorf("%w: unsupported function signature %T", ErrInvalidSimilarity, similarity)
	}

	return nil, fmt.Errorf("%w: got %T", ErrInvalidSimilarity, similarity)
}

// NewFuncConfig returns a Config backed by fn. A nil fn is rejected with
// ErrInvalidSimilarity.
func NewFuncConfig(fn SimilarityFunc, gapPenalty float64) (*Config, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidSimilarity)
	}
	c := &Config{gap: gapPenalty, kind: KindFunction, fn: fn}
	c.score = fn

	return c, nil
}

// NewTableConfig returns a Config backed by a private deep copy of t, so later
// mutation of t does not leak into alignments. A nil or empty table is valid:
// every pair then scores 0.
func NewTableConfig(t Table, gapPenalty float64) *Config {
	cp := make(Table, len(t))
	for a, row := range t {
		r := make(map[string]float64, len(row))
		for b, v := range row {
			r[b] = v
		}
		cp[a] = r
	}
	c := &Config{gap: gapPenalty, kind: KindTable, table: cp}
	c.score = cp.lookup

	return c
}

// Score returns the substitution score of (a, b): fn(a, b) for a function
// config, Table[a][b] (0 when absent) for a table config.
// Complexity: O(1) for tables, cost of fn otherwise.
func (c *Config) Score(a, b string) float64 {
	return c.score(a, b)
}

// GapPenalty returns the value added at every gap-producing step.
func (c *Config) GapPenalty() float64 { return c.gap }

// Kind reports whether c is function- or table-backed.
func (c *Config) Kind() Kind { return c.kind }

// lookup returns t[a][b], treating unknown rows and columns as 0.
func (t Table) lookup(a, b string) float64 {
	return t[a][b] // nil inner map reads as 0
}

// MatchMismatch returns a SimilarityFunc scoring equal tokens with match and
// different tokens with mismatch.
func MatchMismatch(match, mismatch float64) SimilarityFunc {
	return func(a, b string) float64 {
		if a == b {
			return match
		}
		return mismatch
	}
}
