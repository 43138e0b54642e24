// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// options.go — functional options for the preset aligners.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil mapping, empty gap symbol). Align itself never panics.
//   • Options apply in order; later ones override earlier ones.
//   • Options irrelevant to a preset are ignored (WithMapping on
//     NewBasicAligner, WithMatchMismatch on NewAligner).

package arpabet

import "github.com/Brono25/cacoepy/nw"

// Preset defaults.
const (
	DefaultGapPenalty = -5.0 // ARPAbet table scores span [-10, 10]
	BasicGapPenalty   = -2.0
	BasicMatch        = 1.0
	BasicMismatch     = -1.0
)

// Option customizes a preset aligner.
type Option func(*alignerConfig)

type alignerConfig struct {
	gap       float64
	gapSet    bool
	match     float64
	mismatch  float64
	mapping   *Mapping
	gapSymbol string
	keep      bool
	vocab     bool
}

func newAlignerConfig(opts []Option) alignerConfig {
	cfg := alignerConfig{
		match:     BasicMatch,
		mismatch:  BasicMismatch,
		gapSymbol: nw.DefaultGapSymbol,
		vocab:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGapPenalty sets the additive gap score (pass a negative value for a cost).
func WithGapPenalty(gap float64) Option {
	return func(c *alignerConfig) {
		c.gap = gap
		c.gapSet = true
	}
}

// WithMatchMismatch sets the scores of the basic aligner.
func WithMatchMismatch(match, mismatch float64) Option {
	return func(c *alignerConfig) {
		c.match = match
		c.mismatch = mismatch
	}
}

// WithMapping replaces the built-in attribute mapping. Panics on nil.
func WithMapping(m *Mapping) Option {
	if m == nil {
		panic("arpabet: WithMapping(nil)")
	}
	return func(c *alignerConfig) { c.mapping = m }
}

// WithGapSymbol sets the emitted gap token. Panics on "".
func WithGapSymbol(sym string) Option {
	if sym == "" {
		panic(`arpabet: WithGapSymbol("")`)
	}
	return func(c *alignerConfig) { c.gapSymbol = sym }
}

// WithMatrices keeps the DP grids on every Result.
func WithMatrices() Option {
	return func(c *alignerConfig) { c.keep = true }
}

// WithoutVocabularyCheck lets NewAligner accept tokens outside the mapping;
// they then score 0 against everything.
func WithoutVocabularyCheck() Option {
	return func(c *alignerConfig) { c.vocab = false }
}
