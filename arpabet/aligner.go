// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// aligner.go — ready-made aligners over the nw core.

package arpabet

import (
	"fmt"
	"sync"

	"github.com/Brono25/cacoepy/nw"
)

// Aligner bundles a scoring config, options and an optional vocabulary.
// It records the score of its last successful Align call and is safe for
// concurrent use.
type Aligner struct {
	name  string
	cfg   *nw.Config
	opts  nw.Options
	vocab *Vocabulary // nil: every token accepted

	mu       sync.Mutex
	last     float64
	hasScore bool
}

// NewAligner returns the phonetically informed aligner: substitutions score
// by SimilarityTable, gaps by DefaultGapPenalty unless overridden, and both
// inputs must belong to the mapping's vocabulary.
func NewAligner(opts ...Option) (*Aligner, error) {
	c := newAlignerConfig(opts)
	if !c.gapSet {
		c.gap = DefaultGapPenalty
	}
	m := c.mapping
	if m == nil {
		m = DefaultMapping()
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("NewAligner: %w", err)
	}

	a := &Aligner{
		name: "arpabet",
		cfg:  nw.NewTableConfig(SimilarityTable(m), c.gap),
		opts: nw.Options{GapSymbol: c.gapSymbol, KeepMatrices: c.keep},
	}
	if c.vocab {
		a.vocab = m.Vocabulary()
	}

	return a, nil
}

// NewBasicAligner returns an identity aligner: equal tokens score BasicMatch,
// others BasicMismatch, gaps BasicGapPenalty. Any token is accepted.
func NewBasicAligner(opts ...Option) (*Aligner, error) {
	c := newAlignerConfig(opts)
	if !c.gapSet {
		c.gap = BasicGapPenalty
	}

	cfg, err := nw.NewFuncConfig(nw.MatchMismatch(c.match, c.mismatch), c.gap)
	if err != nil {
		return nil, fmt.Errorf("NewBasicAligner: %w", err)
	}

	return &Aligner{
		name: "basic",
		cfg:  cfg,
		opts: nw.Options{GapSymbol: c.gapSymbol, KeepMatrices: c.keep},
	}, nil
}

// Align checks seq1 then seq2 against the vocabulary (if any) and aligns them.
// A *VocabularyError is returned before any DP work.
func (a *Aligner) Align(seq1, seq2 []string) (*nw.Result, error) {
	if a.vocab != nil {
		if err := a.vocab.Check(seq1); err != nil {
			return nil, fmt.Errorf("seq1: %w", err)
		}
		if err := a.vocab.Check(seq2); err != nil {
			return nil, fmt.Errorf("seq2: %w", err)
		}
	}

	res, err := nw.Align(seq1, seq2, a.cfg, &a.opts)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.last, a.hasScore = res.Score, true
	a.mu.Unlock()

	return res, nil
}

// Score returns the score of the last successful Align call; ok is false
// before the first one.
func (a *Aligner) Score() (score float64, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.last, a.hasScore
}

// Name returns "arpabet" or "basic".
func (a *Aligner) Name() string { return a.name }

// Config returns the underlying scoring config.
func (a *Aligner) Config() *nw.Config { return a.cfg }

// GapSymbol returns the gap token this aligner emits.
func (a *Aligner) GapSymbol() string { return a.opts.GapSymbol }

// Vocabulary returns the enforced vocabulary, or nil when none is.
func (a *Aligner) Vocabulary() *Vocabulary { return a.vocab }
