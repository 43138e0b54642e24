// SPDX-License-Identifier: MIT
// Package: cacoepy/mdd
//
// align.go — three-way alignment of target, annotation and prediction.

package mdd

import (
	"fmt"

	"github.com/Brono25/cacoepy/nw"
	"github.com/Brono25/cacoepy/reconcile"
)

// Aligner is the pairwise aligner used to build three-way alignments.
// *arpabet.Aligner satisfies it.
type Aligner interface {
	Align(seq1, seq2 []string) (*nw.Result, error)
	GapSymbol() string
}

// Alignment holds three equal-length sequences aligned position-for-position.
type Alignment struct {
	Target     []string `json:"target" yaml:"target"`
	Annotation []string `json:"annotation" yaml:"annotation"`
	Prediction []string `json:"prediction" yaml:"prediction"`
}

// Len returns the alignment length.
func (a *Alignment) Len() int { return len(a.Annotation) }

// Evaluate runs Evaluate over the three rows.
func (a *Alignment) Evaluate() (*Report, error) {
	return Evaluate(a.Target, a.Annotation, a.Prediction)
}

// AlignTriple aligns three unaligned sequences on the annotation.
//
// Algorithm Outline:
//  1. Remove gaps from all inputs.
//  2. Align annotation↔target and annotation↔prediction independently.
//  3. Reconcile both alignments on their shared annotation.
//
// Complexity: O(|a|·|t| + |a|·|p|).
func AlignTriple(target, annotation, prediction []string, al Aligner) (*Alignment, error) {
	if al == nil {
		return nil, ErrNilAligner
	}
	gap := al.GapSymbol()
	ann := reconcile.StripGaps(annotation, gap)

	withTarget, err := al.Align(ann, reconcile.StripGaps(target, gap))
	if err != nil {
		return nil, fmt.Errorf("AlignTriple: annotation/target: %w", err)
	}
	withPrediction, err := al.Align(ann, reconcile.StripGaps(prediction, gap))
	if err != nil {
		return nil, fmt.Errorf("AlignTriple: annotation/prediction: %w", err)
	}

	return merge(withTarget.A, withTarget.B, withPrediction.A, withPrediction.B, gap)
}

// AlignPrediction aligns a prediction against an annotated pair: target and
// annotation are already aligned to each other (as in annotated corpora) and
// keep their gaps; only the prediction is aligned, to the gap-free
// annotation, and then reconciled.
//
// len(target) != len(annotation) yields ErrSequenceLength.
func AlignPrediction(target, annotation, prediction []string, al Aligner) (*Alignment, error) {
	if al == nil {
		return nil, ErrNilAligner
	}
	if len(target) != len(annotation) {
		return nil, fmt.Errorf("AlignPrediction: target %d vs annotation %d: %w",
			len(target), len(annotation), ErrSequenceLength)
	}
	gap := al.GapSymbol()

	withPrediction, err := al.Align(reconcile.StripGaps(annotation, gap), reconcile.StripGaps(prediction, gap))
	if err != nil {
		return nil, fmt.Errorf("AlignPrediction: annotation/prediction: %w", err)
	}

	return merge(annotation, target, withPrediction.A, withPrediction.B, gap)
}

func merge(annA, target, annB, prediction []string, gap string) (*Alignment, error) {
	tr, err := reconcile.Pairs(annA, target, annB, prediction, gap)
	if err != nil {
		return nil, err
	}

	return &Alignment{Target: tr.PartnerA, Annotation: tr.Reference, Prediction: tr.PartnerB}, nil
}
