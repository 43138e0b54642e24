// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// similarity.go — cosine similarity of binary attribute vectors.

package arpabet

import (
	"math"

	"github.com/Brono25/cacoepy/nw"
)

// MaxSimilarity is the score of a phoneme against itself (cosine 1).
const MaxSimilarity = 10

// SimilarityTable builds the pairwise substitution table of m.
//
// Each phoneme becomes a binary vector over m.Attributes(); a pair scores
//
//	round((cos(a, b) - 0.5) * 20)
//
// rounded half to even, so identical phonemes score 10 and disjoint ones -10.
// A phoneme without attributes scores 0 against everything.
//
// Complexity: O(P²·A) for P phonemes and A attributes.
func SimilarityTable(m *Mapping) nw.Table {
	attrs := m.Attributes()
	index := make(map[string]int, len(attrs))
	for i, a := range attrs {
		index[a] = i
	}

	vectors := make([][]bool, len(m.Phonemes))
	for i, p := range m.Phonemes {
		v := make([]bool, len(attrs))
		for _, a := range p.Attributes {
			if k, ok := index[a]; ok {
				v[k] = true
			}
		}
		vectors[i] = v
	}

	table := make(nw.Table, len(m.Phonemes))
	for i, pa := range m.Phonemes {
		row := make(map[string]float64, len(m.Phonemes))
		for j, pb := range m.Phonemes {
			row[pb.Symbol] = float64(cosineScore(vectors[i], vectors[j]))
		}
		table[pa.Symbol] = row
	}

	return table
}

// DefaultTable is SimilarityTable(DefaultMapping()).
func DefaultTable() nw.Table {
	return SimilarityTable(DefaultMapping())
}

// cosineScore rescales the cosine of two binary vectors into [-10, 10].
func cosineScore(a, b []bool) int {
	var na, nb, dot int
	for k := range a {
		if a[k] {
			na++
		}
		if b[k] {
			nb++
		}
		if a[k] && b[k] {
			dot++
		}
	}
	if na == 0 || nb == 0 {
		return 0
	}

	// Evaluation order and the explicit conversion are fixed: half-way ties
	// such as (v, y) depend on the exact rounding of each step, and the
	// conversion stops the compiler from fusing the multiply into the subtract.
	normaliser := 1 / (math.Sqrt(float64(na)) * math.Sqrt(float64(nb)))
	cos := float64(normaliser * float64(dot))

	return int(math.RoundToEven((cos - 0.5) * 20))
}
