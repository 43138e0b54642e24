// SPDX-License-Identifier: MIT

package reconcile

import (
	"fmt"
	"slices"

	"github.com/Brono25/cacoepy/nw"
)

// Triple is a reconciled three-way alignment. All three slices have the same
// length, and Reference with gaps removed equals both input references with
// gaps removed.
type Triple struct {
	Reference []string
	PartnerA  []string
	PartnerB  []string
}

// Len returns the length of the merged alignment.
func (t *Triple) Len() int { return len(t.Reference) }

// Pairs merges (refA, partnerA) and (refB, partnerB) on their shared reference.
//
// Contract:
//   - len(refA) == len(partnerA) and len(refB) == len(partnerB);
//   - refA and refB, with every gap symbol removed, are the same sequence.
//
// Algorithm Outline:
//  1. Validate the contract (ErrLengthMismatch, ErrReferenceMismatch).
//  2. Walk both pairs with one cursor each:
//     - equal reference tokens (gap or real): emit both columns, advance both;
//     - refB holds a gap absent from refA: emit (gap, gap) on the A branch,
//     advance B only;
//     - otherwise refA holds the extra gap: emit (gap, gap) on the B branch,
//     advance A only.
//     An exhausted pair behaves as an endless run of (gap, gap).
//  3. Verify that both branches produced the same reference (ErrMergeMismatch).
//
// gap == "" means nw.DefaultGapSymbol.
//
// Complexity: O(len(refA)+len(refB)) time and memory.
func Pairs(refA, partnerA, refB, partnerB []string, gap string) (*Triple, error) {
	if gap == "" {
		gap = nw.DefaultGapSymbol
	}

	if len(refA) != len(partnerA) {
		return nil, fmt.Errorf("%w: %w: len(refA)=%d, len(partnerA)=%d",
			ErrAlignSequencePair, ErrLengthMismatch, len(refA), len(partnerA))
	}
	if len(refB) != len(partnerB) {
		return nil, fmt.Errorf("%w: %w: len(refB)=%d, len(partnerB)=%d",
			ErrAlignSequencePair, ErrLengthMismatch, len(refB), len(partnerB))
	}
	if !slices.Equal(StripGaps(refA, gap), StripGaps(refB, gap)) {
		return nil, fmt.Errorf("%w: %w", ErrAlignSequencePair, ErrReferenceMismatch)
	}

	return merge(refA, partnerA, refB, partnerB, gap)
}

// merge runs the two-cursor walk without input validation.
func merge(refA, partnerA, refB, partnerB []string, gap string) (*Triple, error) {
	na, nb := len(refA), len(refB)
	size := max(na, nb)
	refFromA := make([]string, 0, size)
	refFromB := make([]string, 0, size)
	outA := make([]string, 0, size)
	outB := make([]string, 0, size)

	i, j := 0, 0
	for i < na || j < nb {
		switch {
		case i < na && j < nb && refA[i] == refB[j]:
			refFromA, outA = append(refFromA, refA[i]), append(outA, partnerA[i])
			refFromB, outB = append(refFromB, refB[j]), append(outB, partnerB[j])
			i++
			j++
		case j < nb && (i >= na || refB[j] == gap):
			refFromA, outA = append(refFromA, gap), append(outA, gap)
			refFromB, outB = append(refFromB, refB[j]), append(outB, partnerB[j])
			j++
		default:
			refFromA, outA = append(refFromA, refA[i]), append(outA, partnerA[i])
			refFromB, outB = append(refFromB, gap), append(outB, gap)
			i++
		}
	}

	if idx := firstDiff(refFromA, refFromB); idx >= 0 {
		return nil, fmt.Errorf("%w: %w at column %d (%q vs %q)",
			ErrAlignSequencePair, ErrMergeMismatch, idx, refFromA[idx], refFromB[idx])
	}

	return &Triple{Reference: refFromA, PartnerA: outA, PartnerB: outB}, nil
}

// StripGaps returns a copy of seq without any occurrence of gap.
// Complexity: O(len(seq)).
func StripGaps(seq []string, gap string) []string {
	out := make([]string, 0, len(seq))
	for _, tok := range seq {
		if tok != gap {
			out = append(out, tok)
		}
	}

	return out
}

// firstDiff returns the first index where equal-length a and b differ, or -1.
func firstDiff(a, b []string) int {
	for k := range a {
		if a[k] != b[k] {
			return k
		}
	}

	return -1
}
