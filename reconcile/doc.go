// Package reconcile merges two pairwise alignments that share one reference
// sequence into a single three-way alignment.
//
// 🚀 When is it needed?
//
//	Aligning a prediction and a target against the same annotation yields two
//	alignments in which the annotation is padded differently:
//
//	  refA:  a  a  a        refB:  a  a  -  a
//	  pA:    x  -  x        pB:    z  z  -  z
//
//	Pairs re-pads both partners against one merged reference:
//
//	  ref:   a  a  -  a
//	  pA:    x  -  -  x
//	  pB:    z  z  -  z
//
// ✨ Properties:
//   - no rescoring: a synchronized two-cursor merge in O(len(refA)+len(refB))
//   - inputs are never modified; outputs are fresh slices
//   - preconditions and the postcondition are checked, never assumed
//
// Errors wrap ErrAlignSequencePair together with the failing check
// (ErrLengthMismatch, ErrReferenceMismatch or ErrMergeMismatch).
package reconcile
