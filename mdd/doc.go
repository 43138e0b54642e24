// Package mdd evaluates mispronunciation detection and diagnosis (MDD).
//
// A recogniser's prediction is compared with what the speaker should have
// said (target) and what an annotator heard (annotation). Once the three
// sequences are aligned (AlignTriple, AlignPrediction), every position is
// classified:
//
//	              prediction == target    prediction != target
//	correct       true acceptance         false rejection
//	mispronounced false acceptance        true rejection
//
// True rejections are correctly diagnosed when the prediction equals the
// annotation, and diagnosis errors otherwise. Report carries the counts and
// the false acceptance, false rejection and diagnostic error rates, plus
// precision, recall and F1 of detection.
package mdd
