// Package arpabet provides phonetically informed scoring for aligning ARPAbet
// phoneme sequences, plus the helpers needed to feed annotated corpora into it.
//
// 🚀 Why phonetic scoring?
//
//	With plain match/mismatch scoring, "b" against "p" costs as much as "b"
//	against "aa". Describing every phoneme by articulatory attributes (place,
//	manner, voicing, vowel height, ...) and comparing the attribute vectors
//	lets the aligner prefer substitutions a speaker is likely to make.
//
// ✨ Contents:
//   - DefaultMapping: the 39 ARPAbet phonemes over 34 attributes
//   - SimilarityTable: cosine similarity rescaled to integers in [-10, 10]
//   - LoadMapping: the same mapping read from JSON or YAML
//   - Vocabulary: closed-set check raising *VocabularyError
//   - Normalize / ParseMark: raw corpus labels → vocabulary tokens
//   - NewAligner / NewBasicAligner: ready-made aligners over package nw
//
// ⚙️ Usage:
//
//	al, err := arpabet.NewAligner() // gap -5, vocabulary enforced
//	if err != nil { ... }
//	res, err := al.Align([]string{"dh", "ah", "m"}, []string{"d", "iy", "ah", "m"})
//	// res.A = [dh - ah m], res.B = [d iy ah m], res.Score = 17
//
// The similarity table is built once per aligner; Align itself is safe for
// concurrent use.
package arpabet
