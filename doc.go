// Package cacoepy aligns phoneme sequences and scores mispronunciation
// detection, from a single pairwise alignment up to a whole annotated corpus.
//
// 🚀 What is cacoepy?
//
//	A small, dependency-light toolkit for pronunciation research:
//		• Global alignment: Needleman–Wunsch with a pluggable similarity
//		• Phonetics: ARPAbet attribute vectors → cosine substitution table
//		• Reconciliation: merge two alignments that share a reference
//		• Evaluation: three-way target/annotation/prediction alignment + MDD rates
//
// Under the hood, everything is organized under these subpackages:
//
//	nw/        scoring config, Needleman–Wunsch aligner, DP matrix dump
//	arpabet/   phoneme attributes, similarity table, vocabulary, preset aligners
//	reconcile/ two-cursor merge of alignments on a shared reference
//	mdd/       three-way alignment and the mispronunciation report
//	matrix/    dense DP grid and labelled text rendering
//	pretty/    column-aligned rendering of aligned sequences
//
// The cacoepy command (cmd/cacoepy) exposes align, reconcile, evaluate and
// similarity on top of these packages.
//
// Quick example:
//
//	al, _ := arpabet.NewAligner()
//	res, _ := al.Align([]string{"dh", "ah", "m"}, []string{"d", "iy", "ah", "m"})
//	//         res.A     = [dh - ah m]
//	//         res.B     = [d iy ah m]
//	//         res.Score = 17
//
//	go get github.com/Brono25/cacoepy
package cacoepy
