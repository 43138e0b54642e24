// Package nw computes optimal global alignments of two token sequences with
// the Needleman–Wunsch dynamic program.
//
// 🚀 What is global alignment?
//
//	Every token of both sequences is accounted for end-to-end. Where one
//	sequence has no counterpart, a reserved gap symbol ("-") is inserted, so
//	the two outputs line up position-for-position:
//
//	  seq1:  g  r  ae  s  hh  aa  p  er
//	  seq2:  g  -  uh  b  hh  ae  p  er
//
//	Used to compare an intended pronunciation, an actually produced one and a
//	recogniser's prediction, phoneme by phoneme.
//
// ✨ Key features:
//   - pluggable scoring: a pairwise function OR a two-level table (Config)
//   - additive gap penalty (pass a non-positive value for a cost)
//   - deterministic tie-break: Up, then Left, then Diagonal
//   - optional retention of the score/trace grids for debugging
//
// ⚙️ Usage:
//
//	cfg, err := nw.NewConfig(nw.MatchMismatch(1, -1), -1)
//	if err != nil { ... }
//	res, err := nw.Align(seq1, seq2, cfg, nil)
//	fmt.Println(res.A, res.B, res.Score)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M)
//
// Concurrency: a Config is immutable and may be shared by goroutines running
// independent Align calls; every call allocates its own grids.
package nw
