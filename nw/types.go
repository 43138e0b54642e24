// SPDX-License-Identifier: MIT
// Package: cacoepy/nw
//
// types.go — trace tags, options, and the alignment result.

package nw

import (
	"strings"

	"github.com/Brono25/cacoepy/matrix"
)

// DefaultGapSymbol is the reserved token emitted where one sequence has no
// counterpart in the other.
const DefaultGapSymbol = "-"

// Direction is the per-cell trace tag recorded during the DP fill.
//
//   - Origin  : cell (0,0); traceback stops here.
//   - Diagonal: token from seq1 paired with token from seq2.
//   - Up      : token from seq1 paired with a gap.
//   - Left    : gap paired with a token from seq2.
//
// The zero value Unset never survives a complete fill; reading it during
// traceback is reported as ErrTraceback.
type Direction uint8

const (
	Unset Direction = iota
	Origin
	Diagonal
	Up
	Left
)

// String renders the tag as the arrow used in matrix dumps.
func (d Direction) String() string {
	switch d {
	case Origin:
		return "X"
	case Diagonal:
		return "↖"
	case Up:
		return "↑"
	case Left:
		return "←"
	}
	return "?"
}

// Coord is one DP cell visited by traceback: I indexes the seq1 axis and J
// the seq2 axis, both in the sentinel-prefixed (1-based) working sequences.
type Coord struct {
	I, J int
}

// Options configures a single Align call.
//
// Fields:
//   - GapSymbol   : token emitted for gaps; empty means DefaultGapSymbol.
//   - KeepMatrices: if true, Result.Matrices retains the score and trace
//     grids for inspection. Otherwise they are discarded after traceback.
type Options struct {
	GapSymbol    string
	KeepMatrices bool
}

// DefaultOptions returns Options{GapSymbol: "-", KeepMatrices: false}.
func DefaultOptions() Options {
	return Options{GapSymbol: DefaultGapSymbol}
}

// Result is one optimal global alignment.
//
// Invariants:
//   - len(A) == len(B);
//   - removing every gap symbol from A yields seq1, and from B yields seq2;
//   - max(|seq1|,|seq2|) ≤ len(A) ≤ |seq1|+|seq2|.
type Result struct {
	A, B  []string // aligned seq1 and seq2
	Score float64  // value of the final DP cell

	// Path lists the traceback cells from the origin (0,0) to (|seq1|,|seq2|).
	// len(Path) == len(A)+1.
	Path []Coord

	// Matrices is nil unless Options.KeepMatrices was set.
	Matrices *Matrices
}

// Len returns the alignment length.
func (r *Result) Len() int { return len(r.A) }

// Matrices holds the DP grids of one Align call, for debugging.
type Matrices struct {
	Rows  []string      // "" + seq1, labels of the row axis
	Cols  []string      // "" + seq2, labels of the column axis
	Score *matrix.Dense // (|seq1|+1)×(|seq2|+1) scores
	Trace []Direction   // row-major trace tags, same shape as Score
}

// TraceAt returns the trace tag of cell (i, j), or Unset when out of range.
func (m *Matrices) TraceAt(i, j int) Direction {
	w := len(m.Cols)
	if i < 0 || j < 0 || i >= len(m.Rows) || j >= w {
		return Unset
	}
	return m.Trace[i*w+j]
}

// String renders the score grid, three blank lines, then the trace grid,
// both labelled with the working sequences.
func (m *Matrices) String() string {
	scores, err := matrix.LabeledDense(m.Score, m.Rows, m.Cols, matrix.DefaultCellWidth)
	if err != nil {
		return err.Error()
	}
	trace, err := matrix.Labeled(m.Rows, m.Cols, func(i, j int) string {
		return m.TraceAt(i, j).String()
	}, matrix.DefaultCellWidth)
	if err != nil {
		return err.Error()
	}

	return strings.TrimSuffix(scores, "\n") + "\n\n\n\n" + trace
}
