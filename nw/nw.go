package nw

import (
	"fmt"

	"github.com/Brono25/cacoepy/matrix"
)

// Align performs Needleman–Wunsch global alignment.
//
// Description:
//
//	Align pairs every token of seq1 and seq2 end-to-end, inserting the gap
//	symbol where one side has no counterpart, so that the total score under
//	cfg is maximal.
//
// Algorithm Outline:
//  1. Prefix both sequences with an empty sentinel: n1 = |seq1|+1, n2 = |seq2|+1.
//  2. Initialize:
//     S[0][j] = j·gap (trace Left), S[i][0] = i·gap (trace Up), (0,0) = Origin.
//  3. For i = 1..n1-1, j = 1..n2-1:
//     diag = S[i-1][j-1] + cfg.Score(seq1[i], seq2[j])
//     up   = S[i-1][j]   + gap
//     left = S[i][j-1]   + gap
//     S[i][j] = max(diag, up, left); ties resolve Up, then Left, then Diagonal.
//  4. Traceback from (n1-1, n2-1) to Origin, emitting token/gap pairs, then reverse.
//
// The tie-break order is fixed: equally optimal alignments are not unique and
// callers (and tests) depend on which one is returned.
//
// Complexity:
//
//	Time   = O(|seq1|·|seq2|) fill + O(|seq1|+|seq2|) traceback
//	Memory = O(|seq1|·|seq2|)
//
// Errors:
//   - ErrNilConfig     : cfg is nil.
//   - ErrGapInSequence : an input token equals the gap symbol.
//   - ErrTraceback     : internal consistency fault during traceback.
//
// opts may be nil (DefaultOptions). Align keeps no state between calls.
func Align(seq1, seq2 []string, cfg *Config, opts *Options) (*Result, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.GapSymbol == "" {
			o.GapSymbol = DefaultGapSymbol
		}
	}
	if err := checkNoGap("seq1", seq1, o.GapSymbol); err != nil {
		return nil, err
	}
	if err := checkNoGap("seq2", seq2, o.GapSymbol); err != nil {
		return nil, err
	}

	// 1-indexed working sequences
	rows := append([]string{""}, seq1...)
	cols := append([]string{""}, seq2...)
	n1, n2 := len(rows), len(cols)

	score, err := matrix.NewDense(n1, n2)
	if err != nil {
		return nil, err
	}
	trace := make([]Direction, n1*n2)

	if err = fill(score, trace, rows, cols, cfg); err != nil {
		return nil, err
	}

	res, err := traceback(trace, rows, cols, o.GapSymbol)
	if err != nil {
		return nil, err
	}
	if res.Score, err = score.At(n1-1, n2-1); err != nil {
		return nil, err
	}
	if o.KeepMatrices {
		res.Matrices = &Matrices{Rows: rows, Cols: cols, Score: score, Trace: trace}
	}

	return res, nil
}

// checkNoGap reports the first position of seq holding the gap symbol.
func checkNoGap(name string, seq []string, gap string) error {
	for i, tok := range seq {
		if tok == gap {
			return fmt.Errorf("%s[%d]=%q: %w", name, i, tok, ErrGapInSequence)
		}
	}
	return nil
}

// fill initializes the borders and computes every interior cell row-major.
func fill(score *matrix.Dense, trace []Direction, rows, cols []string, cfg *Config) error {
	n1, n2 := len(rows), len(cols)
	gap := cfg.gap

	first, err := score.Row(0)
	if err != nil {
		return err
	}
	// first[0] stays 0: 0·gap would be -0 for negative gaps.
	for j := 1; j < n2; j++ {
		first[j] = float64(j) * gap
		trace[j] = Left
	}
	for i := 1; i < n1; i++ {
		if err = score.Set(i, 0, float64(i)*gap); err != nil {
			return err
		}
		trace[i*n2] = Up
	}
	trace[0] = Origin

	prev := first
	for i := 1; i < n1; i++ {
		cur, err := score.Row(i)
		if err != nil {
			return err
		}
		a := rows[i]
		for j := 1; j < n2; j++ {
			diag := prev[j-1] + cfg.score(a, cols[j])
			up := prev[j] + gap
			left := cur[j-1] + gap
			cur[j], trace[i*n2+j] = choose(diag, up, left)
		}
		prev = cur
	}

	return nil
}

// choose returns the best of the three candidates and its direction.
// Order of preference on ties: Up, Left, Diagonal.
func choose(diag, up, left float64) (float64, Direction) {
	best := max(diag, up, left)
	if up == best {
		return best, Up
	}
	if left == best {
		return best, Left
	}
	return best, Diagonal
}

// traceback walks the trace grid from the last cell to Origin.
func traceback(trace []Direction, rows, cols []string, gap string) (*Result, error) {
	n2 := len(cols)
	i, j := len(rows)-1, n2-1
	capacity := i + j

	a := make([]string, 0, capacity)
	b := make([]string, 0, capacity)
	path := make([]Coord, 0, capacity+1)

	for {
		path = append(path, Coord{I: i, J: j})
		d := trace[i*n2+j]
		if d == Origin {
			break
		}
		switch d {
		case Diagonal:
			a = append(a, rows[i])
			b = append(b, cols[j])
			i--
			j--
		case Up:
			a = append(a, rows[i])
			b = append(b, gap)
			i--
		case Left:
			a = append(a, gap)
			b = append(b, cols[j])
			j--
		default:
			return nil, fmt.Errorf("cell (%d,%d) has tag %d: %w", i, j, d, ErrTraceback)
		}
		if i < 0 || j < 0 {
			return nil, fmt.Errorf("i=%d, j=%d: %w", i, j, ErrTraceback)
		}
	}

	reverse(a)
	reverse(b)
	reverse(path)

	return &Result{A: a, B: b, Path: path}, nil
}

// reverse reverses s in place.
func reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
