// Package pretty renders aligned token sequences as text columns.
package pretty

import (
	"strings"
	"unicode/utf8"
)

// ColumnSep separates adjacent columns.
const ColumnSep = "  "

// Sequences renders each row on its own line with column i left-justified to
// the widest token at position i across all rows. Shorter rows are padded
// with empty cells; trailing blanks are trimmed.
//
//	Sequences([]string{"g", "r", "ae"}, []string{"g", "-", "uh"}) ==
//	    "g  r  ae\n" +
//	    "g  -  uh\n"
//
// Complexity: O(total tokens).
func Sequences(rows ...[]string) string {
	if len(rows) == 0 {
		return ""
	}

	width := columnWidths(rows)

	var sb strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for i, w := range width {
			if i > 0 {
				line.WriteString(ColumnSep)
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Labeled is Sequences with a leading label column: labels[i] heads rows[i].
// Missing labels render empty.
func Labeled(labels []string, rows ...[]string) string {
	withLabels := make([][]string, len(rows))
	for i, row := range rows {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		withLabels[i] = append([]string{label}, row...)
	}

	return Sequences(withLabels...)
}

// columnWidths returns the rune width of every column across rows.
func columnWidths(rows [][]string) []int {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}

	width := make([]int, n)
	for _, row := range rows {
		for i, cell := range row {
			width[i] = max(width[i], utf8.RuneCountInString(cell))
		}
	}

	return width
}
