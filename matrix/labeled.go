package matrix

import (
	"fmt"
	"strings"
)

// DefaultCellWidth is the right-aligned column width used by Labeled when a
// non-positive width is requested.
const DefaultCellWidth = 4

// Labeled renders a len(rowLabels)×len(colLabels) grid as text: a header line of column labels,
// then one line per row starting with its row label. Every cell (labels
// included) is right-aligned to width runes; the top-left corner is blank.
//
// cell(i, j) supplies the text of grid cell (i, j). A nil cell yields
// ErrNilCellFunc.
//
// Example (width 4):
//
//	           A   G
//	       0  -1  -2
//	   A  -1   1   0
//
// Complexity: O(rows*cols).
func Labeled(rowLabels, colLabels []string, cell func(i, j int) string, width int) (string, error) {
	rows, cols := len(rowLabels), len(colLabels)
	if cell == nil {
		return "", ErrNilCellFunc
	}
	if width <= 0 {
		width = DefaultCellWidth
	}

	var sb strings.Builder
	pad := func(s string) {
		sb.WriteString(fmt.Sprintf("%*s", width, s))
	}

	pad("")
	for j := 0; j < cols; j++ {
		pad(colLabels[j])
	}
	sb.WriteByte('\n')

	for i := 0; i < rows; i++ {
		pad(rowLabels[i])
		for j := 0; j < cols; j++ {
			pad(cell(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// LabeledDense renders m with Labeled, formatting values with FormatValue.
func LabeledDense(m *Dense, rowLabels, colLabels []string, width int) (string, error) {
	rows, cols := m.Rows(), m.Cols()
	if len(rowLabels) != rows || len(colLabels) != cols {
		return "", fmt.Errorf("LabeledDense: %dx%d grid, %d row / %d col labels: %w",
			rows, cols, len(rowLabels), len(colLabels), ErrLabelCount)
	}

	return Labeled(rowLabels, colLabels, func(i, j int) string {
		return FormatValue(m.data[i*cols+j])
	}, width)
}
