package matrix_test

import (
	"strconv"
	"testing"

	"github.com/Brono25/cacoepy/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLabeled renders a small grid with a custom cell function.
func TestLabeled(t *testing.T) {
	got, err := matrix.Labeled([]string{"", "x"}, []string{"", "a", "b"}, func(i, j int) string {
		return strconv.Itoa(i*10 + j)
	}, 3)
	require.NoError(t, err)

	want := "        a  b\n" +
		"     0  1  2\n" +
		"  x 10 11 12\n"
	assert.Equal(t, want, got)
}

// TestLabeled_DefaultWidth checks that a non-positive width falls back to DefaultCellWidth.
func TestLabeled_DefaultWidth(t *testing.T) {
	got, err := matrix.Labeled([]string{"r"}, []string{"c"}, func(_, _ int) string { return "v" }, 0)
	require.NoError(t, err)
	assert.Equal(t, "       c\n   r   v\n", got)
}

// TestLabeled_NilCell ensures a missing cell renderer is reported.
func TestLabeled_NilCell(t *testing.T) {
	_, err := matrix.Labeled([]string{"r"}, []string{"c"}, nil, 4)
	require.ErrorIs(t, err, matrix.ErrNilCellFunc)
}

// TestLabeled_Empty renders just the header and row labels for an empty grid.
func TestLabeled_Empty(t *testing.T) {
	got, err := matrix.Labeled(nil, nil, func(_, _ int) string { return "" }, 2)
	require.NoError(t, err)
	assert.Equal(t, "  \n", got)
}

// TestLabeledDense renders a Dense with label axes.
func TestLabeledDense(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, -1))
	require.NoError(t, m.Set(1, 0, -1))
	require.NoError(t, m.Set(1, 1, 1))

	got, err := matrix.LabeledDense(m, []string{"", "A"}, []string{"", "A"}, matrix.DefaultCellWidth)
	require.NoError(t, err)

	want := "           A\n" +
		"       0  -1\n" +
		"   A  -1   1\n"
	assert.Equal(t, want, got)
}

// TestLabeledDense_LabelCount rejects label slices that do not match the shape.
func TestLabeledDense_LabelCount(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = matrix.LabeledDense(m, []string{"", "A"}, []string{"", "B"}, 4)
	require.ErrorIs(t, err, matrix.ErrLabelCount)
	assert.Contains(t, err.Error(), "2x3 grid")
}
