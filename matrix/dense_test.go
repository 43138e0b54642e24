// Package matrix_test contains unit tests for the Dense grid.
package matrix_test

import (
	"testing"

	"github.com/Brono25/cacoepy/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfRange ensures At(), Set() and Row() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.Row(2,0)")
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	val, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, val, "fresh matrices are zeroed")
}

// TestRowAliases checks that Row exposes the backing storage of one row only.
func TestRowAliases(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	require.Equal(t, 3, cap(row), "row capacity is clipped to its width")

	row[0] = -2
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -2.0, v, "writes through Row are visible via At")

	row = append(row, 99) // reallocates instead of spilling into the next row
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDenseString checks the bracketed row-per-line rendering.
func TestDenseString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2.5))
	require.NoError(t, m.Set(1, 0, -3))

	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

// TestFormatValue pins the shortest round-trip formatting.
func TestFormatValue(t *testing.T) {
	cases := map[float64]string{
		0:    "0",
		-1:   "-1",
		10:   "10",
		0.5:  "0.5",
		-2.5: "-2.5",
		1e21: "1e+21",
	}
	for v, want := range cases {
		assert.Equal(t, want, matrix.FormatValue(v))
	}
}
