package arpabet_test

import (
	"errors"
	"testing"

	"github.com/Brono25/cacoepy/arpabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVocabulary covers membership, ordering and de-duplication.
func TestVocabulary(t *testing.T) {
	v := arpabet.NewVocabulary([]string{"b", "aa", "b", "k"})

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"b", "aa", "k"}, v.Tokens())
	assert.True(t, v.Contains("aa"))
	assert.False(t, v.Contains("AA"), "membership is case-sensitive")

	toks := v.Tokens()
	toks[0] = "x"
	assert.Equal(t, "b", v.Tokens()[0], "Tokens returns a copy")
}

// TestVocabulary_Check reports the first offending token.
func TestVocabulary_Check(t *testing.T) {
	v := arpabet.DefaultMapping().Vocabulary()
	require.Equal(t, 39, v.Len())

	require.NoError(t, v.Check([]string{"g", "r", "ae", "s"}))
	require.NoError(t, v.Check(nil))

	err := v.Check([]string{"g", "ax", "ae", "xx"})
	require.ErrorIs(t, err, arpabet.ErrNotInVocabulary)

	var verr *arpabet.VocabularyError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ax", verr.Token)
	assert.Equal(t, 1, verr.Index)
	assert.Contains(t, err.Error(), `"ax" at index 1`)
}
