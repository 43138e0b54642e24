package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorpus(t *testing.T) {
	const src = `{
  "u2": {"target_phonemes": "k ae t", "perceived_phonemes": ["k", "aa", "t"], "predicted_phonemes": "k aa t"},
  "u1": {"words": "them", "target_phonemes": ["dh", "ah", "m"], "perceived_phonemes": "d ah m", "predicted_phonemes": []}
}`
	c, err := LoadCorpus(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u2"}, c.IDs())
	assert.Equal(t, Phonemes{"dh", "ah", "m"}, c["u1"].Target)
	assert.Equal(t, Phonemes{"d", "ah", "m"}, c["u1"].Perceived)
	assert.Empty(t, c["u1"].Prediction)
	assert.Equal(t, "them", c["u1"].Words)
	assert.Equal(t, Phonemes{"k", "aa", "t"}, c["u2"].Perceived)
}

func TestLoadCorpus_Errors(t *testing.T) {
	_, err := LoadCorpus(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = LoadCorpus(strings.NewReader("{}"))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = LoadCorpus(strings.NewReader("- a\n- b\n"))
	assert.ErrorContains(t, err, "failed to parse corpus")

	_, err = LoadCorpus(strings.NewReader("u1:\n  target_phonemes: {a: b}\n"))
	assert.ErrorContains(t, err, "failed to parse corpus")
}

func TestEvaluate_JSON(t *testing.T) {
	code, resp, raw := runJSON(t, "evaluate", "testdata/corpus.yaml")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "ok", resp.Status)

	var payload struct {
		Data EvaluateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	data := payload.Data

	require.Len(t, data.Utterances, 2)
	assert.Equal(t, "arctic_a0001", data.Utterances[0].ID)
	assert.Equal(t, []string{"k", "aa", "t", "-"}, data.Utterances[1].Alignment.Prediction)

	require.Len(t, data.Skipped, 1)
	assert.Equal(t, "arctic_a0003", data.Skipped[0].ID)
	assert.Contains(t, data.Skipped[0].Reason, `"zz"`)

	total := data.Total
	require.NotNil(t, total)
	assert.Equal(t, 3, total.TrueAcceptance)
	assert.Equal(t, 1, total.FalseRejection)
	assert.Equal(t, 1, total.FalseAcceptance)
	assert.Equal(t, 2, total.TrueRejection)
	assert.Equal(t, 2, total.CorrectlyDiagnosed)
	assert.Equal(t, 0, total.DiagnosisError)
	assert.InDelta(t, 1.0/3, total.FalseAcceptanceRate, 1e-12)
	assert.InDelta(t, 0.25, total.FalseRejectionRate, 1e-12)
	assert.InDelta(t, 2.0/3, total.F1, 1e-12)
}

func TestEvaluate_Realign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	src := `u1:
  target_phonemes: s t aa p
  perceived_phonemes: t aa p
  predicted_phonemes: t aa p
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	// Without --realign the unaligned target/perceived lengths differ.
	code, resp, _ := runJSON(t, "evaluate", path)
	assert.Equal(t, ExitFailure, code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "no utterance could be evaluated")

	code, _, raw := runJSON(t, "evaluate", "--realign", path)
	require.Equal(t, ExitSuccess, code)

	var payload struct {
		Data EvaluateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Data.Utterances, 1)
	a := payload.Data.Utterances[0].Alignment
	assert.Equal(t, []string{"s", "t", "aa", "p"}, a.Target)
	assert.Equal(t, []string{"-", "t", "aa", "p"}, a.Annotation)
	assert.Equal(t, []string{"-", "t", "aa", "p"}, a.Prediction)
	assert.Equal(t, 1, payload.Data.Total.TrueRejection)
	assert.Equal(t, 1, payload.Data.Total.CorrectlyDiagnosed)
	assert.Equal(t, 3, payload.Data.Total.TrueAcceptance)
}

func TestEvaluate_Normalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	src := `u1:
  target_phonemes: DH AH0 M
  perceived_phonemes: D AX M
  predicted_phonemes: D AH1 M
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	code, _, raw := runJSON(t, "evaluate", "--normalize", path)
	require.Equal(t, ExitSuccess, code)

	var payload struct {
		Data EvaluateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, []string{"d", "ah", "m"}, payload.Data.Utterances[0].Alignment.Annotation)
	assert.Equal(t, 2, payload.Data.Total.TrueAcceptance)
	assert.Equal(t, 1, payload.Data.Total.CorrectlyDiagnosed)
}

func TestEvaluate_SkipLoggedAsWarning(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"evaluate", "testdata/corpus.yaml"}, &stdout, &stderr)
	require.Equal(t, ExitSuccess, code)

	assert.Contains(t, stderr.String(), "level=WARN")
	assert.Contains(t, stderr.String(), "id=arctic_a0003")
	assert.NotContains(t, stderr.String(), "level=DEBUG")
}

func TestEvaluate_MissingCorpus(t *testing.T) {
	code, resp, _ := runJSON(t, "evaluate", "testdata/nope.yaml")
	assert.Equal(t, ExitCommandError, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInput, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "failed to load corpus")
}
