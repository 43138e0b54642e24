package mdd_test

import (
	"strings"
	"testing"

	"github.com/Brono25/cacoepy/mdd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestClassify walks the four outcomes and the diagnosis split.
func TestClassify(t *testing.T) {
	cases := []struct {
		t, a, p   string
		want      mdd.Outcome
		diagnosed bool
	}{
		{"b", "b", "b", mdd.TrueAcceptance, false},
		{"b", "b", "p", mdd.FalseRejection, false},
		{"b", "b", "-", mdd.FalseRejection, false},
		{"b", "p", "b", mdd.FalseAcceptance, false},
		{"b", "p", "p", mdd.TrueRejection, true},
		{"b", "p", "d", mdd.TrueRejection, false},
		{"r", "-", "-", mdd.TrueRejection, true},
		{"-", "-", "-", mdd.TrueAcceptance, false},
	}
	for _, tc := range cases {
		o, diagnosed := mdd.Classify(tc.t, tc.a, tc.p)
		assert.Equal(t, tc.want, o, "%s/%s/%s", tc.t, tc.a, tc.p)
		assert.Equal(t, tc.diagnosed, diagnosed, "%s/%s/%s", tc.t, tc.a, tc.p)
	}
}

// TestEvaluate_TrueAcceptance is the all-correct utterance.
func TestEvaluate_TrueAcceptance(t *testing.T) {
	abc := strings.Fields("A B C")
	r, err := mdd.Evaluate(abc, abc, abc)
	require.NoError(t, err)

	assert.Equal(t, mdd.Report{TrueAcceptance: 3}, *r)
	assert.Equal(t, 3, r.Total())
}

// TestEvaluate_Mixed covers every bucket and all rates.
func TestEvaluate_Mixed(t *testing.T) {
	r, err := mdd.Evaluate(
		strings.Fields("A B C"),
		strings.Fields("X Y Z"),
		strings.Fields("X - C"),
	)
	require.NoError(t, err)

	assert.Equal(t, 0, r.TrueAcceptance)
	assert.Equal(t, 2, r.TrueRejection)
	assert.Equal(t, 1, r.FalseAcceptance)
	assert.Equal(t, 0, r.FalseRejection)
	assert.Equal(t, 1, r.CorrectlyDiagnosed)
	assert.Equal(t, 1, r.DiagnosisError)
	assert.InDelta(t, 1.0/3, r.FalseAcceptanceRate, eps)
	assert.Equal(t, 0.0, r.FalseRejectionRate)
	assert.InDelta(t, 0.5, r.DiagnosticErrorRate, eps)
	assert.InDelta(t, 1.0, r.Precision, eps)
	assert.InDelta(t, 2.0/3, r.Recall, eps)
	assert.InDelta(t, 0.8, r.F1, eps)
}

// TestEvaluate_Aligned uses an aligned annotated utterance.
func TestEvaluate_Aligned(t *testing.T) {
	r, err := mdd.Evaluate(
		strings.Fields("g r ae s hh aa p er"),
		strings.Fields("g - uh b hh ae p er"),
		strings.Fields("- - ah b - ae - -"),
	)
	require.NoError(t, err)

	assert.Equal(t, 0, r.TrueAcceptance)
	assert.Equal(t, 4, r.TrueRejection)
	assert.Equal(t, 0, r.FalseAcceptance)
	assert.Equal(t, 4, r.FalseRejection)
	assert.Equal(t, 3, r.CorrectlyDiagnosed)
	assert.Equal(t, 1, r.DiagnosisError)
	assert.Equal(t, 0.0, r.FalseAcceptanceRate)
	assert.Equal(t, 1.0, r.FalseRejectionRate)
	assert.Equal(t, 0.25, r.DiagnosticErrorRate)
	assert.InDelta(t, 2.0/3, r.F1, eps)
}

// TestEvaluate_Length rejects unaligned inputs.
func TestEvaluate_Length(t *testing.T) {
	_, err := mdd.Evaluate(strings.Fields("a b"), strings.Fields("a b"), strings.Fields("a"))
	require.ErrorIs(t, err, mdd.ErrSequenceLength)
	assert.Contains(t, err.Error(), "2/2/1")

	_, err = mdd.Evaluate(strings.Fields("a"), strings.Fields("a b"), strings.Fields("a b"))
	require.ErrorIs(t, err, mdd.ErrSequenceLength)

	r, err := mdd.Evaluate(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total())
	assert.Equal(t, 0.0, r.F1)
}

// TestReport_Add sums counts and recomputes rates from the totals.
func TestReport_Add(t *testing.T) {
	total := &mdd.Report{}

	first, err := mdd.Evaluate(strings.Fields("A B C"), strings.Fields("X Y Z"), strings.Fields("X - C"))
	require.NoError(t, err)
	second, err := mdd.Evaluate(strings.Fields("a b c d e"), strings.Fields("a x c y e"), strings.Fields("a x z d q"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, second.FalseAcceptanceRate, eps)
	assert.InDelta(t, 2.0/3, second.FalseRejectionRate, eps)

	total.Add(first)
	total.Add(second)
	total.Add(nil)

	assert.Equal(t, 1, total.TrueAcceptance)
	assert.Equal(t, 3, total.TrueRejection)
	assert.Equal(t, 2, total.FalseAcceptance)
	assert.Equal(t, 2, total.FalseRejection)
	assert.Equal(t, 2, total.CorrectlyDiagnosed)
	assert.Equal(t, 1, total.DiagnosisError)
	assert.Equal(t, 8, total.Total())
	assert.InDelta(t, 2.0/5, total.FalseAcceptanceRate, eps)
	assert.InDelta(t, 2.0/3, total.FalseRejectionRate, eps)
	assert.InDelta(t, 1.0/3, total.DiagnosticErrorRate, eps)
}

// TestOutcome_String checks report key names.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "true_acceptance", mdd.TrueAcceptance.String())
	assert.Equal(t, "false_rejection", mdd.FalseRejection.String())
	assert.Equal(t, "false_acceptance", mdd.FalseAcceptance.String())
	assert.Equal(t, "true_rejection", mdd.TrueRejection.String())
	assert.Equal(t, "unknown", mdd.Outcome(42).String())
}
