// SPDX-License-Identifier: MIT
// Package: cacoepy/mdd
//
// report.go — per-position classification and aggregate rates.

package mdd

import "fmt"

// Outcome classifies one aligned position.
type Outcome uint8

const (
	TrueAcceptance Outcome = iota
	FalseRejection
	FalseAcceptance
	// TrueRejection positions are further split by Diagnosed.
	TrueRejection
)

// String returns the snake_case outcome name used in reports.
func (o Outcome) String() string {
	switch o {
	case TrueAcceptance:
		return "true_acceptance"
	case FalseRejection:
		return "false_rejection"
	case FalseAcceptance:
		return "false_acceptance"
	case TrueRejection:
		return "true_rejection"
	}
	return "unknown"
}

// Classify returns the outcome of one position and, for true rejections,
// whether the prediction also names the mispronunciation correctly.
//
//	target == annotation, prediction == annotation → TrueAcceptance
//	target == annotation, prediction != annotation → FalseRejection
//	target != annotation, prediction == target     → FalseAcceptance
//	target != annotation, prediction != target     → TrueRejection
//	                      diagnosed = prediction == annotation
func Classify(target, annotation, prediction string) (o Outcome, diagnosed bool) {
	if target == annotation {
		if prediction == annotation {
			return TrueAcceptance, false
		}
		return FalseRejection, false
	}
	if prediction == target {
		return FalseAcceptance, false
	}

	return TrueRejection, prediction == annotation
}

// Report aggregates outcomes over one or more utterances.
//
// Rates (0 when the denominator is 0):
//   - FalseAcceptanceRate = FA / (FA + TR)
//   - FalseRejectionRate  = FR / (FR + TA)
//   - DiagnosticErrorRate = DE / (CD + DE)
//   - Precision = TR / (TR + FR), Recall = TR / (TR + FA), F1 their harmonic mean
type Report struct {
	TrueAcceptance     int `json:"true_acceptance" yaml:"true_acceptance"`
	TrueRejection      int `json:"true_rejection" yaml:"true_rejection"`
	FalseAcceptance    int `json:"false_acceptance" yaml:"false_acceptance"`
	FalseRejection     int `json:"false_rejection" yaml:"false_rejection"`
	CorrectlyDiagnosed int `json:"correctly_diagnosed" yaml:"correctly_diagnosed"`
	DiagnosisError     int `json:"diagnosis_error" yaml:"diagnosis_error"`

	FalseAcceptanceRate float64 `json:"false_acceptance_rate" yaml:"false_acceptance_rate"`
	FalseRejectionRate  float64 `json:"false_rejection_rate" yaml:"false_rejection_rate"`
	DiagnosticErrorRate float64 `json:"diagnostic_error_rate" yaml:"diagnostic_error_rate"`
	Precision           float64 `json:"precision" yaml:"precision"`
	Recall              float64 `json:"recall" yaml:"recall"`
	F1                  float64 `json:"f1" yaml:"f1"`
}

// Evaluate classifies every position of three mutually aligned sequences.
//
// Stage 1 (Validate): all three lengths must match (ErrSequenceLength).
// Stage 2 (Count): Classify each position.
// Stage 3 (Rates): derive the rates from the counts.
//
// Gap tokens are compared like any other token.
// Complexity: O(n).
func Evaluate(target, annotation, prediction []string) (*Report, error) {
	if len(target) != len(annotation) || len(annotation) != len(prediction) {
		return nil, fmt.Errorf("Evaluate: lengths %d/%d/%d: %w",
			len(target), len(annotation), len(prediction), ErrSequenceLength)
	}

	r := &Report{}
	for i := range target {
		o, diagnosed := Classify(target[i], annotation[i], prediction[i])
		r.count(o, diagnosed)
	}
	r.computeRates()

	return r, nil
}

// Add accumulates the counts of other into r and recomputes the rates, so
// corpus totals are rates of summed counts rather than averaged rates.
func (r *Report) Add(other *Report) {
	if other == nil {
		return
	}
	r.TrueAcceptance += other.TrueAcceptance
	r.TrueRejection += other.TrueRejection
	r.FalseAcceptance += other.FalseAcceptance
	r.FalseRejection += other.FalseRejection
	r.CorrectlyDiagnosed += other.CorrectlyDiagnosed
	r.DiagnosisError += other.DiagnosisError
	r.computeRates()
}

// Total returns the number of classified positions.
func (r *Report) Total() int {
	return r.TrueAcceptance + r.TrueRejection + r.FalseAcceptance + r.FalseRejection
}

func (r *Report) count(o Outcome, diagnosed bool) {
	switch o {
	case TrueAcceptance:
		r.TrueAcceptance++
	case FalseRejection:
		r.FalseRejection++
	case FalseAcceptance:
		r.FalseAcceptance++
	case TrueRejection:
		r.TrueRejection++
		if diagnosed {
			r.CorrectlyDiagnosed++
		} else {
			r.DiagnosisError++
		}
	}
}

func (r *Report) computeRates() {
	r.FalseAcceptanceRate = ratio(r.FalseAcceptance, r.FalseAcceptance+r.TrueRejection)
	r.FalseRejectionRate = ratio(r.FalseRejection, r.FalseRejection+r.TrueAcceptance)
	r.DiagnosticErrorRate = ratio(r.DiagnosisError, r.CorrectlyDiagnosed+r.DiagnosisError)
	r.Precision = ratio(r.TrueRejection, r.TrueRejection+r.FalseRejection)
	r.Recall = ratio(r.TrueRejection, r.TrueRejection+r.FalseAcceptance)
	r.F1 = 0
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
