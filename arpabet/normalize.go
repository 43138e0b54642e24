// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// normalize.go — canonical phoneme labels and L2-ARCTIC phone marks.

package arpabet

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// silence labels of forced-alignment phone tiers.
const (
	Silence      = "sil"
	shortPause   = "sp"
	errPerceived = "err"
)

var lower = cases.Lower(language.Und)

// Normalize maps a raw phone label onto the vocabulary form: NFC, lower-case,
// stress digits, '*' markers and whitespace removed, and the reduced vowel
// "ax" folded into "ah". Commas are kept so that marks survive.
//
//	Normalize("AH0")  == "ah"
//	Normalize(" AX ") == "ah"
//	Normalize("EH1*") == "eh"
func Normalize(label string) string {
	s := lower.String(norm.NFC.String(label))
	s = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || r == '*' {
			return -1
		}
		return r
	}, s)
	if s == "ax" {
		return "ah"
	}

	return s
}

// NormalizeAll applies Normalize to every label and drops the empty results.
func NormalizeAll(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if n := Normalize(l); n != "" {
			out = append(out, n)
		}
	}

	return out
}

// MarkKind classifies one phone-tier label.
type MarkKind uint8

const (
	MarkCorrect MarkKind = iota
	MarkSubstitution
	MarkAddition
	MarkDeletion
	MarkSilence
)

// String returns the lower-case kind name.
func (k MarkKind) String() string {
	switch k {
	case MarkCorrect:
		return "correct"
	case MarkSubstitution:
		return "substitution"
	case MarkAddition:
		return "addition"
	case MarkDeletion:
		return "deletion"
	case MarkSilence:
		return "silence"
	}
	return "unknown"
}

// Mark is one annotated position: the phone the speaker should have produced
// and the phone an annotator heard, either of which may be gap.
type Mark struct {
	Target    string
	Perceived string
	Kind      MarkKind
}

// ParseMark decodes an L2-ARCTIC style phone label, using gap for the missing
// side of additions, deletions and silences:
//
//	"AH0"           → {ah, ah, correct}
//	"Z,S,s"         → {z, s, substitution}
//	"Z,err,s"       → {z, z, substitution}
//	"sil" / "sp"    → {sil, gap, silence}
//	"sil,AH,a"      → {gap, ah, addition}
//	"T,sil,d"       → {t, gap, deletion}
//
// Empty labels yield ErrEmptyMark; anything else unrecognised ErrInvalidMark.
func ParseMark(raw, gap string) (Mark, error) {
	s := Normalize(raw)
	switch {
	case s == "":
		return Mark{}, ErrEmptyMark
	case s == Silence || s == shortPause:
		return Mark{Target: Silence, Perceived: gap, Kind: MarkSilence}, nil
	case isLetters(s):
		return Mark{Target: s, Perceived: s, Kind: MarkCorrect}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 || !isLetters(parts[0]) || !isLetters(parts[1]) {
		return Mark{}, fmt.Errorf("ParseMark(%q): %w", raw, ErrInvalidMark)
	}
	cpl, ppl := fold(parts[0]), fold(parts[1])

	switch parts[2] {
	case "s":
		if ppl == errPerceived {
			ppl = cpl
		}
		return Mark{Target: cpl, Perceived: ppl, Kind: MarkSubstitution}, nil
	case "a":
		return Mark{Target: gap, Perceived: ppl, Kind: MarkAddition}, nil
	case "d":
		return Mark{Target: cpl, Perceived: gap, Kind: MarkDeletion}, nil
	}

	return Mark{}, fmt.Errorf("ParseMark(%q): error type %q: %w", raw, parts[2], ErrInvalidMark)
}

// fold applies the "ax" → "ah" rule to one mark field.
func fold(s string) string {
	if s == "ax" {
		return "ah"
	}
	return s
}

// isLetters reports whether s is a non-empty run of ASCII letters.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
