// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// attributes.go — articulatory attributes of the 39 ARPAbet phonemes.

package arpabet

// Voiced is the leading attribute shared by consonants and vowels.
const Voiced = "voiced"

// Places of articulation.
var places = []string{
	"alveolar", "palatal", "glottal", "dental", "labial", "bilabial",
	"labiodental", "coronal", "dorsal", "anterior", "posterior",
}

// Manners of articulation.
var manners = []string{
	"semivowel", "fricative", "nasal", "stop", "approximant", "affricate",
	"liquid", "retroflex", "velar", "sonorant", "obstruent", "continuant",
}

var vowelAttributes = []string{
	"long", "short", "low", "mid", "high", "front", "central", "back", "round", "diphthong",
}

// defaultPhonemes lists consonants first, then vowels.
var defaultPhonemes = PhonemeList{
	// consonants
	{"b", []string{"labial", "bilabial", "anterior", "stop", "obstruent", "voiced"}},
	{"ch", []string{"palatal", "coronal", "posterior", "affricate", "obstruent"}},
	{"d", []string{"alveolar", "coronal", "anterior", "stop", "obstruent", "voiced"}},
	{"g", []string{"dorsal", "posterior", "stop", "velar", "obstruent", "voiced"}},
	{"jh", []string{"palatal", "coronal", "posterior", "affricate", "obstruent", "voiced"}},
	{"k", []string{"dorsal", "posterior", "stop", "velar", "obstruent"}},
	{"p", []string{"labial", "bilabial", "anterior", "stop", "obstruent"}},
	{"t", []string{"alveolar", "coronal", "anterior", "stop", "obstruent"}},
	{"dh", []string{"dental", "coronal", "anterior", "fricative", "obstruent", "continuant", "voiced"}},
	{"f", []string{"labial", "labiodental", "coronal", "anterior", "fricative", "obstruent", "continuant"}},
	{"hh", []string{"glottal", "dorsal", "posterior", "fricative", "obstruent", "continuant"}},
	{"l", []string{"alveolar", "coronal", "anterior", "approximant", "liquid", "sonorant", "continuant", "voiced"}},
	{"m", []string{"labial", "bilabial", "anterior", "nasal", "sonorant", "continuant", "voiced"}},
	{"n", []string{"alveolar", "coronal", "anterior", "nasal", "sonorant", "continuant", "voiced"}},
	{"ng", []string{"dorsal", "posterior", "nasal", "velar", "sonorant", "continuant", "voiced"}},
	{"r", []string{"alveolar", "coronal", "anterior", "approximant", "liquid", "retroflex", "sonorant", "continuant", "voiced"}},
	{"s", []string{"alveolar", "coronal", "anterior", "fricative", "obstruent", "continuant"}},
	{"sh", []string{"palatal", "coronal", "posterior", "fricative", "obstruent", "continuant"}},
	{"th", []string{"dental", "coronal", "anterior", "fricative", "obstruent", "continuant"}},
	{"v", []string{"labial", "labiodental", "coronal", "anterior", "fricative", "obstruent", "continuant", "voiced"}},
	{"w", []string{"labial", "bilabial", "anterior", "semivowel", "approximant", "sonorant", "continuant", "voiced"}},
	{"y", []string{"palatal", "coronal", "posterior", "semivowel", "approximant", "sonorant", "continuant", "voiced"}},
	{"z", []string{"alveolar", "coronal", "anterior", "fricative", "obstruent", "continuant", "voiced"}},
	{"zh", []string{"palatal", "coronal", "posterior", "fricative", "obstruent", "continuant", "voiced"}},
	// vowels
	{"aa", []string{"long", "low", "back", "voiced"}},
	{"ae", []string{"long", "low", "front", "voiced"}},
	{"ah", []string{"short", "mid", "back", "voiced"}},
	{"ao", []string{"long", "mid", "back", "round", "voiced"}},
	{"eh", []string{"short", "mid", "front", "voiced"}},
	{"er", []string{"short", "mid", "central", "voiced"}},
	{"ih", []string{"short", "high", "front", "voiced"}},
	{"iy", []string{"long", "high", "front", "voiced"}},
	{"uh", []string{"short", "high", "back", "round", "voiced"}},
	{"uw", []string{"long", "high", "back", "round", "voiced"}},
	{"aw", []string{"long", "low", "central", "round", "diphthong", "voiced"}},
	{"ay", []string{"long", "low", "central", "diphthong", "voiced"}},
	{"ey", []string{"long", "mid", "front", "diphthong", "voiced"}},
	{"ow", []string{"long", "mid", "central", "round", "diphthong", "voiced"}},
	{"oy", []string{"long", "mid", "back", "round", "diphthong", "voiced"}},
}
