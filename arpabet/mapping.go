// SPDX-License-Identifier: MIT
// Package: cacoepy/arpabet
//
// mapping.go — phoneme→attribute mapping, its loader and validation.

package arpabet

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Phoneme is one vocabulary entry with its articulatory attributes.
type Phoneme struct {
	Symbol     string
	Attributes []string
}

// PhonemeList is an ordered phoneme→attributes map. On the wire it is a plain
// mapping (`{"b": ["labial", ...], ...}`); the order of keys is preserved.
type PhonemeList []Phoneme

// UnmarshalYAML decodes a mapping node while keeping key order.
func (l *PhonemeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: phoneme_attribute_map must be a mapping: %w", node.Line, ErrInvalidMapping)
	}

	out := make(PhonemeList, 0, len(node.Content)/2)
	for k := 0; k+1 < len(node.Content); k += 2 {
		key, val := node.Content[k], node.Content[k+1]
		var attrs []string
		if err := val.Decode(&attrs); err != nil {
			return fmt.Errorf("line %d: phoneme %q: %w", val.Line, key.Value, err)
		}
		out = append(out, Phoneme{Symbol: key.Value, Attributes: attrs})
	}
	*l = out

	return nil
}

// MarshalYAML encodes the list as an ordered mapping node.
func (l PhonemeList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range l {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, a := range p.Attributes {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: a})
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: p.Symbol}, seq)
	}

	return node, nil
}

// Mapping is the attribute universe plus the phoneme table. The field names
// follow the data file layout used by annotated phoneme corpora tooling.
type Mapping struct {
	ConsonantAttributes []string    `yaml:"consonant_attributes"`
	VowelAttributes     []string    `yaml:"vowel_attributes"`
	Phonemes            PhonemeList `yaml:"phoneme_attribute_map"`
}

// DefaultMapping returns a fresh copy of the built-in 39-phoneme mapping.
func DefaultMapping() *Mapping {
	m := &Mapping{
		ConsonantAttributes: append(slices.Clone(places), manners...),
		VowelAttributes:     slices.Clone(vowelAttributes),
		Phonemes:            make(PhonemeList, len(defaultPhonemes)),
	}
	for i, p := range defaultPhonemes {
		m.Phonemes[i] = Phoneme{Symbol: p.Symbol, Attributes: slices.Clone(p.Attributes)}
	}

	return m
}

// LoadMapping decodes a Mapping from r (YAML or JSON) and validates it.
// Unknown top-level fields are rejected.
func LoadMapping(r io.Reader) (*Mapping, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Mapping
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("LoadMapping: empty document: %w", ErrInvalidMapping)
		}
		return nil, fmt.Errorf("LoadMapping: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Attributes returns the vector layout: Voiced, then consonant attributes,
// then vowel attributes, without duplicates.
func (m *Mapping) Attributes() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 1+len(m.ConsonantAttributes)+len(m.VowelAttributes))
	add := func(a string) {
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	add(Voiced)
	for _, a := range m.ConsonantAttributes {
		add(a)
	}
	for _, a := range m.VowelAttributes {
		add(a)
	}

	return out
}

// Symbols returns the phoneme symbols in mapping order.
func (m *Mapping) Symbols() []string {
	out := make([]string, len(m.Phonemes))
	for i, p := range m.Phonemes {
		out[i] = p.Symbol
	}

	return out
}

// Vocabulary returns the mapping's symbols as a Vocabulary.
func (m *Mapping) Vocabulary() *Vocabulary {
	return NewVocabulary(m.Symbols())
}

// Validate checks that the mapping is usable for scoring:
//   - at least one phoneme;
//   - symbols are non-empty and unique;
//   - every phoneme attribute belongs to Attributes().
func (m *Mapping) Validate() error {
	if len(m.Phonemes) == 0 {
		return fmt.Errorf("Validate: no phonemes: %w", ErrInvalidMapping)
	}

	known := make(map[string]struct{})
	for _, a := range m.Attributes() {
		known[a] = struct{}{}
	}

	seen := make(map[string]struct{}, len(m.Phonemes))
	for i, p := range m.Phonemes {
		if p.Symbol == "" {
			return fmt.Errorf("Validate: phoneme %d has an empty symbol: %w", i, ErrInvalidMapping)
		}
		if _, dup := seen[p.Symbol]; dup {
			return fmt.Errorf("Validate: duplicate phoneme %q: %w", p.Symbol, ErrInvalidMapping)
		}
		seen[p.Symbol] = struct{}{}

		for _, a := range p.Attributes {
			if _, ok := known[a]; !ok {
				return fmt.Errorf("Validate: phoneme %q has unknown attribute %q: %w", p.Symbol, a, ErrInvalidMapping)
			}
		}
	}

	return nil
}
