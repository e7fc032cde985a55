// Package answer defines the reference-answer record the engine validates
// against. Specs are produced by the question-content pipeline and consumed
// read-only; the engine never mutates them.
package answer

import (
	"errors"
	"fmt"
)

// Type categorizes what kind of thing the answer is. Matching thresholds are
// tuned per type: numbers and dates tolerate almost no edit distance, titles
// and concepts tolerate more.
type Type string

const (
	TypePerson     Type = "person"
	TypePlace      Type = "place"
	TypeThing      Type = "thing"
	TypeConcept    Type = "concept"
	TypeNumber     Type = "number"
	TypeDate       Type = "date"
	TypeTitle      Type = "title"
	TypeScientific Type = "scientific"
)

// Types lists every valid answer type.
var Types = []Type{
	TypePerson, TypePlace, TypeThing, TypeConcept,
	TypeNumber, TypeDate, TypeTitle, TypeScientific,
}

// Valid reports whether t is a known answer type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// ErrMissingPrimary is returned when a spec has no primary answer.
var ErrMissingPrimary = errors.New("answer spec is missing a primary answer")

// Spec is the reference answer for one question.
type Spec struct {
	// Primary is the canonical correct answer. Never empty.
	Primary string `yaml:"primary" json:"primary"`
	// Alternates are fully acceptable synonyms or variants.
	Alternates []string `yaml:"alternates,omitempty" json:"alternates,omitempty"`
	// PromptForMore lists answers considered too vague to accept. A candidate
	// matching one of these is rejected outright rather than passed to fuzzier
	// matching.
	PromptForMore []string `yaml:"prompt_for_more,omitempty" json:"prompt_for_more,omitempty"`
	// PhoneticVariants are precomputed alternate spellings/pronunciations.
	PhoneticVariants []string `yaml:"phonetic_variants,omitempty" json:"phonetic_variants,omitempty"`
	// Type drives per-type matching thresholds.
	Type Type `yaml:"type" json:"type"`
}

// New builds a Spec, deduplicating the variant sets against the primary and
// against themselves. The only hard requirement is a non-empty primary.
func New(primary string, typ Type, opts ...SpecOption) (*Spec, error) {
	if primary == "" {
		return nil, ErrMissingPrimary
	}
	if typ == "" {
		typ = TypeThing
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown answer type %q", typ)
	}

	s := &Spec{Primary: primary, Type: typ}
	for _, o := range opts {
		o(s)
	}

	s.Alternates = dedupe(s.Alternates, primary)
	s.PromptForMore = dedupe(s.PromptForMore, primary)
	s.PhoneticVariants = dedupe(s.PhoneticVariants, primary)

	return s, nil
}

// SpecOption configures optional Spec fields.
type SpecOption func(*Spec)

// WithAlternates sets the acceptable alternates.
func WithAlternates(alternates ...string) SpecOption {
	return func(s *Spec) { s.Alternates = alternates }
}

// WithPromptForMore sets the too-vague answer set.
func WithPromptForMore(vague ...string) SpecOption {
	return func(s *Spec) { s.PromptForMore = vague }
}

// WithPhoneticVariants sets the precomputed phonetic spellings.
func WithPhoneticVariants(variants ...string) SpecOption {
	return func(s *Spec) { s.PhoneticVariants = variants }
}

// Validate checks the invariants on a Spec that arrived from an external
// source (a YAML pack or a conformance vector) without going through New.
func (s *Spec) Validate() error {
	if s.Primary == "" {
		return ErrMissingPrimary
	}
	if s.Type != "" && !s.Type.Valid() {
		return fmt.Errorf("unknown answer type %q", s.Type)
	}
	return nil
}

// References returns the primary followed by all alternates. This is the set
// fuzzy and semantic matchers compare against.
func (s *Spec) References() []string {
	refs := make([]string, 0, len(s.Alternates)+1)
	refs = append(refs, s.Primary)
	refs = append(refs, s.Alternates...)
	return refs
}

// dedupe removes duplicates and any entry equal to the primary, preserving
// first-seen order.
func dedupe(values []string, primary string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := map[string]struct{}{primary: {}}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
