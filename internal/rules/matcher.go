// Package rules implements the Tier 1 rule engine: an ordered chain of
// deterministic matchers that runs entirely on the caller's goroutine and
// never performs I/O. All matchers operate on normalized strings only.
package rules

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/config"
	"github.com/quizkit/verdict/internal/match"
	"github.com/quizkit/verdict/internal/normalize"
)

// Kind identifies a sub-matcher.
type Kind string

const (
	KindExact     Kind = "exact"
	KindAlternate Kind = "alternate"
	KindDistance  Kind = "edit_distance"
	KindSynonym   Kind = "synonym"
	KindPhonetic  Kind = "phonetic"
	KindNGram     Kind = "ngram"
	KindOverlap   Kind = "token_overlap"
	KindLemma     Kind = "lemma"
)

// Outcome is the shared output contract for every sub-matcher.
type Outcome struct {
	Type           match.Type
	Confidence     float64
	MatchedAgainst string
	Matcher        Kind
	Flag           match.Flag
}

// Ref is a reference string in both raw and normalized form. MatchedAgainst
// always reports the raw form so diagnostics stay readable.
type Ref struct {
	Raw  string
	Norm string
}

// Context carries one candidate and its pre-normalized reference views to
// every matcher in the chain.
type Context struct {
	// Candidate is the normalized candidate text.
	Candidate string
	// CandidateTokens is the candidate split into normalized words.
	CandidateTokens []string
	// Refs is the normalized primary followed by the normalized alternates.
	Refs []Ref
	// PhoneticRefs is Refs plus the precomputed phonetic variants.
	PhoneticRefs []Ref
	// Thresholds are the tunables for the question's answer type.
	Thresholds config.TypeThresholds
	// Synonyms is the curated symmetric equivalence table.
	Synonyms *SynonymTable
}

// Matcher is the contract every Tier 1 sub-matcher satisfies.
type Matcher interface {
	// Name returns the matcher identifier used in results and explanations.
	Name() Kind

	// Match reports an outcome and true when the candidate is accepted.
	Match(mc *Context) (*Outcome, bool)
}

// Chain runs sub-matchers in a fixed order, returning at the first success.
type Chain struct {
	cfg      *config.Config
	synonyms *SynonymTable
	matchers []Matcher
}

// NewChain assembles the default fixed-order chain from engine config.
func NewChain(cfg *config.Config) *Chain {
	table := NewSynonymTable(cfg.Synonyms)
	return &Chain{
		cfg:      cfg,
		synonyms: table,
		matchers: []Matcher{
			&exactMatcher{},
			&alternateMatcher{},
			&distanceMatcher{},
			&synonymMatcher{},
			&phoneticMatcher{},
			&ngramMatcher{size: 2},
			&overlapMatcher{},
			&lemmaMatcher{language: "english"},
		},
	}
}

// Matchers exposes the chain order for instrumentation and explain output.
func (c *Chain) Matchers() []Matcher {
	return c.matchers
}

// Evaluate normalizes the candidate and the reference sets, applies the
// prompt-for-more short-circuit, then runs the chain. A nil outcome never
// escapes: rejection is an explicit (none, 0) outcome.
func (c *Chain) Evaluate(candidateRaw string, spec *answer.Spec) Outcome {
	mc := c.buildContext(candidateRaw, spec)

	// Vague answers are rejected here, before any fuzzy matcher gets a
	// chance to promote them. Downstream tiers honor the same flag.
	for _, vague := range spec.PromptForMore {
		if mc.Candidate == normalize.Text(vague) {
			return Outcome{
				Type:       match.None,
				Confidence: 0,
				Flag:       match.FlagNeedsSpecificity,
			}
		}
	}

	for _, m := range c.matchers {
		if outcome, ok := m.Match(mc); ok {
			return *outcome
		}
	}

	return Outcome{Type: match.None, Confidence: 0}
}

func (c *Chain) buildContext(candidateRaw string, spec *answer.Spec) *Context {
	refs := make([]Ref, 0, len(spec.Alternates)+1)
	for _, r := range spec.References() {
		refs = append(refs, Ref{Raw: r, Norm: normalize.Text(r)})
	}

	phonetic := make([]Ref, len(refs), len(refs)+len(spec.PhoneticVariants))
	copy(phonetic, refs)
	for _, v := range spec.PhoneticVariants {
		phonetic = append(phonetic, Ref{Raw: v, Norm: normalize.Text(v)})
	}

	return &Context{
		Candidate:       normalize.Text(candidateRaw),
		CandidateTokens: normalize.Tokens(candidateRaw),
		Refs:            refs,
		PhoneticRefs:    phonetic,
		Thresholds:      c.cfg.ThresholdsFor(spec.Type),
		Synonyms:        c.synonyms,
	}
}

// Create builds a single matcher from a kind and a parameter map. Chains
// stay fixed-order, but new matchers can be configured in without touching
// the call sites.
func Create(kind Kind, params map[string]any) (Matcher, error) {
	switch kind {
	case KindExact:
		return &exactMatcher{}, nil
	case KindAlternate:
		return &alternateMatcher{}, nil
	case KindDistance:
		return &distanceMatcher{}, nil
	case KindSynonym:
		return &synonymMatcher{}, nil
	case KindPhonetic:
		return &phoneticMatcher{}, nil
	case KindNGram:
		var v struct {
			Size int `mapstructure:"size"`
		}
		if err := mapstructure.Decode(params, &v); err != nil {
			return nil, err
		}
		if v.Size == 0 {
			v.Size = 2
		}
		if v.Size < 1 || v.Size > 4 {
			return nil, fmt.Errorf("ngram size must be in [1,4], got %d", v.Size)
		}
		return &ngramMatcher{size: v.Size}, nil
	case KindOverlap:
		return &overlapMatcher{}, nil
	case KindLemma:
		var v struct {
			Language string `mapstructure:"language"`
		}
		if err := mapstructure.Decode(params, &v); err != nil {
			return nil, err
		}
		if v.Language == "" {
			v.Language = "english"
		}
		return &lemmaMatcher{language: v.Language}, nil
	default:
		return nil, fmt.Errorf("%q is not a valid matcher kind", kind)
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
