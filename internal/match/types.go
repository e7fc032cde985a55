// Package match holds the data model shared by every tier of the validation
// engine: the request, the result, and the taxonomies they carry. It has no
// behavior of its own so every other package can depend on it.
package match

import (
	"github.com/quizkit/verdict/internal/answer"
)

// Type is the taxonomy of why a candidate was accepted or rejected.
type Type string

const (
	// Exact means the normalized candidate equals the normalized primary.
	Exact Type = "exact"
	// Acceptable means the candidate equals a curated alternate.
	Acceptable Type = "acceptable"
	// Fuzzy covers the deterministic approximate matchers: edit distance,
	// synonyms, phonetics, n-grams, token overlap and lemmas.
	Fuzzy Type = "fuzzy"
	// Semantic means the embedding matcher accepted on cosine similarity.
	Semantic Type = "semantic"
	// Judged means the LLM judge ruled the candidate equivalent.
	Judged Type = "judged"
	// None means no permitted tier accepted the candidate.
	None Type = "none"
)

// Types lists every result type exactly once.
var Types = []Type{Exact, Acceptable, Fuzzy, Semantic, Judged, None}

// Strictness is a policy ceiling on which tiers may be used, driven by
// competition-fairness rules. It is independent of device capability.
type Strictness string

const (
	StrictnessStrict   Strictness = "strict"
	StrictnessStandard Strictness = "standard"
	StrictnessLenient  Strictness = "lenient"
)

// Valid reports whether s is a known strictness level.
func (s Strictness) Valid() bool {
	switch s {
	case StrictnessStrict, StrictnessStandard, StrictnessLenient:
		return true
	}
	return false
}

// Tier identifies one matching strategy. Tiers are attempted in strictly
// ascending order; Tier0 marks the normalization/exact short-circuit.
type Tier int

const (
	Tier0 Tier = 0
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// Capability is a per-device snapshot of which tiers are technically
// supportable. Derived once per session and cached; it can only lower the
// effective tier ceiling, never raise it above the strictness policy.
type Capability struct {
	MaxSupportedTier  Tier `json:"max_supported_tier"`
	HasEmbeddingModel bool `json:"has_embedding_model"`
	HasLLMModel       bool `json:"has_llm_model"`
}

// Flag is a diagnostic annotation on a Result. It never changes the
// accept/reject decision encoded in Type.
type Flag string

const (
	// FlagNone is the empty diagnostic.
	FlagNone Flag = ""
	// FlagNeedsSpecificity marks a candidate that hit the prompt-for-more
	// set: correct in spirit but too vague to accept.
	FlagNeedsSpecificity Flag = "needs_specificity"
	// FlagInvalidInput marks a request rejected before any matching ran.
	FlagInvalidInput Flag = "invalid_input"
)

// Request is one validation call. Requests are immutable; the session layer
// creates a fresh one per answer attempt.
type Request struct {
	// CandidateText is the raw transcribed or typed answer, not yet
	// normalized.
	CandidateText string
	// Answer is the read-only reference record for the question.
	Answer *answer.Spec
	// Strictness is the active competition/region/mode policy level.
	Strictness Strictness
	// Capability is the device profile for this session.
	Capability Capability
}

// Result is the output of one validation call. Every field is always set:
// Type == None implies Confidence == 0, Type == Exact implies Confidence == 1.
type Result struct {
	Type       Type    `json:"match_type"`
	Confidence float64 `json:"confidence"`
	// TierUsed is the tier that produced this result; 0 means the
	// normalization/exact short-circuit resolved it.
	TierUsed Tier `json:"tier_used"`
	// MatchedAgainst names the reference string that matched, when one did.
	MatchedAgainst string `json:"matched_against,omitempty"`
	// Matcher names the sub-matcher that resolved the result, for
	// explanation rendering.
	Matcher string `json:"matcher,omitempty"`
	// Flag carries the diagnostic annotation, if any.
	Flag Flag `json:"flag,omitempty"`
	// DurationMs is wall time for the whole validation call.
	DurationMs int64 `json:"duration_ms"`
}

// Accepted reports whether the result accepts the candidate.
func (r Result) Accepted() bool {
	return r.Type != None
}

// Rejected returns the canonical rejection result for the given tier.
func Rejected(tier Tier) Result {
	return Result{Type: None, Confidence: 0, TierUsed: tier}
}
