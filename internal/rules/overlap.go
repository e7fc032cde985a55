package rules

import (
	"strings"

	"github.com/quizkit/verdict/internal/match"
)

// overlapMatcher accepts on word-level Jaccard overlap between the candidate
// token set and a reference token set. It handles reordering and extra
// filler words ("the mississippi river" vs "mississippi"). Confidence is the
// overlap score clamped to [0.6, 1.0].
type overlapMatcher struct{}

func (m *overlapMatcher) Name() Kind { return KindOverlap }

func (m *overlapMatcher) Match(mc *Context) (*Outcome, bool) {
	if len(mc.CandidateTokens) == 0 {
		return nil, false
	}

	candidateSet := tokenSet(mc.CandidateTokens)
	threshold := mc.Thresholds.MinTokenOverlap
	best := -1.0
	var bestRef Ref

	for _, ref := range mc.Refs {
		if ref.Norm == "" {
			continue
		}
		score := jaccard(candidateSet, tokenSet(strings.Split(ref.Norm, " ")))
		if score < threshold {
			continue
		}
		if score > best {
			best = score
			bestRef = ref
		}
	}

	if best < 0 {
		return nil, false
	}

	return &Outcome{
		Type:           match.Fuzzy,
		Confidence:     clamp(best, 0.6, 1.0),
		MatchedAgainst: bestRef.Raw,
		Matcher:        KindOverlap,
	}, true
}

// fillerWords are ignored when computing token overlap; they carry no answer
// content ("the mississippi" == "mississippi").
var fillerWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "of": {}, "in": {}, "on": {}, "at": {},
	"is": {}, "it": {}, "its": {}, "was": {}, "are": {},
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, filler := fillerWords[t]; filler {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
