package rules

import (
	"github.com/agnivade/levenshtein"
	"github.com/quizkit/verdict/internal/match"
)

// distanceMatcher accepts when the normalized Levenshtein distance to any
// reference is within the answer type's tolerance. The similarity score
// (1 - distance/maxLen) is scaled into [0.6, 1.0], so confidence decreases
// as distance grows and an exact-length match approaches 1.
type distanceMatcher struct{}

func (m *distanceMatcher) Name() Kind { return KindDistance }

func (m *distanceMatcher) Match(mc *Context) (*Outcome, bool) {
	if mc.Candidate == "" {
		return nil, false
	}

	best := -1.0
	var bestRef Ref

	for _, ref := range mc.Refs {
		if ref.Norm == "" {
			continue
		}
		d := levenshtein.ComputeDistance(mc.Candidate, ref.Norm)
		maxLen := max(len([]rune(mc.Candidate)), len([]rune(ref.Norm)))
		normalized := float64(d) / float64(maxLen)
		if normalized > mc.Thresholds.MaxEditDistance {
			continue
		}
		if score := 1.0 - normalized; score > best {
			best = score
			bestRef = ref
		}
	}

	if best < 0 {
		return nil, false
	}

	return &Outcome{
		Type:           match.Fuzzy,
		Confidence:     clamp(0.6+0.4*best, 0.6, 1.0),
		MatchedAgainst: bestRef.Raw,
		Matcher:        KindDistance,
	}, true
}
