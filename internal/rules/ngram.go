package rules

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/quizkit/verdict/internal/match"
)

// ngramMatcher accepts when the character n-gram Dice coefficient between
// the candidate and any reference meets the answer type's threshold. The
// similarity is rescaled from [threshold, 1] into [0.8, 1.0] for confidence.
type ngramMatcher struct {
	size int
}

func (m *ngramMatcher) Name() Kind { return KindNGram }

func (m *ngramMatcher) Match(mc *Context) (*Outcome, bool) {
	if mc.Candidate == "" {
		return nil, false
	}

	dice := metrics.NewSorensenDice()
	dice.CaseSensitive = false
	dice.NgramSize = m.size

	threshold := mc.Thresholds.MinNGramSimilarity
	best := -1.0
	var bestRef Ref

	for _, ref := range mc.Refs {
		if ref.Norm == "" {
			continue
		}
		sim := strutil.Similarity(mc.Candidate, ref.Norm, dice)
		if sim < threshold {
			continue
		}
		if sim > best {
			best = sim
			bestRef = ref
		}
	}

	if best < 0 {
		return nil, false
	}

	confidence := 0.8
	if threshold < 1 {
		confidence = 0.8 + 0.2*(best-threshold)/(1-threshold)
	}

	return &Outcome{
		Type:           match.Fuzzy,
		Confidence:     clamp(confidence, 0.8, 1.0),
		MatchedAgainst: bestRef.Raw,
		Matcher:        KindNGram,
	}, true
}
