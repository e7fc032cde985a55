package rules

import "github.com/quizkit/verdict/internal/match"

// exactMatcher accepts when the normalized candidate equals the normalized
// primary. The orchestrator reports this as the tier 0 short-circuit.
type exactMatcher struct{}

func (m *exactMatcher) Name() Kind { return KindExact }

func (m *exactMatcher) Match(mc *Context) (*Outcome, bool) {
	if len(mc.Refs) == 0 || mc.Candidate == "" {
		return nil, false
	}
	primary := mc.Refs[0]
	if mc.Candidate != primary.Norm {
		return nil, false
	}
	return &Outcome{
		Type:           match.Exact,
		Confidence:     1.0,
		MatchedAgainst: primary.Raw,
		Matcher:        KindExact,
	}, true
}

// alternateMatcher accepts when the normalized candidate equals any curated
// alternate.
type alternateMatcher struct{}

func (m *alternateMatcher) Name() Kind { return KindAlternate }

func (m *alternateMatcher) Match(mc *Context) (*Outcome, bool) {
	if mc.Candidate == "" {
		return nil, false
	}
	for _, ref := range mc.Refs[1:] {
		if mc.Candidate == ref.Norm {
			return &Outcome{
				Type:           match.Acceptable,
				Confidence:     1.0,
				MatchedAgainst: ref.Raw,
				Matcher:        KindAlternate,
			}, true
		}
	}
	return nil, false
}
