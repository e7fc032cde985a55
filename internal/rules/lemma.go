package rules

import (
	"strings"

	"github.com/kljensen/snowball"
	"github.com/quizkit/verdict/internal/match"
)

// lemmaConfidence is the fixed confidence for stem-equivalence hits.
const lemmaConfidence = 0.85

// lemmaMatcher accepts when candidate and reference reduce to the same
// snowball stems ("volcanoes" vs "volcano"). The last matcher in the chain:
// everything cheaper has already declined by the time it runs.
type lemmaMatcher struct {
	language string
}

func (m *lemmaMatcher) Name() Kind { return KindLemma }

func (m *lemmaMatcher) Match(mc *Context) (*Outcome, bool) {
	if mc.Candidate == "" {
		return nil, false
	}

	candidateStem := m.stemPhrase(mc.Candidate)
	if candidateStem == "" {
		return nil, false
	}

	for _, ref := range mc.Refs {
		if ref.Norm == "" {
			continue
		}
		if candidateStem == m.stemPhrase(ref.Norm) {
			return &Outcome{
				Type:           match.Fuzzy,
				Confidence:     lemmaConfidence,
				MatchedAgainst: ref.Raw,
				Matcher:        KindLemma,
			}, true
		}
	}
	return nil, false
}

// stemPhrase stems each word independently and rejoins. Words the stemmer
// cannot handle pass through unchanged.
func (m *lemmaMatcher) stemPhrase(s string) string {
	words := strings.Split(s, " ")
	stems := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		stem, err := snowball.Stem(w, m.language, false)
		if err != nil || stem == "" {
			stem = w
		}
		stems = append(stems, stem)
	}
	return strings.Join(stems, " ")
}
