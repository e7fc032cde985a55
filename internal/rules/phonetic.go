package rules

import (
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/quizkit/verdict/internal/match"
)

// phoneticConfidence is the fixed confidence for phonetic-code hits.
const phoneticConfidence = 0.90

// phoneticMatcher accepts when the candidate's double-metaphone code equals
// that of the primary, an alternate, or a precomputed phonetic variant.
// Multi-word strings are encoded word by word so "new york" and "new yorke"
// compare code against code.
type phoneticMatcher struct{}

func (m *phoneticMatcher) Name() Kind { return KindPhonetic }

func (m *phoneticMatcher) Match(mc *Context) (*Outcome, bool) {
	if mc.Candidate == "" {
		return nil, false
	}

	candidateCode := phoneticCode(mc.Candidate)
	if candidateCode == "" {
		return nil, false
	}

	for _, ref := range mc.PhoneticRefs {
		if ref.Norm == "" {
			continue
		}
		if candidateCode == phoneticCode(ref.Norm) {
			return &Outcome{
				Type:           match.Fuzzy,
				Confidence:     phoneticConfidence,
				MatchedAgainst: ref.Raw,
				Matcher:        KindPhonetic,
			}, true
		}
	}
	return nil, false
}

// phoneticCode renders a normalized string as space-joined primary
// double-metaphone codes, one per word. Digits carry no phonetic value and
// pass through unchanged so "7" never collides with a word.
func phoneticCode(s string) string {
	words := strings.Split(s, " ")
	codes := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if strings.IndexFunc(w, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
			codes = append(codes, w)
			continue
		}
		primary, _ := matchr.DoubleMetaphone(w)
		if primary == "" {
			primary = w
		}
		codes = append(codes, primary)
	}
	return strings.Join(codes, " ")
}
