package rules

import (
	"github.com/quizkit/verdict/internal/match"
	"github.com/quizkit/verdict/internal/normalize"
)

// synonymConfidence is the fixed confidence for curated synonym hits.
const synonymConfidence = 0.95

// SynonymTable is a symmetric canonical<->variant lookup built from curated
// equivalence groups. Entries are normalized at construction so lookups and
// candidates always compare in the same space.
type SynonymTable struct {
	groupOf map[string]int
}

// NewSynonymTable builds a table from equivalence groups. Later groups never
// overwrite membership from earlier ones.
func NewSynonymTable(groups [][]string) *SynonymTable {
	t := &SynonymTable{groupOf: make(map[string]int)}
	for i, group := range groups {
		for _, entry := range group {
			key := normalize.Text(entry)
			if key == "" {
				continue
			}
			if _, exists := t.groupOf[key]; !exists {
				t.groupOf[key] = i
			}
		}
	}
	return t
}

// Equivalent reports whether a and b (normalized) belong to the same group.
// The relation is symmetric by construction.
func (t *SynonymTable) Equivalent(a, b string) bool {
	ga, ok := t.groupOf[a]
	if !ok {
		return false
	}
	gb, ok := t.groupOf[b]
	return ok && ga == gb
}

// synonymMatcher accepts when the candidate and any reference fall in the
// same curated synonym group.
type synonymMatcher struct{}

func (m *synonymMatcher) Name() Kind { return KindSynonym }

func (m *synonymMatcher) Match(mc *Context) (*Outcome, bool) {
	if mc.Candidate == "" || mc.Synonyms == nil {
		return nil, false
	}
	for _, ref := range mc.Refs {
		if mc.Synonyms.Equivalent(mc.Candidate, ref.Norm) {
			return &Outcome{
				Type:           match.Fuzzy,
				Confidence:     synonymConfidence,
				MatchedAgainst: ref.Raw,
				Matcher:        KindSynonym,
			}, true
		}
	}
	return nil, false
}
