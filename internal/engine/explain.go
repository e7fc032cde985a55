package engine

import (
	"fmt"

	"github.com/quizkit/verdict/internal/match"
	"github.com/quizkit/verdict/internal/rules"
)

// Explain renders a human-readable reason for a result, for feedback
// display. Pure presentation; it reads nothing but the result itself.
func Explain(res match.Result) string {
	if res.Type == match.None {
		switch res.Flag {
		case match.FlagNeedsSpecificity:
			return "answer is on the right track but too vague, be more specific"
		case match.FlagInvalidInput:
			return "answer could not be checked, input was empty or malformed"
		default:
			return "no match against the expected answer"
		}
	}

	switch rules.Kind(res.Matcher) {
	case rules.KindExact:
		return fmt.Sprintf("exact match for %q", res.MatchedAgainst)
	case rules.KindAlternate:
		return fmt.Sprintf("matched accepted alternate %q", res.MatchedAgainst)
	case rules.KindDistance:
		return fmt.Sprintf("close spelling of %q", res.MatchedAgainst)
	case rules.KindSynonym:
		return fmt.Sprintf("recognized synonym of %q", res.MatchedAgainst)
	case rules.KindPhonetic:
		return fmt.Sprintf("matched via phonetic similarity to %q", res.MatchedAgainst)
	case rules.KindNGram:
		return fmt.Sprintf("high character similarity to %q", res.MatchedAgainst)
	case rules.KindOverlap:
		return fmt.Sprintf("shares the key words of %q", res.MatchedAgainst)
	case rules.KindLemma:
		return fmt.Sprintf("same base word as %q", res.MatchedAgainst)
	}

	switch res.Type {
	case match.Semantic:
		return fmt.Sprintf("semantically equivalent to %q", res.MatchedAgainst)
	case match.Judged:
		return fmt.Sprintf("judged equivalent to %q", res.MatchedAgainst)
	}
	return fmt.Sprintf("matched %q", res.MatchedAgainst)
}
