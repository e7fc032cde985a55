// Package policy maps a competition strictness level to the maximum matching
// tier the engine may use. The mapping is fixed by external fairness rules:
// device capability may lower the effective ceiling but never raise it.
package policy

import "github.com/quizkit/verdict/internal/match"

// MaxTier returns the highest tier permitted at the given strictness level.
// Strict and standard competitions are rule-based only; lenient play unlocks
// embedding similarity and LLM judgment. Unknown levels fall back to the most
// restrictive ceiling.
func MaxTier(s match.Strictness) match.Tier {
	switch s {
	case match.StrictnessLenient:
		return match.Tier3
	case match.StrictnessStrict, match.StrictnessStandard:
		return match.Tier1
	default:
		return match.Tier1
	}
}

// EffectiveCeiling combines the policy ceiling with the device capability
// ceiling. Capability only ever lowers the result.
func EffectiveCeiling(s match.Strictness, cap match.Capability) match.Tier {
	ceiling := MaxTier(s)
	if cap.MaxSupportedTier < ceiling {
		ceiling = cap.MaxSupportedTier
	}
	if ceiling < match.Tier1 {
		ceiling = match.Tier1
	}
	return ceiling
}
