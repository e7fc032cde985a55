package conformance

import (
	"context"
	"fmt"

	"github.com/quizkit/verdict/internal/match"
)

// Validator is the engine surface the runner drives. Satisfied by the
// orchestrator.
type Validator interface {
	Validate(ctx context.Context, req match.Request) (match.Result, error)
}

// Failure describes one vector the implementation did not reproduce.
type Failure struct {
	Vector string
	Reason string
	Got    match.Result
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Vector, f.Reason)
}

// Run replays every vector against the validator under the given device
// capability and collects the mismatches. An empty slice means the
// implementation conforms.
func Run(ctx context.Context, v Validator, f *File, capability match.Capability) ([]Failure, error) {
	var failures []Failure
	for _, vec := range f.Vectors {
		if vec.RequiresTier > capability.MaxSupportedTier {
			continue
		}
		res, err := v.Validate(ctx, match.Request{
			CandidateText: vec.Candidate,
			Answer:        vec.Answer,
			Strictness:    vec.Strictness,
			Capability:    capability,
		})
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", vec.Name, err)
		}
		if fail, ok := check(vec, res); !ok {
			failures = append(failures, fail)
		}
	}
	return failures, nil
}

func check(vec Vector, res match.Result) (Failure, bool) {
	e := vec.Expect
	if res.Type != e.MatchType {
		return Failure{
			Vector: vec.Name,
			Reason: fmt.Sprintf("match type %q, want %q", res.Type, e.MatchType),
			Got:    res,
		}, false
	}
	if res.Confidence < e.ConfidenceMin || res.Confidence > e.ConfidenceMax {
		return Failure{
			Vector: vec.Name,
			Reason: fmt.Sprintf("confidence %v outside [%v,%v]", res.Confidence, e.ConfidenceMin, e.ConfidenceMax),
			Got:    res,
		}, false
	}
	if e.Flag != match.FlagNone && res.Flag != e.Flag {
		return Failure{
			Vector: vec.Name,
			Reason: fmt.Sprintf("flag %q, want %q", res.Flag, e.Flag),
			Got:    res,
		}, false
	}
	return Failure{}, true
}
