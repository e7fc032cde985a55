// Package engine is the validation orchestrator and the only entry point the
// session layer calls. It composes the rule chain, the embedding tier and the
// judge tier into one deterministic fallback chain: tiers run in strictly
// ascending order and the first acceptance is final.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/config"
	"github.com/quizkit/verdict/internal/inference"
	"github.com/quizkit/verdict/internal/judge"
	"github.com/quizkit/verdict/internal/match"
	"github.com/quizkit/verdict/internal/normalize"
	"github.com/quizkit/verdict/internal/policy"
	"github.com/quizkit/verdict/internal/rules"
	"github.com/quizkit/verdict/internal/semantic"
)

// ErrInvalidInput is the only error Validate reports to the caller: an empty
// candidate or a malformed answer record. Everything else degrades to a
// lower tier instead.
var ErrInvalidInput = errors.New("invalid validation input")

// EmbeddingTier is the contract the orchestrator needs from the embedding
// matcher. A nil verdict with a nil error is a rejection.
type EmbeddingTier interface {
	Match(ctx context.Context, candidate string, spec *answer.Spec) (*semantic.Verdict, error)
}

// JudgeTier is the contract the orchestrator needs from the judge.
type JudgeTier interface {
	Judge(ctx context.Context, candidate string, spec *answer.Spec) (*judge.Verdict, error)
}

// Validator runs validation requests through the tier chain. It is stateless
// across calls and safe for concurrent use; shared model access is
// serialized inside the tiers themselves.
type Validator struct {
	chain     *rules.Chain
	embedding EmbeddingTier
	judge     JudgeTier
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithEmbedding attaches the embedding tier. Without it, Tier 2 behaves as
// unsupported.
func WithEmbedding(tier EmbeddingTier) Option {
	return func(v *Validator) { v.embedding = tier }
}

// WithJudge attaches the judge tier. Without it, Tier 3 behaves as
// unsupported.
func WithJudge(tier JudgeTier) Option {
	return func(v *Validator) { v.judge = tier }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// New builds a validator over the given engine configuration.
func New(cfg *config.Config, opts ...Option) *Validator {
	v := &Validator{
		chain:  rules.NewChain(cfg),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs one request through the permitted tiers and always returns a
// fully populated result. The error is non-nil only for ErrInvalidInput; tier
// failures and timeouts degrade silently.
func (v *Validator) Validate(ctx context.Context, req match.Request) (match.Result, error) {
	start := time.Now()
	finish := func(res match.Result) match.Result {
		res.DurationMs = time.Since(start).Milliseconds()
		return res
	}

	if err := checkInput(req); err != nil {
		res := match.Rejected(match.Tier0)
		res.Flag = match.FlagInvalidInput
		return finish(res), err
	}

	ceiling := policy.EffectiveCeiling(req.Strictness, req.Capability)

	outcome := v.chain.Evaluate(req.CandidateText, req.Answer)
	if outcome.Type != match.None {
		tier := match.Tier1
		if outcome.Matcher == rules.KindExact {
			tier = match.Tier0
		}
		return finish(match.Result{
			Type:           outcome.Type,
			Confidence:     outcome.Confidence,
			TierUsed:       tier,
			MatchedAgainst: outcome.MatchedAgainst,
			Matcher:        string(outcome.Matcher),
			Flag:           outcome.Flag,
		}), nil
	}

	// A too-vague answer is final. Later tiers would happily call it
	// equivalent, which is exactly the promotion the flag exists to prevent.
	if outcome.Flag == match.FlagNeedsSpecificity {
		res := match.Rejected(match.Tier1)
		res.Flag = match.FlagNeedsSpecificity
		return finish(res), nil
	}

	highest := match.Tier1
	candidate := normalize.Text(req.CandidateText)

	if ceiling >= match.Tier2 && req.Capability.HasEmbeddingModel && v.embedding != nil {
		highest = match.Tier2
		verdict, err := v.embedding.Match(ctx, candidate, req.Answer)
		if err != nil {
			if ctx.Err() != nil {
				return finish(match.Rejected(highest)), ctx.Err()
			}
			v.logDegrade("embedding", err)
		} else if verdict != nil {
			return finish(match.Result{
				Type:           match.Semantic,
				Confidence:     verdict.Confidence,
				TierUsed:       match.Tier2,
				MatchedAgainst: verdict.MatchedAgainst,
				Matcher:        "embedding",
			}), nil
		}
	}

	if ceiling >= match.Tier3 && req.Capability.HasLLMModel && v.judge != nil {
		highest = match.Tier3
		verdict, err := v.judge.Judge(ctx, candidate, req.Answer)
		if err != nil {
			if ctx.Err() != nil {
				return finish(match.Rejected(highest)), ctx.Err()
			}
			v.logDegrade("judge", err)
		} else if verdict != nil {
			return finish(match.Result{
				Type:           match.Judged,
				Confidence:     verdict.Confidence,
				TierUsed:       match.Tier3,
				MatchedAgainst: req.Answer.Primary,
				Matcher:        "judge",
			}), nil
		}
	}

	return finish(match.Rejected(highest)), nil
}

// logDegrade records a tier failure at the right level. Unavailability and
// timeouts are expected degradation; anything else is worth a warning.
func (v *Validator) logDegrade(tier string, err error) {
	switch {
	case errors.Is(err, inference.ErrUnavailable):
		v.logger.Debug("tier unavailable, degrading", "tier", tier)
	case errors.Is(err, inference.ErrTimeout):
		v.logger.Debug("tier timed out, degrading", "tier", tier)
	default:
		v.logger.Warn("tier failed, degrading", "tier", tier, "err", err)
	}
}

func checkInput(req match.Request) error {
	if strings.TrimSpace(req.CandidateText) == "" {
		return fmt.Errorf("%w: empty candidate text", ErrInvalidInput)
	}
	if req.Answer == nil {
		return fmt.Errorf("%w: missing answer record", ErrInvalidInput)
	}
	if err := req.Answer.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if !req.Strictness.Valid() {
		return fmt.Errorf("%w: unknown strictness %q", ErrInvalidInput, req.Strictness)
	}
	return nil
}
