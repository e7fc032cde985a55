package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/modfin/bellman/models/gen"
	"github.com/modfin/bellman/prompt"
	"github.com/modfin/bellman/schema"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/inference"
)

const systemPrompt = `You are a trivia answer judge. You are given the expected answer, ` +
	`its acceptable alternates, and a contestant's answer. Decide whether the contestant's ` +
	`answer refers to the same entity or fact as the expected answer. Accept common names, ` +
	`abbreviations, and equivalent phrasings. Reject answers that are merely related, more ` +
	`general, or partially correct. Respond only with the requested JSON.`

// BellmanJudge backs the judge tier with a bellman generation provider.
// Requests run at temperature zero with structured output so the same
// candidate always produces the same judgment.
type BellmanJudge struct {
	client    gen.Gen
	model     gen.Model
	maxTokens int
}

var _ inference.JudgeBackend = (*BellmanJudge)(nil)

// NewBellmanJudge resolves the provider client for a "provider/name" model
// string.
func NewBellmanJudge(clients *inference.Clients, model string, maxTokens int) (*BellmanJudge, error) {
	client, mod, err := clients.Gen(model)
	if err != nil {
		return nil, err
	}
	return &BellmanJudge{client: client, model: mod, maxTokens: maxTokens}, nil
}

// Initialize is a no-op. Generation providers reject bad credentials on the
// first judgment; probing with a full completion is not worth the spend.
func (b *BellmanJudge) Initialize(ctx context.Context) error { return nil }

// Shutdown is a no-op; the provider holds no local resources.
func (b *BellmanJudge) Shutdown(ctx context.Context) error { return nil }

func (b *BellmanJudge) Judge(ctx context.Context, candidate string, spec *answer.Spec) (inference.Judgment, error) {
	res, err := b.client.Generator(gen.WithModel(b.model)).
		System(systemPrompt).
		Temperature(0).
		MaxTokens(b.maxTokens).
		Output(schema.From(inference.Judgment{})).
		Prompt(prompt.Prompt{
			Role: prompt.UserRole,
			Text: buildQuestion(candidate, spec),
		})
	if err != nil {
		return inference.Judgment{}, fmt.Errorf("generating judgment: %w", err)
	}

	var judgment inference.Judgment
	if err := res.Unmarshal(&judgment); err != nil {
		return inference.Judgment{}, fmt.Errorf("unmarshalling judgment: %w", err)
	}
	return judgment, nil
}

// buildQuestion renders the deterministic user prompt. Field order and
// wording are fixed; two sessions with the same inputs send byte-identical
// requests.
func buildQuestion(candidate string, spec *answer.Spec) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Expected answer: %s\n", spec.Primary)
	if len(spec.Alternates) > 0 {
		fmt.Fprintf(&sb, "Also acceptable: %s\n", strings.Join(spec.Alternates, "; "))
	}
	if spec.Type != "" {
		fmt.Fprintf(&sb, "Answer type: %s\n", spec.Type)
	}
	fmt.Fprintf(&sb, "Contestant's answer: %s", candidate)
	return sb.String()
}
