// Package judge implements the language-model tier, the last resort for
// candidates no cheaper tier could decide. The model is asked a single
// yes/no equivalence question at temperature zero; an accepted answer always
// reports the tier's fixed confidence so repeated sessions score identically.
package judge

import (
	"context"
	"time"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/inference"
)

// Verdict is a successful judged match.
type Verdict struct {
	// Confidence is the tier's fixed acceptance confidence, not the model's
	// stated certainty.
	Confidence float64
	// Reasoning is the model's one-line explanation, for diagnostics.
	Reasoning string
}

// Judge runs equivalence judgments through a single serialized worker.
type Judge struct {
	worker           *inference.Worker
	backend          inference.JudgeBackend
	acceptConfidence float64
}

// New wires a judge backend behind the tier's worker discipline.
func New(backend inference.JudgeBackend, acceptConfidence float64, timeout time.Duration) *Judge {
	return &Judge{
		worker:           inference.NewWorker("judge", backend, timeout),
		backend:          backend,
		acceptConfidence: acceptConfidence,
	}
}

// Available reports whether the tier can serve calls.
func (j *Judge) Available() bool { return j.worker.Available() }

// Judge asks the model whether the candidate is an equivalent correct
// answer. A nil Verdict with a nil error is a rejection. Answers that demand
// more specificity are never escalated here, so the judge can assume the
// reference set is complete.
func (j *Judge) Judge(ctx context.Context, candidate string, spec *answer.Spec) (*Verdict, error) {
	if candidate == "" {
		return nil, nil
	}

	var verdict *Verdict
	err := j.worker.Do(ctx, func(ctx context.Context) error {
		judgment, err := j.backend.Judge(ctx, candidate, spec)
		if err != nil {
			return err
		}
		if !judgment.Equivalent {
			return nil
		}
		verdict = &Verdict{
			Confidence: j.acceptConfidence,
			Reasoning:  judgment.Reasoning,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// Close drains in-flight judgments and releases the model.
func (j *Judge) Close(ctx context.Context) error { return j.worker.Close(ctx) }
