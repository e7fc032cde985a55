// Package inference owns the model-backend contracts and the bounded worker
// discipline shared by the embedding and judge tiers. Backends are explicit,
// dependency-injected service objects with a load/infer/unload lifecycle so
// tests can substitute fakes without process-global state.
package inference

import (
	"context"
	"errors"

	"github.com/quizkit/verdict/internal/answer"
)

// ErrUnavailable means the backend is not installed, failed to load, or has
// been disabled for the remainder of the process. Callers degrade to the
// previous tier; the error never reaches the session layer.
var ErrUnavailable = errors.New("inference backend unavailable")

// ErrTimeout means an inference call exceeded its hard budget. Treated the
// same as a rejection by the calling tier.
var ErrTimeout = errors.New("inference timed out")

// Backend is the shared lifecycle for every model backend. Initialize is
// called once, lazily, on first use; Shutdown releases the model after all
// in-flight inference has drained.
type Backend interface {
	// Initialize loads the model. Called at most once per process.
	Initialize(ctx context.Context) error

	// Shutdown releases the model resources.
	Shutdown(ctx context.Context) error
}

// EmbeddingBackend converts text to a fixed-size semantic vector. The model
// is treated as immutable after load; Embed is a pure function over
// (model, input) and safe for concurrent callers.
type EmbeddingBackend interface {
	Backend

	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Judgment is the bounded verdict a judge backend returns.
type Judgment struct {
	// Equivalent reports whether the candidate is an equivalent correct
	// answer.
	Equivalent bool `json:"equivalent"`
	// Confidence is the model's stated certainty in [0,1]; zero when the
	// model exposes no score of its own.
	Confidence float64 `json:"confidence"`
	// Reasoning is a one-line explanation, used for diagnostics only.
	Reasoning string `json:"reasoning,omitempty"`
}

// JudgeBackend asks a language model whether a candidate answer is
// equivalent to the reference answer set.
type JudgeBackend interface {
	Backend

	// Judge runs one equivalence judgment at temperature zero.
	Judge(ctx context.Context, candidate string, spec *answer.Spec) (Judgment, error)
}
