// Package semantic implements the embedding tier. The candidate and every
// reference answer are embedded with the same model and compared by cosine
// similarity; the best reference above the acceptance threshold wins.
package semantic

import (
	"context"
	"time"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/inference"
	"github.com/quizkit/verdict/internal/normalize"
)

// Verdict is a successful semantic match.
type Verdict struct {
	// Similarity is the raw cosine similarity of the winning reference.
	Similarity float64
	// Confidence is the similarity rescaled into the tier's confidence band.
	Confidence float64
	// MatchedAgainst is the reference answer that produced the similarity.
	MatchedAgainst string
}

// Matcher embeds candidates against an answer's reference set. All model
// access goes through a single worker, so concurrent sessions queue rather
// than duplicate the loaded model.
type Matcher struct {
	worker    *inference.Worker
	backend   inference.EmbeddingBackend
	threshold float64
}

// NewMatcher wires an embedding backend behind the tier's worker discipline.
// The timeout bounds one full Match call including every embedding it needs.
func NewMatcher(backend inference.EmbeddingBackend, threshold float64, timeout time.Duration) *Matcher {
	return &Matcher{
		worker:    inference.NewWorker("embedding", backend, timeout),
		backend:   backend,
		threshold: threshold,
	}
}

// Available reports whether the tier can serve calls.
func (m *Matcher) Available() bool { return m.worker.Available() }

// Match embeds the candidate and every reference and returns the best
// reference whose cosine similarity clears the threshold. A nil Verdict with
// a nil error means the tier considered the answer and rejected it.
// Model failures surface as inference.ErrUnavailable or inference.ErrTimeout.
func (m *Matcher) Match(ctx context.Context, candidate string, spec *answer.Spec) (*Verdict, error) {
	refs := spec.References()
	if candidate == "" || len(refs) == 0 {
		return nil, nil
	}

	var verdict *Verdict
	err := m.worker.Do(ctx, func(ctx context.Context) error {
		cv, err := m.backend.Embed(ctx, candidate)
		if err != nil {
			return err
		}

		best := -1.0
		bestRef := ""
		for _, ref := range refs {
			rv, err := m.backend.Embed(ctx, normalize.Text(ref))
			if err != nil {
				return err
			}
			if sim := cosine(cv, rv); sim > best {
				best = sim
				bestRef = ref
			}
		}

		if best < m.threshold {
			return nil
		}
		verdict = &Verdict{
			Similarity:     best,
			Confidence:     m.confidence(best),
			MatchedAgainst: bestRef,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// Close drains in-flight embeddings and releases the model.
func (m *Matcher) Close(ctx context.Context) error { return m.worker.Close(ctx) }

// confidence maps similarity in [threshold,1] linearly onto the tier's
// [0.85,1.0] band, so a bare pass reads weaker than a near-identical vector.
func (m *Matcher) confidence(sim float64) float64 {
	span := 1 - m.threshold
	if span <= 0 {
		return 1
	}
	c := 0.85 + 0.15*(sim-m.threshold)/span
	if c > 1 {
		return 1
	}
	if c < 0.85 {
		return 0.85
	}
	return c
}
