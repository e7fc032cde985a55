package inference

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/quizkit/verdict/internal/answer"
)

// MockEmbedder is an in-memory EmbeddingBackend for tests. Vectors come from
// an explicit vocabulary when set, otherwise from letter frequencies, so
// equal strings always embed identically and strings sharing no letters have
// zero similarity.
type MockEmbedder struct {
	// Vocabulary overrides the hashed vector for specific inputs. Inputs are
	// looked up by their lowercased form.
	Vocabulary map[string][]float64

	// InitializeError, when set, fails the load and keeps failing it.
	InitializeError error
	// EmbedError, when set, fails every Embed call.
	EmbedError error
	// Delay is added to every Embed call before it returns.
	Delay time.Duration

	initCalls  atomic.Int64
	embedCalls atomic.Int64
}

var _ EmbeddingBackend = (*MockEmbedder)(nil)

func (m *MockEmbedder) Initialize(ctx context.Context) error {
	m.initCalls.Add(1)
	return m.InitializeError
}

func (m *MockEmbedder) Shutdown(ctx context.Context) error { return nil }

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	m.embedCalls.Add(1)
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.EmbedError != nil {
		return nil, m.EmbedError
	}
	if v, ok := m.Vocabulary[strings.ToLower(text)]; ok {
		return v, nil
	}
	return letterVector(text), nil
}

// InitializeCalls returns how many times the backend was asked to load.
func (m *MockEmbedder) InitializeCalls() int64 { return m.initCalls.Load() }

// EmbedCalls returns how many Embed calls were made. Strictness tests use
// this to prove a tier was never invoked.
func (m *MockEmbedder) EmbedCalls() int64 { return m.embedCalls.Load() }

// letterVector counts a-z occurrences into a 27-slot unit vector, with one
// extra slot for digits. Crude, but its similarities are easy to reason
// about in test assertions.
func letterVector(text string) []float64 {
	v := make([]float64, 27)
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			v[r-'a']++
		case r >= '0' && r <= '9':
			v[26]++
		}
	}
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] /= norm
	}
	return v
}

// MockJudge is an in-memory JudgeBackend for tests. Verdicts come from the
// Verdicts table keyed by lowercased candidate text; unknown candidates are
// rejected.
type MockJudge struct {
	// Verdicts maps lowercased candidate text to the judgment to return.
	Verdicts map[string]Judgment

	InitializeError error
	JudgeError      error
	Delay           time.Duration

	judgeCalls atomic.Int64
}

var _ JudgeBackend = (*MockJudge)(nil)

func (m *MockJudge) Initialize(ctx context.Context) error { return m.InitializeError }

func (m *MockJudge) Shutdown(ctx context.Context) error { return nil }

func (m *MockJudge) Judge(ctx context.Context, candidate string, spec *answer.Spec) (Judgment, error) {
	m.judgeCalls.Add(1)
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return Judgment{}, ctx.Err()
		}
	}
	if m.JudgeError != nil {
		return Judgment{}, m.JudgeError
	}
	if v, ok := m.Verdicts[strings.ToLower(candidate)]; ok {
		return v, nil
	}
	return Judgment{
		Equivalent: false,
		Reasoning:  fmt.Sprintf("%q does not match %q", candidate, spec.Primary),
	}, nil
}

// JudgeCalls returns how many Judge calls were made.
func (m *MockJudge) JudgeCalls() int64 { return m.judgeCalls.Load() }
