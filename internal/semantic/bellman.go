package semantic

import (
	"context"
	"fmt"

	"github.com/modfin/bellman/models/embed"

	"github.com/quizkit/verdict/internal/inference"
)

// BellmanEmbedder backs the embedding tier with a bellman embed provider.
type BellmanEmbedder struct {
	client embed.Embeder
	model  embed.Model
}

var _ inference.EmbeddingBackend = (*BellmanEmbedder)(nil)

// NewBellmanEmbedder resolves the provider client for a "provider/name"
// model string.
func NewBellmanEmbedder(clients *inference.Clients, model string) (*BellmanEmbedder, error) {
	client, mod, err := clients.Embeder(model)
	if err != nil {
		return nil, err
	}
	return &BellmanEmbedder{client: client, model: mod}, nil
}

// Initialize probes the provider with a single short embedding so missing
// credentials or an unknown model fail at load time, not mid-session.
func (b *BellmanEmbedder) Initialize(ctx context.Context) error {
	_, err := b.client.Embed(embed.Request{Ctx: ctx, Model: b.model, Text: "ok"})
	if err != nil {
		return fmt.Errorf("probing embed model %s/%s: %w", b.model.Provider, b.model.Name, err)
	}
	return nil
}

// Shutdown is a no-op; the provider holds no local resources.
func (b *BellmanEmbedder) Shutdown(ctx context.Context) error { return nil }

func (b *BellmanEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := b.client.Embed(embed.Request{Ctx: ctx, Model: b.model, Text: text})
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	return resp.AsFloat64(), nil
}
