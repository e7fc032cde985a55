package inference

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modfin/bellman"
	"github.com/modfin/bellman/models/embed"
	"github.com/modfin/bellman/models/gen"
	"github.com/modfin/bellman/services/anthropic"
	"github.com/modfin/bellman/services/openai"
	"github.com/modfin/bellman/services/voyageai"
)

// Credentials selects which model providers are reachable. A locally hosted
// bellman proxy is the expected production path (on-device or edge serving);
// direct provider keys exist for development.
type Credentials struct {
	BellmanURL     string
	BellmanKeyName string
	BellmanKey     string

	OpenAIKey    string
	AnthropicKey string
	VoyageAIKey  string
}

// ErrNoProvider is returned when no registered client serves the requested
// model's provider.
var ErrNoProvider = errors.New("no client registered for provider")

// Clients is the provider registry backing the embedding and judge tiers.
type Clients struct {
	embeders map[string]embed.Embeder
	gens     map[string]gen.Gen
}

// NewClients registers one client per configured provider.
func NewClients(creds Credentials, logger *slog.Logger) (*Clients, error) {
	c := &Clients{
		embeders: map[string]embed.Embeder{},
		gens:     map[string]gen.Gen{},
	}

	if creds.AnthropicKey != "" {
		client := anthropic.New(creds.AnthropicKey)
		c.gens[client.Provider()] = client
		logger.Debug("adding llm provider", "provider", client.Provider())
	}

	if creds.OpenAIKey != "" {
		client := openai.New(creds.OpenAIKey)
		c.gens[client.Provider()] = client
		c.embeders[client.Provider()] = client
		logger.Debug("adding llm and embed provider", "provider", client.Provider())
	}

	if creds.VoyageAIKey != "" {
		client := voyageai.New(creds.VoyageAIKey)
		c.embeders[client.Provider()] = client
		logger.Debug("adding embed provider", "provider", client.Provider())
	}

	if creds.BellmanKey != "" && creds.BellmanURL != "" {
		client := bellman.New(creds.BellmanURL, bellman.Key{
			Name:  creds.BellmanKeyName,
			Token: creds.BellmanKey,
		})
		c.gens[client.Provider()] = client
		c.embeders[client.Provider()] = client
		logger.Debug("adding llm and embed provider", "provider", client.Provider())
	}

	return c, nil
}

// Embeder resolves the client and concrete model for a "provider/name"
// model string.
func (c *Clients) Embeder(model string) (embed.Embeder, embed.Model, error) {
	provider, name, _ := strings.Cut(model, "/")
	client, ok := c.embeders[provider]
	if !ok || client == nil {
		return nil, embed.Model{}, fmt.Errorf("embed model %q: %w", model, ErrNoProvider)
	}
	return client, embed.Model{Provider: provider, Name: name}, nil
}

// Gen resolves the client and concrete model for a "provider/name" model
// string.
func (c *Clients) Gen(model string) (gen.Gen, gen.Model, error) {
	provider, name, _ := strings.Cut(model, "/")
	client, ok := c.gens[provider]
	if !ok || client == nil {
		return nil, gen.Model{}, fmt.Errorf("llm model %q: %w", model, ErrNoProvider)
	}
	return client, gen.Model{Provider: provider, Name: name}, nil
}

// HasEmbeder reports whether any embedding provider is registered.
func (c *Clients) HasEmbeder() bool { return len(c.embeders) > 0 }

// HasGen reports whether any LLM provider is registered.
func (c *Clients) HasGen() bool { return len(c.gens) > 0 }
