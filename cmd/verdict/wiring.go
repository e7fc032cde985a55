package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/quizkit/verdict/internal/capability"
	"github.com/quizkit/verdict/internal/config"
	"github.com/quizkit/verdict/internal/engine"
	"github.com/quizkit/verdict/internal/inference"
	"github.com/quizkit/verdict/internal/judge"
	"github.com/quizkit/verdict/internal/semantic"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func credentialsFromEnv() inference.Credentials {
	return inference.Credentials{
		BellmanURL:     os.Getenv("BELLMAN_URL"),
		BellmanKeyName: os.Getenv("BELLMAN_KEY_NAME"),
		BellmanKey:     os.Getenv("BELLMAN_KEY"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		VoyageAIKey:    os.Getenv("VOYAGEAI_API_KEY"),
	}
}

// buildEngine assembles the validator and the capability detector from
// config and environment credentials. Tiers whose model cannot be resolved
// are left unattached; the orchestrator degrades past them.
func buildEngine(cfg *config.Config, creds inference.Credentials) (*engine.Validator, *capability.Detector, func(context.Context), error) {
	clients, err := inference.NewClients(creds, slog.Default())
	if err != nil {
		return nil, nil, nil, err
	}

	var opts []engine.Option
	var closers []func(context.Context) error

	if clients.HasEmbeder() {
		embedder, err := semantic.NewBellmanEmbedder(clients, cfg.Embedding.Model)
		if err != nil {
			slog.Warn("embedding tier not attached", "model", cfg.Embedding.Model, "err", err)
		} else {
			matcher := semantic.NewMatcher(embedder, cfg.Embedding.Threshold,
				time.Duration(cfg.Embedding.TimeoutMS)*time.Millisecond)
			opts = append(opts, engine.WithEmbedding(matcher))
			closers = append(closers, matcher.Close)
		}
	}

	if clients.HasGen() {
		backend, err := judge.NewBellmanJudge(clients, cfg.Judge.Model, cfg.Judge.MaxTokens)
		if err != nil {
			slog.Warn("judge tier not attached", "model", cfg.Judge.Model, "err", err)
		} else {
			j := judge.New(backend, cfg.Judge.AcceptConfidence,
				time.Duration(cfg.Judge.TimeoutMS)*time.Millisecond)
			opts = append(opts, engine.WithJudge(j))
			closers = append(closers, j.Close)
		}
	}

	detector := capability.NewDetector(cfg.ModelDir,
		capability.WithProviders(clients.HasEmbeder, clients.HasGen))

	closeAll := func(ctx context.Context) {
		for _, closer := range closers {
			if err := closer(ctx); err != nil {
				slog.Warn("closing tier", "err", err)
			}
		}
	}
	return engine.New(cfg, opts...), detector, closeAll, nil
}
