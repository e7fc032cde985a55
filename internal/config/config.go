// Package config holds the engine tunables: per-answer-type matcher
// thresholds, the embedding acceptance threshold, inference timeouts and
// model identifiers. Everything here is external configuration, never
// per-question constants.
package config

import (
	"fmt"
	"os"

	"github.com/quizkit/verdict/internal/answer"
	"gopkg.in/yaml.v3"
)

// TypeThresholds are the Tier 1 acceptance thresholds for one answer type.
type TypeThresholds struct {
	// MaxEditDistance is the maximum normalized Levenshtein distance
	// (distance / max(len, len)) the fuzzy matcher accepts.
	MaxEditDistance float64 `yaml:"max_edit_distance" json:"max_edit_distance"`
	// MinNGramSimilarity is the minimum character-bigram Dice coefficient.
	MinNGramSimilarity float64 `yaml:"min_ngram_similarity" json:"min_ngram_similarity"`
	// MinTokenOverlap is the minimum word-level Jaccard coefficient.
	MinTokenOverlap float64 `yaml:"min_token_overlap" json:"min_token_overlap"`
}

// EmbeddingConfig controls the Tier 2 matcher.
type EmbeddingConfig struct {
	// Model is the provider/name pair for the embedding model.
	Model string `yaml:"model" json:"model"`
	// Threshold is the single global cosine-similarity acceptance threshold.
	Threshold float64 `yaml:"threshold" json:"threshold"`
	// TimeoutMS is the hard per-call budget.
	TimeoutMS int `yaml:"timeout_ms" json:"timeout_ms"`
}

// JudgeConfig controls the Tier 3 matcher.
type JudgeConfig struct {
	// Model is the provider/name pair for the judge model.
	Model string `yaml:"model" json:"model"`
	// TimeoutMS is the hard per-call budget.
	TimeoutMS int `yaml:"timeout_ms" json:"timeout_ms"`
	// AcceptConfidence is reported when the model exposes no usable score
	// of its own.
	AcceptConfidence float64 `yaml:"accept_confidence" json:"accept_confidence"`
	// MaxTokens bounds the judge's response.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`
}

// Config is the full set of engine tunables.
type Config struct {
	Thresholds map[answer.Type]TypeThresholds `yaml:"thresholds"`
	// Synonyms are curated symmetric equivalence groups, e.g.
	// ["usa", "united states", "united states of america"].
	Synonyms  [][]string      `yaml:"synonyms,omitempty"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Judge     JudgeConfig     `yaml:"judge"`
	// ModelDir is where local model assets live; the capability detector
	// probes it.
	ModelDir string `yaml:"model_dir,omitempty"`
}

// Default returns the engine defaults. Numbers and dates tolerate almost no
// edit distance; titles and concepts tolerate the most.
func Default() *Config {
	tight := TypeThresholds{MaxEditDistance: 0.0, MinNGramSimilarity: 0.95, MinTokenOverlap: 0.99}
	standard := TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.75, MinTokenOverlap: 0.5}
	loose := TypeThresholds{MaxEditDistance: 0.25, MinNGramSimilarity: 0.7, MinTokenOverlap: 0.45}

	return &Config{
		Thresholds: map[answer.Type]TypeThresholds{
			answer.TypeNumber:     tight,
			answer.TypeDate:       tight,
			answer.TypePerson:     standard,
			answer.TypePlace:      standard,
			answer.TypeThing:      standard,
			answer.TypeScientific: standard,
			answer.TypeConcept:    loose,
			answer.TypeTitle:      loose,
		},
		Synonyms: [][]string{
			{"usa", "united states", "united states of america", "america", "the united states"},
			{"uk", "united kingdom", "great britain", "britain"},
			{"uae", "united arab emirates"},
			{"ussr", "soviet union"},
			{"nyc", "new york city", "new york"},
			{"la", "los angeles"},
			{"dc", "washington dc", "washington d c"},
			{"h2o", "water"},
			{"dna", "deoxyribonucleic acid"},
			{"tv", "television"},
		},
		Embedding: EmbeddingConfig{
			Model:     "OpenAI/text-embedding-3-small",
			Threshold: 0.82,
			TimeoutMS: 80,
		},
		Judge: JudgeConfig{
			Model:            "OpenAI/gpt-4o-mini",
			TimeoutMS:        250,
			AcceptConfidence: 0.98,
			MaxTokens:        128,
		},
	}
}

// Load reads a config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every tunable is in range.
func (c *Config) Validate() error {
	for typ, th := range c.Thresholds {
		if !typ.Valid() {
			return fmt.Errorf("thresholds: unknown answer type %q", typ)
		}
		if th.MaxEditDistance < 0 || th.MaxEditDistance > 1 {
			return fmt.Errorf("thresholds[%s]: max_edit_distance must be in [0,1], got %v", typ, th.MaxEditDistance)
		}
		if th.MinNGramSimilarity <= 0 || th.MinNGramSimilarity > 1 {
			return fmt.Errorf("thresholds[%s]: min_ngram_similarity must be in (0,1], got %v", typ, th.MinNGramSimilarity)
		}
		if th.MinTokenOverlap <= 0 || th.MinTokenOverlap > 1 {
			return fmt.Errorf("thresholds[%s]: min_token_overlap must be in (0,1], got %v", typ, th.MinTokenOverlap)
		}
	}

	if c.Embedding.Threshold <= 0 || c.Embedding.Threshold > 1 {
		return fmt.Errorf("embedding.threshold must be in (0,1], got %v", c.Embedding.Threshold)
	}
	if c.Embedding.TimeoutMS < 1 {
		return fmt.Errorf("embedding.timeout_ms must be at least 1, got %d", c.Embedding.TimeoutMS)
	}
	if c.Judge.TimeoutMS < 1 {
		return fmt.Errorf("judge.timeout_ms must be at least 1, got %d", c.Judge.TimeoutMS)
	}
	if c.Judge.AcceptConfidence <= 0 || c.Judge.AcceptConfidence > 1 {
		return fmt.Errorf("judge.accept_confidence must be in (0,1], got %v", c.Judge.AcceptConfidence)
	}

	for i, group := range c.Synonyms {
		if len(group) < 2 {
			return fmt.Errorf("synonyms[%d]: a group needs at least two entries", i)
		}
	}

	return nil
}

// ThresholdsFor returns the thresholds for an answer type, falling back to
// the thing defaults when the type is not configured.
func (c *Config) ThresholdsFor(typ answer.Type) TypeThresholds {
	if th, ok := c.Thresholds[typ]; ok {
		return th
	}
	return c.Thresholds[answer.TypeThing]
}
