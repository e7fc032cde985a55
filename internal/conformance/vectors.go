// Package conformance defines the versioned test-vector format shared by
// independent ports of the engine. A port passes when every vector
// reproduces the expected match type exactly and lands inside the stated
// confidence range.
package conformance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/quizkit/verdict/internal/match"
)

// Version is the vector format this build reads and writes.
const Version = 1

// Expectation is the binding outcome for one vector.
type Expectation struct {
	MatchType match.Type `yaml:"match_type" json:"match_type"`
	// ConfidenceMin and ConfidenceMax bound the accepted confidence,
	// inclusive on both ends.
	ConfidenceMin float64 `yaml:"confidence_min" json:"confidence_min"`
	ConfidenceMax float64 `yaml:"confidence_max" json:"confidence_max"`
	// Flag, when set, must match the result's diagnostic flag.
	Flag match.Flag `yaml:"flag,omitempty" json:"flag,omitempty"`
}

// Vector is one conformance case.
type Vector struct {
	Name       string           `yaml:"name" json:"name"`
	Candidate  string           `yaml:"candidate" json:"candidate"`
	Answer     *answer.Spec     `yaml:"answer" json:"answer"`
	Strictness match.Strictness `yaml:"strictness" json:"strictness"`
	// RequiresTier is the minimum device tier the vector needs; ports whose
	// capability cannot reach it skip the vector instead of failing it.
	RequiresTier match.Tier  `yaml:"requires_tier,omitempty" json:"requires_tier,omitempty"`
	Expect       Expectation `yaml:"expect" json:"expect"`
}

// File is a versioned set of conformance vectors.
type File struct {
	Version int      `yaml:"version" json:"version"`
	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Vectors []Vector `yaml:"vectors" json:"vectors"`
}

// Load reads and validates a vector file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vector file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a vector file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing vector file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the file's version and every vector's internal
// consistency.
func (f *File) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("unsupported vector file version %d, want %d", f.Version, Version)
	}
	if len(f.Vectors) == 0 {
		return fmt.Errorf("vector file has no vectors")
	}

	known := map[match.Type]bool{}
	for _, typ := range match.Types {
		known[typ] = true
	}

	for i, v := range f.Vectors {
		if v.Name == "" {
			return fmt.Errorf("vectors[%d]: missing name", i)
		}
		if v.Answer == nil {
			return fmt.Errorf("vectors[%d] %q: missing answer", i, v.Name)
		}
		if err := v.Answer.Validate(); err != nil {
			return fmt.Errorf("vectors[%d] %q: %w", i, v.Name, err)
		}
		if !v.Strictness.Valid() {
			return fmt.Errorf("vectors[%d] %q: unknown strictness %q", i, v.Name, v.Strictness)
		}
		if v.RequiresTier < match.Tier0 || v.RequiresTier > match.Tier3 {
			return fmt.Errorf("vectors[%d] %q: requires_tier %d out of range", i, v.Name, v.RequiresTier)
		}
		e := v.Expect
		if !known[e.MatchType] {
			return fmt.Errorf("vectors[%d] %q: unknown match type %q", i, v.Name, e.MatchType)
		}
		if e.ConfidenceMin < 0 || e.ConfidenceMax > 1 || e.ConfidenceMin > e.ConfidenceMax {
			return fmt.Errorf("vectors[%d] %q: confidence range [%v,%v] is not within [0,1]",
				i, v.Name, e.ConfidenceMin, e.ConfidenceMax)
		}
		if e.MatchType == match.None && (e.ConfidenceMin != 0 || e.ConfidenceMax != 0) {
			return fmt.Errorf("vectors[%d] %q: a none expectation must pin confidence to 0", i, v.Name)
		}
	}
	return nil
}
