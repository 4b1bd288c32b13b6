// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package nlu

import (
	"errors"
	"strings"
)

// Config holds configuration for NLU service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// ResponderModel is the chat model identifier used for answer polishing.
	// Example: "gpt-4o-mini"
	ResponderModel string

	// APIKey is the credential for the answer-polishing service. When empty
	// the responder is disabled and answers are formatted directly from the
	// database rows.
	APIKey string

	// MinConfidence is the classification confidence below which an
	// entity-less clause is treated as a follow-up reference and resolved
	// from conversation context.
	// Default: 0.5
	MinConfidence float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithResponderModel sets the chat model used for answer polishing.
func WithResponderModel(model string) ConfigOption {
	return func(c *Config) {
		c.ResponderModel = model
	}
}

// WithAPIKey sets the answer-polishing service credential.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithMinConfidence sets the follow-up detection confidence threshold.
func WithMinConfidence(min float64) ConfigOption {
	return func(c *Config) {
		c.MinConfidence = min
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. The responder stays disabled until an API key
// is supplied.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:  "http://localhost:11434/v1",
		EmbeddingModel: "embeddinggemma",
		ResponderModel: "gpt-4o-mini",
		MinConfidence:  0.5,
	}
}

// NewConfig creates a Config starting from defaults and applying options.
func NewConfig(opts ...ConfigOption) *Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EmbeddingHost) == "" {
		return errors.New("embedding host is required")
	}
	if strings.TrimSpace(c.EmbeddingModel) == "" {
		return errors.New("embedding model is required")
	}
	if c.APIKey != "" && strings.TrimSpace(c.ResponderModel) == "" {
		return errors.New("responder model is required when an API key is set")
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return errors.New("min confidence must be between 0 and 1")
	}
	return nil
}
