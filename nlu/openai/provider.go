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


package openai

import (
	"log/slog"

	"github.com/poiesic/chatalogue/nlu"
)

// Provider implements nlu.Provider using OpenAI-compatible services.
// It manages embedder and responder instances. The responder is only
// created when the config carries an API key; otherwise Responder()
// returns nil and callers format answers directly.
type Provider struct {
	config    *nlu.Config
	embedder  *Embedder
	responder *Responder
	logger    *slog.Logger
}

// NewProvider creates a new NLU provider with OpenAI-compatible services.
// The config is validated before use.
//
// Returns nlu.Provider interface (not *Provider) to enforce abstraction.
func NewProvider(config *nlu.Config) (nlu.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	var responder *Responder
	if config.APIKey != "" {
		responder, err = newResponder(config)
		if err != nil {
			return nil, err
		}
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		responder: responder,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() nlu.Embedder {
	return p.embedder
}

// Responder returns the answer generation service, or nil when no API key
// was configured.
func (p *Provider) Responder() nlu.Responder {
	if p.responder == nil {
		return nil
	}
	return p.responder
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
