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


package mock

import "github.com/poiesic/chatalogue/nlu"

// MockProvider is a test double for nlu.Provider.
// It aggregates mock embedder and responder instances.
type MockProvider struct {
	embedder  *MockEmbedder
	responder *MockResponder
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns nlu.Provider interface for consistency with production
// constructors. Use GetMockEmbedder()/GetMockResponder() to access concrete
// types for test assertions.
func NewMockProvider() nlu.Provider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		responder: NewMockResponder(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom services.
// A nil responder models the missing-API-key configuration.
func NewMockProviderWithServices(embedder *MockEmbedder, responder *MockResponder) nlu.Provider {
	return &MockProvider{
		embedder:  embedder,
		responder: responder,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() nlu.Embedder {
	return p.embedder
}

// Responder returns the mock responder, or nil when none is configured.
func (p *MockProvider) Responder() nlu.Responder {
	if p.responder == nil {
		return nil
	}
	return p.responder
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockResponder returns the underlying mock responder for test assertions.
func (p *MockProvider) GetMockResponder() *MockResponder {
	return p.responder
}
