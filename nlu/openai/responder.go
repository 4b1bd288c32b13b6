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
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/chatalogue/nlu"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	responderTemperature = 0.2
	responderMaxTokens   = 150
)

// Responder implements nlu.Responder using OpenAI-compatible chat APIs.
// It embeds the database facts into a templated prompt and returns the
// completion verbatim.
type Responder struct {
	client llms.Model
	logger *slog.Logger
}

// NewResponder creates a new responder using the provided configuration.
// Returns an error when no API key is configured; callers gate on the key
// and fall back to direct formatting.
//
// Returns nlu.Responder interface to enforce abstraction.
func NewResponder(config *nlu.Config) (nlu.Responder, error) {
	return newResponder(config)
}

func newResponder(config *nlu.Config) (*Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := openai.New(
		openai.WithToken(config.APIKey),
		openai.WithModel(config.ResponderModel),
	)
	if err != nil {
		return nil, err
	}

	return &Responder{
		client: client,
		logger: slog.Default().With("component", "openai-responder"),
	}, nil
}

// Respond generates an answer to the question using the formatted database
// facts. The completion is returned verbatim.
func (r *Responder) Respond(ctx context.Context, question, contextLine, dbFacts string) (string, error) {
	var ctxPart string
	if contextLine != "" {
		ctxPart = "Conversation context: " + contextLine + "\n"
	}

	userPrompt := fmt.Sprintf(responderUserPromptTemplate, ctxPart, dbFacts, question)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(responderSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content,
		llms.WithTemperature(responderTemperature),
		llms.WithMaxTokens(responderMaxTokens),
	)
	if err != nil {
		r.logger.Error("failed to generate answer", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model")
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
